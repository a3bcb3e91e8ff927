package utils

import (
	"math"
	"testing"
)

func TestDeriveTransactionIDDeterminism(t *testing.T) {
	a := DeriveTransactionID("2024-01-01", "coffee", -4.5)
	b := DeriveTransactionID("2024-01-01", "coffee", -4.5)
	if a != b {
		t.Errorf("same triple produced different ids: %s vs %s", a, b)
	}
	if len(a) != 32 {
		t.Errorf("expected 32 hex chars, got %d (%s)", len(a), a)
	}
}

func TestDeriveTransactionIDFieldSensitivity(t *testing.T) {
	base := DeriveTransactionID("2024-01-01", "coffee", -4.5)
	variants := map[string]string{
		"date":   DeriveTransactionID("2024-01-02", "coffee", -4.5),
		"object": DeriveTransactionID("2024-01-01", "tea", -4.5),
		"amount": DeriveTransactionID("2024-01-01", "coffee", -4.6),
	}
	for field, id := range variants {
		if id == base {
			t.Errorf("changing %s did not change the id", field)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{4.5, "4.5"},
		{-4.5, "-4.5"},
		{10, "10"},
		{0, "0"},
		{0.1, "0.1"},
		{1234.56, "1234.56"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"number", float64(12.5), 12.5, true},
		{"zero", float64(0), 0, true},
		{"negative string", "-4.5", -4.5, true},
		{"string with spaces", " 7 ", 7, true},
		{"letters", "abc", 0, false},
		{"trailing garbage", "12abc", 0, false},
		{"empty string", "", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
		{"infinity string", "Inf", 0, false},
		{"nan string", "NaN", 0, false},
		{"nan number", math.NaN(), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseAmount(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	if got := CoerceAmount("150"); got != 150 {
		t.Errorf("CoerceAmount(\"150\") = %v, want 150", got)
	}
	if got := CoerceAmount("abc"); got != 0 {
		t.Errorf("CoerceAmount(\"abc\") = %v, want 0", got)
	}
	if got := CoerceAmount(nil); got != 0 {
		t.Errorf("CoerceAmount(nil) = %v, want 0", got)
	}
}
