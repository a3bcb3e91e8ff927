package utils

import (
	"crypto/md5"
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders an amount with the shortest decimal form that
// round-trips back to the same float64. Hashing depends on this being
// stable: the same numeric value must always serialise identically.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// DeriveTransactionID computes the content hash identifying a transaction
// within its account: an MD5 hex digest over the concatenation of date,
// object and the formatted amount. The same (date, object, amount) triple
// always yields the same id; it is a dedup key, not a security token.
func DeriveTransactionID(date, object string, amount float64) string {
	sum := md5.Sum([]byte(date + object + FormatAmount(amount)))
	return hex.EncodeToString(sum[:])
}

// ParseAmount interprets a decoded JSON value as a finite number. Clients
// send amounts either as a JSON number or as a numeric string; anything
// else, including NaN and infinities, is rejected.
func ParseAmount(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// CoerceAmount is ParseAmount with a zero fallback. Used for the optional
// initial balance on account creation, which never fails the request on a
// malformed value.
func CoerceAmount(v any) float64 {
	f, ok := ParseAmount(v)
	if !ok {
		return 0
	}
	return f
}
