package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/budgetbank/budget-api/internal/logger"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	requestID := w.Header().Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}

	line := buf.String()
	if line == "" {
		t.Fatal("expected a log line, got none")
	}
	for _, want := range []string{requestID, `"method":"GET"`, `"path":"/health"`, `"status":200`, "request completed"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected log line to contain %q, got: %s", want, line)
		}
	}
}

func TestRequestLoggerUniqueIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	ids := make(map[string]bool)
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		id := w.Header().Get("X-Request-ID")
		if id == "" {
			t.Fatal("expected X-Request-ID header to be set")
		}
		if ids[id] {
			t.Errorf("request id %s reused across requests", id)
		}
		ids[id] = true
	}
}
