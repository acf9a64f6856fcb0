package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("default policy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
		rec := httptest.NewRecorder()

		SecurityHeaders(next).ServeHTTP(rec, req)

		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		assert.Equal(t, "default-src 'none'", rec.Header().Get("Content-Security-Policy"))
	})

	t.Run("swagger gets relaxed policy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
		rec := httptest.NewRecorder()

		SecurityHeaders(next).ServeHTTP(rec, req)

		assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "script-src")
	})
}
