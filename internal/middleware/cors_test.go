package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/leavekit/internal/middleware"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	middleware.CORS(next).ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.HeaderAllowOrigin); got != "*" {
		t.Errorf("allow-origin = %q, want: %q", got, "*")
	}

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want: %d", rec.Code, http.StatusTeapot)
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("next handler should not run for preflight")
	})

	req := httptest.NewRequest(http.MethodOptions, "/mcp", nil)
	rec := httptest.NewRecorder()

	middleware.CORS(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want: %d", rec.Code, http.StatusNoContent)
	}
}
