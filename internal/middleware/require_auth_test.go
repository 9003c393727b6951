package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/leavekit/internal/middleware"
	"github.com/ferdiebergado/leavekit/internal/pkg/web"
	"github.com/ferdiebergado/leavekit/internal/platform/jwt"
)

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		authHeader string
		signer     *jwt.StubSigner
		wantStatus int
		wantClient string
	}{
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			signer: &jwt.StubSigner{
				VerifyFunc: func(_ string) (*jwt.Claims, error) {
					return &jwt.Claims{ClientID: "client-1"}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantClient: "client-1",
		},
		{
			name:       "missing header",
			authHeader: "",
			signer:     &jwt.StubSigner{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing bearer prefix",
			authHeader: "Basic abc123",
			signer:     &jwt.StubSigner{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			signer: &jwt.StubSigner{
				VerifyFunc: func(_ string) (*jwt.Claims, error) {
					return nil, errors.New("token is expired")
				},
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotClient string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClient, _ = web.ClientFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			middleware.RequireAuth(tt.signer)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want: %d", rec.Code, tt.wantStatus)
			}

			if tt.wantClient != "" && gotClient != tt.wantClient {
				t.Errorf("client id = %q, want: %q", gotClient, tt.wantClient)
			}
		})
	}
}
