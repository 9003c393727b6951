package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ferdiebergado/leavekit/internal/auth"
	"github.com/ferdiebergado/leavekit/internal/pkg/web"
)

func TestHandler_IssueToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		svc        *auth.StubService
		withParams bool
		wantStatus int
	}{
		{
			name: "valid credentials",
			svc: &auth.StubService{
				IssueTokenFunc: func(_ context.Context, _ auth.TokenParams) (*auth.Token, error) {
					return &auth.Token{AccessToken: "signed-token", TokenType: "Bearer", ExpiresIn: 900}, nil
				},
			},
			withParams: true,
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid credentials",
			svc: &auth.StubService{
				IssueTokenFunc: func(_ context.Context, _ auth.TokenParams) (*auth.Token, error) {
					return nil, auth.ErrInvalidCredentials
				},
			},
			withParams: true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing params in context",
			svc:        &auth.StubService{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
			if tt.withParams {
				params := auth.TokenRequest{
					GrantType:    "client_credentials",
					ClientID:     "desktop-client",
					ClientSecret: "s3cr3t",
				}
				req = req.WithContext(web.NewContextWithParams(req.Context(), params))
			}
			rec := httptest.NewRecorder()

			handler := auth.NewHandler(tt.svc)
			handler.IssueToken(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.wantStatus)
			}

			if tt.wantStatus != http.StatusOK {
				return
			}

			var res web.OKResponse[auth.TokenResponse]
			if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
				t.Fatalf("failed to decode json response: %v", err)
			}
			if res.Data.AccessToken != "signed-token" {
				t.Errorf("res.Data.AccessToken = %q, want: %q", res.Data.AccessToken, "signed-token")
			}
			if res.Data.TokenType != "Bearer" {
				t.Errorf("res.Data.TokenType = %q, want: %q", res.Data.TokenType, "Bearer")
			}
		})
	}
}
