package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ferdiebergado/leavekit/internal/pkg/message"
	"github.com/ferdiebergado/leavekit/internal/pkg/web"
	"github.com/ferdiebergado/leavekit/internal/platform/jwt"
)

func RequireAuth(signer jwt.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractBearerToken(r.Header.Get("Authorization"))
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidClient, nil)
				return
			}

			claims, err := signer.Verify(tokenStr)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidClient, nil)
				return
			}

			clientCtx := web.NewContextWithClient(r.Context(), claims.ClientID)
			r = r.WithContext(clientCtx)
			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing Authorization header")
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errors.New("missing Bearer prefix")
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}
