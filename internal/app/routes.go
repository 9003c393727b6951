package app

import (
	"net/http"

	"github.com/ferdiebergado/leavekit/internal/auth"
	"github.com/ferdiebergado/leavekit/internal/middleware"
	"github.com/ferdiebergado/leavekit/internal/pkg/web"
	"github.com/ferdiebergado/leavekit/internal/platform/jwt"
	"github.com/ferdiebergado/leavekit/internal/platform/router"
	"github.com/ferdiebergado/leavekit/internal/platform/validation"
)

func mountAuthRoutes(r router.Router, handler *auth.Handler, validator validation.Validator, maxBodyBytes int64) {
	r.Post("/auth/token", handler.IssueToken,
		middleware.DecodePayload[auth.TokenRequest](maxBodyBytes),
		middleware.ValidateInput[auth.TokenRequest](validator))
}

// The streamable HTTP transport multiplexes the whole MCP session over a
// single endpoint: POST carries requests, GET opens the event stream and
// DELETE ends the session. All three require a bearer token.
func mountMCPRoutes(r router.Router, streamable http.Handler, signer jwt.Signer) {
	requireAuth := middleware.RequireAuth(signer)
	r.Post("/mcp", streamable.ServeHTTP, requireAuth)
	r.Get("/mcp", streamable.ServeHTTP, requireAuth)
	r.Delete("/mcp", streamable.ServeHTTP, requireAuth)
}

func mountHealthRoute(r router.Router) {
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		msg := "ok"
		web.RespondOK[struct{}](w, &msg, nil)
	})
}
