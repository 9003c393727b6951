package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/leavekit/internal/pkg/message"
	"github.com/ferdiebergado/leavekit/internal/pkg/web"
)

const maskChar = "*"

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type TokenRequest struct {
	GrantType    string `json:"grant_type,omitempty" validate:"required,oneof=client_credentials"`
	ClientID     string `json:"client_id,omitempty" validate:"required"`
	ClientSecret string `json:"client_secret,omitempty" validate:"required"`
}

func (r *TokenRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("grant_type", r.GrantType),
		slog.String("client_id", r.ClientID),
		slog.String("client_secret", maskChar),
	)
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// IssueToken exchanges client credentials for a bearer token.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[TokenRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := TokenParams{
		ClientID:     req.ClientID,
		ClientSecret: req.ClientSecret,
	}
	token, err := h.svc.IssueToken(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			web.RespondUnauthorized(w, err, message.InvalidClient, nil)
			return
		}
		web.RespondInternalServerError(w, err)
		return
	}

	data := &TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresIn:   token.ExpiresIn,
	}
	web.RespondOK(w, nil, data)
}
