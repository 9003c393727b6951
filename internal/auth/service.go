package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/leavekit/internal/config"
	"github.com/ferdiebergado/leavekit/internal/platform/hash"
	"github.com/ferdiebergado/leavekit/internal/platform/jwt"
)

var ErrInvalidCredentials = errors.New("auth service: invalid client credentials")

type RepositoryPort interface {
	Find(ctx context.Context, clientID string) (*Client, error)
	Upsert(ctx context.Context, client Client) error
}

type Service interface {
	IssueToken(ctx context.Context, params TokenParams) (*Token, error)
	RegisterClient(ctx context.Context, clientID, name, secret string) error
}

type TokenParams struct {
	ClientID     string
	ClientSecret string
}

func (p *TokenParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("client_id", p.ClientID),
		slog.String("client_secret", "*"),
	)
}

type Token struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}

type service struct {
	repo   RepositoryPort
	hasher hash.Hasher
	signer jwt.Signer
	cfg    *config.JWT
}

var _ Service = (*service)(nil)

func NewService(repo RepositoryPort, hasher hash.Hasher, signer jwt.Signer, cfg *config.JWT) *service {
	return &service{
		repo:   repo,
		hasher: hasher,
		signer: signer,
		cfg:    cfg,
	}
}

// IssueToken verifies the client secret and signs a short-lived access
// token. Unknown clients and bad secrets both map to
// ErrInvalidCredentials so callers cannot probe for client IDs.
func (s *service) IssueToken(ctx context.Context, params TokenParams) (*Token, error) {
	client, err := s.repo.Find(ctx, params.ClientID)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find client %s: %w", params.ClientID, err)
	}

	ok, err := s.hasher.Verify(params.ClientSecret, client.SecretHash)
	if err != nil {
		return nil, fmt.Errorf("verify secret for client %s: %w", params.ClientID, err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	ttl := s.cfg.TTL.Duration
	accessToken, err := s.signer.Sign(client.ClientID, []string{s.cfg.Issuer}, ttl)
	if err != nil {
		return nil, fmt.Errorf("sign access token for client %s: %w", params.ClientID, err)
	}

	return &Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}

// RegisterClient hashes the secret and stores the client, replacing any
// existing secret for the same client ID.
func (s *service) RegisterClient(ctx context.Context, clientID, name, secret string) error {
	secretHash, err := s.hasher.Hash(secret)
	if err != nil {
		return fmt.Errorf("hash secret for client %s: %w", clientID, err)
	}

	client := Client{
		ClientID:   clientID,
		Name:       name,
		SecretHash: secretHash,
	}
	if err := s.repo.Upsert(ctx, client); err != nil {
		return fmt.Errorf("register client %s: %w", clientID, err)
	}

	return nil
}
