package auth

import (
	"context"
	"errors"
)

type StubRepo struct {
	FindFunc   func(ctx context.Context, clientID string) (*Client, error)
	UpsertFunc func(ctx context.Context, client Client) error
}

var _ RepositoryPort = (*StubRepo)(nil)

func (r *StubRepo) Find(ctx context.Context, clientID string) (*Client, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, clientID)
}

func (r *StubRepo) Upsert(ctx context.Context, client Client) error {
	if r.UpsertFunc == nil {
		return errors.New("Upsert() not implemented by stub")
	}
	return r.UpsertFunc(ctx, client)
}

type StubService struct {
	IssueTokenFunc     func(ctx context.Context, params TokenParams) (*Token, error)
	RegisterClientFunc func(ctx context.Context, clientID, name, secret string) error
}

var _ Service = (*StubService)(nil)

func (s *StubService) IssueToken(ctx context.Context, params TokenParams) (*Token, error) {
	if s.IssueTokenFunc == nil {
		return nil, errors.New("IssueToken() not implemented by stub")
	}
	return s.IssueTokenFunc(ctx, params)
}

func (s *StubService) RegisterClient(ctx context.Context, clientID, name, secret string) error {
	if s.RegisterClientFunc == nil {
		return errors.New("RegisterClient() not implemented by stub")
	}
	return s.RegisterClientFunc(ctx, clientID, name, secret)
}
