package auth

import (
	"github.com/ferdiebergado/leavekit/internal/config"
	"github.com/ferdiebergado/leavekit/internal/platform/db"
	"github.com/ferdiebergado/leavekit/internal/platform/hash"
	"github.com/ferdiebergado/leavekit/internal/platform/jwt"
)

type Module struct {
	repo    *Repository
	svc     Service
	handler *Handler
}

func NewModule(dbExec db.Executor, hasher hash.Hasher, signer jwt.Signer, cfg *config.JWT) *Module {
	repo := NewRepository(dbExec)
	svc := NewService(repo, hasher, signer, cfg)
	handler := NewHandler(svc)
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: handler,
	}
}

//nolint:ireturn //The module exposes the service behind its interface.
func (m *Module) Service() Service {
	return m.svc
}

func (m *Module) Handler() *Handler {
	return m.handler
}
