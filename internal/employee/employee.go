package employee

import (
	"github.com/ferdiebergado/leavekit/internal/config"
	"github.com/ferdiebergado/leavekit/internal/platform/db"
)

type Module struct {
	repo *Repository
	svc  Service
}

func NewModule(dbExec db.Executor, policy *config.Leave) *Module {
	repo := NewRepository(dbExec)
	svc := NewService(repo, policy)
	return &Module{
		repo: repo,
		svc:  svc,
	}
}

//nolint:ireturn //The module exposes the service behind its interface.
func (m *Module) Service() Service {
	return m.svc
}
