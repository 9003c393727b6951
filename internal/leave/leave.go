package leave

import (
	"github.com/ferdiebergado/leavekit/internal/employee"
	"github.com/ferdiebergado/leavekit/internal/platform/db"
)

type Module struct {
	repo *Repository
	svc  Service
}

func NewModule(dbExec db.Executor, employees employee.Service, txManager db.TxManager) *Module {
	repo := NewRepository(dbExec)
	svc := NewService(repo, employees, txManager)
	return &Module{
		repo: repo,
		svc:  svc,
	}
}

//nolint:ireturn //The module exposes the service behind its interface.
func (m *Module) Service() Service {
	return m.svc
}
