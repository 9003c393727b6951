package leave

import (
	"context"
	"errors"
)

type StubRepo struct {
	CreateFunc         func(ctx context.Context, req Request) error
	FindFunc           func(ctx context.Context, requestID string) (*Request, error)
	ListFunc           func(ctx context.Context) ([]Request, error)
	ListByEmployeeFunc func(ctx context.Context, employeeID string) ([]Request, error)
	ListByStatusFunc   func(ctx context.Context, status string) ([]Request, error)
	NextIDFunc         func(ctx context.Context) (string, error)
	UpdateStatusFunc   func(ctx context.Context, requestID, status, decidedBy string) error
	StatsFunc          func(ctx context.Context) (*Stats, error)
}

var _ RepositoryPort = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, req Request) error {
	if r.CreateFunc == nil {
		return errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, req)
}

func (r *StubRepo) Find(ctx context.Context, requestID string) (*Request, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, requestID)
}

func (r *StubRepo) List(ctx context.Context) ([]Request, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) ListByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	if r.ListByEmployeeFunc == nil {
		return nil, errors.New("ListByEmployee() not implemented by stub")
	}
	return r.ListByEmployeeFunc(ctx, employeeID)
}

func (r *StubRepo) ListByStatus(ctx context.Context, status string) ([]Request, error) {
	if r.ListByStatusFunc == nil {
		return nil, errors.New("ListByStatus() not implemented by stub")
	}
	return r.ListByStatusFunc(ctx, status)
}

func (r *StubRepo) NextID(ctx context.Context) (string, error) {
	if r.NextIDFunc == nil {
		return "", errors.New("NextID() not implemented by stub")
	}
	return r.NextIDFunc(ctx)
}

func (r *StubRepo) UpdateStatus(ctx context.Context, requestID, status, decidedBy string) error {
	if r.UpdateStatusFunc == nil {
		return errors.New("UpdateStatus() not implemented by stub")
	}
	return r.UpdateStatusFunc(ctx, requestID, status, decidedBy)
}

func (r *StubRepo) Stats(ctx context.Context) (*Stats, error) {
	if r.StatsFunc == nil {
		return nil, errors.New("Stats() not implemented by stub")
	}
	return r.StatsFunc(ctx)
}

type StubService struct {
	SubmitFunc         func(ctx context.Context, params SubmitParams) (*Request, error)
	ApproveFunc        func(ctx context.Context, requestID, approverName string) (*Request, error)
	DenyFunc           func(ctx context.Context, requestID, deniedBy string) (*Request, error)
	FindFunc           func(ctx context.Context, requestID string) (*Request, error)
	ListFunc           func(ctx context.Context) ([]Request, error)
	ListByEmployeeFunc func(ctx context.Context, employeeID string) ([]Request, error)
	ListByStatusFunc   func(ctx context.Context, status string) ([]Request, error)
	PendingFunc        func(ctx context.Context) ([]Request, error)
	StatsFunc          func(ctx context.Context) (*Stats, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) Submit(ctx context.Context, params SubmitParams) (*Request, error) {
	if s.SubmitFunc == nil {
		return nil, errors.New("Submit() not implemented by stub")
	}
	return s.SubmitFunc(ctx, params)
}

func (s *StubService) Approve(ctx context.Context, requestID, approverName string) (*Request, error) {
	if s.ApproveFunc == nil {
		return nil, errors.New("Approve() not implemented by stub")
	}
	return s.ApproveFunc(ctx, requestID, approverName)
}

func (s *StubService) Deny(ctx context.Context, requestID, deniedBy string) (*Request, error) {
	if s.DenyFunc == nil {
		return nil, errors.New("Deny() not implemented by stub")
	}
	return s.DenyFunc(ctx, requestID, deniedBy)
}

func (s *StubService) Find(ctx context.Context, requestID string) (*Request, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, requestID)
}

func (s *StubService) List(ctx context.Context) ([]Request, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) ListByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	if s.ListByEmployeeFunc == nil {
		return nil, errors.New("ListByEmployee() not implemented by stub")
	}
	return s.ListByEmployeeFunc(ctx, employeeID)
}

func (s *StubService) ListByStatus(ctx context.Context, status string) ([]Request, error) {
	if s.ListByStatusFunc == nil {
		return nil, errors.New("ListByStatus() not implemented by stub")
	}
	return s.ListByStatusFunc(ctx, status)
}

func (s *StubService) Pending(ctx context.Context) ([]Request, error) {
	if s.PendingFunc == nil {
		return nil, errors.New("Pending() not implemented by stub")
	}
	return s.PendingFunc(ctx)
}

func (s *StubService) Stats(ctx context.Context) (*Stats, error) {
	if s.StatsFunc == nil {
		return nil, errors.New("Stats() not implemented by stub")
	}
	return s.StatsFunc(ctx)
}
