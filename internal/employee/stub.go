package employee

import (
	"context"
	"errors"
)

type StubRepo struct {
	CreateFunc      func(ctx context.Context, emp Employee) error
	FindFunc        func(ctx context.Context, employeeID string) (*Employee, error)
	FindByNameFunc  func(ctx context.Context, name string) (*Employee, error)
	ListFunc        func(ctx context.Context) ([]Employee, error)
	NextIDFunc      func(ctx context.Context) (string, error)
	SetBalancesFunc func(ctx context.Context, employeeID string, annual, sick int) error
}

var _ RepositoryPort = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, emp Employee) error {
	if r.CreateFunc == nil {
		return errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, emp)
}

func (r *StubRepo) Find(ctx context.Context, employeeID string) (*Employee, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, employeeID)
}

func (r *StubRepo) FindByName(ctx context.Context, name string) (*Employee, error) {
	if r.FindByNameFunc == nil {
		return nil, errors.New("FindByName() not implemented by stub")
	}
	return r.FindByNameFunc(ctx, name)
}

func (r *StubRepo) List(ctx context.Context) ([]Employee, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) NextID(ctx context.Context) (string, error) {
	if r.NextIDFunc == nil {
		return "", errors.New("NextID() not implemented by stub")
	}
	return r.NextIDFunc(ctx)
}

func (r *StubRepo) SetBalances(ctx context.Context, employeeID string, annual, sick int) error {
	if r.SetBalancesFunc == nil {
		return errors.New("SetBalances() not implemented by stub")
	}
	return r.SetBalancesFunc(ctx, employeeID, annual, sick)
}

type StubService struct {
	FindFunc          func(ctx context.Context, employeeID string) (*Employee, error)
	ListFunc          func(ctx context.Context) ([]Employee, error)
	CreateFunc        func(ctx context.Context, params CreateParams) (*CreateResult, error)
	DeductBalanceFunc func(ctx context.Context, employeeID, leaveType string, days int) error
}

var _ Service = (*StubService)(nil)

func (s *StubService) Find(ctx context.Context, employeeID string) (*Employee, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, employeeID)
}

func (s *StubService) List(ctx context.Context) ([]Employee, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Create(ctx context.Context, params CreateParams) (*CreateResult, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) DeductBalance(ctx context.Context, employeeID, leaveType string, days int) error {
	if s.DeductBalanceFunc == nil {
		return errors.New("DeductBalance() not implemented by stub")
	}
	return s.DeductBalanceFunc(ctx, employeeID, leaveType, days)
}
