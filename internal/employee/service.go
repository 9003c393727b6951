package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/ferdiebergado/leavekit/internal/config"
)

// RepositoryPort is the interface for employee persistence.
type RepositoryPort interface {
	Create(ctx context.Context, emp Employee) error
	Find(ctx context.Context, employeeID string) (*Employee, error)
	FindByName(ctx context.Context, name string) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	NextID(ctx context.Context) (string, error)
	SetBalances(ctx context.Context, employeeID string, annual, sick int) error
}

// Service is the interface for employee management.
type Service interface {
	Find(ctx context.Context, employeeID string) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, params CreateParams) (*CreateResult, error)
	DeductBalance(ctx context.Context, employeeID, leaveType string, days int) error
}

type service struct {
	repo   RepositoryPort
	policy *config.Leave
}

var _ Service = (*service)(nil)

func NewService(repo RepositoryPort, policy *config.Leave) *service {
	return &service{
		repo:   repo,
		policy: policy,
	}
}

func (s *service) Find(ctx context.Context, employeeID string) (*Employee, error) {
	return s.repo.Find(ctx, employeeID)
}

func (s *service) List(ctx context.Context) ([]Employee, error) {
	return s.repo.List(ctx)
}

// CreateParams carries everything needed to add an employee. Zero balances
// mean "use the configured defaults". Force skips the duplicate checks.
type CreateParams struct {
	Name          string
	Department    string
	Manager       string
	AnnualBalance int
	SickBalance   int
	Force         bool
}

// CreateResult reports one of three outcomes: the employee was created,
// an exact duplicate exists, or similarly named employees were found.
type CreateResult struct {
	Created   *Employee
	Duplicate *Employee
	Similar   []Match
}

func (s *service) Create(ctx context.Context, params CreateParams) (*CreateResult, error) {
	if !params.Force {
		existing, err := s.repo.FindByName(ctx, params.Name)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("find employee by name %q: %w", params.Name, err)
		}
		if existing != nil {
			return &CreateResult{Duplicate: existing}, nil
		}

		employees, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list employees: %w", err)
		}
		if similar := rankSimilar(params.Name, employees, s.policy.SimilarityThreshold); len(similar) > 0 {
			return &CreateResult{Similar: similar}, nil
		}
	}

	employeeID, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("next employee id: %w", err)
	}

	annual := params.AnnualBalance
	if annual == 0 {
		annual = s.policy.DefaultAnnualBalance
	}
	sick := params.SickBalance
	if sick == 0 {
		sick = s.policy.DefaultSickBalance
	}

	emp := Employee{
		EmployeeID:         employeeID,
		Name:               params.Name,
		Department:         params.Department,
		Manager:            params.Manager,
		AnnualLeaveBalance: annual,
		SickLeaveBalance:   sick,
	}
	if err := s.repo.Create(ctx, emp); err != nil {
		return nil, fmt.Errorf("create employee %q: %w", params.Name, err)
	}

	return &CreateResult{Created: &emp}, nil
}

// DeductBalance subtracts days from the balance matching the leave type.
// Balances never go below zero. Leave types without a tracked balance
// (personal, emergency) are a no-op.
func (s *service) DeductBalance(ctx context.Context, employeeID, leaveType string, days int) error {
	emp, err := s.repo.Find(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("find employee %s: %w", employeeID, err)
	}

	annual := emp.AnnualLeaveBalance
	sick := emp.SickLeaveBalance

	switch leaveType {
	case "annual":
		annual = clampAtZero(annual - days)
	case "sick":
		sick = clampAtZero(sick - days)
	default:
		return nil
	}

	if err := s.repo.SetBalances(ctx, employeeID, annual, sick); err != nil {
		return fmt.Errorf("set balances for %s: %w", employeeID, err)
	}
	return nil
}

func clampAtZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
