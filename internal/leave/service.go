package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ferdiebergado/leavekit/internal/employee"
	"github.com/ferdiebergado/leavekit/internal/platform/db"
)

var (
	ErrEmployeeNotFound = errors.New("leave service: employee not found")
	ErrInvalidLeaveType = errors.New("leave service: invalid leave type")
)

// NotPendingError reports a decision attempted on a request that has
// already been decided.
type NotPendingError struct {
	RequestID string
	Status    string
}

func (e *NotPendingError) Error() string {
	return fmt.Sprintf("leave service: request %s is already %s", e.RequestID, e.Status)
}

// RepositoryPort is the interface for leave request persistence.
type RepositoryPort interface {
	Create(ctx context.Context, req Request) error
	Find(ctx context.Context, requestID string) (*Request, error)
	List(ctx context.Context) ([]Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	ListByStatus(ctx context.Context, status string) ([]Request, error)
	NextID(ctx context.Context) (string, error)
	UpdateStatus(ctx context.Context, requestID, status, decidedBy string) error
	Stats(ctx context.Context) (*Stats, error)
}

// Service is the interface for the leave request workflow.
type Service interface {
	Submit(ctx context.Context, params SubmitParams) (*Request, error)
	Approve(ctx context.Context, requestID, approverName string) (*Request, error)
	Deny(ctx context.Context, requestID, deniedBy string) (*Request, error)
	Find(ctx context.Context, requestID string) (*Request, error)
	List(ctx context.Context) ([]Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	ListByStatus(ctx context.Context, status string) ([]Request, error)
	Pending(ctx context.Context) ([]Request, error)
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo      RepositoryPort
	employees employee.Service
	txManager db.TxManager
	now       func() time.Time
}

var _ Service = (*service)(nil)

func NewService(repo RepositoryPort, employees employee.Service, txManager db.TxManager) *service {
	return &service{
		repo:      repo,
		employees: employees,
		txManager: txManager,
		now:       time.Now,
	}
}

const dateLayout = "2006-01-02"

type SubmitParams struct {
	EmployeeID    string
	StartDate     string
	EndDate       string
	LeaveType     string
	Reason        string
	DaysRequested int
}

// Submit validates the employee and leave type, assigns the next request ID
// and stores the request as pending.
func (s *service) Submit(ctx context.Context, params SubmitParams) (*Request, error) {
	emp, err := s.employees.Find(ctx, params.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, params.EmployeeID)
		}
		return nil, fmt.Errorf("find employee %s: %w", params.EmployeeID, err)
	}

	if !IsValidType(params.LeaveType) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLeaveType, params.LeaveType)
	}

	var req *Request
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		requestID, err := s.repo.NextID(txCtx)
		if err != nil {
			return fmt.Errorf("next request id: %w", err)
		}

		req = &Request{
			RequestID:     requestID,
			EmployeeID:    emp.EmployeeID,
			EmployeeName:  emp.Name,
			StartDate:     params.StartDate,
			EndDate:       params.EndDate,
			LeaveType:     params.LeaveType,
			Status:        StatusPending,
			Reason:        params.Reason,
			DaysRequested: params.DaysRequested,
			SubmittedDate: s.now().Format(dateLayout),
		}
		if err := s.repo.Create(txCtx, *req); err != nil {
			return fmt.Errorf("create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return req, nil
}

// Approve marks a pending request approved and deducts the requested days
// from the employee's balance. The status change and the deduction commit
// or roll back together.
func (s *service) Approve(ctx context.Context, requestID, approverName string) (*Request, error) {
	var approved *Request
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.decide(txCtx, requestID, StatusApproved, approverName)
		if err != nil {
			return err
		}

		if err := s.employees.DeductBalance(txCtx, req.EmployeeID, req.LeaveType, req.DaysRequested); err != nil {
			return fmt.Errorf("deduct balance: %w", err)
		}

		approved = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	return approved, nil
}

// Deny marks a pending request denied. Balances are untouched.
func (s *service) Deny(ctx context.Context, requestID, deniedBy string) (*Request, error) {
	var denied *Request
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.decide(txCtx, requestID, StatusDenied, deniedBy)
		if err != nil {
			return err
		}
		denied = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	return denied, nil
}

// decide loads a request, checks it is still pending and writes the new
// status. It must run inside a transaction.
func (s *service) decide(txCtx context.Context, requestID, status, decidedBy string) (*Request, error) {
	req, err := s.repo.Find(txCtx, requestID)
	if err != nil {
		return nil, fmt.Errorf("find leave request %s: %w", requestID, err)
	}

	if req.Status != StatusPending {
		return nil, &NotPendingError{RequestID: requestID, Status: req.Status}
	}

	if err := s.repo.UpdateStatus(txCtx, requestID, status, decidedBy); err != nil {
		return nil, fmt.Errorf("update status of %s: %w", requestID, err)
	}

	req.Status = status
	req.ApprovedBy = &decidedBy
	return req, nil
}

func (s *service) Find(ctx context.Context, requestID string) (*Request, error) {
	return s.repo.Find(ctx, requestID)
}

func (s *service) List(ctx context.Context) ([]Request, error) {
	return s.repo.List(ctx)
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	return s.repo.ListByEmployee(ctx, employeeID)
}

func (s *service) ListByStatus(ctx context.Context, status string) ([]Request, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *service) Pending(ctx context.Context) ([]Request, error) {
	return s.repo.ListByStatus(ctx, StatusPending)
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}
