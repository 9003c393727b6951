package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ferdiebergado/leavekit/internal/employee"
	"github.com/ferdiebergado/leavekit/internal/leave"
	"github.com/ferdiebergado/leavekit/internal/platform/db"
)

func johnSmith() *employee.Employee {
	return &employee.Employee{
		EmployeeID:         "EMP001",
		Name:               "John Smith",
		Department:         "Engineering",
		Manager:            "Jane Doe",
		AnnualLeaveBalance: 25,
		SickLeaveBalance:   10,
	}
}

func TestService_Submit(t *testing.T) {
	t.Parallel()

	employees := &employee.StubService{
		FindFunc: func(_ context.Context, employeeID string) (*employee.Employee, error) {
			if employeeID != "EMP001" {
				return nil, employee.ErrNotFound
			}
			return johnSmith(), nil
		},
	}

	tests := []struct {
		name    string
		params  leave.SubmitParams
		wantErr error
	}{
		{
			name: "valid request is stored as pending",
			params: leave.SubmitParams{
				EmployeeID:    "EMP001",
				StartDate:     "2024-09-02",
				EndDate:       "2024-09-06",
				LeaveType:     leave.TypeAnnual,
				Reason:        "Family vacation",
				DaysRequested: 5,
			},
		},
		{
			name: "unknown employee",
			params: leave.SubmitParams{
				EmployeeID:    "EMP999",
				StartDate:     "2024-09-02",
				EndDate:       "2024-09-06",
				LeaveType:     leave.TypeAnnual,
				Reason:        "Family vacation",
				DaysRequested: 5,
			},
			wantErr: leave.ErrEmployeeNotFound,
		},
		{
			name: "invalid leave type",
			params: leave.SubmitParams{
				EmployeeID:    "EMP001",
				StartDate:     "2024-09-02",
				EndDate:       "2024-09-06",
				LeaveType:     "sabbatical",
				Reason:        "Research",
				DaysRequested: 30,
			},
			wantErr: leave.ErrInvalidLeaveType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var created *leave.Request
			repo := &leave.StubRepo{
				NextIDFunc: func(_ context.Context) (string, error) {
					return "REQ005", nil
				},
				CreateFunc: func(_ context.Context, req leave.Request) error {
					created = &req
					return nil
				},
			}

			svc := leave.NewService(repo, employees, &db.StubTxManager{})

			req, err := svc.Submit(context.Background(), tt.params)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("svc.Submit(ctx, params) = %v, want: %v", err, tt.wantErr)
				}
				if created != nil {
					t.Error("request was stored despite validation error")
				}
				return
			}

			if err != nil {
				t.Fatalf("svc.Submit(ctx, params) = %v, want: nil", err)
			}

			if req.RequestID != "REQ005" {
				t.Errorf("req.RequestID = %q, want: %q", req.RequestID, "REQ005")
			}
			if req.Status != leave.StatusPending {
				t.Errorf("req.Status = %q, want: %q", req.Status, leave.StatusPending)
			}
			if req.EmployeeName != "John Smith" {
				t.Errorf("req.EmployeeName = %q, want: %q", req.EmployeeName, "John Smith")
			}
			if _, err := time.Parse("2006-01-02", req.SubmittedDate); err != nil {
				t.Errorf("req.SubmittedDate = %q is not an ISO date: %v", req.SubmittedDate, err)
			}
		})
	}
}

func TestService_Approve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		request     *leave.Request
		findErr     error
		wantDeduct  bool
		wantErr     bool
		wantPending bool
	}{
		{
			name: "pending annual request deducts balance",
			request: &leave.Request{
				RequestID:     "REQ003",
				EmployeeID:    "EMP003",
				LeaveType:     leave.TypeAnnual,
				Status:        leave.StatusPending,
				DaysRequested: 3,
			},
			wantDeduct: true,
		},
		{
			name: "already approved request is rejected",
			request: &leave.Request{
				RequestID: "REQ001",
				Status:    leave.StatusApproved,
			},
			wantErr:     true,
			wantPending: true,
		},
		{
			name:    "unknown request",
			findErr: leave.ErrNotFound,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			deducted := false
			repo := &leave.StubRepo{
				FindFunc: func(_ context.Context, _ string) (*leave.Request, error) {
					if tt.findErr != nil {
						return nil, tt.findErr
					}
					req := *tt.request
					return &req, nil
				},
				UpdateStatusFunc: func(_ context.Context, _, status, decidedBy string) error {
					if status != leave.StatusApproved {
						t.Errorf("status = %q, want: %q", status, leave.StatusApproved)
					}
					if decidedBy != "Jane Doe" {
						t.Errorf("decidedBy = %q, want: %q", decidedBy, "Jane Doe")
					}
					return nil
				},
			}

			employees := &employee.StubService{
				DeductBalanceFunc: func(_ context.Context, employeeID, leaveType string, days int) error {
					deducted = true
					if employeeID != tt.request.EmployeeID {
						t.Errorf("employeeID = %q, want: %q", employeeID, tt.request.EmployeeID)
					}
					if leaveType != tt.request.LeaveType {
						t.Errorf("leaveType = %q, want: %q", leaveType, tt.request.LeaveType)
					}
					if days != tt.request.DaysRequested {
						t.Errorf("days = %d, want: %d", days, tt.request.DaysRequested)
					}
					return nil
				},
			}

			svc := leave.NewService(repo, employees, &db.StubTxManager{})

			approved, err := svc.Approve(context.Background(), "REQ003", "Jane Doe")

			if (err != nil) != tt.wantErr {
				t.Fatalf("svc.Approve(...) = %v, wantErr: %v", err, tt.wantErr)
			}

			if tt.wantPending {
				var notPending *leave.NotPendingError
				if !errors.As(err, &notPending) {
					t.Fatalf("error is %T, want: *leave.NotPendingError", err)
				}
				if notPending.Status != tt.request.Status {
					t.Errorf("notPending.Status = %q, want: %q", notPending.Status, tt.request.Status)
				}
			}

			if deducted != tt.wantDeduct {
				t.Errorf("balance deducted = %v, want: %v", deducted, tt.wantDeduct)
			}

			if err == nil {
				if approved.Status != leave.StatusApproved {
					t.Errorf("approved.Status = %q, want: %q", approved.Status, leave.StatusApproved)
				}
				if approved.ApprovedBy == nil || *approved.ApprovedBy != "Jane Doe" {
					t.Errorf("approved.ApprovedBy = %v, want: %q", approved.ApprovedBy, "Jane Doe")
				}
			}
		})
	}
}

func TestService_Deny(t *testing.T) {
	t.Parallel()

	repo := &leave.StubRepo{
		FindFunc: func(_ context.Context, _ string) (*leave.Request, error) {
			return &leave.Request{
				RequestID:     "REQ003",
				EmployeeID:    "EMP003",
				LeaveType:     leave.TypeAnnual,
				Status:        leave.StatusPending,
				DaysRequested: 3,
			}, nil
		},
		UpdateStatusFunc: func(_ context.Context, _, status, _ string) error {
			if status != leave.StatusDenied {
				t.Errorf("status = %q, want: %q", status, leave.StatusDenied)
			}
			return nil
		},
	}

	employees := &employee.StubService{
		DeductBalanceFunc: func(_ context.Context, _, _ string, _ int) error {
			t.Error("deny must not touch balances")
			return nil
		},
	}

	svc := leave.NewService(repo, employees, &db.StubTxManager{})

	denied, err := svc.Deny(context.Background(), "REQ003", "Jane Doe")
	if err != nil {
		t.Fatalf("svc.Deny(...) = %v, want: nil", err)
	}

	if denied.Status != leave.StatusDenied {
		t.Errorf("denied.Status = %q, want: %q", denied.Status, leave.StatusDenied)
	}
}

func TestService_Pending(t *testing.T) {
	t.Parallel()

	repo := &leave.StubRepo{
		ListByStatusFunc: func(_ context.Context, status string) ([]leave.Request, error) {
			if status != leave.StatusPending {
				t.Errorf("status = %q, want: %q", status, leave.StatusPending)
			}
			return []leave.Request{{RequestID: "REQ003", Status: leave.StatusPending}}, nil
		},
	}

	svc := leave.NewService(repo, &employee.StubService{}, &db.StubTxManager{})

	pending, err := svc.Pending(context.Background())
	if err != nil {
		t.Fatalf("svc.Pending(ctx) = %v, want: nil", err)
	}

	if len(pending) != 1 {
		t.Errorf("len(pending) = %d, want: %d", len(pending), 1)
	}
}
