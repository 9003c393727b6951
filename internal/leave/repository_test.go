package leave_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ferdiebergado/leavekit/internal/leave"
	"github.com/ferdiebergado/leavekit/internal/platform/db"
)

func TestRepository_Find(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	repo := leave.NewRepository(conn)
	ctx := context.Background()

	req, err := repo.Find(ctx, "REQ001")
	if err != nil {
		t.Fatalf("repo.Find(ctx, %q) = %v, want: nil", "REQ001", err)
	}

	if req.EmployeeName != "John Smith" {
		t.Errorf("req.EmployeeName = %q, want: %q", req.EmployeeName, "John Smith")
	}
	if req.Status != leave.StatusApproved {
		t.Errorf("req.Status = %q, want: %q", req.Status, leave.StatusApproved)
	}
	if req.ApprovedBy == nil || *req.ApprovedBy != "Jane Doe" {
		t.Errorf("req.ApprovedBy = %v, want: %q", req.ApprovedBy, "Jane Doe")
	}

	if _, err := repo.Find(ctx, "REQ999"); !errors.Is(err, leave.ErrNotFound) {
		t.Errorf("repo.Find(ctx, %q) = %v, want: %v", "REQ999", err, leave.ErrNotFound)
	}
}

func TestRepository_List(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	repo := leave.NewRepository(conn)
	ctx := context.Background()

	requests, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("repo.List(ctx) = %v, want: nil", err)
	}

	if len(requests) != 4 {
		t.Fatalf("len(requests) = %d, want: %d", len(requests), 4)
	}
	if requests[0].RequestID != "REQ001" {
		t.Errorf("requests[0].RequestID = %q, want: %q", requests[0].RequestID, "REQ001")
	}
}

func TestRepository_ListByEmployee(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	repo := leave.NewRepository(conn)
	ctx := context.Background()

	requests, err := repo.ListByEmployee(ctx, "EMP003")
	if err != nil {
		t.Fatalf("repo.ListByEmployee(ctx, %q) = %v, want: nil", "EMP003", err)
	}

	if len(requests) != 1 {
		t.Fatalf("len(requests) = %d, want: %d", len(requests), 1)
	}
	if requests[0].RequestID != "REQ003" {
		t.Errorf("requests[0].RequestID = %q, want: %q", requests[0].RequestID, "REQ003")
	}

	none, err := repo.ListByEmployee(ctx, "EMP005")
	if err != nil {
		t.Fatalf("repo.ListByEmployee(ctx, %q) = %v, want: nil", "EMP005", err)
	}
	if len(none) != 0 {
		t.Errorf("len(none) = %d, want: %d", len(none), 0)
	}
}

func TestRepository_ListByStatus(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	repo := leave.NewRepository(conn)
	ctx := context.Background()

	tests := []struct {
		status string
		want   int
	}{
		{"pending", 1},
		{"PENDING", 1},
		{"approved", 2},
		{"denied", 1},
		{"unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			t.Parallel()

			requests, err := repo.ListByStatus(ctx, tt.status)
			if err != nil {
				t.Fatalf("repo.ListByStatus(ctx, %q) = %v, want: nil", tt.status, err)
			}
			if len(requests) != tt.want {
				t.Errorf("len(requests) = %d, want: %d", len(requests), tt.want)
			}
		})
	}
}

func TestRepository_NextID(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	repo := leave.NewRepository(conn)
	ctx := context.Background()

	id, err := repo.NextID(ctx)
	if err != nil {
		t.Fatalf("repo.NextID(ctx) = %v, want: nil", err)
	}

	if id != "REQ005" {
		t.Errorf("id = %q, want: %q", id, "REQ005")
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	repo := leave.NewRepository(conn)
	ctx := context.Background()

	if err := repo.UpdateStatus(ctx, "REQ003", leave.StatusApproved, "Jane Doe"); err != nil {
		t.Fatalf("repo.UpdateStatus(...) = %v, want: nil", err)
	}

	req, err := repo.Find(ctx, "REQ003")
	if err != nil {
		t.Fatalf("repo.Find(ctx, %q) = %v, want: nil", "REQ003", err)
	}
	if req.Status != leave.StatusApproved {
		t.Errorf("req.Status = %q, want: %q", req.Status, leave.StatusApproved)
	}
	if req.ApprovedBy == nil || *req.ApprovedBy != "Jane Doe" {
		t.Errorf("req.ApprovedBy = %v, want: %q", req.ApprovedBy, "Jane Doe")
	}

	err = repo.UpdateStatus(ctx, "REQ999", leave.StatusDenied, "Jane Doe")
	if !errors.Is(err, leave.ErrNotFound) {
		t.Errorf("repo.UpdateStatus(ctx, %q, ...) = %v, want: %v", "REQ999", err, leave.ErrNotFound)
	}
}

func TestRepository_Stats(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	repo := leave.NewRepository(conn)

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("repo.Stats(ctx) = %v, want: nil", err)
	}

	want := leave.Stats{
		Employees:        5,
		TotalRequests:    4,
		PendingRequests:  1,
		ApprovedRequests: 2,
		DeniedRequests:   1,
	}
	if *stats != want {
		t.Errorf("stats = %+v, want: %+v", *stats, want)
	}
}
