package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/ferdiebergado/leavekit/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("leave repository: request not found")
	ErrQueryFailed = errors.New("leave repository: query failed")
)

const requestIDPrefix = "REQ"

type Repository struct {
	db db.Executor
}

var _ RepositoryPort = (*Repository)(nil)

func NewRepository(dbExec db.Executor) *Repository {
	return &Repository{db: dbExec}
}

//nolint:ireturn //Repositories run against either the pool or a transaction.
func (r *Repository) executor(ctx context.Context) db.Executor {
	return db.ExecutorFromContext(ctx, r.db)
}

const requestColumns = `request_id, employee_id, employee_name, start_date, end_date,
leave_type, status, reason, days_requested, submitted_date, approved_by`

const queryRequestCreate = `
INSERT INTO leave_requests (
	request_id, employee_id, employee_name, start_date, end_date,
	leave_type, status, reason, days_requested, submitted_date, approved_by
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

func (r *Repository) Create(ctx context.Context, req Request) error {
	_, err := r.executor(ctx).ExecContext(ctx, queryRequestCreate,
		req.RequestID, req.EmployeeID, req.EmployeeName, req.StartDate, req.EndDate,
		req.LeaveType, req.Status, req.Reason, req.DaysRequested, req.SubmittedDate, req.ApprovedBy)
	if err != nil {
		return fmt.Errorf("%w: create leave request %s: %v", ErrQueryFailed, req.RequestID, err)
	}
	return nil
}

const queryRequestFind = `
SELECT ` + requestColumns + `
FROM leave_requests
WHERE request_id = $1
LIMIT 1
`

func (r *Repository) Find(ctx context.Context, requestID string) (*Request, error) {
	row := r.executor(ctx).QueryRowContext(ctx, queryRequestFind, requestID)

	var req Request
	err := row.Scan(&req.RequestID, &req.EmployeeID, &req.EmployeeName, &req.StartDate, &req.EndDate,
		&req.LeaveType, &req.Status, &req.Reason, &req.DaysRequested, &req.SubmittedDate, &req.ApprovedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find leave request %s: %v", ErrQueryFailed, requestID, err)
	}
	return &req, nil
}

const queryRequestList = `
SELECT ` + requestColumns + `
FROM leave_requests
ORDER BY request_id
`

func (r *Repository) List(ctx context.Context) ([]Request, error) {
	return r.queryRequests(ctx, queryRequestList)
}

const queryRequestListByEmployee = `
SELECT ` + requestColumns + `
FROM leave_requests
WHERE employee_id = $1
ORDER BY request_id
`

func (r *Repository) ListByEmployee(ctx context.Context, employeeID string) ([]Request, error) {
	return r.queryRequests(ctx, queryRequestListByEmployee, employeeID)
}

const queryRequestListByStatus = `
SELECT ` + requestColumns + `
FROM leave_requests
WHERE LOWER(status) = LOWER($1)
ORDER BY request_id
`

func (r *Repository) ListByStatus(ctx context.Context, status string) ([]Request, error) {
	return r.queryRequests(ctx, queryRequestListByStatus, status)
}

func (r *Repository) queryRequests(ctx context.Context, query string, args ...any) ([]Request, error) {
	rows, err := r.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list leave requests: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var requests []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.RequestID, &req.EmployeeID, &req.EmployeeName, &req.StartDate, &req.EndDate,
			&req.LeaveType, &req.Status, &req.Reason, &req.DaysRequested, &req.SubmittedDate, &req.ApprovedBy); err != nil {
			return nil, fmt.Errorf("leave repository: scan row: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leave repository: iterate over request rows: %w", err)
	}

	return requests, nil
}

const queryRequestLastID = `
SELECT request_id FROM leave_requests
WHERE request_id LIKE 'REQ%'
ORDER BY request_id DESC
LIMIT 1
`

// NextID generates the next sequential REQnnn identifier.
func (r *Repository) NextID(ctx context.Context) (string, error) {
	row := r.executor(ctx).QueryRowContext(ctx, queryRequestLastID)

	var lastID string
	err := row.Scan(&lastID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Sprintf("%s%03d", requestIDPrefix, 1), nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: last request id: %v", ErrQueryFailed, err)
	}

	lastNum, err := strconv.Atoi(lastID[len(requestIDPrefix):])
	if err != nil {
		return "", fmt.Errorf("leave repository: parse request id %q: %w", lastID, err)
	}

	return fmt.Sprintf("%s%03d", requestIDPrefix, lastNum+1), nil
}

const queryRequestUpdateStatus = `
UPDATE leave_requests
SET status = $1, approved_by = $2
WHERE request_id = $3
`

func (r *Repository) UpdateStatus(ctx context.Context, requestID, status, decidedBy string) error {
	res, err := r.executor(ctx).ExecContext(ctx, queryRequestUpdateStatus, status, decidedBy, requestID)
	if err != nil {
		return fmt.Errorf("%w: update status of %s: %v", ErrQueryFailed, requestID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for %s: %v", ErrQueryFailed, requestID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

const queryStatsEmployees = "SELECT COUNT(*) FROM employees"
const queryStatsRequests = "SELECT COUNT(*) FROM leave_requests"
const queryStatsByStatus = "SELECT COUNT(*) FROM leave_requests WHERE status = $1"

func (r *Repository) Stats(ctx context.Context) (*Stats, error) {
	exec := r.executor(ctx)
	var stats Stats

	counts := []struct {
		query string
		args  []any
		dest  *int
	}{
		{queryStatsEmployees, nil, &stats.Employees},
		{queryStatsRequests, nil, &stats.TotalRequests},
		{queryStatsByStatus, []any{StatusPending}, &stats.PendingRequests},
		{queryStatsByStatus, []any{StatusApproved}, &stats.ApprovedRequests},
		{queryStatsByStatus, []any{StatusDenied}, &stats.DeniedRequests},
	}

	for _, c := range counts {
		row := exec.QueryRowContext(ctx, c.query, c.args...)
		if err := row.Scan(c.dest); err != nil {
			return nil, fmt.Errorf("%w: count rows: %v", ErrQueryFailed, err)
		}
	}

	return &stats, nil
}
