package db

import (
	"context"
	"fmt"
	"log/slog"
)

// The DDL sticks to TEXT and INTEGER columns so the same statements run on
// both sqlite and Postgres. Dates are stored as ISO-8601 strings.
const schemaEmployees = `
CREATE TABLE IF NOT EXISTS employees (
	employee_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	department TEXT NOT NULL,
	manager TEXT NOT NULL,
	annual_leave_balance INTEGER NOT NULL,
	sick_leave_balance INTEGER NOT NULL
)
`

const schemaLeaveRequests = `
CREATE TABLE IF NOT EXISTS leave_requests (
	request_id TEXT PRIMARY KEY,
	employee_id TEXT NOT NULL,
	employee_name TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	leave_type TEXT NOT NULL,
	status TEXT NOT NULL,
	reason TEXT NOT NULL,
	days_requested INTEGER NOT NULL,
	submitted_date TEXT NOT NULL,
	approved_by TEXT,
	FOREIGN KEY (employee_id) REFERENCES employees (employee_id)
)
`

const schemaAPIClients = `
CREATE TABLE IF NOT EXISTS api_clients (
	client_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	secret_hash TEXT NOT NULL
)
`

const queryInsertEmployee = `
INSERT INTO employees (employee_id, name, department, manager, annual_leave_balance, sick_leave_balance)
VALUES ($1, $2, $3, $4, $5, $6)
`

const queryInsertLeaveRequest = `
INSERT INTO leave_requests (
	request_id, employee_id, employee_name, start_date, end_date,
	leave_type, status, reason, days_requested, submitted_date, approved_by
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

type sampleEmployee struct {
	id, name, department, manager string
	annual, sick                  int
}

type sampleRequest struct {
	id, employeeID, employeeName          string
	startDate, endDate, leaveType, status string
	reason                                string
	days                                  int
	submittedDate                         string
	approvedBy                            *string
}

func strPtr(s string) *string { return &s }

var sampleEmployees = []sampleEmployee{
	{"EMP001", "John Smith", "Engineering", "Jane Doe", 25, 10},
	{"EMP002", "Alice Johnson", "Marketing", "Bob Wilson", 20, 10},
	{"EMP003", "Bob Wilson", "Marketing", "Jane Doe", 25, 10},
	{"EMP004", "Sarah Davis", "HR", "Jane Doe", 22, 11},
	{"EMP005", "Nick Chen", "Engineering", "John Smith", 18, 10},
}

var sampleRequests = []sampleRequest{
	{"REQ001", "EMP001", "John Smith", "2024-07-01", "2024-07-05", "annual", "approved", "Family vacation", 5, "2024-06-15", strPtr("Jane Doe")},
	{"REQ002", "EMP002", "Alice Johnson", "2024-07-10", "2024-07-12", "sick", "approved", "Doctor appointment", 3, "2024-07-09", strPtr("Bob Wilson")},
	{"REQ003", "EMP003", "Bob Wilson", "2024-08-01", "2024-08-03", "annual", "pending", "Trip vacation", 3, "2024-07-20", nil},
	{"REQ004", "EMP004", "Sarah Davis", "2024-07-15", "2024-07-16", "personal", "denied", "Personal matters", 2, "2024-07-10", strPtr("Jane Doe")},
}

// Migrate creates the tables if they do not exist and, when the employees
// table is empty, seeds the sample dataset so a fresh install has data to
// explore.
func Migrate(ctx context.Context, exec Executor) error {
	slog.Info("Running migrations...")

	for _, ddl := range []string{schemaEmployees, schemaLeaveRequests, schemaAPIClients} {
		if _, err := exec.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	var count int
	row := exec.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees")
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("count employees: %w", err)
	}

	if count > 0 {
		return nil
	}

	slog.Info("Seeding sample data...")
	for _, emp := range sampleEmployees {
		_, err := exec.ExecContext(ctx, queryInsertEmployee,
			emp.id, emp.name, emp.department, emp.manager, emp.annual, emp.sick)
		if err != nil {
			return fmt.Errorf("seed employee %s: %w", emp.id, err)
		}
	}

	for _, req := range sampleRequests {
		_, err := exec.ExecContext(ctx, queryInsertLeaveRequest,
			req.id, req.employeeID, req.employeeName, req.startDate, req.endDate,
			req.leaveType, req.status, req.reason, req.days, req.submittedDate, req.approvedBy)
		if err != nil {
			return fmt.Errorf("seed leave request %s: %w", req.id, err)
		}
	}

	return nil
}
