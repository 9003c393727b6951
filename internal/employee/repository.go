package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/ferdiebergado/leavekit/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("employee repository: employee not found")
	ErrQueryFailed = errors.New("employee repository: query failed")
)

const employeeIDPrefix = "EMP"

type Repository struct {
	db db.Executor
}

var _ RepositoryPort = (*Repository)(nil)

func NewRepository(dbExec db.Executor) *Repository {
	return &Repository{db: dbExec}
}

// executor returns the open transaction when one is carried by the context,
// otherwise the pool.
//
//nolint:ireturn //Repositories run against either the pool or a transaction.
func (r *Repository) executor(ctx context.Context) db.Executor {
	return db.ExecutorFromContext(ctx, r.db)
}

const queryEmployeeCreate = `
INSERT INTO employees (employee_id, name, department, manager, annual_leave_balance, sick_leave_balance)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (r *Repository) Create(ctx context.Context, emp Employee) error {
	_, err := r.executor(ctx).ExecContext(ctx, queryEmployeeCreate,
		emp.EmployeeID, emp.Name, emp.Department, emp.Manager, emp.AnnualLeaveBalance, emp.SickLeaveBalance)
	if err != nil {
		return fmt.Errorf("%w: create employee %s: %v", ErrQueryFailed, emp.EmployeeID, err)
	}
	return nil
}

const queryEmployeeFind = `
SELECT employee_id, name, department, manager, annual_leave_balance, sick_leave_balance
FROM employees
WHERE employee_id = $1
LIMIT 1
`

func (r *Repository) Find(ctx context.Context, employeeID string) (*Employee, error) {
	row := r.executor(ctx).QueryRowContext(ctx, queryEmployeeFind, employeeID)
	return scanEmployee(row, employeeID)
}

const queryEmployeeFindByName = `
SELECT employee_id, name, department, manager, annual_leave_balance, sick_leave_balance
FROM employees
WHERE LOWER(name) = LOWER($1)
LIMIT 1
`

func (r *Repository) FindByName(ctx context.Context, name string) (*Employee, error) {
	row := r.executor(ctx).QueryRowContext(ctx, queryEmployeeFindByName, name)
	return scanEmployee(row, name)
}

func scanEmployee(row *sql.Row, key string) (*Employee, error) {
	var emp Employee
	err := row.Scan(&emp.EmployeeID, &emp.Name, &emp.Department, &emp.Manager,
		&emp.AnnualLeaveBalance, &emp.SickLeaveBalance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find employee %s: %v", ErrQueryFailed, key, err)
	}
	return &emp, nil
}

const queryEmployeeList = `
SELECT employee_id, name, department, manager, annual_leave_balance, sick_leave_balance
FROM employees
ORDER BY employee_id
`

func (r *Repository) List(ctx context.Context) ([]Employee, error) {
	rows, err := r.executor(ctx).QueryContext(ctx, queryEmployeeList)
	if err != nil {
		return nil, fmt.Errorf("%w: list employees: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	//nolint:prealloc //Cannot identify the length of the rows without running another query.
	var employees []Employee
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.EmployeeID, &emp.Name, &emp.Department, &emp.Manager,
			&emp.AnnualLeaveBalance, &emp.SickLeaveBalance); err != nil {
			return nil, fmt.Errorf("employee repository: scan row: %w", err)
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("employee repository: iterate over employee rows: %w", err)
	}

	return employees, nil
}

const queryEmployeeLastID = `
SELECT employee_id FROM employees
WHERE employee_id LIKE 'EMP%'
ORDER BY employee_id DESC
LIMIT 1
`

// NextID generates the next sequential EMPnnn identifier.
func (r *Repository) NextID(ctx context.Context) (string, error) {
	row := r.executor(ctx).QueryRowContext(ctx, queryEmployeeLastID)

	var lastID string
	err := row.Scan(&lastID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Sprintf("%s%03d", employeeIDPrefix, 1), nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: last employee id: %v", ErrQueryFailed, err)
	}

	lastNum, err := strconv.Atoi(lastID[len(employeeIDPrefix):])
	if err != nil {
		return "", fmt.Errorf("employee repository: parse employee id %q: %w", lastID, err)
	}

	return fmt.Sprintf("%s%03d", employeeIDPrefix, lastNum+1), nil
}

const queryEmployeeSetBalances = `
UPDATE employees
SET annual_leave_balance = $1, sick_leave_balance = $2
WHERE employee_id = $3
`

func (r *Repository) SetBalances(ctx context.Context, employeeID string, annual, sick int) error {
	res, err := r.executor(ctx).ExecContext(ctx, queryEmployeeSetBalances, annual, sick, employeeID)
	if err != nil {
		return fmt.Errorf("%w: set balances for %s: %v", ErrQueryFailed, employeeID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected for %s: %v", ErrQueryFailed, employeeID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
