package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ferdiebergado/leavekit/internal/platform/db"
)

func TestSQLTxManager_CommitsOnSuccess(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	tm := db.NewSQLTxManager(conn)
	ctx := context.Background()

	err := tm.RunInTx(ctx, func(txCtx context.Context) error {
		tx := db.TxFromContext(txCtx)
		if tx == nil {
			t.Fatal("no transaction in context")
		}
		_, err := tx.ExecContext(txCtx,
			"INSERT INTO employees (employee_id, name, department, manager, annual_leave_balance, sick_leave_balance) VALUES ($1, $2, $3, $4, $5, $6)",
			"EMP900", "Tx Test", "QA", "Jane Doe", 10, 5)
		return err
	})
	if err != nil {
		t.Fatalf("tm.RunInTx(ctx, fn) = %v, want: nil", err)
	}

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM employees WHERE employee_id = 'EMP900'").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("inserted rows = %d, want: %d", count, 1)
	}
}

func TestSQLTxManager_RollsBackOnError(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	tm := db.NewSQLTxManager(conn)
	ctx := context.Background()

	wantErr := errors.New("boom")
	err := tm.RunInTx(ctx, func(txCtx context.Context) error {
		tx := db.TxFromContext(txCtx)
		_, execErr := tx.ExecContext(txCtx,
			"INSERT INTO employees (employee_id, name, department, manager, annual_leave_balance, sick_leave_balance) VALUES ($1, $2, $3, $4, $5, $6)",
			"EMP901", "Rollback Test", "QA", "Jane Doe", 10, 5)
		if execErr != nil {
			return execErr
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("tm.RunInTx(ctx, fn) = %v, want: %v", err, wantErr)
	}

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM employees WHERE employee_id = 'EMP901'").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("rows after rollback = %d, want: %d", count, 0)
	}
}

func TestExecutorFromContext(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)

	got := db.ExecutorFromContext(context.Background(), conn)
	if got != db.Executor(conn) {
		t.Error("ExecutorFromContext(ctx, conn) did not return the fallback")
	}
}
