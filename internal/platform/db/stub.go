package db

import (
	"context"
	"errors"
)

// StubTxManager runs the function without a real transaction. Tests use it
// to exercise service logic that is wrapped in RunInTx.
type StubTxManager struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ TxManager = (*StubTxManager)(nil)

func (tm *StubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if tm.RunInTxFunc != nil {
		return tm.RunInTxFunc(ctx, fn)
	}
	if fn == nil {
		return errors.New("RunInTx() called with nil fn")
	}
	return fn(ctx)
}
