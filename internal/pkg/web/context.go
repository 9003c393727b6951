package web

import (
	"context"
	"fmt"
)

type ctxKey int

const (
	paramsCtxKey ctxKey = iota
	clientCtxKey
)

//nolint:ireturn //This function needs to return a context.
func NewContextWithParams(baseCtx context.Context, params any) context.Context {
	return context.WithValue(baseCtx, paramsCtxKey, params)
}

//nolint:ireturn //This is a generic function.
func ParamsFromContext[T any](ctx context.Context) (T, error) {
	val := ctx.Value(paramsCtxKey)
	params, ok := val.(T)
	if !ok {
		var t T
		return t, fmt.Errorf("params: %v is not a %T", val, t)
	}
	return params, nil
}

// NewContextWithClient stores the authenticated API client ID in the context.
func NewContextWithClient(baseCtx context.Context, clientID string) context.Context {
	return context.WithValue(baseCtx, clientCtxKey, clientID)
}

// ClientFromContext retrieves the authenticated API client ID.
func ClientFromContext(ctx context.Context) (string, error) {
	clientID, ok := ctx.Value(clientCtxKey).(string)
	if !ok {
		return "", fmt.Errorf("client: no client id in context")
	}
	return clientID, nil
}
