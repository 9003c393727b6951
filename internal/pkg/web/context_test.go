package web_test

import (
	"context"
	"testing"

	"github.com/ferdiebergado/leavekit/internal/pkg/web"
)

type params struct {
	Name string
}

func TestParamsFromContext(t *testing.T) {
	t.Parallel()

	ctx := web.NewContextWithParams(context.Background(), params{Name: "alice"})

	got, err := web.ParamsFromContext[params](ctx)
	if err != nil {
		t.Fatalf("web.ParamsFromContext(ctx) = %v, want: nil", err)
	}

	if got.Name != "alice" {
		t.Errorf("got.Name = %q, want: %q", got.Name, "alice")
	}
}

func TestParamsFromContext_WrongType(t *testing.T) {
	t.Parallel()

	ctx := web.NewContextWithParams(context.Background(), "not a struct")

	if _, err := web.ParamsFromContext[params](ctx); err == nil {
		t.Error("web.ParamsFromContext(ctx) = nil, want: error")
	}
}

func TestClientFromContext(t *testing.T) {
	t.Parallel()

	ctx := web.NewContextWithClient(context.Background(), "client-1")

	got, err := web.ClientFromContext(ctx)
	if err != nil {
		t.Fatalf("web.ClientFromContext(ctx) = %v, want: nil", err)
	}

	if got != "client-1" {
		t.Errorf("got = %q, want: %q", got, "client-1")
	}

	if _, err := web.ClientFromContext(context.Background()); err == nil {
		t.Error("web.ClientFromContext(empty ctx) = nil, want: error")
	}
}
