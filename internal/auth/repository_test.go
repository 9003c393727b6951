package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ferdiebergado/leavekit/internal/auth"
	"github.com/ferdiebergado/leavekit/internal/platform/db"
)

func TestRepository_UpsertAndFind(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	repo := auth.NewRepository(conn)
	ctx := context.Background()

	client := auth.Client{
		ClientID:   "desktop-client",
		Name:       "Desktop Client",
		SecretHash: "hash-v1",
	}
	if err := repo.Upsert(ctx, client); err != nil {
		t.Fatalf("repo.Upsert(...) = %v, want: nil", err)
	}

	found, err := repo.Find(ctx, "desktop-client")
	if err != nil {
		t.Fatalf("repo.Find(ctx, %q) = %v, want: nil", "desktop-client", err)
	}
	if found.SecretHash != "hash-v1" {
		t.Errorf("found.SecretHash = %q, want: %q", found.SecretHash, "hash-v1")
	}

	client.SecretHash = "hash-v2"
	if err := repo.Upsert(ctx, client); err != nil {
		t.Fatalf("repo.Upsert(...) after rotation = %v, want: nil", err)
	}

	rotated, err := repo.Find(ctx, "desktop-client")
	if err != nil {
		t.Fatalf("repo.Find(ctx, %q) after rotation = %v, want: nil", "desktop-client", err)
	}
	if rotated.SecretHash != "hash-v2" {
		t.Errorf("rotated.SecretHash = %q, want: %q", rotated.SecretHash, "hash-v2")
	}
}

func TestRepository_FindUnknownClient(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	repo := auth.NewRepository(conn)

	_, err := repo.Find(context.Background(), "ghost")
	if !errors.Is(err, auth.ErrClientNotFound) {
		t.Errorf("repo.Find(ctx, %q) = %v, want: %v", "ghost", err, auth.ErrClientNotFound)
	}
}
