package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/leavekit/internal/platform/db"
)

var (
	ErrClientNotFound = errors.New("auth repository: client not found")
	ErrQueryFailed    = errors.New("auth repository: query failed")
)

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

const queryClientFind = `
SELECT client_id, name, secret_hash
FROM api_clients
WHERE client_id = $1
LIMIT 1
`

func (r *Repository) Find(ctx context.Context, clientID string) (*Client, error) {
	row := r.executor(ctx).QueryRowContext(ctx, queryClientFind, clientID)

	var client Client
	if err := row.Scan(&client.ClientID, &client.Name, &client.SecretHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("%w: find client %s: %v", ErrQueryFailed, clientID, err)
	}
	return &client, nil
}

const queryClientUpsert = `
INSERT INTO api_clients (client_id, name, secret_hash)
VALUES ($1, $2, $3)
ON CONFLICT (client_id) DO UPDATE SET name = excluded.name, secret_hash = excluded.secret_hash
`

// Upsert registers a client or rotates the secret of an existing one.
func (r *Repository) Upsert(ctx context.Context, client Client) error {
	_, err := r.executor(ctx).ExecContext(ctx, queryClientUpsert,
		client.ClientID, client.Name, client.SecretHash)
	if err != nil {
		return fmt.Errorf("%w: upsert client %s: %v", ErrQueryFailed, client.ClientID, err)
	}
	return nil
}
