package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"task-triage/internal/cache/repository"
	"task-triage/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS cached_responses (
	hash TEXT PRIMARY KEY,
	response TEXT NOT NULL,
	captured_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cached_responses_captured_at ON cached_responses(captured_at);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a sqlite-backed cache Repository and ensures its schema exists.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("cache/repository/sqlite: db is required")
	}

	r := &implRepository{db: db, l: l}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		l.Errorf(ctx, "%s: %v", r.dsn("New"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}
	return r, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("cache/repository/sqlite.%s", method)
}
