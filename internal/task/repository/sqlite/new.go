package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"task-triage/internal/task/repository"
	"task-triage/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	local_priority TEXT,
	ai_priority TEXT
);

CREATE INDEX IF NOT EXISTS idx_tasks_created_at ON tasks(created_at);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a sqlite-backed task Repository and ensures its schema exists.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}

	r := &implRepository{db: db, l: l}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		l.Errorf(ctx, "%s: %v", r.dsn("New"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}
	return r, nil
}

// dsn returns a method-scoped prefix for log lines.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
