package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"task-triage/internal/settings/repository"
	"task-triage/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a sqlite-backed settings Repository and ensures its schema exists.
func New(ctx context.Context, db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("settings/repository/sqlite: db is required")
	}

	r := &implRepository{db: db, l: l}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		l.Errorf(ctx, "%s: %v", r.dsn("New"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}
	return r, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("settings/repository/sqlite.%s", method)
}
