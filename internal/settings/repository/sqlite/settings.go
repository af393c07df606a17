package sqlite

import (
	"context"

	"task-triage/internal/model"
	repo "task-triage/internal/settings/repository"
)

const (
	keyProvider = "provider"
	keyAPIKey   = "api_key"
)

func (r *implRepository) Get(ctx context.Context) (model.Settings, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, value FROM settings WHERE key IN (?, ?)`, keyProvider, keyAPIKey)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return model.Settings{}, repo.ErrFailedToGet
	}
	defer rows.Close()

	var s model.Settings
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("Get"), err)
			return model.Settings{}, repo.ErrFailedToGet
		}
		switch k {
		case keyProvider:
			s.Provider = model.Provider(v)
		case keyAPIKey:
			s.APIKey = v
		}
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("Get"), err)
		return model.Settings{}, repo.ErrFailedToGet
	}

	if s.Provider == "" || s.APIKey == "" {
		return model.Settings{}, repo.ErrNotFound
	}
	return s, nil
}

func (r *implRepository) Save(ctx context.Context, s model.Settings) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("Save"), err)
		return repo.ErrFailedToSave
	}
	defer tx.Rollback()

	for k, v := range map[string]string{keyProvider: string(s.Provider), keyAPIKey: s.APIKey} {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, v)
		if err != nil {
			r.l.Errorf(ctx, "%s key=%s: %v", r.dsn("Save"), k, err)
			return repo.ErrFailedToSave
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("Save"), err)
		return repo.ErrFailedToSave
	}
	return nil
}

func (r *implRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key IN (?, ?)`, keyProvider, keyAPIKey); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Clear"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
