package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	repo "task-triage/internal/cache/repository"
	"task-triage/internal/model"
)

func (r *implRepository) Get(ctx context.Context, hash string) (model.CachedResponse, error) {
	var (
		raw        string
		capturedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT response, captured_at FROM cached_responses WHERE hash = ?`, hash,
	).Scan(&raw, &capturedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CachedResponse{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s hash=%s: %v", r.dsn("Get"), hash, err)
		return model.CachedResponse{}, repo.ErrFailedToGet
	}

	entry := model.CachedResponse{Hash: hash, CapturedAt: time.Unix(0, capturedAt)}
	if err := json.Unmarshal([]byte(raw), &entry.Response); err != nil {
		r.l.Errorf(ctx, "%s decode hash=%s: %v", r.dsn("Get"), hash, err)
		return model.CachedResponse{}, repo.ErrFailedToGet
	}
	return entry, nil
}

func (r *implRepository) Put(ctx context.Context, entry model.CachedResponse) error {
	raw, err := json.Marshal(entry.Response)
	if err != nil {
		r.l.Errorf(ctx, "%s encode hash=%s: %v", r.dsn("Put"), entry.Hash, err)
		return repo.ErrFailedToPut
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO cached_responses (hash, response, captured_at)
		VALUES (?, ?, ?)
		ON CONFLICT(hash) DO UPDATE SET
			response = excluded.response,
			captured_at = excluded.captured_at`,
		entry.Hash, string(raw), entry.CapturedAt.UnixNano(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s hash=%s: %v", r.dsn("Put"), entry.Hash, err)
		return repo.ErrFailedToPut
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, hash string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cached_responses WHERE hash = ?`, hash); err != nil {
		r.l.Errorf(ctx, "%s hash=%s: %v", r.dsn("Delete"), hash, err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cached_responses WHERE captured_at < ?`, cutoff.UnixNano())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteBefore"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteBefore"), err)
		return 0, repo.ErrFailedToDelete
	}
	return int(n), nil
}

func (r *implRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cached_responses`); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Clear"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
