package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"task-triage/internal/model"
	repo "task-triage/internal/task/repository"
)

const upsertQuery = `
	INSERT INTO tasks (id, text, created_at, local_priority, ai_priority)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		text = excluded.text,
		created_at = excluded.created_at,
		local_priority = excluded.local_priority,
		ai_priority = excluded.ai_priority`

const updateQuery = `
	UPDATE tasks SET text = ?, local_priority = ?, ai_priority = ?
	WHERE id = ?`

const selectColumns = `SELECT id, text, created_at, local_priority, ai_priority FROM tasks`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// UpsertTasks writes every task inside one transaction; on any failure nothing is committed.
func (r *implRepository) UpsertTasks(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpsertTasks"), err)
		return repo.ErrFailedToUpsert
	}
	defer tx.Rollback()

	for _, t := range tasks {
		if err := r.upsert(ctx, tx, t); err != nil {
			r.l.Errorf(ctx, "%s id=%s: %v", r.dsn("UpsertTasks"), t.ID, err)
			return repo.ErrFailedToUpsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpsertTasks"), err)
		return repo.ErrFailedToUpsert
	}
	return nil
}

// UpsertTask inserts or replaces a single task.
func (r *implRepository) UpsertTask(ctx context.Context, t model.Task) error {
	if err := r.upsert(ctx, r.db, t); err != nil {
		r.l.Errorf(ctx, "%s id=%s: %v", r.dsn("UpsertTask"), t.ID, err)
		return repo.ErrFailedToUpsert
	}
	return nil
}

// UpdateTasks rewrites existing rows only. IDs deleted before the
// transaction starts are skipped rather than re-inserted.
func (r *implRepository) UpdateTasks(ctx context.Context, tasks []model.Task) ([]model.Task, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpdateTasks"), err)
		return nil, repo.ErrFailedToUpsert
	}
	defer tx.Rollback()

	written := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		ok, err := r.update(ctx, tx, t)
		if err != nil {
			r.l.Errorf(ctx, "%s id=%s: %v", r.dsn("UpdateTasks"), t.ID, err)
			return nil, repo.ErrFailedToUpsert
		}
		if ok {
			written = append(written, t)
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpdateTasks"), err)
		return nil, repo.ErrFailedToUpsert
	}
	return written, nil
}

func (r *implRepository) update(ctx context.Context, ex execer, t model.Task) (bool, error) {
	local, err := marshalNullable(t.LocalPriority)
	if err != nil {
		return false, fmt.Errorf("marshal local priority: %w", err)
	}
	ai, err := marshalNullable(t.AIPriority)
	if err != nil {
		return false, fmt.Errorf("marshal ai priority: %w", err)
	}

	res, err := ex.ExecContext(ctx, updateQuery, t.Text, local, ai, t.ID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *implRepository) upsert(ctx context.Context, ex execer, t model.Task) error {
	local, err := marshalNullable(t.LocalPriority)
	if err != nil {
		return fmt.Errorf("marshal local priority: %w", err)
	}
	ai, err := marshalNullable(t.AIPriority)
	if err != nil {
		return fmt.Errorf("marshal ai priority: %w", err)
	}

	_, err = ex.ExecContext(ctx, upsertQuery, t.ID, t.Text, t.CreatedAt.UnixNano(), local, ai)
	return err
}

// GetTask fetches one task by ID.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s id=%s: %v", r.dsn("GetTask"), id, err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns all tasks, newest first.
func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// DeleteTask removes one task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s id=%s: %v", r.dsn("DeleteTask"), id, err)
		return repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	if n == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ClearTasks removes every task.
func (r *implRepository) ClearTasks(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ClearTasks"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t         model.Task
		createdAt int64
		local, ai sql.NullString
	)
	if err := s.Scan(&t.ID, &t.Text, &createdAt, &local, &ai); err != nil {
		return model.Task{}, err
	}
	t.CreatedAt = time.Unix(0, createdAt)

	if local.Valid {
		var lp model.LocalPriority
		if err := json.Unmarshal([]byte(local.String), &lp); err != nil {
			return model.Task{}, fmt.Errorf("unmarshal local priority: %w", err)
		}
		t.LocalPriority = &lp
	}
	if ai.Valid {
		var ap model.AIPriority
		if err := json.Unmarshal([]byte(ai.String), &ap); err != nil {
			return model.Task{}, fmt.Errorf("unmarshal ai priority: %w", err)
		}
		t.AIPriority = &ap
	}
	return t, nil
}

func marshalNullable[T any](v *T) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}
