package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	repo "task-triage/internal/cache/repository"
	"task-triage/internal/model"
	"task-triage/pkg/log"
	pkgsqlite "task-triage/pkg/sqlite"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := pkgsqlite.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r, err := New(context.Background(), db, log.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func entry(hash string, at time.Time) model.CachedResponse {
	return model.CachedResponse{
		Hash: hash,
		Response: model.AnalysisResponse{Tasks: []model.TaskAnalysis{
			{Index: 1, Score: 7, Category: model.CategoryImportantNotUrgent, Reasoning: "plan", Confidence: 0.5},
		}},
		CapturedAt: at,
	}
}

func TestPutGet(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	now := time.Now()

	if _, err := r.Get(ctx, "h1"); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("Get() error = %v, want ErrNotFound", err)
	}
	if err := r.Put(ctx, entry("h1", now)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := r.Get(ctx, "h1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.CapturedAt.Equal(now) {
		t.Errorf("CapturedAt = %v, want %v", got.CapturedAt, now)
	}
	if len(got.Response.Tasks) != 1 || got.Response.Tasks[0].Score != 7 {
		t.Errorf("Response = %+v", got.Response)
	}
}

func TestPut_Overwrites(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	first := time.Now()
	later := first.Add(time.Hour)

	_ = r.Put(ctx, entry("h1", first))
	_ = r.Put(ctx, entry("h1", later))

	got, err := r.Get(ctx, "h1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !got.CapturedAt.Equal(later) {
		t.Errorf("CapturedAt = %v, want %v", got.CapturedAt, later)
	}
}

func TestDeleteBefore(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	now := time.Now()

	_ = r.Put(ctx, entry("old", now.Add(-48*time.Hour)))
	_ = r.Put(ctx, entry("new", now))

	n, err := r.DeleteBefore(ctx, now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("DeleteBefore() error = %v", err)
	}
	if n != 1 {
		t.Errorf("DeleteBefore() = %d, want 1", n)
	}
	if _, err := r.Get(ctx, "old"); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("old entry survived: %v", err)
	}
	if _, err := r.Get(ctx, "new"); err != nil {
		t.Errorf("new entry removed: %v", err)
	}
}

func TestDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	now := time.Now()
	_ = r.Put(ctx, entry("a", now))
	_ = r.Put(ctx, entry("b", now))

	if err := r.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := r.Get(ctx, "a"); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("Get(a) error = %v, want ErrNotFound", err)
	}

	if err := r.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := r.Get(ctx, "b"); !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("Get(b) error = %v, want ErrNotFound", err)
	}
}
