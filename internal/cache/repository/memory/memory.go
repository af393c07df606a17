package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-triage/internal/cache/repository"
	"task-triage/internal/model"
)

const defaultSize = 256

// implRepository keeps cached responses in a bounded LRU. The LRU's own TTL
// only bounds memory; staleness is still decided by the cache service from
// CapturedAt.
type implRepository struct {
	entries *expirable.LRU[string, model.CachedResponse]
}

// New creates an in-memory cache Repository holding at most size entries,
// each evicted after ttl regardless of use. Zero values pick defaults.
func New(size int, ttl time.Duration) repository.Repository {
	if size <= 0 {
		size = defaultSize
	}
	return &implRepository{
		entries: expirable.NewLRU[string, model.CachedResponse](size, nil, ttl),
	}
}

func (r *implRepository) Get(_ context.Context, hash string) (model.CachedResponse, error) {
	entry, ok := r.entries.Get(hash)
	if !ok {
		return model.CachedResponse{}, repository.ErrNotFound
	}
	return entry, nil
}

func (r *implRepository) Put(_ context.Context, entry model.CachedResponse) error {
	r.entries.Add(entry.Hash, entry)
	return nil
}

func (r *implRepository) Delete(_ context.Context, hash string) error {
	r.entries.Remove(hash)
	return nil
}

func (r *implRepository) DeleteBefore(_ context.Context, cutoff time.Time) (int, error) {
	removed := 0
	for _, hash := range r.entries.Keys() {
		entry, ok := r.entries.Peek(hash)
		if ok && entry.CapturedAt.Before(cutoff) {
			r.entries.Remove(hash)
			removed++
		}
	}
	return removed, nil
}

func (r *implRepository) Clear(_ context.Context) error {
	r.entries.Purge()
	return nil
}
