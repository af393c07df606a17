package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"slices"
	"strings"
	"time"

	"task-triage/internal/cache/repository"
	"task-triage/internal/model"
	"task-triage/pkg/log"
)

// Options tunes a Cache. Zero values pick defaults.
type Options struct {
	Expiry time.Duration
	Now    func() time.Time
}

type implCache struct {
	repo   repository.Repository
	l      log.Logger
	expiry time.Duration
	now    func() time.Time
}

// New creates a Cache on top of repo.
func New(repo repository.Repository, l log.Logger, opts Options) Cache {
	if opts.Expiry <= 0 {
		opts.Expiry = DefaultExpiry
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &implCache{
		repo:   repo,
		l:      l,
		expiry: opts.Expiry,
		now:    opts.Now,
	}
}

// ComputeKey derives the batch key from task texts only. Input order and
// task IDs do not affect the result.
func ComputeKey(tasks []model.Task) string {
	texts := make([]string, len(tasks))
	for i, t := range tasks {
		texts[i] = t.Text
	}
	slices.Sort(texts)

	sum := sha256.Sum256([]byte(strings.Join(texts, keySeparator)))
	return hex.EncodeToString(sum[:])
}

func (c *implCache) Get(ctx context.Context, tasks []model.Task) (model.AnalysisResponse, bool) {
	key := ComputeKey(tasks)

	entry, err := c.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			c.l.Warnf(ctx, "cache.Get: read %s: %v", key, err)
		}
		return model.AnalysisResponse{}, false
	}

	if c.isStale(entry.CapturedAt) {
		if err := c.repo.Delete(ctx, key); err != nil {
			c.l.Warnf(ctx, "cache.Get: delete stale %s: %v", key, err)
		}
		return model.AnalysisResponse{}, false
	}

	c.l.Debugf(ctx, "cache.Get: hit %s", key)
	return entry.Response, true
}

func (c *implCache) Put(ctx context.Context, tasks []model.Task, resp model.AnalysisResponse) error {
	entry := model.CachedResponse{
		Hash:       ComputeKey(tasks),
		Response:   resp,
		CapturedAt: c.now(),
	}
	if err := c.repo.Put(ctx, entry); err != nil {
		c.l.Warnf(ctx, "cache.Put: %s: %v", entry.Hash, err)
		return err
	}
	return nil
}

func (c *implCache) PurgeExpired(ctx context.Context) (int, error) {
	n, err := c.repo.DeleteBefore(ctx, c.now().Add(-c.expiry))
	if err != nil {
		c.l.Warnf(ctx, "cache.PurgeExpired: %v", err)
		return 0, err
	}
	if n > 0 {
		c.l.Infof(ctx, "cache.PurgeExpired: removed %d stale entries", n)
	}
	return n, nil
}

func (c *implCache) Clear(ctx context.Context) error {
	if err := c.repo.Clear(ctx); err != nil {
		c.l.Warnf(ctx, "cache.Clear: %v", err)
		return err
	}
	return nil
}

func (c *implCache) isStale(capturedAt time.Time) bool {
	return c.now().Sub(capturedAt) > c.expiry
}
