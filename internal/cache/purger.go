package cache

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"task-triage/pkg/log"
)

// Purger runs Cache.PurgeExpired on a cron schedule.
type Purger struct {
	cron  *cron.Cron
	cache Cache
	l     log.Logger
}

// NewPurger registers a purge job for spec (standard cron or "@every" syntax).
func NewPurger(c Cache, l log.Logger, spec string) (*Purger, error) {
	p := &Purger{
		cron:  cron.New(),
		cache: c,
		l:     l,
	}
	if _, err := p.cron.AddFunc(spec, p.run); err != nil {
		return nil, fmt.Errorf("invalid purge schedule %q: %w", spec, err)
	}
	return p, nil
}

func (p *Purger) run() {
	ctx := context.Background()
	if _, err := p.cache.PurgeExpired(ctx); err != nil {
		p.l.Errorf(ctx, "cache.Purger: %v", err)
	}
}

// Start begins running the schedule in its own goroutine.
func (p *Purger) Start() {
	p.cron.Start()
}

// Stop halts the schedule and waits for a running purge to finish.
func (p *Purger) Stop() {
	<-p.cron.Stop().Done()
}
