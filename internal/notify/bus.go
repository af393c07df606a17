package notify

import (
	"context"
	"sync"
	"time"

	"task-triage/pkg/log"
)

const defaultBuffer = 32

// Bus fans events out to subscribers. Slow subscribers drop events rather
// than stall the publisher.
type Bus struct {
	l      log.Logger
	buffer int

	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

// NewBus creates a Bus whose subscriber channels hold buffer events.
func NewBus(l log.Logger, buffer int) *Bus {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Bus{
		l:      l,
		buffer: buffer,
		subs:   make(map[int]chan Event),
	}
}

// Subscribe returns a channel of future events and a cancel func that
// unsubscribes and closes the channel.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, b.buffer)
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers e to every subscriber that has room for it.
func (b *Bus) Publish(ctx context.Context, e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- e:
		default:
			b.l.Warnf(ctx, "notify.Bus: subscriber %d full, dropped %s", id, e.Type)
		}
	}
}
