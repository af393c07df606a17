package notify

import (
	"context"
	"testing"

	"task-triage/internal/model"
	"task-triage/pkg/log"
)

func TestBus_FanOut(t *testing.T) {
	b := NewBus(log.NewNop(), 4)
	a, cancelA := b.Subscribe()
	c, cancelC := b.Subscribe()
	defer cancelA()
	defer cancelC()

	b.Publish(context.Background(), Event{Type: EventTasksAdded, Tasks: []model.Task{{ID: "1"}}})

	for name, ch := range map[string]<-chan Event{"a": a, "c": c} {
		select {
		case e := <-ch:
			if e.Type != EventTasksAdded || len(e.Tasks) != 1 {
				t.Errorf("%s got %+v", name, e)
			}
			if e.At.IsZero() {
				t.Errorf("%s event has no timestamp", name)
			}
		default:
			t.Errorf("%s received nothing", name)
		}
	}
}

func TestBus_FullSubscriberDoesNotBlock(t *testing.T) {
	b := NewBus(log.NewNop(), 1)
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Publish(context.Background(), Event{Type: EventTasksAdded})
	b.Publish(context.Background(), Event{Type: EventProcessingError})

	if e := <-ch; e.Type != EventTasksAdded {
		t.Errorf("first event = %s, want %s", e.Type, EventTasksAdded)
	}
	select {
	case e := <-ch:
		t.Errorf("unexpected event %s", e.Type)
	default:
	}
}

func TestBus_CancelClosesChannel(t *testing.T) {
	b := NewBus(log.NewNop(), 1)
	ch, cancel := b.Subscribe()
	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Error("channel open after cancel")
	}
	b.Publish(context.Background(), Event{Type: EventTasksAdded})
}
