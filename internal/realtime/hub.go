// Package realtime fans ledger change notifications out to live views.
//
// A notification is only a trigger: every view re-reads a fresh snapshot when it
// fires, so a view that misses or merges notifications still converges.
package realtime

import (
	"log/slog"
	"sync"
	"time"

	"github.com/turma62/fundraiser/internal/core/domain"
)

// Publisher accepts change notifications from the record store.
type Publisher interface {
	Publish(event domain.ChangeEvent)
}

// Subscriber hands out per-view subscriptions.
type Subscriber interface {
	Subscribe(name string) *Subscription
}

// Hub is an in-process fan-out of change notifications. The zero value is not usable; call NewHub.
type Hub struct {
	mu     sync.Mutex
	subs   map[uint64]*Subscription
	nextID uint64
	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		subs:   make(map[uint64]*Subscription),
		logger: logger,
	}
}

var (
	_ Publisher  = (*Hub)(nil)
	_ Subscriber = (*Hub)(nil)
)

// Subscription is one view's listener. Its channel holds at most one pending
// event; further events published before it is drained are merged into it.
type Subscription struct {
	id   uint64
	name string
	ch   chan domain.ChangeEvent
	hub  *Hub
	once sync.Once
}

// Subscribe registers a new listener. name only labels log lines.
func (h *Hub) Subscribe(name string) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription{
		id:   h.nextID,
		name: name,
		ch:   make(chan domain.ChangeEvent, 1),
		hub:  h,
	}
	h.subs[sub.id] = sub
	h.logger.Debug("Live view subscribed", slog.String("view", name), slog.Int("subscribers", len(h.subs)))
	return sub
}

// Publish delivers event to every subscriber without blocking.
func (h *Hub) Publish(event domain.ChangeEvent) {
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs {
		select {
		case sub.ch <- event:
		default:
			// a trigger is already pending for this view
		}
	}
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Events is closed once the subscription is released.
func (s *Subscription) Events() <-chan domain.ChangeEvent {
	return s.ch
}

// Unsubscribe releases the listener. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		h := s.hub
		h.mu.Lock()
		delete(h.subs, s.id)
		close(s.ch)
		remaining := len(h.subs)
		h.mu.Unlock()
		h.logger.Debug("Live view unsubscribed", slog.String("view", s.name), slog.Int("subscribers", remaining))
	})
}
