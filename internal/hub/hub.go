// Package hub fans dashboard change events out to any number of subscribers.
package hub

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atikulmunna/agribot/internal/model"
)

// DefaultBuffer is the per-subscriber channel size.
const DefaultBuffer = 256

// Subscription is one consumer's view of the event stream.
type Subscription struct {
	ID     string
	Events <-chan model.Event

	ch chan model.Event
}

// Hub implements model.Publisher. Publish never blocks: a subscriber whose
// buffer is full misses the event and the drop is counted.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscription
	closed      bool
	buffer      int
	dropped     atomic.Int64
	published   atomic.Int64
	logger      *zap.Logger
}

// Option configures a Hub.
type Option func(*Hub)

// WithBuffer sets the per-subscriber buffer size.
func WithBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.buffer = n
		}
	}
}

// WithLogger sets the logger used to report slow consumers.
func WithLogger(l *zap.Logger) Option {
	return func(h *Hub) {
		if l != nil {
			h.logger = l
		}
	}
}

// New creates an empty Hub.
func New(opts ...Option) *Hub {
	h := &Hub{
		subscribers: make(map[string]*Subscription),
		buffer:      DefaultBuffer,
		logger:      zap.NewNop(),
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// Subscribe registers a new consumer. Subscribing to a closed hub returns a
// subscription whose channel is already closed.
func (h *Hub) Subscribe() *Subscription {
	ch := make(chan model.Event, h.buffer)
	sub := &Subscription{ID: uuid.NewString(), Events: ch, ch: ch}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return sub
	}
	h.subscribers[sub.ID] = sub
	return sub
}

// Unsubscribe removes and closes a subscription. Unknown ids are ignored.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if sub, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(sub.ch)
	}
}

// Publish delivers ev to every subscriber without blocking.
func (h *Hub) Publish(ev model.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	h.published.Add(1)

	for id, sub := range h.subscribers {
		select {
		case sub.ch <- ev:
		default:
			total := h.dropped.Add(1)
			h.logger.Debug("dropped event for slow consumer",
				zap.String("subscriber", id),
				zap.String("kind", string(ev.Kind)),
				zap.Int64("total_dropped", total))
		}
	}
}

// Start closes the hub once ctx is cancelled. It blocks until then.
func (h *Hub) Start(ctx context.Context) {
	<-ctx.Done()
	h.Close()
}

// Close closes every subscriber channel. Later publishes are ignored.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subscribers {
		close(sub.ch)
		delete(h.subscribers, id)
	}
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Dropped returns the total number of deliveries skipped for slow consumers.
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

// Published returns the number of events accepted by Publish.
func (h *Hub) Published() int64 {
	return h.published.Load()
}
