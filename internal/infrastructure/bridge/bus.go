// Package bridge carries typed events between panels.
package bridge

import (
	"context"
	"sync"

	"github.com/bnema/twinview/internal/application/port"
	"github.com/bnema/twinview/internal/domain/entity"
	"github.com/bnema/twinview/internal/logging"
)

// Handler receives URL change events.
type Handler func(ctx context.Context, change entity.URLChange)

type subscription struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous publish/subscribe channel for URL changes.
// Publish runs every subscriber on the caller's goroutine, in subscription order.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
}

var _ port.URLChangePublisher = (*Bus)(nil)

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers handler and returns a func that removes it.
// Calling the returned func more than once is a no-op.
func (b *Bus) Subscribe(handler Handler) (unsubscribe func()) {
	if handler == nil {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, handler: handler})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers change to all current subscribers.
// Handlers may subscribe or unsubscribe while being called.
func (b *Bus) Publish(ctx context.Context, change entity.URLChange) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	logging.FromContext(ctx).Trace().
		Str("url", change.URL).
		Int("subscribers", len(subs)).
		Msg("bridge publish")

	for _, sub := range subs {
		sub.handler(ctx, change)
	}
}

// Len returns the number of subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
