package messaging

import (
	"sync"

	"github.com/bnema/bookmark/internal/application/port"
)

// Binding owns at most one live subscription. Rebinding releases the previous
// one first, so re-rendering a control never stacks listeners.
type Binding struct {
	mu  sync.Mutex
	sub port.Subscription
}

// Rebind releases the current subscription and takes ownership of sub.
func (b *Binding) Rebind(sub port.Subscription) {
	b.mu.Lock()
	prev := b.sub
	b.sub = sub
	b.mu.Unlock()

	if prev != nil {
		prev.Release()
	}
}

// Release drops the current subscription, if any.
func (b *Binding) Release() {
	b.Rebind(nil)
}

// Bound reports whether a subscription is held.
func (b *Binding) Bound() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sub != nil
}

// Bindings owns a group of subscriptions released together.
type Bindings struct {
	mu   sync.Mutex
	subs []port.Subscription
}

// Add takes ownership of sub.
func (b *Bindings) Add(sub port.Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()
}

// Len returns the number of live subscriptions.
func (b *Bindings) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Release drops every owned subscription.
func (b *Bindings) Release() {
	b.mu.Lock()
	subs := b.subs
	b.subs = nil
	b.mu.Unlock()

	for _, sub := range subs {
		sub.Release()
	}
}
