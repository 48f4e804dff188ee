// Package testutil provides in-memory fakes of the UI and transport ports.
package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/bnema/bookmark/internal/application/port"
)

// Emitted is one recorded Emit call.
type Emitted struct {
	Event   string
	Payload json.RawMessage
}

type handlerEntry struct {
	id      int
	handler port.PushHandler
}

// FakeChannel records emits and lets tests deliver pushes synchronously.
type FakeChannel struct {
	mu       sync.Mutex
	nextID   int
	handlers map[string][]handlerEntry
	emitted  []Emitted
	// EmitErr, when set, is returned by every Emit and nothing is recorded.
	EmitErr error
	// OnEmit, when set, runs after an emit is recorded, e.g. to assert ordering.
	OnEmit func(Emitted)
}

var _ port.Channel = (*FakeChannel)(nil)

// NewFakeChannel creates an empty channel.
func NewFakeChannel() *FakeChannel {
	return &FakeChannel{handlers: make(map[string][]handlerEntry)}
}

// Emit records the event with its JSON-encoded payload.
func (c *FakeChannel) Emit(_ context.Context, event string, payload any) error {
	if c.EmitErr != nil {
		return c.EmitErr
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	e := Emitted{Event: event, Payload: data}

	c.mu.Lock()
	c.emitted = append(c.emitted, e)
	hook := c.OnEmit
	c.mu.Unlock()

	if hook != nil {
		hook(e)
	}
	return nil
}

// On registers handler for event.
func (c *FakeChannel) On(event string, handler port.PushHandler) port.Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.handlers[event] = append(c.handlers[event], handlerEntry{id: id, handler: handler})

	return port.SubscriptionFunc(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		entries := c.handlers[event]
		for i, e := range entries {
			if e.id == id {
				c.handlers[event] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	})
}

// Push delivers a raw JSON payload to every handler of event, in registration order.
func (c *FakeChannel) Push(ctx context.Context, event, rawJSON string) {
	c.mu.Lock()
	entries := append([]handlerEntry(nil), c.handlers[event]...)
	c.mu.Unlock()

	for _, e := range entries {
		e.handler(ctx, json.RawMessage(rawJSON))
	}
}

// Handlers returns how many handlers are registered for event.
func (c *FakeChannel) Handlers(event string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handlers[event])
}

// Emitted returns a copy of the recorded emits.
func (c *FakeChannel) Emitted() []Emitted {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Emitted(nil), c.emitted...)
}

// EmittedEvent returns the recorded emits for a single event name.
func (c *FakeChannel) EmittedEvent(event string) []Emitted {
	var out []Emitted
	for _, e := range c.Emitted() {
		if e.Event == event {
			out = append(out, e)
		}
	}
	return out
}
