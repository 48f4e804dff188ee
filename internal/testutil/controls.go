package testutil

import (
	"context"
	"sync"

	"github.com/bnema/bookmark/internal/application/port"
)

// FakeControl is a button that tests can activate.
type FakeControl struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]port.ActivateFunc
	order     []int
}

var _ port.Control = (*FakeControl)(nil)

// NewFakeControl creates a control without listeners.
func NewFakeControl() *FakeControl {
	return &FakeControl{listeners: make(map[int]port.ActivateFunc)}
}

// OnActivate registers fn.
func (c *FakeControl) OnActivate(fn port.ActivateFunc) port.Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.listeners[id] = fn
	c.order = append(c.order, id)
	return port.SubscriptionFunc(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	})
}

// Activate runs every live listener, as a click would.
func (c *FakeControl) Activate(ctx context.Context) {
	c.mu.Lock()
	var fns []port.ActivateFunc
	for _, id := range c.order {
		if fn, ok := c.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(ctx)
	}
}

// Listeners returns the number of live listeners.
func (c *FakeControl) Listeners() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.listeners)
}

// FakeToggle is a toggle control with an observable active state.
type FakeToggle struct {
	*FakeControl
	mu     sync.Mutex
	active bool
}

var _ port.ToggleControl = (*FakeToggle)(nil)

// NewFakeToggle creates an inactive toggle.
func NewFakeToggle() *FakeToggle {
	return &FakeToggle{FakeControl: NewFakeControl()}
}

// SetActive sets the visual state.
func (t *FakeToggle) SetActive(active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = active
}

// Active returns the visual state.
func (t *FakeToggle) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// FakeTextField is a search input.
type FakeTextField struct {
	mu        sync.Mutex
	value     string
	nextID    int
	listeners map[int]port.KeyFunc
}

var _ port.TextField = (*FakeTextField)(nil)

// NewFakeTextField creates an input holding value.
func NewFakeTextField(value string) *FakeTextField {
	return &FakeTextField{value: value, listeners: make(map[int]port.KeyFunc)}
}

// SetValue replaces the input text.
func (f *FakeTextField) SetValue(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = v
}

// Value returns the input text.
func (f *FakeTextField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// OnKey registers fn for key presses.
func (f *FakeTextField) OnKey(fn port.KeyFunc) port.Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := f.nextID
	f.listeners[id] = fn
	return port.SubscriptionFunc(func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	})
}

// Press delivers a key press to every listener.
func (f *FakeTextField) Press(ctx context.Context, key string) {
	f.mu.Lock()
	fns := make([]port.KeyFunc, 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(ctx, key)
	}
}
