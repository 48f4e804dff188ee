package port

import (
	"context"
	"encoding/json"
)

// PushHandler receives the raw payload of a server push.
// Handlers always run on the main loop, in arrival order.
type PushHandler func(ctx context.Context, payload json.RawMessage)

// Subscription is a live registration that can be released exactly once.
type Subscription interface {
	Release()
}

// SubscriptionFunc adapts a function to Subscription.
type SubscriptionFunc func()

// Release calls f.
func (f SubscriptionFunc) Release() {
	if f != nil {
		f()
	}
}

// Channel is the real-time bidirectional connection to the backend.
// Emits are fire-and-forget; a synchronous error means the message was not sent.
type Channel interface {
	// Emit sends an event with a JSON-encodable payload.
	Emit(ctx context.Context, event string, payload any) error

	// On registers a handler for a server push event.
	On(event string, handler PushHandler) Subscription
}
