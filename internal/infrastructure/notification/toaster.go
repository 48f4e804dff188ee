// Package notification implements port.Notification with self-dismissing toasts.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/logging"
)

// Presenter draws and removes toasts on the actual surface.
type Presenter interface {
	Present(ctx context.Context, id port.NotificationID, message string, notifType port.NotificationType)
	Remove(ctx context.Context, id port.NotificationID)
}

// AfterFunc schedules fn after d and returns a stop function.
type AfterFunc func(d time.Duration, fn func()) (stop func() bool)

func realAfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

type toast struct {
	message string
	kind    port.NotificationType
	stop    func() bool
}

// Toaster keeps every shown toast until its own timer fires or it is dismissed.
// Toasts are independent: showing a new one never shortens another.
type Toaster struct {
	presenter  Presenter
	afterFunc  AfterFunc
	post       func(func())
	defaultDur time.Duration

	mu     sync.Mutex
	toasts map[port.NotificationID]*toast
	order  []port.NotificationID
}

var _ port.Notification = (*Toaster)(nil)

// Option configures a Toaster.
type Option func(*Toaster)

// WithAfterFunc replaces time.AfterFunc, mainly for tests.
func WithAfterFunc(fn AfterFunc) Option {
	return func(t *Toaster) {
		if fn != nil {
			t.afterFunc = fn
		}
	}
}

// WithPost routes timer expiry through post, usually (*mainloop.Loop).Post.
func WithPost(post func(func())) Option {
	return func(t *Toaster) {
		t.post = post
	}
}

// WithDefaultDuration sets the duration used when Show gets 0.
func WithDefaultDuration(ms int) Option {
	return func(t *Toaster) {
		if ms > 0 {
			t.defaultDur = time.Duration(ms) * time.Millisecond
		}
	}
}

// NewToaster creates a toaster drawing on presenter.
func NewToaster(presenter Presenter, opts ...Option) *Toaster {
	t := &Toaster{
		presenter:  presenter,
		afterFunc:  realAfterFunc,
		defaultDur: port.DefaultNotificationDurationMs * time.Millisecond,
		toasts:     make(map[port.NotificationID]*toast),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetDefaultDuration changes the duration used by later Show calls with 0.
// Visible toasts keep their timers.
func (t *Toaster) SetDefaultDuration(ms int) {
	if ms <= 0 {
		return
	}
	t.mu.Lock()
	t.defaultDur = time.Duration(ms) * time.Millisecond
	t.mu.Unlock()
}

// Show presents message and schedules its removal.
func (t *Toaster) Show(ctx context.Context, message string, notifType port.NotificationType, durationMs int) port.NotificationID {
	log := logging.FromContext(ctx)

	t.mu.Lock()
	dur := t.defaultDur
	t.mu.Unlock()
	if durationMs > 0 {
		dur = time.Duration(durationMs) * time.Millisecond
	}
	id := port.NotificationID(uuid.NewString())

	t.mu.Lock()
	entry := &toast{message: message, kind: notifType}
	t.toasts[id] = entry
	t.order = append(t.order, id)
	t.mu.Unlock()

	t.presenter.Present(ctx, id, message, notifType)

	expire := func() { t.remove(ctx, id, "expired") }
	stop := t.afterFunc(dur, func() {
		if t.post != nil {
			t.post(expire)
			return
		}
		expire()
	})

	t.mu.Lock()
	if cur, ok := t.toasts[id]; ok {
		cur.stop = stop
	}
	t.mu.Unlock()

	log.Debug().
		Str("toast_id", string(id)).
		Str("toast_message", message).
		Str("toast_level", notifType.String()).
		Dur("duration", dur).
		Msg("toast shown")
	return id
}

// Dismiss removes the toast early. Unknown ids are ignored.
func (t *Toaster) Dismiss(ctx context.Context, id port.NotificationID) {
	t.remove(ctx, id, "dismissed")
}

// Clear removes every visible toast.
func (t *Toaster) Clear(ctx context.Context) {
	for _, id := range t.Visible() {
		t.remove(ctx, id, "cleared")
	}
}

// Visible returns the ids of the toasts on screen, oldest first.
func (t *Toaster) Visible() []port.NotificationID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]port.NotificationID(nil), t.order...)
}

func (t *Toaster) remove(ctx context.Context, id port.NotificationID, reason string) {
	t.mu.Lock()
	entry, ok := t.toasts[id]
	if !ok {
		t.mu.Unlock()
		return
	}
	delete(t.toasts, id)
	for i, cur := range t.order {
		if cur == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	t.mu.Unlock()

	if entry.stop != nil {
		entry.stop()
	}
	t.presenter.Remove(ctx, id)
	logging.FromContext(ctx).Debug().Str("toast_id", string(id)).Msg("toast " + reason)
}
