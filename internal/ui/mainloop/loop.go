// Package mainloop runs every controller callback on a single goroutine.
package mainloop

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned by Invoke once the loop has stopped.
var ErrStopped = errors.New("main loop stopped")

// Loop is a FIFO task queue drained by the goroutine that calls Run.
// Post may be called from any goroutine; tasks run in posting order.
type Loop struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []func()
	stopped bool
	done    chan struct{}
}

// New creates a loop. Nothing runs until Run is called.
func New() *Loop {
	l := &Loop{done: make(chan struct{})}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Post enqueues fn. Tasks posted after Stop are dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.queue = append(l.queue, fn)
	l.cond.Signal()
}

// Run drains the queue until Stop is called or ctx is done.
// Tasks already queued when Stop is called are still run.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)

	stopWatch := context.AfterFunc(ctx, l.Stop)
	defer stopWatch()

	for {
		l.mu.Lock()
		for len(l.queue) == 0 && !l.stopped {
			l.cond.Wait()
		}
		if len(l.queue) == 0 && l.stopped {
			l.mu.Unlock()
			return
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		fn()
	}
}

// Stop makes Run return once the queue is empty.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.cond.Broadcast()
	l.mu.Unlock()
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Invoke posts fn and waits for it to finish.
// Must not be called from the loop goroutine.
func (l *Loop) Invoke(ctx context.Context, fn func()) error {
	finished := make(chan struct{})

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrStopped
	}
	l.queue = append(l.queue, func() {
		defer close(finished)
		fn()
	})
	l.cond.Signal()
	l.mu.Unlock()

	select {
	case <-finished:
		return nil
	case <-l.done:
		select {
		case <-finished:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}
