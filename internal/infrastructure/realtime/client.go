// Package realtime provides the websocket implementation of port.Channel.
package realtime

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bnema/bookmark/internal/app/messaging"
	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/infrastructure/metrics"
	"github.com/bnema/bookmark/internal/logging"
)

// ErrClosed is returned by Emit after Close.
var ErrClosed = errors.New("realtime channel closed")

// DefaultHandshakeTimeout bounds the websocket upgrade.
const DefaultHandshakeTimeout = 10 * time.Second

// ErrEmit reports an event that could not be sent.
type ErrEmit struct {
	Event string
	Err   error
}

func (e *ErrEmit) Error() string {
	return fmt.Sprintf("failed to emit %s: %v", e.Event, e.Err)
}

func (e *ErrEmit) Unwrap() error {
	return e.Err
}

// Options tunes a Client.
type Options struct {
	HandshakeTimeout time.Duration
	Header           http.Header
	// Post delivers push handlers on the main loop. Nil runs them on the read goroutine.
	Post func(func())
	// Dedupe drops redelivered pushes. Nil keeps every push.
	Dedupe  *messaging.Deduplicator
	Metrics *metrics.Metrics
}

type subscriber struct {
	id      uint64
	handler port.PushHandler
}

// Client is a websocket connection speaking {"event","data"} text frames.
type Client struct {
	conn *websocket.Conn
	opts Options

	writeMu sync.Mutex

	mu       sync.Mutex
	nextID   uint64
	handlers map[string][]subscriber
	closed   bool

	done chan struct{}
}

var _ port.Channel = (*Client)(nil)

// Dial opens a websocket connection to rawURL.
func Dial(ctx context.Context, rawURL string, opts Options) (*Client, error) {
	log := logging.FromContext(ctx)

	timeout := opts.HandshakeTimeout
	if timeout <= 0 {
		timeout = DefaultHandshakeTimeout
	}
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: timeout,
	}

	conn, resp, err := dialer.DialContext(ctx, rawURL, opts.Header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		opts.Metrics.IncTransportError("dial")
		return nil, fmt.Errorf("failed to connect to %s: %w", rawURL, err)
	}

	log.Info().Str("url", logging.TruncateURL(rawURL, 120)).Msg("realtime channel connected")
	return NewClient(conn, opts), nil
}

// NewClient wraps an established connection.
func NewClient(conn *websocket.Conn, opts Options) *Client {
	return &Client{
		conn:     conn,
		opts:     opts,
		handlers: make(map[string][]subscriber),
		done:     make(chan struct{}),
	}
}

// Emit sends one event. The payload is JSON-encoded into the data field.
func (c *Client) Emit(ctx context.Context, event string, payload any) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		c.opts.Metrics.IncTransportError("emit")
		return &ErrEmit{Event: event, Err: ErrClosed}
	}

	env, err := messaging.NewEnvelope(event, payload)
	if err != nil {
		c.opts.Metrics.IncTransportError("encode")
		return &ErrEmit{Event: event, Err: err}
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	deadline, _ := ctx.Deadline()
	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		c.opts.Metrics.IncTransportError("emit")
		return &ErrEmit{Event: event, Err: err}
	}
	if err := c.conn.WriteJSON(env); err != nil {
		c.opts.Metrics.IncTransportError("emit")
		return &ErrEmit{Event: event, Err: err}
	}

	c.opts.Metrics.IncEmit(event)
	logging.FromContext(ctx).Debug().Str("event", event).Int("bytes", len(env.Data)).Msg("emitted")
	return nil
}

// On registers handler for pushes of event. Handlers of one event run in
// registration order.
func (c *Client) On(event string, handler port.PushHandler) port.Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.handlers[event] = append(c.handlers[event], subscriber{id: id, handler: handler})

	var once sync.Once
	return port.SubscriptionFunc(func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			subs := c.handlers[event]
			for i, s := range subs {
				if s.id == id {
					c.handlers[event] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
		})
	})
}

// Run reads pushes until the connection closes or ctx is done. Pushes are
// dispatched in arrival order.
func (c *Client) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	defer close(c.done)

	stop := context.AfterFunc(ctx, func() { _ = c.Close() })
	defer stop()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if c.isClosed() || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Msg("realtime channel closed")
				return nil
			}
			c.opts.Metrics.IncTransportError("read")
			return fmt.Errorf("failed to read from realtime channel: %w", err)
		}

		env, err := messaging.ParseEnvelope(raw)
		if err != nil {
			c.opts.Metrics.IncTransportError("decode")
			log.Warn().Err(err).Msg("dropping malformed push")
			continue
		}
		if c.opts.Dedupe.IsDuplicate(env.Event, env.Data) {
			log.Debug().Str("event", env.Event).Msg("dropping redelivered push")
			continue
		}

		c.opts.Metrics.IncPush(env.Event)
		c.dispatch(ctx, env)
	}
}

// Done is closed when Run returns.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Close sends a close frame and shuts the connection. It is safe to call twice.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.writeMu.Lock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	c.writeMu.Unlock()

	return c.conn.Close()
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Client) dispatch(ctx context.Context, env messaging.Envelope) {
	deliver := func() {
		c.mu.Lock()
		subs := append([]subscriber(nil), c.handlers[env.Event]...)
		c.mu.Unlock()

		if len(subs) == 0 {
			logging.FromContext(ctx).Debug().Str("event", env.Event).Msg("push without handler")
			return
		}
		for _, s := range subs {
			s.handler(ctx, env.Data)
		}
	}
	if c.opts.Post != nil {
		c.opts.Post(deliver)
		return
	}
	deliver()
}
