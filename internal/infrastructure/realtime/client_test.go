package realtime_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bookmark/internal/app/messaging"
	"github.com/bnema/bookmark/internal/infrastructure/metrics"
	"github.com/bnema/bookmark/internal/infrastructure/realtime"
	"github.com/bnema/bookmark/internal/logging"
)

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: "json", Output: io.Discard})
	return logging.WithContext(context.Background(), logger)
}

// newServer starts a websocket server and hands each accepted connection to conns.
func newServer(t *testing.T) (string, <-chan *websocket.Conn) {
	t.Helper()
	conns := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns <- conn
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http"), conns
}

func accept(t *testing.T, conns <-chan *websocket.Conn) *websocket.Conn {
	t.Helper()
	select {
	case conn := <-conns:
		t.Cleanup(func() { _ = conn.Close() })
		return conn
	case <-time.After(2 * time.Second):
		t.Fatal("server did not accept a connection")
		return nil
	}
}

func push(t *testing.T, conn *websocket.Conn, event, data string) {
	t.Helper()
	msg := `{"event":"` + event + `","data":` + data + `}`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
}

type received struct {
	mu     sync.Mutex
	events []string
	ch     chan struct{}
}

func newReceived() *received {
	return &received{ch: make(chan struct{}, 16)}
}

func (r *received) add(s string) {
	r.mu.Lock()
	r.events = append(r.events, s)
	r.mu.Unlock()
	r.ch <- struct{}{}
}

func (r *received) wait(t *testing.T, n int) []string {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-r.ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for push %d", i+1)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func TestClient_EmitWritesEnvelope(t *testing.T) {
	ctx := testContext()
	url, conns := newServer(t)

	client, err := realtime.Dial(ctx, url, realtime.Options{Metrics: metrics.New()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	server := accept(t, conns)

	require.NoError(t, client.Emit(ctx, messaging.EventSearch, messaging.SearchRequest{Search: "calculus"}))

	_, raw, err := server.ReadMessage()
	require.NoError(t, err)
	env, err := messaging.ParseEnvelope(raw)
	require.NoError(t, err)
	assert.Equal(t, messaging.EventSearch, env.Event)
	assert.JSONEq(t, `{"search":"calculus"}`, string(env.Data))
}

func TestClient_PushesArriveInOrder(t *testing.T) {
	ctx := testContext()
	url, conns := newServer(t)

	client, err := realtime.Dial(ctx, url, realtime.Options{})
	require.NoError(t, err)
	server := accept(t, conns)

	got := newReceived()
	client.On(messaging.EventSearchError, func(_ context.Context, payload json.RawMessage) {
		got.add("error:" + string(payload))
	})
	client.On(messaging.EventRedirect, func(_ context.Context, payload json.RawMessage) {
		got.add("redirect:" + string(payload))
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() { _ = client.Run(runCtx) }()

	push(t, server, messaging.EventSearchError, `"nope"`)
	push(t, server, messaging.EventRedirect, `"/book/1"`)

	assert.Equal(t, []string{`error:"nope"`, `redirect:"/book/1"`}, got.wait(t, 2))
}

func TestClient_PushesArePostedAndDeduplicated(t *testing.T) {
	ctx := testContext()
	url, conns := newServer(t)

	var mu sync.Mutex
	posted := 0
	client, err := realtime.Dial(ctx, url, realtime.Options{
		Dedupe: messaging.NewDeduplicator(time.Minute, nil),
		Post: func(fn func()) {
			mu.Lock()
			posted++
			mu.Unlock()
			fn()
		},
	})
	require.NoError(t, err)
	server := accept(t, conns)

	got := newReceived()
	client.On(messaging.EventSetBestBookCookie, func(_ context.Context, payload json.RawMessage) {
		got.add(string(payload))
	})

	go func() { _ = client.Run(ctx) }()
	t.Cleanup(func() { _ = client.Close() })

	push(t, server, messaging.EventSetBestBookCookie, `"a"`)
	push(t, server, messaging.EventSetBestBookCookie, `"a"`)
	push(t, server, messaging.EventSetBestBookCookie, `"b"`)

	assert.Equal(t, []string{`"a"`, `"b"`}, got.wait(t, 2))
	mu.Lock()
	assert.Equal(t, 2, posted)
	mu.Unlock()
}

func TestClient_ReleasedHandlerIsNotCalled(t *testing.T) {
	ctx := testContext()
	url, conns := newServer(t)

	client, err := realtime.Dial(ctx, url, realtime.Options{})
	require.NoError(t, err)
	server := accept(t, conns)

	got := newReceived()
	sub := client.On(messaging.EventRedirect, func(context.Context, json.RawMessage) { got.add("old") })
	sub.Release()
	sub.Release()
	client.On(messaging.EventRedirect, func(context.Context, json.RawMessage) { got.add("new") })

	go func() { _ = client.Run(ctx) }()
	t.Cleanup(func() { _ = client.Close() })

	push(t, server, messaging.EventRedirect, `"/x"`)
	assert.Equal(t, []string{"new"}, got.wait(t, 1))
}

func TestClient_MalformedFrameIsSkipped(t *testing.T) {
	ctx := testContext()
	url, conns := newServer(t)

	client, err := realtime.Dial(ctx, url, realtime.Options{})
	require.NoError(t, err)
	server := accept(t, conns)

	got := newReceived()
	client.On(messaging.EventRedirect, func(_ context.Context, payload json.RawMessage) { got.add(string(payload)) })

	go func() { _ = client.Run(ctx) }()
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, server.WriteMessage(websocket.TextMessage, []byte("not json")))
	push(t, server, messaging.EventRedirect, `"/ok"`)
	assert.Equal(t, []string{`"/ok"`}, got.wait(t, 1))
}

func TestClient_EmitAfterCloseFails(t *testing.T) {
	ctx := testContext()
	url, conns := newServer(t)

	client, err := realtime.Dial(ctx, url, realtime.Options{})
	require.NoError(t, err)
	accept(t, conns)

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	err = client.Emit(ctx, messaging.EventSearch, messaging.SearchRequest{Search: "x"})
	require.Error(t, err)

	var emitErr *realtime.ErrEmit
	require.True(t, errors.As(err, &emitErr))
	assert.Equal(t, messaging.EventSearch, emitErr.Event)
	assert.ErrorIs(t, err, realtime.ErrClosed)
}

func TestClient_RunReturnsWhenContextCancelled(t *testing.T) {
	ctx := testContext()
	url, conns := newServer(t)

	client, err := realtime.Dial(ctx, url, realtime.Options{})
	require.NoError(t, err)
	accept(t, conns)

	runCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- client.Run(runCtx) }()
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	<-client.Done()
}

func TestDial_UnreachableServer(t *testing.T) {
	_, err := realtime.Dial(testContext(), "ws://127.0.0.1:1/ws", realtime.Options{HandshakeTimeout: 200 * time.Millisecond})
	assert.Error(t, err)
}
