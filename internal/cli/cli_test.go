package cli

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bookmark/internal/app/control"
	"github.com/bnema/bookmark/internal/app/messaging"
	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/infrastructure/config"
	"github.com/bnema/bookmark/internal/infrastructure/page"
	"github.com/bnema/bookmark/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bookmark/internal/logging"
)

const bookHTML = `<!doctype html>
<html><body>
  <div class="bookInfo">
    <h2>Calculus: Early Transcendentals - 9781285741550</h2>
    <p>Condition: Used</p>
  </div>
  <img class="textbook-image" src="/covers/9781285741550.jpg">
  <div class="priceElement">
    <p>$42.50</p>
    <a href="https://store.example/buy/9781285741550">Buy</a>
  </div>
</body></html>`

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: "json", Output: io.Discard})
	return logging.WithContext(context.Background(), logger)
}

func testApp(t *testing.T, serverURL string) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Database.Path = sqlite.MemoryPath
	if serverURL != "" {
		cfg.Server.URL = serverURL
	}
	a := NewAppWith(testContext(), cfg)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestApp_UseCasesShareOneStore(t *testing.T) {
	a := testApp(t, "")
	ctx := a.Ctx()

	uc, err := a.UseCases()
	require.NoError(t, err)
	again, err := a.UseCases()
	require.NoError(t, err)
	assert.Same(t, uc, again)

	_, err = uc.History.Record(ctx, "  calculus ")
	require.NoError(t, err)
	_, err = uc.Wishlist.Toggle(ctx, entity.Book{Title: "Calculus", ISBN: "111"})
	require.NoError(t, err)
	require.NoError(t, uc.Cookie.Set(ctx, "Calculus (3rd ed)"))

	history, err := uc.History.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"calculus"}, history)

	saved, err := uc.Wishlist.IsSaved(ctx, "111")
	require.NoError(t, err)
	assert.True(t, saved)

	value, ok, err := uc.Cookie.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Calculus (3rd ed)", value)
}

func TestApp_LoadBookFromFile(t *testing.T) {
	a := testApp(t, "")
	path := filepath.Join(t.TempDir(), "book.html")
	require.NoError(t, os.WriteFile(path, []byte(bookHTML), 0o600))

	book, err := a.LoadBook(a.Ctx(), path, "https://books.example/book/42")
	require.NoError(t, err)

	assert.Equal(t, "Calculus: Early Transcendentals", book.Title)
	assert.Equal(t, "9781285741550", book.ISBN)
	assert.Equal(t, "42.50", book.Price)
	assert.Equal(t, "https://books.example/covers/9781285741550.jpg", book.Image)
	assert.Equal(t, entity.NotAvailable, book.Medium)
}

func TestApp_LoadBookRejectsOtherPages(t *testing.T) {
	a := testApp(t, "")
	path := filepath.Join(t.TempDir(), "results.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html><body><h1>Results</h1></body></html>`), 0o600))

	_, err := a.LoadBook(a.Ctx(), path, "")
	assert.ErrorIs(t, err, page.ErrNotBookPage)

	_, err = a.LoadBook(a.Ctx(), filepath.Join(t.TempDir(), "missing.html"), "")
	assert.Error(t, err)
}

func TestApp_LoadBookFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, bookHTML)
	}))
	t.Cleanup(srv.Close)

	a := testApp(t, "")
	book, err := a.LoadBook(a.Ctx(), srv.URL+"/book/42", "")
	require.NoError(t, err)

	assert.Equal(t, "9781285741550", book.ISBN)
	assert.Equal(t, srv.URL+"/covers/9781285741550.jpg", book.Image)
}

type recordingNavigator struct {
	targets chan string
}

func (n *recordingNavigator) Navigate(_ context.Context, target string) error {
	n.targets <- target
	return nil
}

type nopPresenter struct{}

func (nopPresenter) Present(context.Context, port.NotificationID, string, port.NotificationType) {}
func (nopPresenter) Remove(context.Context, port.NotificationID) {}

type nopOverlay struct{}

func (nopOverlay) Show(context.Context) {}
func (nopOverlay) Hide(context.Context) {}

// flagOverlay is only touched on the main loop.
type flagOverlay struct {
	shown bool
}

func (o *flagOverlay) Show(context.Context) { o.shown = true }
func (o *flagOverlay) Hide(context.Context) { o.shown = false }

// searchBackend answers the first search with a cookie and a redirect.
func searchBackend(t *testing.T, searches chan<- messaging.SearchRequest) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var env messaging.Envelope
		if err := conn.ReadJSON(&env); err != nil {
			return
		}
		var req messaging.SearchRequest
		_ = json.Unmarshal(env.Data, &req)
		searches <- req

		_ = conn.WriteJSON(map[string]any{"event": messaging.EventSetBestBookCookie, "data": "Calculus (3rd ed)"})
		_ = conn.WriteJSON(map[string]any{"event": messaging.EventRedirect, "data": "/book/42"})

		// Hold the connection until the client closes it.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

// failingBackend answers every search with the same search_error text.
func failingBackend(t *testing.T, message string) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			var env messaging.Envelope
			if err := conn.ReadJSON(&env); err != nil {
				return
			}
			if env.Event != messaging.EventSearch {
				continue
			}
			if err := conn.WriteJSON(map[string]any{"event": messaging.EventSearchError, "data": message}); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestSession_RepeatedIdenticalSearchErrorsEachReturnToIdle(t *testing.T) {
	a := testApp(t, failingBackend(t, "No offers found"))
	uc, err := a.UseCases()
	require.NoError(t, err)

	s, err := a.Connect(a.Ctx(), SessionDeps{Presenter: nopPresenter{}, Navigator: &recordingNavigator{targets: make(chan string, 1)}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	overlay := &flagOverlay{}
	ctl := control.NewSearchController(control.SearchDeps{
		History:    uc.History,
		Cookies:    uc.Cookie,
		Channel:    s.Client,
		Overlay:    overlay,
		Notifier:   s.Notifier,
		Navigation: s.Navigation,
		Post:       s.Loop.Post,
	}, control.SearchConfig{})
	s.Defer(func(context.Context) { ctl.Detach() })

	failures := make(chan string, 2)
	require.NoError(t, s.Invoke(func(ctx context.Context) {
		ctl.Attach(ctx)
		ctl.Observe(func(state entity.SearchState, detail string) {
			if state == entity.SearchFailed {
				failures <- detail
			}
		})
	}))

	for attempt := 1; attempt <= 2; attempt++ {
		var submitErr error
		require.NoError(t, s.Invoke(func(ctx context.Context) { submitErr = ctl.Submit(ctx, "orgo") }))
		require.NoError(t, submitErr)

		select {
		case detail := <-failures:
			assert.Equal(t, "No offers found", detail)
		case <-time.After(2 * time.Second):
			t.Fatalf("attempt %d: search_error was not delivered", attempt)
		}

		var state entity.SearchState
		var shown bool
		require.NoError(t, s.Invoke(func(context.Context) {
			state = ctl.State()
			shown = overlay.shown
		}))
		assert.Equal(t, entity.SearchIdle, state, "attempt %d", attempt)
		assert.False(t, shown, "attempt %d", attempt)
	}
}

func TestSession_SearchRedirects(t *testing.T) {
	searches := make(chan messaging.SearchRequest, 1)
	a := testApp(t, searchBackend(t, searches))
	uc, err := a.UseCases()
	require.NoError(t, err)

	nav := &recordingNavigator{targets: make(chan string, 1)}
	s, err := a.Connect(a.Ctx(), SessionDeps{Presenter: nopPresenter{}, Navigator: nav})
	require.NoError(t, err)

	ctl := control.NewSearchController(control.SearchDeps{
		History:    uc.History,
		Cookies:    uc.Cookie,
		Channel:    s.Client,
		Overlay:    nopOverlay{},
		Notifier:   s.Notifier,
		Navigation: s.Navigation,
		Post:       s.Loop.Post,
	}, control.SearchConfig{})
	s.Defer(func(context.Context) { ctl.Detach() })

	var submitErr error
	require.NoError(t, s.Invoke(func(ctx context.Context) {
		ctl.Attach(ctx)
		submitErr = ctl.Submit(ctx, " calculus ")
	}))
	require.NoError(t, submitErr)

	select {
	case req := <-searches:
		assert.Equal(t, "calculus", req.Search)
	case <-time.After(2 * time.Second):
		t.Fatal("backend did not receive the search")
	}

	select {
	case target := <-nav.targets:
		assert.Equal(t, "/book/42", target)
	case <-time.After(2 * time.Second):
		t.Fatal("session did not navigate")
	}

	var state entity.SearchState
	require.NoError(t, s.Invoke(func(context.Context) { state = ctl.State() }))
	assert.Equal(t, entity.SearchRedirecting, state)

	value, ok, err := uc.Cookie.Get(a.Ctx())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Calculus (3rd ed)", value)

	require.NoError(t, s.Close())
	select {
	case <-s.Disconnected():
	default:
		t.Fatal("connection still open after Close")
	}
}

func TestConnect_UnreachableServer(t *testing.T) {
	a := testApp(t, "ws://127.0.0.1:1/ws")
	a.Config.Server.HandshakeTimeoutMs = 200

	_, err := a.Connect(a.Ctx(), SessionDeps{Presenter: nopPresenter{}, Navigator: &recordingNavigator{}})

	require.Error(t, err)
	assert.False(t, errors.Is(err, context.Canceled))
}
