package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/bookmark/internal/app/control"
	"github.com/bnema/bookmark/internal/app/messaging"
	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/infrastructure/config"
	"github.com/bnema/bookmark/internal/infrastructure/notification"
	"github.com/bnema/bookmark/internal/infrastructure/realtime"
	"github.com/bnema/bookmark/internal/logging"
	"github.com/bnema/bookmark/internal/ui/mainloop"
)

const metricsShutdownTimeout = 2 * time.Second

// SessionDeps are the surfaces a live page draws on.
type SessionDeps struct {
	Presenter notification.Presenter
	Navigator port.Navigator
}

// Session is one live page: the main loop, the backend connection and the
// page-wide controllers sharing them. Every controller call goes through
// Invoke or Post so it runs on the loop.
type Session struct {
	Loop       *mainloop.Loop
	Client     *realtime.Client
	Navigation *control.NavigationController
	Notifier   *notification.Toaster

	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group

	mu      sync.Mutex
	cleanup []func(ctx context.Context)
}

// Connect dials the backend and starts the main loop, the push reader and,
// when metrics.addr is set, the metrics endpoint.
func (a *App) Connect(ctx context.Context, deps SessionDeps) (*Session, error) {
	cfg := a.Config
	ctx = logging.WithComponent(ctx, "session")
	log := logging.FromContext(ctx)

	loop := mainloop.New()

	var dedupe *messaging.Deduplicator
	if cfg.Server.DedupeWindowMs > 0 {
		dedupe = messaging.NewDeduplicator(time.Duration(cfg.Server.DedupeWindowMs)*time.Millisecond, nil)
	}

	client, err := realtime.Dial(ctx, cfg.Server.URL, realtime.Options{
		HandshakeTimeout: time.Duration(cfg.Server.HandshakeTimeoutMs) * time.Millisecond,
		Post:             loop.Post,
		Dedupe:           dedupe,
		Metrics:          a.Metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Server.URL, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(runCtx)

	s := &Session{
		Loop:       loop,
		Client:     client,
		Navigation: control.NewNavigationController(client, deps.Navigator, cfg.Search.ResultsPath),
		Notifier: notification.NewToaster(deps.Presenter,
			notification.WithPost(loop.Post),
			notification.WithDefaultDuration(cfg.Notification.DurationMs),
		),
		ctx:    gctx,
		cancel: cancel,
		group:  g,
	}

	g.Go(func() error {
		loop.Run(gctx)
		return nil
	})
	g.Go(func() error {
		return client.Run(gctx)
	})
	if cfg.Metrics.Addr != "" {
		serveMetrics(gctx, g, cfg.Metrics.Addr, a.Metrics.Handler())
	}
	a.watchConfig(gctx, s)

	if err := s.Invoke(func(ctx context.Context) { s.Navigation.Attach(ctx) }); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to attach navigation: %w", err)
	}

	log.Debug().Str("url", cfg.Server.URL).Msg("session connected")
	return s, nil
}

// watchConfig applies notification.duration_ms edits to the live session.
func (a *App) watchConfig(ctx context.Context, s *Session) {
	if a.Manager == nil {
		return
	}
	log := logging.FromContext(ctx)
	if err := a.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
		return
	}
	a.Manager.OnConfigChange(func(c *config.Config) {
		s.Notifier.SetDefaultDuration(c.Notification.DurationMs)
		log.Info().Int("duration_ms", c.Notification.DurationMs).Msg("config reloaded")
	})
}

// Ctx returns the session context. It is cancelled when the session stops.
func (s *Session) Ctx() context.Context {
	return s.ctx
}

// Invoke runs fn on the main loop and waits for it.
func (s *Session) Invoke(fn func(ctx context.Context)) error {
	return s.Loop.Invoke(s.ctx, func() { fn(s.ctx) })
}

// Post runs fn on the main loop without waiting.
func (s *Session) Post(fn func(ctx context.Context)) {
	s.Loop.Post(func() { fn(s.ctx) })
}

// Defer registers fn to run on the main loop when the session closes,
// in reverse registration order.
func (s *Session) Defer(fn func(ctx context.Context)) {
	s.mu.Lock()
	s.cleanup = append(s.cleanup, fn)
	s.mu.Unlock()
}

// Disconnected is closed once the backend connection is gone.
func (s *Session) Disconnected() <-chan struct{} {
	return s.Client.Done()
}

// Close detaches the page controllers, closes the connection and waits for
// every session goroutine.
func (s *Session) Close() error {
	s.mu.Lock()
	cleanup := s.cleanup
	s.cleanup = nil
	s.mu.Unlock()

	if err := s.Invoke(func(ctx context.Context) {
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i](ctx)
		}
		s.Navigation.Detach()
		s.Notifier.Clear(ctx)
	}); err != nil && !errors.Is(err, mainloop.ErrStopped) && !errors.Is(err, context.Canceled) {
		logging.FromContext(s.ctx).Warn().Err(err).Msg("failed to detach page controllers")
	}

	s.cancel()
	_ = s.Client.Close()

	err := s.group.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func serveMetrics(ctx context.Context, g *errgroup.Group, addr string, handler http.Handler) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		logging.FromContext(ctx).Info().Str("addr", addr).Msg("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
