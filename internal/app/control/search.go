package control

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/bookmark/internal/app/messaging"
	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/application/usecase"
	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/logging"
	"github.com/bnema/bookmark/internal/ui/mainloop"
)

const suggestionsKey = "search-suggestions"

// SearchDeps are the collaborators of a SearchController.
type SearchDeps struct {
	History    *usecase.SearchHistoryUseCase
	Cookies    *usecase.BestBookCookieUseCase
	Channel    port.Channel
	Overlay    port.Overlay
	Notifier   port.Notification
	Navigation *NavigationController

	// Suggestions is optional.
	Suggestions port.SearchSuggestions
	// Post, when set, coalesces suggestion refreshes on the main loop.
	Post func(func())
}

// SearchConfig tunes a SearchController.
type SearchConfig struct {
	DefaultError           string
	NotificationDurationMs int
}

// StateObserver is told about every state change. detail carries the
// navigation target when redirecting and the message when failing.
type StateObserver func(state entity.SearchState, detail string)

// SearchController submits queries and reconciles the pushes that answer them.
//
//	Idle -> Submitting -> Redirecting
//	           |
//	           +-> Failed -> Idle
type SearchController struct {
	deps      SearchDeps
	cfg       SearchConfig
	coalescer *mainloop.Coalescer

	mu        sync.Mutex
	state     entity.SearchState
	observers []StateObserver

	pushes messaging.Bindings
	button messaging.Binding
	keys   messaging.Binding
}

// NewSearchController creates the controller and hooks it into navigation.
func NewSearchController(deps SearchDeps, cfg SearchConfig) *SearchController {
	if cfg.DefaultError == "" {
		cfg.DefaultError = DefaultSearchError
	}
	c := &SearchController{deps: deps, cfg: cfg, state: entity.SearchIdle}
	if deps.Post != nil {
		c.coalescer = mainloop.NewCoalescer(deps.Post)
	}
	if deps.Navigation != nil {
		deps.Navigation.BeforeNavigate(c.beforeNavigate)
	}
	return c
}

// Attach subscribes to search pushes. Calling it again replaces the previous subscriptions.
func (c *SearchController) Attach(ctx context.Context) {
	c.pushes.Release()
	c.pushes.Add(c.deps.Channel.On(messaging.EventSearchError, c.onSearchError))
	c.pushes.Add(c.deps.Channel.On(messaging.EventSetBestBookCookie, c.onBestBookCookie))
	logging.FromContext(ctx).Debug().Msg("search controller attached")
}

// Mount binds the go button and the input's Enter key, replacing earlier bindings,
// and fills the suggestion list.
func (c *SearchController) Mount(ctx context.Context, button port.Control, input port.TextField) {
	submit := func(ctx context.Context) {
		if err := c.Submit(ctx, input.Value()); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("search submit failed")
		}
	}
	c.button.Rebind(button.OnActivate(submit))
	c.keys.Rebind(input.OnKey(func(ctx context.Context, key string) {
		if key == KeyEnter {
			submit(ctx)
		}
	}))
	c.refreshSuggestions(ctx)
}

// Detach releases every subscription owned by the controller.
func (c *SearchController) Detach() {
	c.pushes.Release()
	c.button.Release()
	c.keys.Release()
	if c.coalescer != nil {
		c.coalescer.Destroy()
	}
}

// Observe registers fn for state changes.
func (c *SearchController) Observe(fn StateObserver) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// State returns the current state.
func (c *SearchController) State() entity.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit records raw in the history, shows the overlay and emits the search.
// A blank query is ignored without error.
func (c *SearchController) Submit(ctx context.Context, raw string) error {
	log := logging.FromContext(ctx)

	if !c.State().CanSubmit() {
		log.Debug().Msg("page is redirecting, ignoring search")
		return nil
	}

	query, err := c.deps.History.Record(ctx, raw)
	switch {
	case errors.Is(err, entity.ErrEmptyQuery):
		log.Debug().Msg("empty search ignored")
		return nil
	case err != nil:
		log.Warn().Err(err).Str("query", query).Msg("search not saved to history")
	default:
		c.refreshSuggestions(ctx)
	}

	c.deps.Overlay.Show(ctx)
	c.setState(entity.SearchSubmitting, query)

	if err := c.deps.Channel.Emit(ctx, messaging.EventSearch, messaging.SearchRequest{Search: query}); err != nil {
		c.fail(ctx, c.cfg.DefaultError)
		return fmt.Errorf("failed to emit search: %w", err)
	}

	log.Info().Str("query", query).Msg("search submitted")
	return nil
}

// HandleKey submits raw when key is Enter.
func (c *SearchController) HandleKey(ctx context.Context, key, raw string) error {
	if key != KeyEnter {
		return nil
	}
	return c.Submit(ctx, raw)
}

func (c *SearchController) onSearchError(ctx context.Context, payload json.RawMessage) {
	msg := messaging.DecodeErrorMessage(payload, c.cfg.DefaultError)
	logging.FromContext(ctx).Warn().Str("error", msg).Msg("server reported search failure")
	c.fail(ctx, msg)
}

func (c *SearchController) onBestBookCookie(ctx context.Context, payload json.RawMessage) {
	log := logging.FromContext(ctx)

	value, err := messaging.DecodeString(payload)
	if err != nil {
		value = string(payload)
	}
	if err := c.deps.Cookies.Set(ctx, value); err != nil {
		log.Error().Err(err).Msg("failed to store best book cookie")
	}
}

func (c *SearchController) beforeNavigate(ctx context.Context, target string) {
	c.deps.Overlay.Hide(ctx)
	c.setState(entity.SearchRedirecting, target)
}

func (c *SearchController) fail(ctx context.Context, msg string) {
	c.deps.Overlay.Hide(ctx)
	c.setState(entity.SearchFailed, msg)
	c.deps.Notifier.Show(ctx, msg, port.NotificationError, c.cfg.NotificationDurationMs)
	c.setState(entity.SearchIdle, "")
}

func (c *SearchController) setState(state entity.SearchState, detail string) {
	c.mu.Lock()
	c.state = state
	observers := append([]StateObserver(nil), c.observers...)
	c.mu.Unlock()

	for _, fn := range observers {
		fn(state, detail)
	}
}

func (c *SearchController) refreshSuggestions(ctx context.Context) {
	if c.deps.Suggestions == nil {
		return
	}
	refresh := func() {
		history, err := c.deps.History.All(ctx)
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to load search suggestions")
			return
		}
		c.deps.Suggestions.SetSuggestions(ctx, history)
	}
	if c.coalescer != nil {
		c.coalescer.Post(suggestionsKey, refresh)
		return
	}
	refresh()
}
