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
)

// ErrNoRecommendation is returned by Pick for an ordinal that is not displayed.
var ErrNoRecommendation = errors.New("no such recommendation")

// RecommendationDeps are the collaborators of a RecommendationController.
type RecommendationDeps struct {
	History *usecase.SearchHistoryUseCase
	Channel port.Channel
	View    port.RecommendationView
}

// RecommendationConfig tunes a RecommendationController.
type RecommendationConfig struct {
	// CurrentBook is the title of the book shown on the page.
	CurrentBook  string
	HistoryLimit int
	LoadingText  string
	DefaultError string
}

// RecommendationController requests AI suggestions for the current book and
// turns each suggestion into a best-price search.
type RecommendationController struct {
	deps RecommendationDeps
	cfg  RecommendationConfig

	mu      sync.Mutex
	pending bool
	recs    []entity.Recommendation

	trigger messaging.Binding
	pushes  messaging.Bindings
	rows    messaging.Bindings
}

// NewRecommendationController creates the controller.
func NewRecommendationController(deps RecommendationDeps, cfg RecommendationConfig) *RecommendationController {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = entity.DefaultRecentSearches
	}
	if cfg.LoadingText == "" {
		cfg.LoadingText = LoadingRecommendations
	}
	if cfg.DefaultError == "" {
		cfg.DefaultError = DefaultRecommendationError
	}
	return &RecommendationController{deps: deps, cfg: cfg}
}

// Mount binds the trigger control and subscribes to recommendation pushes,
// replacing earlier bindings.
func (c *RecommendationController) Mount(ctx context.Context, trigger port.Control) {
	if trigger != nil {
		c.trigger.Rebind(trigger.OnActivate(func(ctx context.Context) {
			if err := c.Request(ctx); err != nil {
				logging.FromContext(ctx).Warn().Err(err).Msg("recommendation request failed")
			}
		}))
	}

	c.pushes.Release()
	c.pushes.Add(c.deps.Channel.On(messaging.EventRecommendations, c.onRecommendations))
	c.pushes.Add(c.deps.Channel.On(messaging.EventRecommendationError, c.onError))

	logging.FromContext(ctx).Debug().Str("book", c.cfg.CurrentBook).Msg("recommendations mounted")
}

// Detach releases every subscription owned by the controller.
func (c *RecommendationController) Detach() {
	c.trigger.Release()
	c.pushes.Release()
	c.rows.Release()
}

// Pending reports whether a request is waiting for its answer.
func (c *RecommendationController) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Recommendations returns the currently displayed suggestions.
func (c *RecommendationController) Recommendations() []entity.Recommendation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Recommendation(nil), c.recs...)
}

// Request sends the current book and the recent searches to the backend.
// A request made while another is outstanding is dropped.
func (c *RecommendationController) Request(ctx context.Context) error {
	log := logging.FromContext(ctx)

	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		log.Debug().Msg("recommendations already requested")
		return nil
	}
	c.pending = true
	c.recs = nil
	c.mu.Unlock()

	history, err := c.deps.History.Recent(ctx, c.cfg.HistoryLimit)
	if err != nil {
		log.Warn().Err(err).Msg("sending recommendation request without history")
		history = []string{}
	}

	c.trigger.Release()
	c.rows.Release()
	c.deps.View.HideTrigger(ctx)
	c.deps.View.ShowLoading(ctx, c.cfg.LoadingText)

	req := messaging.RecommendationRequest{CurrentBook: c.cfg.CurrentBook, History: history}
	if err := c.deps.Channel.Emit(ctx, messaging.EventGetRecommendations, req); err != nil {
		c.finish(ctx, c.cfg.DefaultError)
		return fmt.Errorf("failed to emit recommendation request: %w", err)
	}

	log.Info().Str("book", c.cfg.CurrentBook).Int("history", len(history)).Msg("recommendations requested")
	return nil
}

// Pick asks for the best price of the recommendation at the 1-based ordinal.
func (c *RecommendationController) Pick(ctx context.Context, ordinal int) error {
	c.mu.Lock()
	if ordinal < 1 || ordinal > len(c.recs) {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrNoRecommendation, ordinal)
	}
	title := c.recs[ordinal-1].Title
	c.mu.Unlock()

	if err := c.deps.Channel.Emit(ctx, messaging.EventSearch, messaging.SearchRequest{Search: title}); err != nil {
		return fmt.Errorf("failed to emit best price request: %w", err)
	}
	logging.FromContext(ctx).Info().Str("title", title).Msg("best price requested")
	return nil
}

func (c *RecommendationController) onRecommendations(ctx context.Context, payload json.RawMessage) {
	log := logging.FromContext(ctx)

	recs, err := messaging.DecodeRecommendations(payload)
	if err != nil {
		log.Warn().Err(err).Msg("malformed recommendations")
		c.finish(ctx, c.cfg.DefaultError)
		return
	}

	rows := make([]port.RecommendationRow, len(recs))
	for i, rec := range recs {
		rows[i] = port.RecommendationRow{Ordinal: i + 1, Title: rec.Title, Summary: rec.Summary}
	}

	c.mu.Lock()
	c.recs = recs
	c.pending = false
	c.mu.Unlock()

	c.rows.Release()
	controls := c.deps.View.Render(ctx, rows)
	for i, ctl := range controls {
		if ctl == nil || i >= len(rows) {
			continue
		}
		ordinal := rows[i].Ordinal
		c.rows.Add(ctl.OnActivate(func(ctx context.Context) {
			if err := c.Pick(ctx, ordinal); err != nil {
				log.Warn().Err(err).Int("ordinal", ordinal).Msg("best price request failed")
			}
		}))
	}

	log.Debug().Int("count", len(recs)).Msg("recommendations rendered")
}

func (c *RecommendationController) onError(ctx context.Context, payload json.RawMessage) {
	msg := messaging.DecodeErrorMessage(payload, c.cfg.DefaultError)
	logging.FromContext(ctx).Warn().Str("error", msg).Msg("server reported recommendation failure")
	c.finish(ctx, msg)
}

// finish shows msg in place of the loading indicator. The trigger stays hidden.
func (c *RecommendationController) finish(ctx context.Context, msg string) {
	c.mu.Lock()
	c.pending = false
	c.mu.Unlock()
	c.deps.View.ShowError(ctx, msg)
}
