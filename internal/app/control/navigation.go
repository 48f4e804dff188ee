package control

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bnema/bookmark/internal/app/messaging"
	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/logging"
)

// NavigateHook runs right before the page navigates to target.
type NavigateHook func(ctx context.Context, target string)

// NavigationController is the single owner of the redirect and search_done
// subscriptions of a page. A redirect is honored whichever controller issued
// the request that caused it.
type NavigationController struct {
	channel     port.Channel
	navigator   port.Navigator
	resultsPath string

	mu       sync.Mutex
	hooks    []NavigateHook
	bindings messaging.Bindings
}

// NewNavigationController creates the controller. An empty resultsPath
// falls back to messaging.DefaultResultsPath.
func NewNavigationController(channel port.Channel, navigator port.Navigator, resultsPath string) *NavigationController {
	if resultsPath == "" {
		resultsPath = messaging.DefaultResultsPath
	}
	return &NavigationController{
		channel:     channel,
		navigator:   navigator,
		resultsPath: resultsPath,
	}
}

// BeforeNavigate registers hook. Hooks run in registration order.
func (c *NavigationController) BeforeNavigate(hook NavigateHook) {
	if hook == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, hook)
}

// Attach subscribes to redirect pushes. Calling it again replaces the
// previous subscriptions.
func (c *NavigationController) Attach(ctx context.Context) {
	log := logging.FromContext(ctx)

	c.bindings.Release()
	c.bindings.Add(c.channel.On(messaging.EventRedirect, c.onRedirect))
	c.bindings.Add(c.channel.On(messaging.EventSearchDone, c.onSearchDone))

	log.Debug().Str("results_path", c.resultsPath).Msg("navigation attached")
}

// Detach releases the push subscriptions.
func (c *NavigationController) Detach() {
	c.bindings.Release()
}

// Navigate runs the before-navigate hooks, then leaves the page.
func (c *NavigationController) Navigate(ctx context.Context, target string) error {
	log := logging.FromContext(ctx)

	c.mu.Lock()
	hooks := append([]NavigateHook(nil), c.hooks...)
	c.mu.Unlock()

	for _, hook := range hooks {
		hook(ctx, target)
	}

	if err := c.navigator.Navigate(ctx, target); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", target, err)
	}

	log.Info().Str("url", logging.TruncateURL(target, 120)).Msg("navigated")
	return nil
}

func (c *NavigationController) onRedirect(ctx context.Context, payload json.RawMessage) {
	log := logging.FromContext(ctx)

	target, err := messaging.DecodeRedirect(payload)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring malformed redirect")
		return
	}
	if err := c.Navigate(ctx, target); err != nil {
		log.Error().Err(err).Msg("redirect failed")
	}
}

func (c *NavigationController) onSearchDone(ctx context.Context, payload json.RawMessage) {
	log := logging.FromContext(ctx)

	target := messaging.DecodeSearchDone(payload, c.resultsPath)
	if err := c.Navigate(ctx, target); err != nil {
		log.Error().Err(err).Msg("search_done navigation failed")
	}
}
