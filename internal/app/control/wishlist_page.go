package control

import (
	"context"
	"fmt"

	"github.com/bnema/bookmark/internal/app/messaging"
	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/application/usecase"
	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/logging"
)

// WishlistPageController renders the saved-books page with a remove action per book.
type WishlistPageController struct {
	uc         *usecase.ManageWishlistUseCase
	view       port.WishlistView
	notifier   port.Notification
	durationMs int

	rows messaging.Bindings
}

// NewWishlistPageController creates the controller.
func NewWishlistPageController(uc *usecase.ManageWishlistUseCase, view port.WishlistView, notifier port.Notification, durationMs int) *WishlistPageController {
	return &WishlistPageController{uc: uc, view: view, notifier: notifier, durationMs: durationMs}
}

// Render lists the wishlist, replacing any previous rendering.
func (c *WishlistPageController) Render(ctx context.Context) error {
	log := logging.FromContext(ctx)

	books, err := c.uc.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to render wishlist: %w", err)
	}

	c.rows.Release()
	if len(books) == 0 {
		c.view.ShowEmpty(ctx, MsgEmptyWishlist)
		return nil
	}

	controls := c.view.Render(ctx, books)
	for i, ctl := range controls {
		if ctl == nil || i >= len(books) {
			continue
		}
		book := books[i]
		c.rows.Add(ctl.OnActivate(func(ctx context.Context) {
			if err := c.Remove(ctx, book); err != nil {
				log.Warn().Err(err).Str("isbn", book.ISBN).Msg("wishlist remove failed")
			}
		}))
	}

	log.Debug().Int("count", len(books)).Msg("wishlist rendered")
	return nil
}

// Remove drops book and renders the page again.
func (c *WishlistPageController) Remove(ctx context.Context, book entity.Book) error {
	if _, err := c.uc.Remove(ctx, book.ISBN); err != nil {
		c.notifier.Show(ctx, MsgWishlistUpdateFailed, port.NotificationError, c.durationMs)
		return err
	}
	c.notifier.Show(ctx, fmt.Sprintf("Removed %q from wishlist ❌", book.Title), port.NotificationInfo, c.durationMs)
	return c.Render(ctx)
}

// Release drops the row bindings.
func (c *WishlistPageController) Release() {
	c.rows.Release()
}
