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

// WishlistController drives the save toggle of a book page.
type WishlistController struct {
	uc         *usecase.ManageWishlistUseCase
	notifier   port.Notification
	book       *entity.Book
	durationMs int

	toggle  port.ToggleControl
	binding messaging.Binding
}

// NewWishlistController creates the controller for book. A nil book means
// the page has no extractable book and nothing is rendered.
func NewWishlistController(uc *usecase.ManageWishlistUseCase, notifier port.Notification, book *entity.Book, durationMs int) *WishlistController {
	return &WishlistController{uc: uc, notifier: notifier, book: book, durationMs: durationMs}
}

// Book returns the page's book, or nil.
func (c *WishlistController) Book() *entity.Book {
	return c.book
}

// Render shows the saved state on toggle and binds it. Rendering again
// replaces the previous binding.
func (c *WishlistController) Render(ctx context.Context, toggle port.ToggleControl) error {
	log := logging.FromContext(ctx)

	if c.book == nil || toggle == nil {
		c.binding.Release()
		log.Debug().Msg("no book on page, wishlist toggle not rendered")
		return nil
	}

	saved, err := c.uc.IsSaved(ctx, c.book.ISBN)
	if err != nil {
		return fmt.Errorf("failed to render wishlist toggle: %w", err)
	}

	c.toggle = toggle
	toggle.SetActive(saved)
	c.binding.Rebind(toggle.OnActivate(func(ctx context.Context) {
		if _, err := c.Toggle(ctx); err != nil {
			log.Warn().Err(err).Msg("wishlist toggle failed")
		}
	}))
	return nil
}

// Toggle saves or removes the page's book and reports the outcome to the user.
// On failure the control keeps its previous state.
func (c *WishlistController) Toggle(ctx context.Context) (entity.ToggleResult, error) {
	if c.book == nil {
		return entity.ToggleResult{}, entity.ErrInvalidBook
	}
	ctx = logging.WithISBN(ctx, c.book.ISBN)

	result, err := c.uc.Toggle(ctx, *c.book)
	if err != nil {
		c.notifier.Show(ctx, MsgWishlistUpdateFailed, port.NotificationError, c.durationMs)
		return entity.ToggleResult{}, err
	}

	if c.toggle != nil {
		c.toggle.SetActive(result.Added)
	}
	if result.Added {
		c.notifier.Show(ctx, MsgAddedToWishlist, port.NotificationSuccess, c.durationMs)
	} else {
		c.notifier.Show(ctx, MsgRemovedFromWishlist, port.NotificationInfo, c.durationMs)
	}
	return result, nil
}

// Release drops the toggle binding.
func (c *WishlistController) Release() {
	c.binding.Release()
}
