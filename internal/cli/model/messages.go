// Package model holds the Bubble Tea models and the adapters that let the
// page controllers draw into them.
package model

import (
	"github.com/bnema/bookmark/internal/application/port"
	"github.com/bnema/bookmark/internal/domain/entity"
)

// OverlayMsg shows or hides the loading overlay.
type OverlayMsg struct {
	Visible bool
}

// ToastMsg displays a notification.
type ToastMsg struct {
	ID   port.NotificationID
	Text string
	Type port.NotificationType
}

// ToastExpiredMsg removes a notification.
type ToastExpiredMsg struct {
	ID port.NotificationID
}

// PanelLoadingMsg puts the recommendation panel in its loading state.
type PanelLoadingMsg struct {
	Text string
}

// PanelRowsMsg replaces the recommendation panel content.
type PanelRowsMsg struct {
	Rows []port.RecommendationRow
}

// PanelErrorMsg replaces the recommendation panel content with an error.
type PanelErrorMsg struct {
	Message string
}

// WishlistMsg replaces the wishlist page content.
// Empty carries the empty-state text when Books is empty.
type WishlistMsg struct {
	Books []entity.Book
	Empty string
}

// DoneMsg ends a progress program with a navigation target or an error.
type DoneMsg struct {
	Target string
	Err    error
}
