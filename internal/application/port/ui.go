package port

import (
	"context"

	"github.com/bnema/bookmark/internal/domain/entity"
)

// ActivateFunc runs when the user activates a control.
type ActivateFunc func(ctx context.Context)

// Control is an activatable UI element such as a button.
type Control interface {
	// OnActivate registers fn for activation. Each call adds a listener;
	// callers must release the previous subscription to avoid accumulation.
	OnActivate(fn ActivateFunc) Subscription
}

// ToggleControl is a control with a visible on/off state.
type ToggleControl interface {
	Control
	SetActive(active bool)
}

// KeyFunc receives the name of a pressed key, e.g. "Enter".
type KeyFunc func(ctx context.Context, key string)

// TextField is the search query input.
type TextField interface {
	Value() string
	OnKey(fn KeyFunc) Subscription
}

// Overlay is the blocking loading screen shown while a search runs.
type Overlay interface {
	Show(ctx context.Context)
	Hide(ctx context.Context)
}

// Navigator leaves the current page.
type Navigator interface {
	Navigate(ctx context.Context, url string) error
}

// SearchSuggestions displays past queries as input suggestions.
type SearchSuggestions interface {
	SetSuggestions(ctx context.Context, history []string)
}

// RecommendationRow is one rendered recommendation.
type RecommendationRow struct {
	Ordinal int // 1-based
	Title   string
	Summary string
}

// RecommendationView is the recommendation panel of a book page.
type RecommendationView interface {
	HideTrigger(ctx context.Context)
	ShowLoading(ctx context.Context, text string)
	// Render replaces the panel content and returns one action control per row.
	Render(ctx context.Context, rows []RecommendationRow) []Control
	ShowError(ctx context.Context, message string)
}

// WishlistView is the saved-books page.
type WishlistView interface {
	// Render replaces the page content and returns one remove control per book.
	Render(ctx context.Context, books []entity.Book) []Control
	ShowEmpty(ctx context.Context, message string)
}
