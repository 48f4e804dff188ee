// Package control holds the page controllers. Every method is expected to run
// on the main loop; push handlers and control activations are delivered there.
package control

// User-facing texts.
const (
	MsgAddedToWishlist         = "Added to wishlist ⭐"
	MsgRemovedFromWishlist     = "Removed from wishlist ❌"
	MsgWishlistUpdateFailed    = "Could not update your wishlist."
	MsgEmptyWishlist           = "You have no saved books yet."
	DefaultSearchError         = "Search failed. Please try again."
	DefaultRecommendationError = "Could not load recommendations."
	LoadingRecommendations     = "Loading recommendations..."
)

// KeyEnter is the key name that submits the search input.
const KeyEnter = "Enter"
