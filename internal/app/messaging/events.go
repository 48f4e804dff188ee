// Package messaging defines the events exchanged with the backend and the
// helpers controllers use to decode pushes and own their subscriptions.
package messaging

// Client to server events.
const (
	EventSearch             = "Go_button_pushed"
	EventGetRecommendations = "get_ai_recommendations"
)

// Server to client events.
const (
	EventRedirect            = "redirect"
	EventSearchDone          = "search_done"
	EventSearchError         = "search_error"
	EventSetBestBookCookie   = "set_best_book_cookie"
	EventRecommendations     = "ai_recommendations"
	EventRecommendationError = "ai_error"
)

// DefaultResultsPath is where search_done navigates when it carries no URL.
const DefaultResultsPath = "/results"

// SearchRequest is the payload of EventSearch.
type SearchRequest struct {
	Search string `json:"search"`
}

// RecommendationRequest is the payload of EventGetRecommendations.
type RecommendationRequest struct {
	CurrentBook string   `json:"currentBook"`
	History     []string `json:"history"`
}
