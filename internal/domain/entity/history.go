package entity

import "strings"

// DefaultRecentSearches is how many past searches accompany a recommendation request.
const DefaultRecentSearches = 5

// NormalizeQuery trims surrounding whitespace from a search query.
// An empty result means the query must be ignored.
func NormalizeQuery(raw string) string {
	return strings.TrimSpace(raw)
}

// RecentSearches returns a copy of the last n entries of history, oldest first.
func RecentSearches(history []string, n int) []string {
	if n <= 0 || len(history) == 0 {
		return []string{}
	}
	start := len(history) - n
	if start < 0 {
		start = 0
	}
	out := make([]string, len(history)-start)
	copy(out, history[start:])
	return out
}
