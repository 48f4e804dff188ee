package entity

// SearchState tracks a search submission on the current page.
type SearchState int

const (
	// SearchIdle accepts new submissions.
	SearchIdle SearchState = iota
	// SearchSubmitting means a query was emitted and the overlay is shown.
	SearchSubmitting
	// SearchRedirecting is terminal for the page lifetime.
	SearchRedirecting
	// SearchFailed is transient; the controller returns to idle right after surfacing the error.
	SearchFailed
)

// String returns a human-readable representation of the state.
func (s SearchState) String() string {
	switch s {
	case SearchIdle:
		return "idle"
	case SearchSubmitting:
		return "submitting"
	case SearchRedirecting:
		return "redirecting"
	case SearchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CanSubmit reports whether a new query may be submitted in this state.
func (s SearchState) CanSubmit() bool {
	return s != SearchRedirecting
}
