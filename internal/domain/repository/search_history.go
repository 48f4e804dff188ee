package repository

import "context"

// SearchHistoryRepository persists submitted search queries, oldest first.
type SearchHistoryRepository interface {
	// ReadHistory returns every recorded query. Corrupt storage reads as empty.
	ReadHistory(ctx context.Context) ([]string, error)

	// AppendHistory records a query at the end of the history. No dedup.
	AppendHistory(ctx context.Context, term string) error
}
