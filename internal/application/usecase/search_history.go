package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/domain/repository"
	"github.com/bnema/bookmark/internal/logging"
)

// SearchHistoryUseCase records submitted queries and serves them back.
type SearchHistoryUseCase struct {
	historyRepo repository.SearchHistoryRepository
}

// NewSearchHistoryUseCase creates a new search history use case.
func NewSearchHistoryUseCase(historyRepo repository.SearchHistoryRepository) *SearchHistoryUseCase {
	return &SearchHistoryUseCase{
		historyRepo: historyRepo,
	}
}

// Record trims raw and appends it to the history.
// Returns entity.ErrEmptyQuery, without touching storage, when nothing is left after trimming.
func (uc *SearchHistoryUseCase) Record(ctx context.Context, raw string) (string, error) {
	log := logging.FromContext(ctx)

	query := entity.NormalizeQuery(raw)
	if query == "" {
		return "", entity.ErrEmptyQuery
	}

	if err := uc.historyRepo.AppendHistory(ctx, query); err != nil {
		return query, fmt.Errorf("failed to record search: %w", err)
	}

	log.Debug().Str("query", query).Msg("search recorded")
	return query, nil
}

// All returns the full history, oldest first.
func (uc *SearchHistoryUseCase) All(ctx context.Context) ([]string, error) {
	history, err := uc.historyRepo.ReadHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read search history: %w", err)
	}
	return history, nil
}

// Recent returns at most the last n queries, oldest first.
func (uc *SearchHistoryUseCase) Recent(ctx context.Context, n int) ([]string, error) {
	history, err := uc.All(ctx)
	if err != nil {
		return nil, err
	}
	return entity.RecentSearches(history, n), nil
}
