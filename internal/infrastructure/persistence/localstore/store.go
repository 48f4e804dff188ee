// Package localstore keeps search history and the wishlist as JSON documents in a
// client-local key-value store.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/domain/repository"
	"github.com/bnema/bookmark/internal/infrastructure/metrics"
	"github.com/bnema/bookmark/internal/logging"
)

// Store implements the history and wishlist repositories over a KeyValueStore.
// Every mutation is a single UpdateItem call, so concurrent writers never lose an update.
type Store struct {
	kv      repository.KeyValueStore
	metrics *metrics.Metrics
}

var (
	_ repository.SearchHistoryRepository = (*Store)(nil)
	_ repository.WishlistRepository      = (*Store)(nil)
)

// New creates a Store. m may be nil.
func New(kv repository.KeyValueStore, m *metrics.Metrics) *Store {
	return &Store{kv: kv, metrics: m}
}

// ReadHistory returns the recorded queries, oldest first.
func (s *Store) ReadHistory(ctx context.Context) ([]string, error) {
	raw, ok, err := s.kv.GetItem(ctx, repository.KeySearches)
	if err != nil {
		return nil, fmt.Errorf("failed to read search history: %w", err)
	}
	return s.decodeHistory(ctx, raw, ok), nil
}

// AppendHistory appends term to the stored history.
func (s *Store) AppendHistory(ctx context.Context, term string) error {
	err := s.kv.UpdateItem(ctx, repository.KeySearches, func(current string, ok bool) (string, error) {
		history := append(s.decodeHistory(ctx, current, ok), term)
		return encode(history)
	})
	if err != nil {
		return fmt.Errorf("failed to append search history: %w", err)
	}
	return nil
}

// ReadWishlist returns the saved books in insertion order.
func (s *Store) ReadWishlist(ctx context.Context) (entity.Wishlist, error) {
	raw, ok, err := s.kv.GetItem(ctx, repository.KeyWishlist)
	if err != nil {
		return nil, fmt.Errorf("failed to read wishlist: %w", err)
	}
	return s.decodeWishlist(ctx, raw, ok), nil
}

// ToggleWishlist removes the book when its ISBN is saved, appends it otherwise.
func (s *Store) ToggleWishlist(ctx context.Context, book entity.Book) (entity.ToggleResult, error) {
	var result entity.ToggleResult
	err := s.kv.UpdateItem(ctx, repository.KeyWishlist, func(current string, ok bool) (string, error) {
		var next entity.Wishlist
		next, result = s.decodeWishlist(ctx, current, ok).Toggle(book)
		return encode(next)
	})
	if err != nil {
		return entity.ToggleResult{}, fmt.Errorf("failed to toggle wishlist: %w", err)
	}
	return result, nil
}

// RemoveFromWishlist drops the book with the given ISBN. Missing ISBNs are a no-op.
func (s *Store) RemoveFromWishlist(ctx context.Context, isbn string) (bool, error) {
	var removed bool
	err := s.kv.UpdateItem(ctx, repository.KeyWishlist, func(current string, ok bool) (string, error) {
		var next entity.Wishlist
		next, removed = s.decodeWishlist(ctx, current, ok).Remove(isbn)
		return encode(next)
	})
	if err != nil {
		return false, fmt.Errorf("failed to remove from wishlist: %w", err)
	}
	return removed, nil
}

func (s *Store) decodeHistory(ctx context.Context, raw string, ok bool) []string {
	history := []string{}
	if !ok || isBlank(raw) {
		return history
	}
	var decoded []string
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		s.recovered(ctx, repository.KeySearches, err)
		return history
	}
	if decoded == nil {
		return history
	}
	return decoded
}

func (s *Store) decodeWishlist(ctx context.Context, raw string, ok bool) entity.Wishlist {
	wishlist := entity.Wishlist{}
	if !ok || isBlank(raw) {
		return wishlist
	}
	var decoded entity.Wishlist
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		s.recovered(ctx, repository.KeyWishlist, err)
		return wishlist
	}
	if decoded == nil {
		return wishlist
	}
	return decoded.Dedupe()
}

func (s *Store) recovered(ctx context.Context, key string, err error) {
	log := logging.FromContext(ctx)
	log.Warn().Err(err).Str("key", key).Msg("stored value is not valid JSON, treating as empty")
	s.metrics.IncStorageRecovery(key)
}

func isBlank(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw == "" || raw == "null"
}

func encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
