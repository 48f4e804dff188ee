package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/bookmark/internal/domain/repository"
	"github.com/bnema/bookmark/internal/logging"
)

type keyValueStore struct {
	db *sql.DB
}

// NewKeyValueStore creates a SQLite-backed local storage.
func NewKeyValueStore(db *sql.DB) repository.KeyValueStore {
	return &keyValueStore{db: db}
}

const (
	selectItemSQL = `SELECT value FROM local_storage WHERE key = ?`
	upsertItemSQL = `INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getItem(ctx context.Context, q queryer, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, selectItemSQL, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *keyValueStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	value, ok, err := getItem(ctx, s.db, key)
	if err != nil {
		return "", false, fmt.Errorf("failed to get item %q: %w", key, err)
	}
	return value, ok, nil
}

func (s *keyValueStore) SetItem(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, upsertItemSQL, key, value); err != nil {
		return fmt.Errorf("failed to set item %q: %w", key, err)
	}
	return nil
}

// UpdateItem reads and writes key inside one IMMEDIATE-equivalent transaction.
// With a single pooled connection no other statement can run in between.
func (s *keyValueStore) UpdateItem(ctx context.Context, key string, fn repository.UpdateFunc) (err error) {
	log := logging.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Warn().Err(rbErr).Str("key", key).Msg("failed to roll back local storage update")
			}
		}
	}()

	current, ok, err := getItem(ctx, tx, key)
	if err != nil {
		return fmt.Errorf("failed to get item %q: %w", key, err)
	}

	next, err := fn(current, ok)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, upsertItemSQL, key, next); err != nil {
		return fmt.Errorf("failed to set item %q: %w", key, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit local storage update: %w", err)
	}
	return nil
}
