package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/domain/repository"
	"github.com/bnema/bookmark/internal/logging"
)

type cookieRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewCookieRepository creates a SQLite-backed cookie jar. now may be nil.
func NewCookieRepository(db *sql.DB, now func() time.Time) repository.CookieRepository {
	if now == nil {
		now = time.Now
	}
	return &cookieRepo{db: db, now: now}
}

func (r *cookieRepo) SetCookie(ctx context.Context, cookie entity.Cookie) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("name", cookie.Name).Dur("max_age", cookie.MaxAge).Msg("storing cookie")

	_, err := r.db.ExecContext(ctx, `
INSERT INTO cookies (name, path, value, created_at, expires_at) VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name, path) DO UPDATE SET
    value = excluded.value,
    created_at = excluded.created_at,
    expires_at = excluded.expires_at`,
		cookie.Name, cookie.Path, cookie.Value, cookie.CreatedAt.UnixMilli(), cookie.ExpiresAt().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to store cookie %q: %w", cookie.Name, err)
	}
	return nil
}

func (r *cookieRepo) GetCookie(ctx context.Context, name string) (*entity.Cookie, error) {
	var (
		c         entity.Cookie
		createdAt int64
		expiresAt int64
	)
	err := r.db.QueryRowContext(ctx, `
SELECT name, path, value, created_at, expires_at FROM cookies
WHERE name = ? AND expires_at > ?
ORDER BY created_at DESC LIMIT 1`, name, r.now().UnixMilli()).
		Scan(&c.Name, &c.Path, &c.Value, &createdAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cookie %q: %w", name, err)
	}

	c.CreatedAt = time.UnixMilli(createdAt)
	c.MaxAge = time.UnixMilli(expiresAt).Sub(c.CreatedAt)
	return &c, nil
}
