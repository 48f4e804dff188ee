package repository

import (
	"context"

	"github.com/bnema/bookmark/internal/domain/entity"
)

// CookieRepository stores cookies set on behalf of the server.
type CookieRepository interface {
	// SetCookie creates or replaces the cookie with the same name and path.
	SetCookie(ctx context.Context, cookie entity.Cookie) error

	// GetCookie returns the unexpired cookie with the given name, or nil.
	GetCookie(ctx context.Context, name string) (*entity.Cookie, error)
}
