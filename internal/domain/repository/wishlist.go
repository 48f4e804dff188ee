package repository

import (
	"context"

	"github.com/bnema/bookmark/internal/domain/entity"
)

// WishlistRepository persists the set of saved books keyed by ISBN.
type WishlistRepository interface {
	// ReadWishlist returns saved books in insertion order. Corrupt storage reads as empty.
	ReadWishlist(ctx context.Context) (entity.Wishlist, error)

	// ToggleWishlist removes the book when saved, saves it otherwise.
	ToggleWishlist(ctx context.Context, book entity.Book) (entity.ToggleResult, error)

	// RemoveFromWishlist drops the book with the given ISBN, if any.
	RemoveFromWishlist(ctx context.Context, isbn string) (bool, error)
}
