package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/domain/repository"
	"github.com/bnema/bookmark/internal/logging"
)

// ManageWishlistUseCase handles saving and removing books.
type ManageWishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
}

// NewManageWishlistUseCase creates a new wishlist management use case.
func NewManageWishlistUseCase(wishlistRepo repository.WishlistRepository) *ManageWishlistUseCase {
	return &ManageWishlistUseCase{wishlistRepo: wishlistRepo}
}

// Toggle saves the book when absent and removes it when present.
func (uc *ManageWishlistUseCase) Toggle(ctx context.Context, book entity.Book) (entity.ToggleResult, error) {
	log := logging.FromContext(ctx)

	if !book.Valid() {
		return entity.ToggleResult{}, entity.ErrInvalidBook
	}

	result, err := uc.wishlistRepo.ToggleWishlist(ctx, book)
	if err != nil {
		return entity.ToggleResult{}, fmt.Errorf("failed to toggle wishlist: %w", err)
	}

	log.Info().Str("isbn", book.ISBN).Bool("added", result.Added).Msg("wishlist toggled")
	return result, nil
}

// IsSaved reports whether a book with isbn is in the wishlist.
func (uc *ManageWishlistUseCase) IsSaved(ctx context.Context, isbn string) (bool, error) {
	wishlist, err := uc.wishlistRepo.ReadWishlist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read wishlist: %w", err)
	}
	return wishlist.Contains(isbn), nil
}

// List returns the saved books in insertion order.
func (uc *ManageWishlistUseCase) List(ctx context.Context) (entity.Wishlist, error) {
	wishlist, err := uc.wishlistRepo.ReadWishlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read wishlist: %w", err)
	}
	return wishlist, nil
}

// Remove drops the book with isbn. Removing a missing book is not an error.
func (uc *ManageWishlistUseCase) Remove(ctx context.Context, isbn string) (bool, error) {
	log := logging.FromContext(ctx)

	removed, err := uc.wishlistRepo.RemoveFromWishlist(ctx, isbn)
	if err != nil {
		return false, fmt.Errorf("failed to remove from wishlist: %w", err)
	}

	log.Info().Str("isbn", isbn).Bool("removed", removed).Msg("wishlist remove")
	return removed, nil
}
