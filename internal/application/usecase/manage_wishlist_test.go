package usecase_test

import (
	"errors"
	"testing"

	"github.com/bnema/bookmark/internal/application/usecase"
	"github.com/bnema/bookmark/internal/domain/entity"
	repomocks "github.com/bnema/bookmark/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestManageWishlistUseCase_Toggle(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockWishlistRepository(t)
	book := entity.Book{Title: "Calculus", ISBN: "111"}
	repo.EXPECT().ToggleWishlist(mock.Anything, book).Return(entity.ToggleResult{Added: true}, nil)

	res, err := usecase.NewManageWishlistUseCase(repo).Toggle(ctx, book)

	require.NoError(t, err)
	assert.True(t, res.Added)
}

func TestManageWishlistUseCase_Toggle_RejectsInvalidBook(t *testing.T) {
	repo := repomocks.NewMockWishlistRepository(t)

	_, err := usecase.NewManageWishlistUseCase(repo).Toggle(testContext(), entity.Book{Title: "No isbn"})

	require.ErrorIs(t, err, entity.ErrInvalidBook)
}

func TestManageWishlistUseCase_Toggle_WrapsRepoError(t *testing.T) {
	repo := repomocks.NewMockWishlistRepository(t)
	repo.EXPECT().ToggleWishlist(mock.Anything, mock.Anything).Return(entity.ToggleResult{}, errors.New("disk full"))

	_, err := usecase.NewManageWishlistUseCase(repo).Toggle(testContext(), entity.Book{Title: "A", ISBN: "1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to toggle wishlist")
}

func TestManageWishlistUseCase_IsSaved(t *testing.T) {
	repo := repomocks.NewMockWishlistRepository(t)
	repo.EXPECT().ReadWishlist(mock.Anything).Return(entity.Wishlist{{ISBN: "1"}, {ISBN: "2"}}, nil).Twice()
	uc := usecase.NewManageWishlistUseCase(repo)

	saved, err := uc.IsSaved(testContext(), "2")
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = uc.IsSaved(testContext(), "3")
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestManageWishlistUseCase_Remove(t *testing.T) {
	repo := repomocks.NewMockWishlistRepository(t)
	repo.EXPECT().RemoveFromWishlist(mock.Anything, "1").Return(true, nil)

	removed, err := usecase.NewManageWishlistUseCase(repo).Remove(testContext(), "1")

	require.NoError(t, err)
	assert.True(t, removed)
}
