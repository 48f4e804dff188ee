package control_test

import (
	"context"
	"io"
	"time"

	"github.com/bnema/bookmark/internal/application/usecase"
	"github.com/bnema/bookmark/internal/infrastructure/persistence/localstore"
	"github.com/bnema/bookmark/internal/logging"
)

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: "json", Output: io.Discard})
	return logging.WithContext(context.Background(), logger)
}

type fixture struct {
	kv       *localstore.MemoryKV
	store    *localstore.Store
	history  *usecase.SearchHistoryUseCase
	wishlist *usecase.ManageWishlistUseCase
	cookies  *usecase.BestBookCookieUseCase
	jar      *localstore.MemoryCookies
}

func newFixture() *fixture {
	now := func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	kv := localstore.NewMemoryKV()
	store := localstore.New(kv, nil)
	jar := localstore.NewMemoryCookies(now)
	return &fixture{
		kv:       kv,
		store:    store,
		history:  usecase.NewSearchHistoryUseCase(store),
		wishlist: usecase.NewManageWishlistUseCase(store),
		cookies:  usecase.NewBestBookCookieUseCase(jar, now),
		jar:      jar,
	}
}
