// Package cli wires the bookmark engine for terminal commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bnema/bookmark/internal/application/usecase"
	"github.com/bnema/bookmark/internal/cli/styles"
	"github.com/bnema/bookmark/internal/domain/build"
	"github.com/bnema/bookmark/internal/infrastructure/config"
	"github.com/bnema/bookmark/internal/infrastructure/metrics"
	"github.com/bnema/bookmark/internal/infrastructure/page"
	"github.com/bnema/bookmark/internal/infrastructure/persistence/localstore"
	"github.com/bnema/bookmark/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bookmark/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Metrics   *metrics.Metrics

	db  *sqlite.LazyDB
	now func() time.Time

	storeOnce sync.Once
	storeErr  error
	useCases  *UseCases

	fetcherOnce sync.Once
	fetcherErr  error
	fetcher     *page.Fetcher

	// Context with logger
	ctx context.Context
}

// UseCases groups the storage-backed use cases. They open the database on first use.
type UseCases struct {
	History  *usecase.SearchHistoryUseCase
	Wishlist *usecase.ManageWishlistUseCase
	Cookie   *usecase.BestBookCookieUseCase
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	if mgr != nil && mgr.Created() {
		logger.Info().Str("path", mgr.GetConfigFile()).Msg("wrote default configuration")
	}

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		Metrics: metrics.New(),
		db:      sqlite.NewLazyDB(cfg.Database.Path),
		now:     time.Now,
		ctx:     ctx,
	}, nil
}

// NewAppWith builds an App around an already loaded config, used by tests.
func NewAppWith(ctx context.Context, cfg *config.Config) *App {
	return &App{
		Config:  cfg,
		Theme:   styles.NewTheme(),
		Metrics: metrics.New(),
		db:      sqlite.NewLazyDB(cfg.Database.Path),
		now:     time.Now,
		ctx:     ctx,
	}
}

// UseCases opens the local store and returns the use cases over it.
func (a *App) UseCases() (*UseCases, error) {
	a.storeOnce.Do(func() {
		db, err := a.db.DB(a.ctx)
		if err != nil {
			a.storeErr = fmt.Errorf("open database: %w", err)
			return
		}
		logging.FromContext(a.ctx).Debug().Str("db_path", a.db.Path()).Msg("database connected")

		store := localstore.New(sqlite.NewKeyValueStore(db), a.Metrics)
		cookies := sqlite.NewCookieRepository(db, a.now)
		a.useCases = &UseCases{
			History:  usecase.NewSearchHistoryUseCase(store),
			Wishlist: usecase.NewManageWishlistUseCase(store),
			Cookie:   usecase.NewBestBookCookieUseCase(cookies, a.now),
		}
	})
	return a.useCases, a.storeErr
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations. An invalid file
// is an error; an unreadable config directory falls back to defaults.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		cfg := config.DefaultConfig()
		if cfg.Database.Path == "" {
			cfg.Database.Path = sqlite.MemoryPath
		}
		return nil, cfg, nil
	}

	if err := mgr.Load(); err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	return mgr, mgr.Get(), nil
}
