package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/bnema/bookmark/internal/domain/bookpage"
	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/infrastructure/page"
	"github.com/bnema/bookmark/internal/logging"
)

// LoadBook extracts the book shown on a rendered detail page. src is either
// an http(s) URL, fetched live, or a local HTML file whose relative links
// resolve against base.
func (a *App) LoadBook(ctx context.Context, src, base string) (*entity.Book, error) {
	if isRemote(src) {
		return a.fetchBook(ctx, src)
	}

	var baseURL *url.URL
	if base != "" {
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL: %w", err)
		}
		baseURL = u
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer f.Close()

	facts, err := page.FactsFromHTML(f, baseURL)
	if err != nil {
		return nil, err
	}
	book := bookpage.Extract(facts)
	if book == nil {
		return nil, page.ErrNotBookPage
	}
	logging.FromContext(ctx).Debug().Str("isbn", book.ISBN).Str("file", src).Msg("extracted book from file")
	return book, nil
}

func (a *App) fetchBook(ctx context.Context, rawURL string) (*entity.Book, error) {
	fetcher, err := a.pageFetcher()
	if err != nil {
		return nil, err
	}
	book, err := fetcher.Book(ctx, rawURL)
	if err != nil {
		if errors.Is(err, page.ErrNotBookPage) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	return book, nil
}

func (a *App) pageFetcher() (*page.Fetcher, error) {
	a.fetcherOnce.Do(func() {
		a.fetcher, a.fetcherErr = page.NewFetcher(page.FetcherConfig{
			UserAgent: a.Config.Page.UserAgent,
			Timeout:   time.Duration(a.Config.Page.TimeoutMs) * time.Millisecond,
			CacheSize: a.Config.Page.CacheSize,
			Metrics:   a.Metrics,
		})
	})
	return a.fetcher, a.fetcherErr
}

func isRemote(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
