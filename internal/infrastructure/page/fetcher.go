package page

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bnema/bookmark/internal/domain/bookpage"
	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/infrastructure/metrics"
	"github.com/bnema/bookmark/internal/logging"
)

// ErrNotBookPage is returned when a page carries no extractable book.
var ErrNotBookPage = errors.New("page has no book details")

// Defaults for FetcherConfig.
const (
	DefaultCacheSize = 64
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "bookmark/1.0 (+https://github.com/bnema/bookmark)"
)

// FetcherConfig tunes a Fetcher.
type FetcherConfig struct {
	UserAgent string
	Timeout   time.Duration
	CacheSize int
	Metrics   *metrics.Metrics
}

// Fetcher downloads rendered book pages and caches their facts per URL.
type Fetcher struct {
	collector *colly.Collector
	cache     *lru.Cache[string, bookpage.Facts]
	metrics   *metrics.Metrics
}

// NewFetcher builds a fetcher.
func NewFetcher(cfg FetcherConfig) (*Fetcher, error) {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	cache, err := lru.New[string, bookpage.Facts](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}

	collector := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.AllowURLRevisit(),
	)
	collector.SetRequestTimeout(cfg.Timeout)
	collector.WithTransport(&http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.Timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	})

	return &Fetcher{collector: collector, cache: cache, metrics: cfg.Metrics}, nil
}

// WithTransport replaces the HTTP transport.
func (f *Fetcher) WithTransport(rt http.RoundTripper) {
	f.collector.WithTransport(rt)
}

// Facts returns the book facts of the page at rawURL.
func (f *Fetcher) Facts(ctx context.Context, rawURL string) (bookpage.Facts, error) {
	log := logging.FromContext(logging.WithURL(ctx, rawURL))

	if facts, ok := f.cache.Get(rawURL); ok {
		f.metrics.IncPageFetch("hit")
		log.Debug().Msg("page facts served from cache")
		return facts, nil
	}
	if err := ctx.Err(); err != nil {
		return bookpage.Facts{}, err
	}

	var (
		facts    bookpage.Facts
		found    bool
		fetchErr error
	)
	c := f.collector.Clone()
	c.OnHTML("html", func(e *colly.HTMLElement) {
		facts = FactsFromSelection(e.DOM, e.Request.URL)
		found = true
	})
	c.OnError(func(r *colly.Response, err error) {
		status := 0
		if r != nil {
			status = r.StatusCode
		}
		fetchErr = fmt.Errorf("status %d: %w", status, err)
	})

	start := time.Now()
	if err := c.Visit(rawURL); err != nil && fetchErr == nil {
		fetchErr = err
	}
	if fetchErr != nil {
		f.metrics.IncPageFetch("error")
		return bookpage.Facts{}, fmt.Errorf("failed to fetch %s: %w", rawURL, fetchErr)
	}
	if !found {
		f.metrics.IncPageFetch("error")
		return bookpage.Facts{}, fmt.Errorf("failed to fetch %s: response is not HTML", rawURL)
	}

	f.cache.Add(rawURL, facts)
	f.metrics.IncPageFetch("miss")
	log.Debug().Dur("elapsed", time.Since(start)).Msg("page fetched")
	return facts, nil
}

// Book fetches rawURL and extracts its book.
func (f *Fetcher) Book(ctx context.Context, rawURL string) (*entity.Book, error) {
	facts, err := f.Facts(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	book := bookpage.Extract(facts)
	if book == nil {
		return nil, fmt.Errorf("%s: %w", rawURL, ErrNotBookPage)
	}
	return book, nil
}

// Purge drops every cached page.
func (f *Fetcher) Purge() {
	f.cache.Purge()
}

// Cached reports whether rawURL is in the cache.
func (f *Fetcher) Cached(rawURL string) bool {
	return f.cache.Contains(rawURL)
}

