package page_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bookmark/internal/domain/bookpage"
	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/infrastructure/metrics"
	"github.com/bnema/bookmark/internal/infrastructure/page"
	"github.com/bnema/bookmark/internal/logging"
)

const bookHTML = `<!doctype html>
<html><body>
  <div class="bookInfo">
    <h2>Calculus: Early Transcendentals - 9781285741550</h2>
    <p>Condition: Used</p>
    <p>Medium:   Physical</p>
  </div>
  <img class="textbook-image" src="/covers/9781285741550.jpg">
  <div class="priceElement">
    <p>$42.50</p>
    <a href="https://store.example/buy/9781285741550">Buy</a>
  </div>
</body></html>`

const searchHTML = `<html><body><h1>Results</h1></body></html>`

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: logging.ParseLevel("debug"), Format: "json", Output: io.Discard})
	return logging.WithContext(context.Background(), logger)
}

func htmlResponder(status int, body string) httpmock.Responder {
	return func(*http.Request) (*http.Response, error) {
		resp := httpmock.NewStringResponse(status, body)
		resp.Header.Set("Content-Type", "text/html; charset=utf-8")
		return resp, nil
	}
}

func TestFactsFromHTML(t *testing.T) {
	base, err := url.Parse("https://books.example/book/9781285741550")
	require.NoError(t, err)

	facts, err := page.FactsFromHTML(strings.NewReader(bookHTML), base)
	require.NoError(t, err)

	assert.Equal(t, bookpage.Facts{
		Heading:   "Calculus: Early Transcendentals - 9781285741550",
		Details:   []string{"Condition: Used", "Medium: Physical"},
		PriceText: "$42.50",
		Link:      "https://store.example/buy/9781285741550",
		Image:     "https://books.example/covers/9781285741550.jpg",
	}, facts)

	book := bookpage.Extract(facts)
	require.NotNil(t, book)
	assert.Equal(t, "42.50", book.Price)
	assert.Equal(t, "Used", book.Condition)
	assert.Equal(t, "Physical", book.Medium)
}

func TestFactsFromHTML_NotABookPage(t *testing.T) {
	facts, err := page.FactsFromHTML(strings.NewReader(searchHTML), nil)
	require.NoError(t, err)
	assert.Empty(t, facts.Heading)
	assert.Nil(t, bookpage.Extract(facts))
}

func newFetcher(t *testing.T, transport *httpmock.MockTransport) (*page.Fetcher, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	f, err := page.NewFetcher(page.FetcherConfig{CacheSize: 2, Metrics: m})
	require.NoError(t, err)
	f.WithTransport(transport)
	return f, m
}

func TestFetcher_BookIsFetchedOnceThenCached(t *testing.T) {
	ctx := testContext()
	const pageURL = "https://books.example/book/9781285741550"

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, pageURL, htmlResponder(http.StatusOK, bookHTML))
	f, _ := newFetcher(t, transport)

	book, err := f.Book(ctx, pageURL)
	require.NoError(t, err)
	assert.Equal(t, entity.Book{
		Title:     "Calculus: Early Transcendentals",
		ISBN:      "9781285741550",
		Price:     "42.50",
		Link:      "https://store.example/buy/9781285741550",
		Image:     "https://books.example/covers/9781285741550.jpg",
		Condition: "Used",
		Medium:    "Physical",
	}, *book)

	_, err = f.Book(ctx, pageURL)
	require.NoError(t, err)
	assert.Equal(t, 1, transport.GetTotalCallCount())
	assert.True(t, f.Cached(pageURL))

	f.Purge()
	assert.False(t, f.Cached(pageURL))
}

func TestFetcher_NotBookPage(t *testing.T) {
	ctx := testContext()
	const pageURL = "https://books.example/results"

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, pageURL, htmlResponder(http.StatusOK, searchHTML))
	f, _ := newFetcher(t, transport)

	_, err := f.Book(ctx, pageURL)
	assert.True(t, errors.Is(err, page.ErrNotBookPage))
}

func TestFetcher_HTTPErrorIsNotCached(t *testing.T) {
	ctx := testContext()
	const pageURL = "https://books.example/book/missing"

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, pageURL, htmlResponder(http.StatusNotFound, "not found"))
	f, _ := newFetcher(t, transport)

	_, err := f.Facts(ctx, pageURL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.False(t, f.Cached(pageURL))
}

func TestFetcher_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	f, _ := newFetcher(t, httpmock.NewMockTransport())
	_, err := f.Facts(ctx, "https://books.example/book/1")
	assert.ErrorIs(t, err, context.Canceled)
}
