package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/domain/repository"
	"github.com/bnema/bookmark/internal/logging"
)

// Best-book cookie attributes.
const (
	BestBookCookieName   = "best_book"
	BestBookCookiePath   = "/"
	BestBookCookieMaxAge = 24 * time.Hour
)

// BestBookCookieUseCase writes the server-chosen best offer into a cookie.
type BestBookCookieUseCase struct {
	cookieRepo repository.CookieRepository
	now        func() time.Time
}

// NewBestBookCookieUseCase creates the use case. now may be nil.
func NewBestBookCookieUseCase(cookieRepo repository.CookieRepository, now func() time.Time) *BestBookCookieUseCase {
	if now == nil {
		now = time.Now
	}
	return &BestBookCookieUseCase{cookieRepo: cookieRepo, now: now}
}

// Set stores value, URL-encoded, with a 24 hour max-age on path "/".
// Setting the same value again only refreshes the expiry.
func (uc *BestBookCookieUseCase) Set(ctx context.Context, value string) error {
	log := logging.FromContext(ctx)

	cookie := entity.Cookie{
		Name:      BestBookCookieName,
		Value:     EncodeURIComponent(value),
		Path:      BestBookCookiePath,
		MaxAge:    BestBookCookieMaxAge,
		CreatedAt: uc.now(),
	}
	if err := uc.cookieRepo.SetCookie(ctx, cookie); err != nil {
		return fmt.Errorf("failed to set best book cookie: %w", err)
	}

	log.Debug().Int("bytes", len(cookie.Value)).Msg("best book cookie set")
	return nil
}

// Get returns the decoded cookie value and whether an unexpired cookie exists.
func (uc *BestBookCookieUseCase) Get(ctx context.Context) (string, bool, error) {
	cookie, err := uc.cookieRepo.GetCookie(ctx, BestBookCookieName)
	if err != nil {
		return "", false, fmt.Errorf("failed to read best book cookie: %w", err)
	}
	if cookie == nil {
		return "", false, nil
	}
	value, err := url.PathUnescape(cookie.Value)
	if err != nil {
		return cookie.Value, true, nil
	}
	return value, true, nil
}

var uriComponentUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers encode cookie values:
// everything except letters, digits and - _ . ! ~ * ' ( ) is percent-encoded.
func EncodeURIComponent(s string) string {
	return uriComponentUnreserved.Replace(url.QueryEscape(s))
}
