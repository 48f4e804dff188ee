package entity

import "time"

// Cookie is a client cookie written on behalf of the server.
type Cookie struct {
	Name      string
	Value     string // stored encoded, as it would appear in a Cookie header
	Path      string
	MaxAge    time.Duration
	CreatedAt time.Time
}

// ExpiresAt returns the instant the cookie stops being sent.
func (c Cookie) ExpiresAt() time.Time {
	return c.CreatedAt.Add(c.MaxAge)
}

// Expired reports whether the cookie has expired at now.
func (c Cookie) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt())
}
