package messaging

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Deduplicator drops redelivered pushes: the transport guarantees at-least-once
// delivery, so the same event with the same payload may arrive twice in a row.
type Deduplicator struct {
	mu          sync.Mutex
	seen        map[string]time.Time
	window      time.Duration
	now         func() time.Time
	lastCleanup time.Time
}

// NewDeduplicator creates a deduplicator. A zero window disables it.
func NewDeduplicator(window time.Duration, now func() time.Time) *Deduplicator {
	if now == nil {
		now = time.Now
	}
	return &Deduplicator{
		seen:        make(map[string]time.Time),
		window:      window,
		now:         now,
		lastCleanup: now(),
	}
}

func fingerprint(event string, payload []byte) string {
	h := sha256.New()
	h.Write([]byte(event))
	h.Write([]byte{0})
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil)[:8])
}

// IsDuplicate reports whether the same push was seen within the window,
// and records it otherwise.
func (d *Deduplicator) IsDuplicate(event string, payload []byte) bool {
	if d == nil || d.window <= 0 {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if now.Sub(d.lastCleanup) > 10*d.window {
		d.cleanup(now)
	}

	key := fingerprint(event, payload)
	if at, ok := d.seen[key]; ok && now.Sub(at) < d.window {
		return true
	}
	d.seen[key] = now
	return false
}

func (d *Deduplicator) cleanup(now time.Time) {
	for key, at := range d.seen {
		if now.Sub(at) >= d.window {
			delete(d.seen, key)
		}
	}
	d.lastCleanup = now
}
