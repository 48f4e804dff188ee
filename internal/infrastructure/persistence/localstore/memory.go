package localstore

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/domain/repository"
)

// MemoryKV is an in-process KeyValueStore. Updates are serialized by a mutex.
type MemoryKV struct {
	mu    sync.Mutex
	items map[string]string
}

var _ repository.KeyValueStore = (*MemoryKV)(nil)

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{items: make(map[string]string)}
}

// GetItem returns the raw value for key.
func (m *MemoryKV) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

// SetItem overwrites the raw value for key.
func (m *MemoryKV) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

// UpdateItem runs fn under the store lock and writes its result.
func (m *MemoryKV) UpdateItem(_ context.Context, key string, fn repository.UpdateFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.items[key]
	next, err := fn(current, ok)
	if err != nil {
		return err
	}
	m.items[key] = next
	return nil
}

// MemoryCookies is an in-process CookieRepository.
type MemoryCookies struct {
	mu      sync.Mutex
	cookies map[string]entity.Cookie
	now     func() time.Time
}

var _ repository.CookieRepository = (*MemoryCookies)(nil)

// NewMemoryCookies creates an empty cookie jar. now may be nil.
func NewMemoryCookies(now func() time.Time) *MemoryCookies {
	if now == nil {
		now = time.Now
	}
	return &MemoryCookies{cookies: make(map[string]entity.Cookie), now: now}
}

// SetCookie stores the cookie, replacing any with the same name.
func (m *MemoryCookies) SetCookie(_ context.Context, cookie entity.Cookie) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cookies[cookie.Name] = cookie
	return nil
}

// GetCookie returns the cookie when present and unexpired.
func (m *MemoryCookies) GetCookie(_ context.Context, name string) (*entity.Cookie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cookies[name]
	if !ok || c.Expired(m.now()) {
		return nil, nil
	}
	return &c, nil
}
