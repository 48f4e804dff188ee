package localstore_test

import (
	"testing"
	"time"

	"github.com/bnema/bookmark/internal/domain/entity"
	"github.com/bnema/bookmark/internal/infrastructure/persistence/localstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCookies_ExpireAfterMaxAge(t *testing.T) {
	ctx := testContext()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	jar := localstore.NewMemoryCookies(func() time.Time { return now })

	require.NoError(t, jar.SetCookie(ctx, entity.Cookie{
		Name: "best_book", Value: "x", Path: "/", MaxAge: time.Hour, CreatedAt: now,
	}))

	c, err := jar.GetCookie(ctx, "best_book")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "x", c.Value)

	now = now.Add(time.Hour)
	c, err = jar.GetCookie(ctx, "best_book")
	require.NoError(t, err)
	assert.Nil(t, c)
}
