// file: internal/cache/cache_test.go
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) Cache {
	t.Helper()
	c := NewMemoryCache(100, zap.NewNop())
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, c.Set(ctx, "k", payload{Name: "badges", Count: 3}, time.Minute))

	var got payload
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "badges", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestMemoryCache_MissReturnsFalse(t *testing.T) {
	c := newTestCache(t)

	var got string
	found, err := c.Get(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	var got string
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	var got string
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_Increment(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	v, err := c.Increment(ctx, "counter", 1, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = c.Increment(ctx, "counter", 2, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

func TestMemoryCache_IncrementResetsAfterExpiry(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_, err := c.Increment(ctx, "counter", 5, 10*time.Millisecond)
	require.NoError(t, err)
	time.Sleep(25 * time.Millisecond)

	v, err := c.Increment(ctx, "counter", 1, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}
