package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestMemoryCache_TTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewMemoryCache(10, nil).WithClock(clock.now)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	clock.advance(59 * time.Second)
	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	clock.advance(time.Second)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok, "entry must expire at exactly ttl")

	stats := c.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 0, stats.Items)
}

func TestMemoryCache_LRUEviction(t *testing.T) {
	c := NewMemoryCache(2, nil)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), time.Hour))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), time.Hour))

	// touch a so b becomes least recently used
	_, ok, _ := c.Get(ctx, "a")
	require.True(t, ok)

	require.NoError(t, c.Set(ctx, "c", []byte("3"), time.Hour))

	_, ok, _ = c.Get(ctx, "b")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, int64(1), c.GetStats().Evictions)
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	c := NewMemoryCache(4, nil)
	ctx := context.Background()

	value := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", value, time.Hour))
	value[0] = 'X'

	got, _, _ := c.Get(ctx, "k")
	got[1] = 'Y'

	again, _, _ := c.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestMemoryCache_Clear(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		pattern string
		left    []string
	}{
		{"*", nil},
		{"search:*", []string{"other"}},
		{"*:ev", []string{"search:solar", "other"}},
		{"other", []string{"search:ev", "search:solar"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			c := NewMemoryCache(10, nil)
			for _, k := range []string{"search:ev", "search:solar", "other"} {
				require.NoError(t, c.Set(ctx, k, []byte(k), time.Hour))
			}

			require.NoError(t, c.Clear(ctx, tt.pattern))

			assert.Equal(t, len(tt.left), c.GetStats().Items)
			for _, k := range tt.left {
				_, ok, _ := c.Get(ctx, k)
				assert.True(t, ok, k)
			}
		})
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache(4, nil)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Hour))
	require.NoError(t, c.Delete(ctx, "k"))
	require.NoError(t, c.Delete(ctx, "absent"))

	_, ok, _ := c.Get(ctx, "k")
	assert.False(t, ok)
}
