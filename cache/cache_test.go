package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockCache(t *testing.T, capacity int, ttl time.Duration) (*Cache[int], *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	return New[int](capacity, ttl, WithClock(mock)), mock
}

func TestNew_Defaults(t *testing.T) {
	c := New[string](0, 0)
	assert.Equal(t, DefaultCapacity, c.Capacity())
	assert.Equal(t, DefaultTTL, c.defaultTTL)
	assert.Equal(t, 0, c.Len())
}

func TestCache_Liveness(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{name: "short ttl", ttl: 10 * time.Millisecond},
		{name: "one second", ttl: time.Second},
		{name: "one hour", ttl: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mock := newMockCache(t, 10, time.Minute)

			c.SetWithTTL("k", 42, tt.ttl)

			mock.Add(tt.ttl - time.Nanosecond)
			v, ok := c.Get("k")
			require.True(t, ok)
			assert.Equal(t, 42, v)
			assert.True(t, c.Has("k"))

			mock.Add(time.Nanosecond)
			_, ok = c.Get("k")
			assert.False(t, ok)
			assert.False(t, c.Has("k"))
		})
	}
}

func TestCache_DefaultTTL(t *testing.T) {
	c, mock := newMockCache(t, 10, 100*time.Millisecond)

	c.Set("a", 1)
	mock.Add(99 * time.Millisecond)
	assert.True(t, c.Has("a"))

	mock.Add(time.Millisecond)
	assert.False(t, c.Has("a"))
}

func TestCache_GetUnknownKey(t *testing.T) {
	c, _ := newMockCache(t, 10, time.Minute)

	v, ok := c.Get("missing")
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.False(t, c.Has("missing"))
}

func TestCache_ExpireOnTouch(t *testing.T) {
	c, mock := newMockCache(t, 10, time.Minute)

	c.SetWithTTL("a", 1, time.Second)
	c.SetWithTTL("b", 2, time.Second)
	mock.Add(2 * time.Second)

	// Size is a storage count, expired entries stay until touched
	assert.Equal(t, 2, c.Len())

	assert.False(t, c.Has("a"))
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_NonPositiveTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second} {
		t.Run(ttl.String(), func(t *testing.T) {
			c, _ := newMockCache(t, 10, time.Minute)

			c.SetWithTTL("k", 1, ttl)
			assert.Equal(t, 1, c.Len(), "entry is physically stored")

			_, ok := c.Get("k")
			assert.False(t, ok)
			assert.Equal(t, 0, c.Len())
		})
	}
}

func TestCache_CapacityBound(t *testing.T) {
	const capacity = 5
	c, _ := newMockCache(t, capacity, time.Hour)

	for i := 0; i <= capacity; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}

	assert.Equal(t, capacity, c.Len())
	_, ok := c.Get("k0")
	assert.False(t, ok, "first inserted key should be evicted")

	for i := 1; i <= capacity; i++ {
		v, ok := c.Get(fmt.Sprintf("k%d", i))
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestCache_ScenarioCapacityTwo(t *testing.T) {
	c, _ := newMockCache(t, 2, 100*time.Millisecond)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	_, ok := c.Get("a")
	assert.False(t, ok)

	v, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = c.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestCache_ExpiryBeforeEviction(t *testing.T) {
	c, mock := newMockCache(t, 3, time.Hour)

	c.Set("live-1", 1)
	c.SetWithTTL("short", 2, time.Second)
	c.Set("live-2", 3)

	mock.Add(2 * time.Second)
	c.Set("new", 4)

	assert.Equal(t, 3, c.Len())
	for _, key := range []string{"live-1", "live-2", "new"} {
		assert.True(t, c.Has(key), key)
	}

	stats := c.Stats()
	assert.Equal(t, uint64(0), stats.Evictions)
	assert.Equal(t, uint64(1), stats.Expirations)
}

func TestCache_SweepRemovesAllExpired(t *testing.T) {
	c, mock := newMockCache(t, 4, time.Hour)

	c.SetWithTTL("e1", 1, time.Second)
	c.Set("live", 2)
	c.SetWithTTL("e2", 3, time.Second)
	c.SetWithTTL("e3", 4, time.Second)

	mock.Add(time.Minute)
	c.Set("new", 5)

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Has("live"))
	assert.True(t, c.Has("new"))
}

func TestCache_OverwriteMovesToNewest(t *testing.T) {
	c, _ := newMockCache(t, 3, time.Hour)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// Re-setting "a" makes "b" the oldest
	c.Set("a", 10)
	assert.Equal(t, 3, c.Len())

	c.Set("d", 4)

	_, ok := c.Get("b")
	assert.False(t, ok)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.True(t, c.Has("c"))
	assert.True(t, c.Has("d"))
}

func TestCache_OverwriteAtCapacityKeepsOthers(t *testing.T) {
	c, _ := newMockCache(t, 2, time.Hour)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("b", 3)

	assert.True(t, c.Has("a"))
	v, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, uint64(0), c.Stats().Evictions)
}

func TestCache_OverwriteResetsExpiry(t *testing.T) {
	c, mock := newMockCache(t, 2, time.Hour)

	c.SetWithTTL("a", 1, time.Second)
	mock.Add(500 * time.Millisecond)
	c.SetWithTTL("a", 2, time.Second)
	mock.Add(800 * time.Millisecond)

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestCache_Delete(t *testing.T) {
	c, _ := newMockCache(t, 10, time.Hour)

	assert.False(t, c.Delete("missing"))
	assert.Equal(t, 0, c.Len())

	c.Set("a", 1)
	c.Set("b", 2)

	assert.True(t, c.Delete("a"))
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.True(t, c.Has("b"), "delete must not affect other entries")

	assert.False(t, c.Delete("a"))
}

func TestCache_Clear(t *testing.T) {
	c, _ := newMockCache(t, 10, time.Hour)

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Has("k0"))

	c.Set("after", 1)
	assert.True(t, c.Has("after"))
}

func TestCache_Stats(t *testing.T) {
	c, mock := newMockCache(t, 10, time.Second)

	c.Set("a", 1)
	c.Get("a")
	c.Get("missing")
	mock.Add(time.Second)
	c.Get("a")

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(2), stats.Misses)
	assert.Equal(t, uint64(1), stats.Expirations)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New[int](50, time.Minute)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("g%d-%d", g, i%20)
				c.Set(key, i)
				c.Get(key)
				c.Has(key)
				if i%7 == 0 {
					c.Delete(key)
				}
			}
		}(g)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 50)
}
