package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSet(t *testing.T) {
	c := New[string](Config{MaxItems: 4})

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", "alpha")
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", v)

	hits, misses, rate := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.InDelta(t, 50.0, rate, 0.001)
}

func TestExpiration(t *testing.T) {
	c := New[int](Config{MaxItems: 4, TTL: time.Minute})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("k", 1)
	now = now.Add(30 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestEvictsOldest(t *testing.T) {
	c := New[int](Config{MaxItems: 2})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set("first", 1)
	now = now.Add(time.Second)
	c.Set("second", 2)
	now = now.Add(time.Second)
	c.Set("third", 3)

	assert.Equal(t, 2, c.Size())
	_, ok := c.Get("first")
	assert.False(t, ok)
	_, ok = c.Get("third")
	assert.True(t, ok)

	// overwriting an existing key never evicts
	c.Set("third", 33)
	assert.Equal(t, 2, c.Size())
}

func TestGetOrSet(t *testing.T) {
	c := New[string](DefaultConfig())
	calls := 0
	compute := func() (string, error) {
		calls++
		return "value", nil
	}

	v, hit, err := c.GetOrSet("k", compute)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, "value", v)

	v, hit, err = c.GetOrSet("k", compute)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "value", v)
	assert.Equal(t, 1, calls)

	_, _, err = c.GetOrSet("bad", func() (string, error) { return "", errors.New("boom") })
	assert.Error(t, err)
	_, ok := c.Get("bad")
	assert.False(t, ok)
}

func TestDeleteAndClear(t *testing.T) {
	c := New[int](DefaultConfig())
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestKey(t *testing.T) {
	assert.Equal(t, Key("a", "b"), Key("a", "b"))
	assert.NotEqual(t, Key("ab", "c"), Key("a", "bc"))
	assert.Len(t, Key("x"), 64)
}
