package intern

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingCache wraps a Cache so tests can observe constructor calls.
func countingCache() (*Cache[string], *int) {
	calls := 0
	c := NewCache(func(s string) string {
		calls++
		return s
	})
	return c, &calls
}

func TestInternReuse(t *testing.T) {
	c, calls := countingCache()
	a := c.Intern("name")
	b := c.Intern("name")
	assert.Equal(t, "name", a)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, *calls, "second lookup must hit the cache")
	assert.Equal(t, 1, c.Len())
}

func TestInternDistinctKeys(t *testing.T) {
	c, calls := countingCache()
	keys := []string{"alpha", "beta", "gamma", "alpha", "beta"}
	for _, k := range keys {
		assert.Equal(t, k, c.Intern(k))
	}
	assert.Equal(t, 3, *calls)
	assert.Equal(t, 3, c.Len())
}

func TestInternBypass(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "empty", key: ""},
		{name: "too-long", key: strings.Repeat("k", 56)},
		{name: "digit-first", key: "1abc"},
		{name: "underscore-first", key: "_abc"},
		{name: "utf8-first", key: "émile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, calls := countingCache()
			assert.Equal(t, tt.key, c.Intern(tt.key))
			assert.Equal(t, tt.key, c.Intern(tt.key))
			assert.Equal(t, 2, *calls, "bypassed keys never cache")
			assert.Equal(t, 0, c.Len())
		})
	}
}

func TestInternBoundaryLen(t *testing.T) {
	c, calls := countingCache()
	key := "k" + strings.Repeat("x", 54) // len 55, last cacheable length
	c.Intern(key)
	c.Intern(key)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, 1, c.Len())
}

func TestInternFullCache(t *testing.T) {
	c, calls := countingCache()
	for i := range cacheSize {
		c.Intern(fmt.Sprintf("key%d", i))
	}
	require.Equal(t, cacheSize, c.Len())

	// a new key on a full cache is produced fresh every time
	c.Intern("overflow")
	c.Intern("overflow")
	assert.Equal(t, cacheSize+2, *calls)
	assert.Equal(t, cacheSize, c.Len())

	// entries cached before the fill are still served
	before := *calls
	c.Intern("key0")
	assert.Equal(t, before, *calls)
}

func TestInternAtomType(t *testing.T) {
	type atom struct{ s string }
	c := NewCache(func(s string) *atom { return &atom{s: s} })
	a := c.Intern("id")
	b := c.Intern("id")
	require.Same(t, a, b)
}
