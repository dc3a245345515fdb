// Package intern provides a call-scoped cache that reuses one atom per
// distinct object key within a single parse. It must never be shared
// across calls; create a fresh Cache per document and discard it after.
package intern

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// capacity of the cache; it fills monotonically and then stops
	// mutating for the remainder of the call.
	cacheSize = 63
	// keys longer than this bypass the cache.
	maxKeyLen = 55
)

type entry[A any] struct {
	key  string
	hash uint64
	atom A
}

// Cache maps keys to reusable atoms. Entries are kept sorted by
// (hash, length, lexicographic key) for binary search.
type Cache[A any] struct {
	mk      func(string) A
	entries []entry[A]
}

// NewCache returns a cache producing atoms with mk on miss.
func NewCache[A any](mk func(string) A) *Cache[A] {
	return &Cache[A]{mk: mk, entries: make([]entry[A], 0, cacheSize)}
}

// Len returns the number of cached entries.
func (c *Cache[A]) Len() int {
	return len(c.entries)
}

// Intern returns the atom for key, reusing the cached one when the key was
// seen before. Keys of length 0, length > 55, or whose first byte is not
// an ASCII letter bypass the cache and always produce a fresh atom; the
// result is value-equal either way.
func (c *Cache[A]) Intern(key string) A {
	if len(key) == 0 || len(key) > maxKeyLen || !asciiLetter(key[0]) {
		return c.mk(key)
	}
	h := xxhash.Sum64String(key)
	idx, found := c.search(key, h)
	if found {
		return c.entries[idx].atom
	}
	atom := c.mk(key)
	c.insert(idx, key, h, atom)
	return atom
}

// search binary-searches for (h, key); when not found, the returned index
// is the insertion point.
func (c *Cache[A]) search(key string, h uint64) (int, bool) {
	lo, hi := 0, len(c.entries)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		e := &c.entries[mid]
		switch {
		case e.hash < h:
			lo = mid + 1
		case e.hash > h:
			hi = mid - 1
		case len(e.key) < len(key):
			lo = mid + 1
		case len(e.key) > len(key):
			hi = mid - 1
		default:
			cmp := strings.Compare(key, e.key)
			if cmp == 0 {
				return mid, true
			}
			if cmp > 0 {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
	}
	return lo, false
}

// insert places an entry at pos, shifting later entries. A full cache is
// left untouched.
func (c *Cache[A]) insert(pos int, key string, h uint64, atom A) {
	if len(c.entries) >= cacheSize {
		return
	}
	c.entries = append(c.entries, entry[A]{})
	copy(c.entries[pos+1:], c.entries[pos:])
	c.entries[pos] = entry[A]{key: key, hash: h, atom: atom}
}

func asciiLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
