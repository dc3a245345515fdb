package value

import "iter"

// Pair is one ordered map entry. Keys are usually string or Atom but the
// model does not require that, nor that they be unique.
type Pair struct {
	Key any
	Val any
}

// Map is an insertion-ordered key/value sequence, the host rendering of a
// JSON object. It is not safe for concurrent mutation.
type Map struct {
	pairs  []Pair
	frozen bool
}

// NewMap returns an empty map with capacity for n pairs.
func NewMap(n int) *Map {
	return &Map{pairs: make([]Pair, 0, n)}
}

// FromPairs returns a map holding pairs directly, without copying.
func FromPairs(pairs []Pair) *Map {
	return &Map{pairs: pairs}
}

func (m *Map) Len() int {
	return len(m.pairs)
}

// Set appends an entry. Duplicate keys are kept.
func (m *Map) Set(key, val any) error {
	if m.frozen {
		return ErrFrozen
	}
	m.pairs = append(m.pairs, Pair{Key: key, Val: val})
	return nil
}

// SetPairs appends all entries in one call.
func (m *Map) SetPairs(pairs []Pair) error {
	if m.frozen {
		return ErrFrozen
	}
	m.pairs = append(m.pairs, pairs...)
	return nil
}

// Get returns the value for the first entry whose key equals key.
func (m *Map) Get(key any) (any, bool) {
	for i := range m.pairs {
		if m.pairs[i].Key == key {
			return m.pairs[i].Val, true
		}
	}
	return nil, false
}

// Pairs returns the underlying entries. Callers must not mutate a frozen
// map's entries.
func (m *Map) Pairs() []Pair {
	return m.pairs
}

// All iterates entries in insertion order.
func (m *Map) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for i := range m.pairs {
			if !yield(m.pairs[i].Key, m.pairs[i].Val) {
				return
			}
		}
	}
}

// Freeze marks the map read-only; further Set calls fail with ErrFrozen.
func (m *Map) Freeze() {
	m.frozen = true
}

func (m *Map) Frozen() bool {
	return m.frozen
}
