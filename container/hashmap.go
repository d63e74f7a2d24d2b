package container

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// HashMap is a fixed-capacity open-addressed map with linear probing,
// keyed by integer hashes. Clear is amortized O(1): a slot is occupied
// only while its valid stamp matches the current generation.
//
// Capacity must stay strictly larger than the live population; a probe
// that finds every slot occupied panics rather than loop forever.
type HashMap[K constraints.Unsigned, V any] struct {
	n          int
	generation uint32
	valid      []uint32
	keys       []K
	values     []V
}

// NewHashMap returns an empty map with exactly n slots.
func NewHashMap[K constraints.Unsigned, V any](n int) *HashMap[K, V] {
	if n <= 0 {
		panic("hashmap: capacity must be positive")
	}
	return &HashMap[K, V]{
		n:          n,
		generation: 1,
		valid:      make([]uint32, n),
		keys:       make([]K, n),
		values:     make([]V, n),
	}
}

// GetIndex probes forward from key mod n. It returns (true, slot) when
// a slot already holds key, else (false, slot) for the first empty
// slot; either way the slot may be passed straight to Set without
// reprobing.
func (m *HashMap[K, V]) GetIndex(key K) (bool, int) {
	i := int(key % K(m.n))
	for probes := 0; m.valid[i] == m.generation; probes++ {
		if probes >= m.n {
			panic(fmt.Sprintf("hashmap: all %d slots occupied, raise the hash capacity", m.n))
		}
		if m.keys[i] == key {
			return true, i
		}
		if i++; i == m.n {
			i = 0
		}
	}
	return false, i
}

// Set stores (key, value) in slot i and marks it occupied.
func (m *HashMap[K, V]) Set(i int, key K, value V) {
	m.valid[i] = m.generation
	m.keys[i] = key
	m.values[i] = value
}

// Get returns the value in slot i.
func (m *HashMap[K, V]) Get(i int) V {
	return m.values[i]
}

// Clear empties the map by bumping the generation. When the counter
// would wrap it re-zeroes the stamps and starts over at 1.
func (m *HashMap[K, V]) Clear() {
	if m.generation == math.MaxUint32 {
		for i := range m.valid {
			m.valid[i] = 0
		}
		m.generation = 1
		return
	}
	m.generation++
}
