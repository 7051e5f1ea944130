package collections

// HashMap is the default Map: a Go map for O(1) lookups plus a key slice that
// records insertion order, so Keys and Values enumerate deterministically.
type HashMap[K comparable, V any] struct {
	index map[K]int // key → position in keys/values
	keys  []K
	vals  []V
}

// NewHashMap returns an empty HashMap with room for capacity keys.
// Complexity: O(capacity).
func NewHashMap[K comparable, V any](capacity int) *HashMap[K, V] {
	if capacity < 0 {
		capacity = 0
	}

	return &HashMap[K, V]{
		index: make(map[K]int, capacity),
		keys:  make([]K, 0, capacity),
		vals:  make([]V, 0, capacity),
	}
}

// Get returns the value for key. Complexity: O(1).
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}

	return m.vals[i], true
}

// Put stores value under key. Replacing keeps the key's original position.
// Complexity: O(1) amortized.
func (m *HashMap[K, V]) Put(key K, value V) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = value
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
}

// ContainsKey reports whether key is present. Complexity: O(1).
func (m *HashMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.index[key]

	return ok
}

// Keys returns a copy of the keys in insertion order. Complexity: O(n).
func (m *HashMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)

	return out
}

// Values returns a copy of the values in key insertion order. Complexity: O(n).
func (m *HashMap[K, V]) Values() []V {
	out := make([]V, len(m.vals))
	copy(out, m.vals)

	return out
}

// Len returns the number of keys.
func (m *HashMap[K, V]) Len() int { return len(m.keys) }
