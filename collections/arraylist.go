package collections

import "fmt"

// ArrayList is the default List, backed by a slice.
type ArrayList[T comparable] struct {
	items []T
}

// NewArrayList returns an empty ArrayList.
func NewArrayList[T comparable]() *ArrayList[T] {
	return &ArrayList[T]{}
}

// Append adds v to the end. Complexity: O(1) amortized.
func (l *ArrayList[T]) Append(v T) { l.items = append(l.items, v) }

// Len returns the number of elements.
func (l *ArrayList[T]) Len() int { return len(l.items) }

// Get returns the element at index i. Complexity: O(1).
func (l *ArrayList[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(l.items))
	}

	return l.items[i], nil
}

// Contains reports whether v is present. Complexity: O(n).
func (l *ArrayList[T]) Contains(v T) bool {
	for _, it := range l.items {
		if it == v {
			return true
		}
	}

	return false
}

// ToSlice copies the list contents into a new slice.
func ToSlice[T comparable](l List[T]) []T {
	out := make([]T, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		v, err := l.Get(i)
		if err != nil {
			// Len and Get disagree; the implementation is broken.
			panic(err)
		}
		out = append(out, v)
	}

	return out
}
