package collections

// HashSet is the default Set.
type HashSet[T comparable] struct {
	members map[T]struct{}
}

// NewHashSet returns an empty HashSet.
func NewHashSet[T comparable]() *HashSet[T] {
	return &HashSet[T]{members: make(map[T]struct{})}
}

// Add inserts v.
func (s *HashSet[T]) Add(v T) { s.members[v] = struct{}{} }

// Contains reports membership of v.
func (s *HashSet[T]) Contains(v T) bool {
	_, ok := s.members[v]

	return ok
}

// Len returns the number of members.
func (s *HashSet[T]) Len() int { return len(s.members) }
