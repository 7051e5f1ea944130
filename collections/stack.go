package collections

// ArrayStack is the default Stack. The top is the last slice element.
type ArrayStack[T any] struct {
	items []T
}

// NewArrayStack returns an empty ArrayStack.
func NewArrayStack[T any]() *ArrayStack[T] {
	return &ArrayStack[T]{}
}

// Push places v on top. Complexity: O(1) amortized.
func (s *ArrayStack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top element. Complexity: O(1).
func (s *ArrayStack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmptyStack
	}
	v := s.items[n-1]
	s.items[n-1] = zero // drop the reference for the GC
	s.items = s.items[:n-1]

	return v, nil
}

// Top returns the top element without removing it.
func (s *ArrayStack[T]) Top() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}

// IsEmpty reports whether the stack is empty.
func (s *ArrayStack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of elements.
func (s *ArrayStack[T]) Len() int { return len(s.items) }
