package collections

import "errors"

// Sentinel errors for container operations.
var (
	// ErrEmptyStack is returned by Pop and Top on an empty stack.
	ErrEmptyStack = errors.New("collections: stack is empty")

	// ErrIndexOutOfRange is returned by List.Get for an invalid index.
	ErrIndexOutOfRange = errors.New("collections: index out of range")
)

// Map is a key-unique mapping.
//
// Keys and Values enumerate in the same order, so Keys()[i] maps to Values()[i].
type Map[K comparable, V any] interface {
	// Get returns the value stored under key and whether it was present.
	Get(key K) (V, bool)

	// Put stores value under key, replacing any previous value.
	Put(key K, value V)

	// ContainsKey reports whether key is present.
	ContainsKey(key K) bool

	// Keys enumerates every key.
	Keys() []K

	// Values enumerates every value.
	Values() []V

	// Len returns the number of keys.
	Len() int
}

// List is an ordered dynamic sequence.
type List[T comparable] interface {
	// Append adds v to the end of the sequence.
	Append(v T)

	// Len returns the number of elements.
	Len() int

	// Get returns the element at index i, or ErrIndexOutOfRange.
	Get(i int) (T, error)

	// Contains reports whether an element equal to v is present.
	Contains(v T) bool
}

// Stack is a last-in first-out container.
type Stack[T any] interface {
	// Push places v on top.
	Push(v T)

	// Pop removes and returns the top element, or ErrEmptyStack.
	Pop() (T, error)

	// Top returns the top element without removing it, or ErrEmptyStack.
	Top() (T, error)

	// IsEmpty reports whether the stack holds no elements.
	IsEmpty() bool

	// Len returns the number of elements.
	Len() int
}

// Set is a membership set.
type Set[T comparable] interface {
	// Add inserts v; adding an existing member is a no-op.
	Add(v T)

	// Contains reports membership of v.
	Contains(v T) bool

	// Len returns the number of members.
	Len() int
}

// Compile-time checks that the defaults satisfy their contracts.
var (
	_ Map[string, int] = (*HashMap[string, int])(nil)
	_ List[string]     = (*ArrayList[string])(nil)
	_ Stack[int]       = (*ArrayStack[int])(nil)
	_ Set[string]      = (*HashSet[string])(nil)
)
