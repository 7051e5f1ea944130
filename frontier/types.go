package frontier

import "errors"

// ErrEmpty is returned by RemoveMin when no candidates remain.
var ErrEmpty = errors.New("frontier: no pending candidates")

// Item is one pending candidate.
type Item struct {
	City     string
	Distance int64
}

// Frontier is a minimum-first queue of candidates.
type Frontier interface {
	// Insert queues city at the given tentative distance.
	Insert(city string, distance int64)

	// RemoveMin removes and returns the candidate with the smallest distance,
	// or ErrEmpty.
	RemoveMin() (Item, error)

	// Len returns the number of queued candidates, stale ones included.
	Len() int

	// Empty reports whether Len() == 0.
	Empty() bool
}

// Factory builds a fresh Frontier for one engine run.
type Factory func() Frontier

var (
	_ Frontier = (*SortedStack)(nil)
	_ Frontier = (*Heap)(nil)
)
