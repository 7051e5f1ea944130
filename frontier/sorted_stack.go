package frontier

import "github.com/katalvlaran/stationroute/collections"

// SortedStack is a stack whose elements ascend from top to bottom, so the
// accessible end always holds the current minimum.
type SortedStack struct {
	items collections.Stack[Item]
	held  collections.Stack[Item] // temporary holding area used by Insert
}

// NewSortedStack returns an empty SortedStack on the default stack container.
func NewSortedStack() *SortedStack {
	return NewSortedStackOn(collections.NewArrayStack[Item](), collections.NewArrayStack[Item]())
}

// NewSortedStackOn builds a SortedStack on caller-supplied stacks.
// Both must be empty.
func NewSortedStackOn(items, held collections.Stack[Item]) *SortedStack {
	return &SortedStack{items: items, held: held}
}

// Insert places (city, distance) below every entry with a strictly smaller
// distance and above the rest.
// Complexity: O(k), k = number of entries smaller than distance.
func (s *SortedStack) Insert(city string, distance int64) {
	for !s.items.IsEmpty() {
		top, err := s.items.Top()
		if err != nil || top.Distance >= distance {
			break
		}
		_, _ = s.items.Pop()
		s.held.Push(top)
	}

	s.items.Push(Item{City: city, Distance: distance})

	for !s.held.IsEmpty() {
		it, err := s.held.Pop()
		if err != nil {
			break
		}
		s.items.Push(it)
	}
}

// RemoveMin pops the top entry.
// Complexity: O(1).
func (s *SortedStack) RemoveMin() (Item, error) {
	it, err := s.items.Pop()
	if err != nil {
		return Item{}, ErrEmpty
	}

	return it, nil
}

// Len returns the number of queued entries.
func (s *SortedStack) Len() int { return s.items.Len() }

// Empty reports whether no entries remain.
func (s *SortedStack) Empty() bool { return s.items.IsEmpty() }
