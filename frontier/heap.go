package frontier

import "container/heap"

// Heap is a binary min-heap Frontier with lazy decrease-key: improved
// distances are pushed as new items and stale ones are left for the caller
// to skip.
type Heap struct {
	pq itemPQ
}

// NewHeap returns an empty Heap.
func NewHeap() *Heap {
	h := &Heap{}
	heap.Init(&h.pq)

	return h
}

// Insert pushes a candidate. Complexity: O(log n).
func (h *Heap) Insert(city string, distance int64) {
	heap.Push(&h.pq, Item{City: city, Distance: distance})
}

// RemoveMin pops the smallest candidate. Complexity: O(log n).
func (h *Heap) RemoveMin() (Item, error) {
	if h.pq.Len() == 0 {
		return Item{}, ErrEmpty
	}

	return heap.Pop(&h.pq).(Item), nil
}

// Len returns the number of queued items.
func (h *Heap) Len() int { return h.pq.Len() }

// Empty reports whether no items remain.
func (h *Heap) Empty() bool { return h.pq.Len() == 0 }

// itemPQ implements heap.Interface ordered by Distance ascending.
type itemPQ []Item

func (pq itemPQ) Len() int           { return len(pq) }
func (pq itemPQ) Less(i, j int) bool { return pq[i].Distance < pq[j].Distance }
func (pq itemPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be an Item.
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(Item)) }

// Pop is called by heap.Pop.
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
