// Package core: Graph mutation and query methods
//
// AddConnection mirrors every connection into both adjacency lists so the
// symmetric closure holds after each call. Reads hand out copies, never the
// stored lists.

package core

import (
	"fmt"

	"github.com/katalvlaran/stationroute/collections"
)

// AddCity inserts a city with an empty adjacency list.
// Adding an existing city is a no-op.
// Returns ErrEmptyCityID or ErrFrozen.
// Complexity: O(1) amortized.
func (g *Graph) AddCity(id string) error {
	if id == "" {
		return ErrEmptyCityID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	g.ensureCity(id)

	return nil
}

// AddConnection records the undirected link from–to with the given weight:
// Edge{to, w} is appended to from's list and Edge{from, w} to to's list,
// each skipped if an equal Edge is already present. A self-loop is stored once.
//
// Returns ErrEmptyCityID, ErrNegativeWeight or ErrFrozen.
// Complexity: O(deg(from) + deg(to)).
func (g *Graph) AddConnection(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyCityID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s–%s weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.frozen {
		return ErrFrozen
	}

	fromList := g.ensureCity(from)
	toList := g.ensureCity(to)

	added := appendUnique(fromList, Edge{To: to, Weight: weight})
	if appendUnique(toList, Edge{To: from, Weight: weight}) {
		added = true
	}
	if added {
		g.connections++
	}

	return nil
}

// Freeze seals the graph against further mutation. Idempotent.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// HasCity reports whether id appears in the graph.
// Complexity: O(1).
func (g *Graph) HasCity(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency.ContainsKey(id)
}

// Cities returns every city in insertion order.
// Complexity: O(V).
func (g *Graph) Cities() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency.Keys()
}

// CityCount returns |V|.
func (g *Graph) CityCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency.Len()
}

// ConnectionCount returns the number of accepted undirected connections.
func (g *Graph) ConnectionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.connections
}

// Neighbors returns a copy of the adjacency list of id, in insertion order.
// Returns ErrEmptyCityID or ErrCityNotFound.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyCityID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	list, ok := g.adjacency.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, id)
	}

	return collections.ToSlice(list), nil
}

// ensureCity returns the adjacency list of id, creating it if needed.
// Caller must hold g.mu for writing.
func (g *Graph) ensureCity(id string) collections.List[Edge] {
	if list, ok := g.adjacency.Get(id); ok {
		return list
	}
	list := g.newList()
	g.adjacency.Put(id, list)

	return list
}

// appendUnique appends e unless an equal Edge is already listed.
// Reports whether the append happened.
func appendUnique(list collections.List[Edge], e Edge) bool {
	if list.Contains(e) {
		return false
	}
	list.Append(e)

	return true
}
