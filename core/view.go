// Package core: read-only adjacency snapshots
//
// Adjacency deep-copies the map and its lists under the read lock.

package core

import "github.com/katalvlaran/stationroute/collections"

// Adjacency returns a snapshot of the adjacency structure.
// The returned map and its lists are fresh copies; mutating them does not
// affect g. Key and list order match g.
//
// Complexity: O(V + E). Concurrency: read lock only.
func (g *Graph) Adjacency() Adjacency {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := collections.NewHashMap[string, collections.List[Edge]](g.adjacency.Len())
	keys := g.adjacency.Keys()
	lists := g.adjacency.Values()
	for i, city := range keys {
		cp := collections.NewArrayList[Edge]()
		for _, e := range collections.ToSlice(lists[i]) {
			cp.Append(e)
		}
		out.Put(city, cp)
	}

	return out
}
