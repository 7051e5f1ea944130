// Package core provides the station Graph: an undirected, weighted adjacency
// structure built once from a list of city-to-city connections and read-only
// afterwards.
//
// The Graph G = (V,E) is stored as
//
//	adjacency[city] = ordered list of Edge{To, Weight}
//
// and always satisfies the symmetric closure invariant: if city A lists
// Edge{B, w} then city B lists Edge{A, w}.
//
// Building:
//
//   - Build(conns, opts...) is the one-shot constructor used at load time.
//     It validates every Connection before touching the graph, so a bad
//     input never yields a partially populated Graph.
//   - AddConnection mirrors the edge into both adjacency lists and skips an
//     append when an equal Edge (same neighbor and weight) is already listed.
//   - Freeze seals the graph; later AddCity/AddConnection calls return ErrFrozen.
//
// Storage is pluggable through the collections contracts:
//
//	– WithAdjacency(m)      use m (must be empty) as the city → edges map.
//	– WithListFactory(fn)   build every adjacency list with fn.
//
// Determinism:
//
//   - Cities() and Neighbors() preserve insertion order, so repeated builds
//     from the same rows enumerate identically.
//
// Concurrency:
//
//   - All methods take an internal sync.RWMutex; reads after Freeze never
//     contend with writers.
//
// Complexity:
//
//   - AddConnection: O(deg(A) + deg(B)) for the duplicate check.
//   - Build: O(Σ deg) over all rows.
//   - Neighbors: O(deg(v)) copy.
package core
