// Package dijkstra computes single-source shortest routes over a station
// graph (core.Graph) with non-negative connection weights.
//
// Overview:
//
//   - ShortestPaths(g, opts...) returns a *Result holding one Route
//     {Predecessor, Distance} per city of g.
//   - Every city starts at (source, Unreachable); the source is (source, 0).
//   - The main loop pops the minimum candidate from a frontier.Frontier,
//     skips it if the city is already settled, settles it otherwise, and
//     relaxes each neighbor: a strictly shorter candidate replaces the Route
//     and is queued.
//
// Settle-once guard:
//
//	A stale duplicate popped for an already-settled city skips only that pop.
//	Relaxation of the current city's neighbors is never cut short, otherwise
//	later neighbors would keep a too-long distance.
//
// Frontier:
//
//	The default frontier is frontier.SortedStack, an ascending stack without
//	decrease-key. Because it keeps every queued candidate globally ordered,
//	the first pop of a city carries its minimum distance. WithFrontier swaps
//	in any other minimum-first queue (e.g. frontier.NewHeap) with identical
//	results.
//
// Unreachable cities:
//
//	A city never settled keeps Distance == Unreachable. Callers must check
//	Distance.Reachable() before doing arithmetic with it.
//
// Options:
//
//	– Source(id)            starting city, default DefaultSource ("Westside").
//	– WithFrontier(f)       frontier factory, default frontier.NewSortedStack.
//	– WithMaxDistance(x)    stop exploring past x km (x ≥ 0; panics otherwise).
//	– WithRouteMap(f)       map implementation backing the Result.
//	– WithVisitedSet(f)     set implementation for settled cities.
//
// Errors (sentinel):
//
//	– ErrNilGraph        graph pointer is nil.
//	– ErrEmptySource     source ID is empty.
//	– ErrSourceNotFound  source city is not in the graph.
//
// Complexity:
//
//   - With SortedStack: O(E · F) worst case, F = frontier size.
//   - With Heap:        O((V + E) log V).
//   - Space: O(V + E).
//
// Logging is silent until UseLogger is called.
package dijkstra
