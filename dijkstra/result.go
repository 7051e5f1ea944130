package dijkstra

import "github.com/katalvlaran/stationroute/collections"

// Result is the outcome of one ShortestPaths run. It is immutable once returned.
type Result struct {
	source string
	routes collections.Map[string, Route]
	limit  Distance
	stats  Stats
}

// Stats counts the work done by one run.
type Stats struct {
	Pops        int // candidates removed from the frontier
	Stale       int // pops skipped by the settle-once guard
	Settled     int // cities whose distance became final
	Relaxations int // successful distance improvements
}

// Source returns the origin city.
func (r *Result) Source() string { return r.source }

// Route returns the record of city and whether the city is known.
// Cities never mentioned in the graph are absent.
func (r *Result) Route(city string) (Route, bool) {
	return r.routes.Get(city)
}

// Has reports whether city is known.
func (r *Result) Has(city string) bool { return r.routes.ContainsKey(city) }

// Distance returns the distance of city, or Unreachable if the city is
// unknown or has no path.
func (r *Result) Distance(city string) Distance {
	rt, ok := r.routes.Get(city)
	if !ok {
		return Unreachable
	}

	return rt.Distance
}

// Cities returns every known city in graph insertion order.
func (r *Result) Cities() []string { return r.routes.Keys() }

// Len returns the number of known cities.
func (r *Result) Len() int { return r.routes.Len() }

// Limit returns the MaxDistance the run was capped at, or Unreachable when
// exploration was unbounded. A connected city farther than Limit carries the
// Unreachable sentinel too.
func (r *Result) Limit() Distance { return r.limit }

// Bounded reports whether the run was capped by WithMaxDistance.
func (r *Result) Bounded() bool { return r.limit != Unreachable }

// Stats returns the counters collected during the run.
func (r *Result) Stats() Stats { return r.stats }

// Routes returns a copy of the city → Route map.
// Complexity: O(V).
func (r *Result) Routes() collections.Map[string, Route] {
	out := collections.NewHashMap[string, Route](r.routes.Len())
	keys := r.routes.Keys()
	vals := r.routes.Values()
	for i, k := range keys {
		out.Put(k, vals[i])
	}

	return out
}

// Equal reports whether r and other have the same source and routes,
// in the same city order.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.source != other.source || r.routes.Len() != other.routes.Len() {
		return false
	}
	ak, av := r.routes.Keys(), r.routes.Values()
	bk, bv := other.routes.Keys(), other.routes.Values()
	for i := range ak {
		if ak[i] != bk[i] || av[i] != bv[i] {
			return false
		}
	}

	return true
}

// NewResult assembles a Result from precomputed routes. It is meant for
// tests and for tools that persist results; routes are copied.
func NewResult(source string, routes collections.Map[string, Route]) *Result {
	cp := collections.NewHashMap[string, Route](routes.Len())
	keys := routes.Keys()
	vals := routes.Values()
	for i, k := range keys {
		cp.Put(k, vals[i])
	}

	return &Result{source: source, routes: cp, limit: Unreachable}
}
