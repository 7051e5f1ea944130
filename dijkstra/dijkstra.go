package dijkstra

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"github.com/katalvlaran/stationroute/collections"
	"github.com/katalvlaran/stationroute/core"
	"github.com/katalvlaran/stationroute/frontier"
)

// ShortestPaths computes the shortest route from the source city
// (Options.Source, default DefaultSource) to every city of g.
//
// Returns a Result with exactly one Route per city of g. The frontier and the
// settled set are scoped to this call and discarded on return; the Result is
// only built once the main loop has terminated.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be non-empty (ErrEmptySource).
//  3. g must contain Source (ErrSourceNotFound).
//
// Re-running on an unmodified graph yields an Equal result.
func ShortestPaths(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options over the defaults.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph, then source presence, then source membership.
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if !g.HasCity(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}

	// 3) Per-run state: routes, settled set and frontier live only in r.
	r := &runner{
		g:        g,
		options:  cfg,
		routes:   cfg.newRoutes(),
		visited:  cfg.newVisited(),
		frontier: cfg.Frontier(),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	// 4) Publish only after the loop has terminated.
	res := &Result{
		source: cfg.Source,
		routes: r.routes,
		limit:  Distance(cfg.MaxDistance),
		stats:  r.stats,
	}
	log.Infof("Computed routes from %s: %d cities, %d settled, "+
		"%d frontier pops (%d stale)", cfg.Source, res.Len(),
		r.stats.Settled, r.stats.Pops, r.stats.Stale)
	log.Tracef("Routes from %s: %v", cfg.Source, newLogClosure(func() string {
		return spew.Sdump(res.Routes().Values())
	}))

	return res, nil
}

// runner holds the mutable state of a single ShortestPaths execution.
type runner struct {
	g        *core.Graph
	options  Options
	routes   collections.Map[string, Route]
	visited  collections.Set[string]
	frontier frontier.Frontier
	stats    Stats
}

// init sets every city to (source, Unreachable), the source to (source, 0),
// and seeds the frontier with the source.
func (r *runner) init() {
	src := r.options.Source

	// 1) Every city starts as (source, Unreachable), in graph order.
	for _, city := range r.g.Cities() {
		r.routes.Put(city, Route{Predecessor: src, Distance: Unreachable})
	}

	// 2) The source is its own predecessor at distance zero.
	r.routes.Put(src, Route{Predecessor: src, Distance: 0})

	// 3) Seed the frontier with the source.
	r.frontier.Insert(src, 0)
}

// process is the main loop. It ends when the frontier is empty or when the
// smallest pending distance exceeds MaxDistance.
func (r *runner) process() error {
	for !r.frontier.Empty() {
		// 1) Pop the smallest pending candidate.
		item, err := r.frontier.RemoveMin()
		if err != nil {
			return fmt.Errorf("dijkstra: frontier reported %d items but: %w",
				r.frontier.Len(), err)
		}
		r.stats.Pops++

		// 2) Stale duplicate of an already settled city: skip this pop only,
		//    never the remaining neighbors of the city being relaxed.
		if r.visited.Contains(item.City) {
			r.stats.Stale++
			continue
		}

		// 3) Everything still queued lies beyond MaxDistance.
		if item.Distance > r.options.MaxDistance {
			break
		}

		// 4) Settle the city; its distance is final.
		r.visited.Add(item.City)
		r.stats.Settled++
		log.Debugf("Settled %s at %d km", item.City, item.Distance)

		// 5) Relax every connection leaving it.
		if err := r.relax(item.City); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the route of every neighbor of u.
// Assumes u is settled, so its distance is finite.
func (r *runner) relax(u string) error {
	// 1) Snapshot u's adjacency list and settled distance.
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	cur, _ := r.routes.Get(u)
	// 2) Attempt each relaxation in adjacency order.
	for _, e := range neighbors {
		// 2a) Guard the sentinel against overflow on absurd weights.
		if e.Weight > int64(Unreachable)-int64(cur.Distance) {
			continue
		}
		// 2b) Candidates beyond MaxDistance are never recorded.
		candidate := cur.Distance + Distance(e.Weight)
		if int64(candidate) > r.options.MaxDistance {
			continue
		}

		target, ok := r.routes.Get(e.To)
		if !ok {
			// Symmetric closure guarantees every neighbor is a city of g.
			return fmt.Errorf("dijkstra: neighbor %q of %q: %w", e.To, u, core.ErrCityNotFound)
		}
		// 2c) Only a strict improvement replaces the route.
		if candidate >= target.Distance {
			continue
		}

		r.routes.Put(e.To, Route{Predecessor: u, Distance: candidate})
		r.frontier.Insert(e.To, int64(candidate))
		r.stats.Relaxations++
		log.Tracef("Relaxed %s via %s: %v -> %d km", e.To, u, target.Distance, candidate)
	}

	return nil
}
