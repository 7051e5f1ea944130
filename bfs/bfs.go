// Package bfs runs breadth-first search over a core.Graph, ignoring weights.
//
// It answers the unweighted questions the routing engine does not: which
// cities are connected to the origin at all, and how many stops the
// fewest-stops route to each one takes.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/stationroute/core"
)

// queueItem pairs a city with its BFS depth.
type queueItem struct {
	city  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrOptionViolation, ErrStartCityNotFound, or any error
// returned by the OnVisit hook.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasCity(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartCityNotFound, start)
	}

	n := g.CityCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks city visited at depth d and records its parent.
func (w *walker) enqueue(city string, d int, parent string) {
	w.visited[city] = true
	w.res.Depth[city] = d
	if parent != "" {
		w.res.Parent[city] = parent
	}
	w.queue = append(w.queue, queueItem{city: city, depth: d})
}

// loop processes the queue until it is empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.city)
		if err := w.opts.OnVisit(item.city, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.city, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.city)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.city, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, e := range neighbors {
		if !w.visited[e.To] {
			w.enqueue(e.To, next, item.city)
		}
	}

	return nil
}

// Unreached returns, in graph order, every city of g that the traversal in
// res did not visit.
func Unreached(g *core.Graph, res *Result) []string {
	var out []string
	for _, city := range g.Cities() {
		if !res.Reached(city) {
			out = append(out, city)
		}
	}

	return out
}
