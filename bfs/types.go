// Package bfs provides tunable options and error definitions
// for breadth-first search over a station graph.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartCityNotFound is returned when the start city is absent.
	ErrStartCityNotFound = errors.New("bfs: start city not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when visiting a city. Returning an error aborts the
	// search and propagates that error.
	OnVisit func(city string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many stops.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(string, int) error { return nil },
	}
}

// WithOnVisit registers a callback run on every visit.
func WithOnVisit(fn func(city string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to d stops from the start.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a traversal:
//   - Order:  cities in visit sequence.
//   - Depth:  fewest stops from the start to each visited city.
//   - Parent: predecessor of each visited city on a fewest-stops route.
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether city was visited.
func (r *Result) Reached(city string) bool {
	_, ok := r.Depth[city]

	return ok
}

// PathTo reconstructs the fewest-stops route from the start to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: %q not reached from %q", dest, r.Start)
	}
	path := []string{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
