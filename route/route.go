// Package route replays the predecessor links of a dijkstra.Result into
// concrete source → destination paths.
//
// Every walk is bounded by the number of known cities: a longer walk can only
// mean the predecessor chain loops, which is reported as ErrCycleDetected
// rather than spinning forever.
package route

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/stationroute/dijkstra"
)

// DefaultSeparator joins the cities of a traced route.
const DefaultSeparator = "->"

var (
	// ErrNilResult indicates that a nil *dijkstra.Result was passed.
	ErrNilResult = errors.New("route: result is nil")

	// ErrNotFound indicates a city that does not appear in the result.
	ErrNotFound = errors.New("route: city not found")

	// ErrUnreachable indicates a known city with no path from the source.
	ErrUnreachable = errors.New("route: no path from source")

	// ErrBeyondLimit indicates a connected city lying beyond the distance
	// cap of a bounded run.
	ErrBeyondLimit = errors.New("route: beyond distance limit")

	// ErrCycleDetected indicates the predecessor walk exceeded the number of
	// known cities without reaching the source. The result is corrupt.
	ErrCycleDetected = errors.New("route: predecessor cycle detected")
)

// Path returns the cities from the source to target, both included.
// The path of the source is just [source].
//
// Returns ErrNilResult, ErrNotFound, ErrUnreachable or ErrCycleDetected.
// Complexity: O(len(path)).
func Path(res *dijkstra.Result, target string) ([]string, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	rt, ok := res.Route(target)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, target)
	}
	if !rt.Distance.Reachable() {
		return nil, fmt.Errorf("%w: %s to %q", ErrUnreachable, res.Source(), target)
	}

	src := res.Source()
	limit := res.Len()
	path := []string{target}
	for cur := target; cur != src; {
		if len(path) > limit {
			return nil, fmt.Errorf("%w: walk from %q exceeded %d cities", ErrCycleDetected, target, limit)
		}
		rt, ok := res.Route(cur)
		if !ok {
			return nil, fmt.Errorf("%w: predecessor %q of route to %q", ErrNotFound, cur, target)
		}
		cur = rt.Predecessor
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Hops returns the number of predecessor links between target and the source,
// i.e. the number of stations after the source on the route.
func Hops(res *dijkstra.Result, target string) (int, error) {
	path, err := Path(res, target)
	if err != nil {
		return 0, err
	}

	return len(path) - 1, nil
}

// TraceOption configures Trace.
type TraceOption func(*traceOptions)

type traceOptions struct {
	separator string
}

// WithSeparator sets the string placed between consecutive cities.
func WithSeparator(sep string) TraceOption {
	return func(o *traceOptions) {
		o.separator = sep
	}
}

// Trace renders the route to target as "Westside->A->...->target".
func Trace(res *dijkstra.Result, target string, opts ...TraceOption) (string, error) {
	cfg := traceOptions{separator: DefaultSeparator}
	for _, opt := range opts {
		opt(&cfg)
	}

	path, err := Path(res, target)
	if err != nil {
		return "", err
	}

	return strings.Join(path, cfg.separator), nil
}
