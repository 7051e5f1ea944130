package dijkstra

import (
	"errors"
	"math"
	"strconv"

	"github.com/katalvlaran/stationroute/collections"
	"github.com/katalvlaran/stationroute/frontier"
)

// DefaultSource is the origin used when Source is not given.
const DefaultSource = "Westside"

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the source city ID is empty.
	ErrEmptySource = errors.New("dijkstra: source city ID is empty")

	// ErrSourceNotFound indicates that the source city is not in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source city not found in graph")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Distance is a cumulative route length in kilometers, or Unreachable.
type Distance int64

// Unreachable is the positive-infinity sentinel for cities with no path from
// the source.
const Unreachable Distance = math.MaxInt64

// Reachable reports whether d is a finite distance.
func (d Distance) Reachable() bool { return d != Unreachable }

// Km returns the distance in kilometers and false for Unreachable.
func (d Distance) Km() (int64, bool) {
	if d == Unreachable {
		return 0, false
	}

	return int64(d), true
}

// String renders the distance, or "unreachable".
func (d Distance) String() string {
	if d == Unreachable {
		return "unreachable"
	}

	return strconv.FormatInt(int64(d), 10)
}

// Route is the shortest-route record of one city: the previous city on the
// route and the cumulative distance from the source.
//
// For the source Route is (source, 0). For an unreachable city it is
// (source, Unreachable).
type Route struct {
	Predecessor string
	Distance    Distance
}

// Options configures ShortestPaths.
type Options struct {
	Source      string           // starting city
	MaxDistance int64            // exploration cap in km
	Frontier    frontier.Factory // queue built fresh for each run

	newRoutes  func() collections.Map[string, Route]
	newVisited func() collections.Set[string]
}

// Option is a functional option for ShortestPaths.
type Option func(*Options)

// Source sets the starting city.
func Source(city string) Option {
	return func(o *Options) {
		o.Source = city
	}
}

// WithFrontier sets the frontier factory. A nil factory is ignored.
func WithFrontier(f frontier.Factory) Option {
	return func(o *Options) {
		if f != nil {
			o.Frontier = f
		}
	}
}

// WithMaxDistance stops exploration beyond limit km. Cities farther away keep
// Unreachable. Panics on a negative value.
func WithMaxDistance(limit int64) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = limit
	}
}

// WithRouteMap sets the Map implementation backing the Result.
// The factory must return an empty map.
func WithRouteMap(f func() collections.Map[string, Route]) Option {
	return func(o *Options) {
		if f != nil {
			o.newRoutes = f
		}
	}
}

// WithVisitedSet sets the Set implementation tracking settled cities.
func WithVisitedSet(f func() collections.Set[string]) Option {
	return func(o *Options) {
		if f != nil {
			o.newVisited = f
		}
	}
}

// DefaultOptions returns the defaults:
//   - Source:      DefaultSource.
//   - MaxDistance: math.MaxInt64 (no cap).
//   - Frontier:    frontier.NewSortedStack.
func DefaultOptions() Options {
	return Options{
		Source:      DefaultSource,
		MaxDistance: math.MaxInt64,
		Frontier:    func() frontier.Frontier { return frontier.NewSortedStack() },
		newRoutes: func() collections.Map[string, Route] {
			return collections.NewHashMap[string, Route](0)
		},
		newVisited: func() collections.Set[string] {
			return collections.NewHashSet[string]()
		},
	}
}
