package travel

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/stationroute/collections"
	"github.com/katalvlaran/stationroute/dijkstra"
	"github.com/katalvlaran/stationroute/route"
)

const (
	// DefaultRate is the driving time per kilometer, in minutes.
	DefaultRate = 2.5

	// DefaultHopOverhead is the time added for every station on the route, in minutes.
	DefaultHopOverhead = 15.0
)

var (
	// ErrBadRate indicates a negative per-kilometer rate.
	ErrBadRate = errors.New("travel: rate must be non-negative")

	// ErrBadHopOverhead indicates a negative per-station overhead.
	ErrBadHopOverhead = errors.New("travel: hop overhead must be non-negative")
)

// Time is the estimated travel time to one city.
type Time struct {
	Minutes   float64 // meaningful only if Reachable
	Hops      int     // stations after the source
	Reachable bool
}

// Unreachable is the Time reported for cities with no path from the source.
var Unreachable = Time{}

// String renders the minutes with one decimal, or "unreachable".
func (t Time) String() string {
	if !t.Reachable {
		return "unreachable"
	}

	return strconv.FormatFloat(t.Minutes, 'f', 1, 64)
}

// Options configures the projection.
type Options struct {
	Rate        float64 // minutes per kilometer
	HopOverhead float64 // minutes per station
}

// Option is a functional option for Times and TimeTo.
type Option func(*Options)

// WithRate sets the minutes per kilometer. Panics on a negative value.
func WithRate(rate float64) Option {
	return func(o *Options) {
		if rate < 0 {
			panic(ErrBadRate.Error())
		}
		o.Rate = rate
	}
}

// WithHopOverhead sets the minutes added per station. Panics on a negative value.
func WithHopOverhead(minutes float64) Option {
	return func(o *Options) {
		if minutes < 0 {
			panic(ErrBadHopOverhead.Error())
		}
		o.HopOverhead = minutes
	}
}

// DefaultOptions returns Rate=DefaultRate, HopOverhead=DefaultHopOverhead.
func DefaultOptions() Options {
	return Options{Rate: DefaultRate, HopOverhead: DefaultHopOverhead}
}

// Times projects every city of res, in res.Cities() order.
//
// Returns route.ErrNilResult or route.ErrCycleDetected; an unreachable city
// is not an error and maps to Unreachable.
// Complexity: O(Σ len(path)).
func Times(res *dijkstra.Result, opts ...Option) (collections.Map[string, Time], error) {
	if res == nil {
		return nil, route.ErrNilResult
	}
	cfg := build(opts)

	out := collections.NewHashMap[string, Time](res.Len())
	for _, city := range res.Cities() {
		t, err := project(res, city, cfg)
		if err != nil {
			return nil, err
		}
		out.Put(city, t)
	}

	return out, nil
}

// TimeTo projects a single city.
//
// Returns route.ErrNotFound for a city absent from res. An unreachable city
// yields Unreachable and a nil error.
func TimeTo(res *dijkstra.Result, city string, opts ...Option) (Time, error) {
	if res == nil {
		return Unreachable, route.ErrNilResult
	}
	if !res.Has(city) {
		return Unreachable, fmt.Errorf("%w: %q", route.ErrNotFound, city)
	}

	return project(res, city, build(opts))
}

func build(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// project computes the Time of a city known to be in res.
func project(res *dijkstra.Result, city string, cfg Options) (Time, error) {
	km, ok := res.Distance(city).Km()
	if !ok {
		return Unreachable, nil
	}
	if city == res.Source() {
		return Time{Reachable: true}, nil
	}

	hops, err := route.Hops(res, city)
	if err != nil {
		return Unreachable, err
	}

	return Time{
		Minutes:   float64(km)*cfg.Rate + float64(hops)*cfg.HopOverhead,
		Hops:      hops,
		Reachable: true,
	}, nil
}
