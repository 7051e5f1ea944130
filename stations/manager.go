// Package stations ties the station graph, the shortest-route engine, the
// travel-time projector and the route reconstructor together behind one
// read-mostly Manager.
//
// Policy for unknown cities, applied by every read:
//
//   - a city that appears in any connection is always present; if it cannot
//     be reached it carries dijkstra.Unreachable / travel.Unreachable and
//     TraceRoute reports route.ErrUnreachable;
//   - a city that never appears is absent from ShortestRoutes and TravelTimes,
//     and TravelTime / TraceRoute report route.ErrNotFound.
package stations

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/katalvlaran/stationroute/bfs"
	"github.com/katalvlaran/stationroute/collections"
	"github.com/katalvlaran/stationroute/core"
	"github.com/katalvlaran/stationroute/dijkstra"
	"github.com/katalvlaran/stationroute/loader"
	"github.com/katalvlaran/stationroute/route"
	"github.com/katalvlaran/stationroute/travel"
)

var (
	// ErrNilGraph indicates SetStations or New was given a nil graph.
	ErrNilGraph = errors.New("stations: graph is nil")

	// ErrNotReady indicates a read on a Manager that was not built by New,
	// Open or FromReader.
	ErrNotReady = errors.New("stations: no stations published")
)

// Manager owns the current graph and its published shortest-route result.
// Build one with New, Open or FromReader; the zero value publishes nothing
// and its reads report ErrNotReady.
//
// mu guards graph, result and walk; all three are swapped together on
// recomputation so readers never observe a graph paired with a result
// computed from another.
type Manager struct {
	mu     sync.RWMutex
	graph  *core.Graph
	result *dijkstra.Result
	walk   *bfs.Result

	cfg config
}

type config struct {
	engine    []dijkstra.Option
	travel    []travel.Option
	timetable *travel.Timetable
	separator string
}

// Option configures a Manager.
type Option func(*config)

// WithEngineOptions passes options through to dijkstra.ShortestPaths,
// e.g. dijkstra.Source or dijkstra.WithFrontier.
func WithEngineOptions(opts ...dijkstra.Option) Option {
	return func(c *config) {
		c.engine = append(c.engine, opts...)
	}
}

// WithTravelOptions passes options through to the travel projector.
func WithTravelOptions(opts ...travel.Option) Option {
	return func(c *config) {
		c.travel = append(c.travel, opts...)
	}
}

// WithTimetable sets the departure board used by Schedule and Schedules.
// A nil timetable is ignored.
func WithTimetable(tt *travel.Timetable) Option {
	return func(c *config) {
		if tt != nil {
			c.timetable = tt
		}
	}
}

// WithSeparator sets the separator used by TraceRoute.
func WithSeparator(sep string) Option {
	return func(c *config) {
		c.separator = sep
	}
}

// New builds a Manager over g and computes the initial result.
func New(g *core.Graph, opts ...Option) (*Manager, error) {
	m := &Manager{cfg: config{
		separator: route.DefaultSeparator,
		timetable: travel.DefaultTimetable(),
	}}
	for _, opt := range opts {
		opt(&m.cfg)
	}
	if err := m.SetStations(g); err != nil {
		return nil, err
	}

	return m, nil
}

// Open loads the station file at path and builds a Manager over it.
func Open(path string, opts ...Option) (*Manager, error) {
	g, err := loader.LoadGraph(path)
	if err != nil {
		return nil, err
	}

	return New(g, opts...)
}

// FromReader parses a station file from r and builds a Manager over it.
func FromReader(r io.Reader, opts ...Option) (*Manager, error) {
	g, err := loader.ReadGraph(r)
	if err != nil {
		return nil, err
	}

	return New(g, opts...)
}

// SetStations freezes g, recomputes the result from scratch and publishes
// both. Once published, g rejects AddConnection with core.ErrFrozen, so all
// reads keep agreeing on the same set of cities.
// On error the previous graph and result stay published.
func (m *Manager) SetStations(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	g.Freeze()

	res, err := dijkstra.ShortestPaths(g, m.cfg.engine...)
	if err != nil {
		return fmt.Errorf("stations: compute routes: %w", err)
	}
	walk, err := bfs.BFS(g, res.Source())
	if err != nil {
		return fmt.Errorf("stations: reachability: %w", err)
	}

	m.mu.Lock()
	m.graph, m.result, m.walk = g, res, walk
	m.mu.Unlock()
	log.Debugf("Published routes from %s over %d cities", res.Source(), res.Len())

	if cut := bfs.Unreached(g, walk); len(cut) > 0 {
		log.Warnf("%d cities have no connection to %s: %v", len(cut), res.Source(), cut)
	}

	return nil
}

// Recompute reruns the engine on the current graph and publishes the new result.
func (m *Manager) Recompute() error {
	m.mu.RLock()
	g := m.graph
	m.mu.RUnlock()
	if g == nil {
		return ErrNotReady
	}

	return m.SetStations(g)
}

// published is one consistent view of the Manager's state.
type published struct {
	graph  *core.Graph
	result *dijkstra.Result
	walk   *bfs.Result
}

// snapshot returns the state published together, or ErrNotReady.
func (m *Manager) snapshot() (published, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.graph == nil || m.result == nil || m.walk == nil {
		return published{}, ErrNotReady
	}

	return published{graph: m.graph, result: m.result, walk: m.walk}, nil
}

// Source returns the origin city of the current result, or "" before
// anything was published.
func (m *Manager) Source() string {
	p, err := m.snapshot()
	if err != nil {
		return ""
	}

	return p.result.Source()
}

// Graph returns the current graph, or nil before anything was published.
func (m *Manager) Graph() *core.Graph {
	p, _ := m.snapshot()

	return p.graph
}

// Stations returns a snapshot of the adjacency structure.
func (m *Manager) Stations() (core.Adjacency, error) {
	p, err := m.snapshot()
	if err != nil {
		return nil, err
	}

	return p.graph.Adjacency(), nil
}

// ShortestRoutes returns a copy of the current city → Route map.
func (m *Manager) ShortestRoutes() (collections.Map[string, dijkstra.Route], error) {
	p, err := m.snapshot()
	if err != nil {
		return nil, err
	}

	return p.result.Routes(), nil
}

// Result returns the current result, or nil before anything was published.
func (m *Manager) Result() *dijkstra.Result {
	p, _ := m.snapshot()

	return p.result
}

// TravelTimes projects every known city.
func (m *Manager) TravelTimes() (collections.Map[string, travel.Time], error) {
	p, err := m.snapshot()
	if err != nil {
		return nil, err
	}

	return travel.Times(p.result, m.cfg.travel...)
}

// TravelTime projects a single city.
func (m *Manager) TravelTime(city string) (travel.Time, error) {
	p, err := m.snapshot()
	if err != nil {
		return travel.Unreachable, err
	}

	return travel.TimeTo(p.result, city, m.cfg.travel...)
}

// Schedules pairs every known city with its departure and arrival clocks.
func (m *Manager) Schedules() (collections.Map[string, travel.Stop], error) {
	p, err := m.snapshot()
	if err != nil {
		return nil, err
	}

	return travel.Schedules(p.result, m.cfg.timetable, m.cfg.travel...)
}

// Schedule returns the departure and arrival clocks of city.
// Unknown cities report route.ErrNotFound.
func (m *Manager) Schedule(city string) (travel.Stop, error) {
	t, err := m.TravelTime(city)
	if err != nil {
		return travel.Stop{}, err
	}

	return m.cfg.timetable.Stop(city, t), nil
}

// TraceRoute renders the route to city, e.g. "Westside->Bugapest->Dubay".
//
// A city with no chain of connections reports route.ErrUnreachable. When the
// engine ran with a distance cap, a connected city beyond it reports
// route.ErrBeyondLimit instead.
func (m *Manager) TraceRoute(city string) (string, error) {
	p, err := m.snapshot()
	if err != nil {
		return "", err
	}

	tr, err := route.Trace(p.result, city, route.WithSeparator(m.cfg.separator))
	if errors.Is(err, route.ErrUnreachable) && p.walk.Reached(city) {
		return "", fmt.Errorf("%w: %s to %q exceeds %v km", route.ErrBeyondLimit,
			p.result.Source(), city, p.result.Limit())
	}

	return tr, err
}

// Disconnected lists, in graph order, the cities with no chain of
// connections to the origin. Cities cut off only by a distance cap are
// connected and not listed; see TraceRoute.
func (m *Manager) Disconnected() ([]string, error) {
	p, err := m.snapshot()
	if err != nil {
		return nil, err
	}

	return bfs.Unreached(p.graph, p.walk), nil
}

// FewestStops returns the route to city with the fewest intermediate links,
// regardless of distance.
func (m *Manager) FewestStops(city string) ([]string, error) {
	p, err := m.snapshot()
	if err != nil {
		return nil, err
	}
	if !p.graph.HasCity(city) {
		return nil, fmt.Errorf("%w: %q", route.ErrNotFound, city)
	}
	if !p.walk.Reached(city) {
		return nil, fmt.Errorf("%w: %q", route.ErrUnreachable, city)
	}

	return p.walk.PathTo(city)
}
