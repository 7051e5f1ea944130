package stations_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/stationroute/core"
	"github.com/katalvlaran/stationroute/dijkstra"
	"github.com/katalvlaran/stationroute/frontier"
	"github.com/katalvlaran/stationroute/loader"
	"github.com/katalvlaran/stationroute/route"
	"github.com/katalvlaran/stationroute/stations"
	"github.com/katalvlaran/stationroute/travel"
)

const stationFile = `cityA,cityB,weight
Westside,Bugapest,10
Bugapest,Dubay,5
Westside,Dubay,20
Island,Reef,4
`

type ManagerSuite struct {
	suite.Suite
	m *stations.Manager
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	m, err := stations.FromReader(strings.NewReader(stationFile))
	s.Require().NoError(err)
	s.m = m
}

func (s *ManagerSuite) TestSourceIsWestside() {
	s.Equal("Westside", s.m.Source())
}

func (s *ManagerSuite) TestStations() {
	require := require.New(s.T())
	adj, err := s.m.Stations()
	require.NoError(err)
	require.Equal([]string{"Westside", "Bugapest", "Dubay", "Island", "Reef"}, adj.Keys())
	dubay, ok := adj.Get("Dubay")
	require.True(ok)
	require.True(dubay.Contains(core.Edge{To: "Westside", Weight: 20}))
}

func (s *ManagerSuite) TestShortestRoutes() {
	require := require.New(s.T())
	routes, err := s.m.ShortestRoutes()
	require.NoError(err)

	src, _ := routes.Get("Westside")
	require.Equal(dijkstra.Route{Predecessor: "Westside", Distance: 0}, src)
	dubay, _ := routes.Get("Dubay")
	require.Equal(dijkstra.Route{Predecessor: "Bugapest", Distance: 15}, dubay)
	reef, ok := routes.Get("Reef")
	require.True(ok)
	require.Equal(dijkstra.Unreachable, reef.Distance)
	require.False(routes.ContainsKey("Atlantis"))
}

func (s *ManagerSuite) TestTravelTimes() {
	require := require.New(s.T())
	times, err := s.m.TravelTimes()
	require.NoError(err)
	require.Equal(5, times.Len())

	bp, _ := times.Get("Bugapest")
	require.InDelta(40.0, bp.Minutes, 1e-9)
	island, _ := times.Get("Island")
	require.False(island.Reachable)
	require.False(times.ContainsKey("Atlantis"))
}

func (s *ManagerSuite) TestUniformUnknownCityPolicy() {
	require := require.New(s.T())

	_, err := s.m.TravelTime("Atlantis")
	require.ErrorIs(err, route.ErrNotFound)
	_, err = s.m.TraceRoute("Atlantis")
	require.ErrorIs(err, route.ErrNotFound)

	tt, err := s.m.TravelTime("Reef")
	require.NoError(err)
	require.Equal(travel.Unreachable, tt)
	_, err = s.m.TraceRoute("Reef")
	require.ErrorIs(err, route.ErrUnreachable)
}

func (s *ManagerSuite) TestTraceRoute() {
	tr, err := s.m.TraceRoute("Dubay")
	s.Require().NoError(err)
	s.Equal("Westside->Bugapest->Dubay", tr)
}

func (s *ManagerSuite) TestDisconnectedMatchesUnreachableSentinel() {
	require := require.New(s.T())
	cut, err := s.m.Disconnected()
	require.NoError(err)
	require.Equal([]string{"Island", "Reef"}, cut)

	res := s.m.Result()
	for _, city := range res.Cities() {
		require.Equal(!res.Distance(city).Reachable(), slices.Contains(cut, city), city)
	}
}

func (s *ManagerSuite) TestFewestStops() {
	require := require.New(s.T())
	p, err := s.m.FewestStops("Dubay")
	require.NoError(err)
	require.Equal([]string{"Westside", "Dubay"}, p, "one stop beats the shorter two-link route")

	_, err = s.m.FewestStops("Reef")
	require.ErrorIs(err, route.ErrUnreachable)
	_, err = s.m.FewestStops("Atlantis")
	require.ErrorIs(err, route.ErrNotFound)
}

func (s *ManagerSuite) TestRecomputeIsIdempotent() {
	require := require.New(s.T())
	before := s.m.Result()
	require.NoError(s.m.Recompute())
	after := s.m.Result()
	require.NotSame(before, after, "recomputation publishes a fresh result")
	require.True(before.Equal(after))
}

func (s *ManagerSuite) TestSetStationsReplacesGraph() {
	require := require.New(s.T())
	g, err := core.Build([]core.Connection{{From: "Westside", To: "Reef", Weight: 2}})
	require.NoError(err)

	require.NoError(s.m.SetStations(g))
	routes, err := s.m.ShortestRoutes()
	require.NoError(err)
	require.Equal(2, routes.Len())
	_, err = s.m.TraceRoute("Dubay")
	require.ErrorIs(err, route.ErrNotFound)

	tt, err := s.m.TravelTime("Reef")
	require.NoError(err)
	require.InDelta(2*2.5+15, tt.Minutes, 1e-9)
}

func (s *ManagerSuite) TestSetStationsKeepsOldResultOnError() {
	require := require.New(s.T())
	g, err := core.Build([]core.Connection{{From: "A", To: "B", Weight: 1}})
	require.NoError(err)

	require.ErrorIs(s.m.SetStations(g), dijkstra.ErrSourceNotFound)
	require.ErrorIs(s.m.SetStations(nil), stations.ErrNilGraph)
	require.Equal("Westside", s.m.Source())
	require.True(s.m.Graph().HasCity("Dubay"))
}

func (s *ManagerSuite) TestConcurrentReadsDuringRecompute() {
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := s.m.TraceRoute("Dubay"); err != nil {
				errs <- err
			}
		}()
		go func() {
			defer wg.Done()
			if err := s.m.Recompute(); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.NoError(err)
	}
}

func TestNew_Options(t *testing.T) {
	g, err := loader.ReadGraph(strings.NewReader(stationFile))
	require.NoError(t, err)

	m, err := stations.New(g,
		stations.WithEngineOptions(
			dijkstra.Source("Dubay"),
			dijkstra.WithFrontier(func() frontier.Frontier { return frontier.NewHeap() }),
		),
		stations.WithTravelOptions(travel.WithRate(1), travel.WithHopOverhead(0)),
		stations.WithSeparator(" > "),
	)
	require.NoError(t, err)

	tr, err := m.TraceRoute("Westside")
	require.NoError(t, err)
	require.Equal(t, "Dubay > Bugapest > Westside", tr)

	tt, err := m.TravelTime("Westside")
	require.NoError(t, err)
	require.InDelta(t, 15.0, tt.Minutes, 1e-9)
}

func TestNew_FreezesGraphSoReadsStayConsistent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddConnection("Westside", "Bugapest", 10))

	m, err := stations.New(g)
	require.NoError(t, err)
	require.True(t, g.Frozen())
	require.ErrorIs(t, g.AddConnection("Westside", "Dubay", 3), core.ErrFrozen)

	adj, err := m.Stations()
	require.NoError(t, err)
	routes, err := m.ShortestRoutes()
	require.NoError(t, err)
	require.Equal(t, adj.Keys(), routes.Keys())
	require.False(t, adj.ContainsKey("Dubay"))

	_, err = m.TraceRoute("Dubay")
	require.ErrorIs(t, err, route.ErrNotFound)
}

func TestTraceRoute_BeyondDistanceLimit(t *testing.T) {
	g, err := core.Build([]core.Connection{
		{From: "Westside", To: "Near", Weight: 5},
		{From: "Near", To: "Far", Weight: 100},
		{From: "Island", To: "Reef", Weight: 1},
	})
	require.NoError(t, err)

	m, err := stations.New(g, stations.WithEngineOptions(dijkstra.WithMaxDistance(10)))
	require.NoError(t, err)

	require.Equal(t, dijkstra.Unreachable, m.Result().Distance("Far"))
	_, err = m.TraceRoute("Far")
	require.ErrorIs(t, err, route.ErrBeyondLimit)
	require.NotErrorIs(t, err, route.ErrUnreachable)

	_, err = m.TraceRoute("Reef")
	require.ErrorIs(t, err, route.ErrUnreachable)

	cut, err := m.Disconnected()
	require.NoError(t, err)
	require.Equal(t, []string{"Island", "Reef"}, cut)

	tr, err := m.TraceRoute("Near")
	require.NoError(t, err)
	require.Equal(t, "Westside->Near", tr)
}

func TestZeroManagerReportsNotReady(t *testing.T) {
	var m stations.Manager

	require.Equal(t, "", m.Source())
	require.Nil(t, m.Graph())
	require.Nil(t, m.Result())

	_, err := m.Stations()
	require.ErrorIs(t, err, stations.ErrNotReady)
	_, err = m.ShortestRoutes()
	require.ErrorIs(t, err, stations.ErrNotReady)
	_, err = m.TravelTimes()
	require.ErrorIs(t, err, stations.ErrNotReady)
	_, err = m.TravelTime("Westside")
	require.ErrorIs(t, err, stations.ErrNotReady)
	_, err = m.TraceRoute("Westside")
	require.ErrorIs(t, err, stations.ErrNotReady)
	_, err = m.Disconnected()
	require.ErrorIs(t, err, stations.ErrNotReady)
	_, err = m.FewestStops("Westside")
	require.ErrorIs(t, err, stations.ErrNotReady)
	_, err = m.Schedules()
	require.ErrorIs(t, err, stations.ErrNotReady)
	require.ErrorIs(t, m.Recompute(), stations.ErrNotReady)
}

func TestSchedule(t *testing.T) {
	tt, err := travel.ParseDepartures([]string{"Bugapest=11:50am", "Dubay=11:30pm"})
	require.NoError(t, err)
	m, err := stations.FromReader(strings.NewReader(stationFile), stations.WithTimetable(tt))
	require.NoError(t, err)

	stop, err := m.Schedule("Bugapest")
	require.NoError(t, err)
	require.Equal(t, "11:50am", stop.DepartureString())
	require.Equal(t, "12:30pm", stop.ArrivalString()) // + 40.0 min

	stop, err = m.Schedule("Dubay")
	require.NoError(t, err)
	require.Equal(t, "12:37am", stop.ArrivalString()) // + 67.5 min

	stop, err = m.Schedule("Reef")
	require.NoError(t, err)
	require.Equal(t, travel.NotScheduled, stop.ArrivalString())

	_, err = m.Schedule("Atlantis")
	require.ErrorIs(t, err, route.ErrNotFound)

	all, err := m.Schedules()
	require.NoError(t, err)
	require.Equal(t, 5, all.Len())
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.csv")
	require.NoError(t, os.WriteFile(path, []byte(stationFile), 0o600))

	m, err := stations.Open(path)
	require.NoError(t, err)
	require.Equal(t, 5, m.Result().Len())

	_, err = stations.Open(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromReader_ParseErrorAbortsLoad(t *testing.T) {
	m, err := stations.FromReader(strings.NewReader("a,b,w\nWestside,B,x\n"))
	require.Nil(t, m)
	var pe *loader.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 2, pe.Line)
}
