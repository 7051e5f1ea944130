package dijkstra_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stationroute/collections"
	"github.com/katalvlaran/stationroute/core"
	"github.com/katalvlaran/stationroute/dijkstra"
	"github.com/katalvlaran/stationroute/frontier"
)

// buildTriangle is the Westside–Bugapest–Dubay scenario.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build([]core.Connection{
		{From: "Westside", To: "Bugapest", Weight: 10},
		{From: "Bugapest", To: "Dubay", Weight: 5},
		{From: "Westside", To: "Dubay", Weight: 20},
	})
	require.NoError(t, err)

	return g
}

// frontiers lists the frontier factories every engine test runs against.
func frontiers() map[string]frontier.Factory {
	return map[string]frontier.Factory{
		"SortedStack": func() frontier.Frontier { return frontier.NewSortedStack() },
		"Heap":        func() frontier.Frontier { return frontier.NewHeap() },
	}
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestShortestPaths_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPaths(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPaths_EmptySource(t *testing.T) {
	_, err := dijkstra.ShortestPaths(buildTriangle(t), dijkstra.Source(""))
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)
}

func TestShortestPaths_SourceNotFound(t *testing.T) {
	_, err := dijkstra.ShortestPaths(buildTriangle(t), dijkstra.Source("Atlantis"))
	assert.ErrorIs(t, err, dijkstra.ErrSourceNotFound)
}

func TestShortestPaths_DefaultSourceIsWestside(t *testing.T) {
	res, err := dijkstra.ShortestPaths(buildTriangle(t))
	require.NoError(t, err)
	assert.Equal(t, "Westside", res.Source())
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = dijkstra.ShortestPaths(buildTriangle(t), dijkstra.WithMaxDistance(-1))
	})
}

// ------------------------------------------------------------------------
// 2. Scenarios.
// ------------------------------------------------------------------------

func TestShortestPaths_TriangleViaBugapest(t *testing.T) {
	for name, f := range frontiers() {
		t.Run(name, func(t *testing.T) {
			res, err := dijkstra.ShortestPaths(buildTriangle(t), dijkstra.WithFrontier(f))
			require.NoError(t, err)

			src, ok := res.Route("Westside")
			require.True(t, ok)
			assert.Equal(t, dijkstra.Route{Predecessor: "Westside", Distance: 0}, src)

			dubay, ok := res.Route("Dubay")
			require.True(t, ok)
			assert.Equal(t, dijkstra.Route{Predecessor: "Bugapest", Distance: 15}, dubay)

			bp, ok := res.Route("Bugapest")
			require.True(t, ok)
			assert.Equal(t, dijkstra.Route{Predecessor: "Westside", Distance: 10}, bp)
		})
	}
}

// A visited neighbor listed first must not stop relaxation of the rest.
func TestShortestPaths_VisitedNeighborDoesNotAbortRelaxation(t *testing.T) {
	g, err := core.Build([]core.Connection{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
		{From: "A", To: "C", Weight: 10},
	})
	require.NoError(t, err)

	res, err := dijkstra.ShortestPaths(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distance(2), res.Distance("C"))
	rt, _ := res.Route("C")
	assert.Equal(t, "B", rt.Predecessor)
	assert.Greater(t, res.Stats().Stale, 0, "the 10 km candidate for C must be skipped as stale")
}

func TestShortestPaths_DisconnectedCityKeepsSentinel(t *testing.T) {
	g, err := core.Build([]core.Connection{
		{From: "Westside", To: "Bugapest", Weight: 10},
		{From: "Island", To: "Reef", Weight: 3},
	})
	require.NoError(t, err)

	res, err := dijkstra.ShortestPaths(g)
	require.NoError(t, err)

	for _, city := range []string{"Island", "Reef"} {
		rt, ok := res.Route(city)
		require.True(t, ok, "%s appears in an edge and must be present", city)
		assert.Equal(t, dijkstra.Route{Predecessor: "Westside", Distance: dijkstra.Unreachable}, rt)
		assert.False(t, rt.Distance.Reachable())
	}

	_, ok := res.Route("Nowhere")
	assert.False(t, ok, "a city never mentioned must be absent")
	assert.Equal(t, 4, res.Len())
}

func TestShortestPaths_SingleCity(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddCity("Solo"))

	res, err := dijkstra.ShortestPaths(g, dijkstra.Source("Solo"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Len())
	assert.Equal(t, dijkstra.Distance(0), res.Distance("Solo"))
}

func TestShortestPaths_ZeroWeightAndSelfLoop(t *testing.T) {
	g, err := core.Build([]core.Connection{
		{From: "X", To: "X", Weight: 4},
		{From: "X", To: "Y", Weight: 0},
	})
	require.NoError(t, err)

	res, err := dijkstra.ShortestPaths(g, dijkstra.Source("X"))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distance(0), res.Distance("X"))
	assert.Equal(t, dijkstra.Distance(0), res.Distance("Y"))
}

func TestShortestPaths_MaxDistance(t *testing.T) {
	g, err := core.Build([]core.Connection{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	})
	require.NoError(t, err)

	res, err := dijkstra.ShortestPaths(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distance(1), res.Distance("B"))
	assert.Equal(t, dijkstra.Unreachable, res.Distance("C"))
	assert.Equal(t, dijkstra.Unreachable, res.Distance("D"))
	assert.True(t, res.Bounded())
	assert.Equal(t, dijkstra.Distance(1), res.Limit())

	unbounded, err := dijkstra.ShortestPaths(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.False(t, unbounded.Bounded())
	assert.Equal(t, dijkstra.Unreachable, unbounded.Limit())
}

func TestShortestPaths_CustomContainers(t *testing.T) {
	routeMaps, sets := 0, 0
	res, err := dijkstra.ShortestPaths(buildTriangle(t),
		dijkstra.WithRouteMap(func() collections.Map[string, dijkstra.Route] {
			routeMaps++
			return collections.NewHashMap[string, dijkstra.Route](8)
		}),
		dijkstra.WithVisitedSet(func() collections.Set[string] {
			sets++
			return collections.NewHashSet[string]()
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, routeMaps)
	assert.Equal(t, 1, sets)
	assert.Equal(t, dijkstra.Distance(15), res.Distance("Dubay"))
}

func TestDistance_String(t *testing.T) {
	assert.Equal(t, "15", dijkstra.Distance(15).String())
	assert.Equal(t, "unreachable", dijkstra.Unreachable.String())

	km, ok := dijkstra.Unreachable.Km()
	assert.False(t, ok)
	assert.Zero(t, km)
	km, ok = dijkstra.Distance(7).Km()
	assert.True(t, ok)
	assert.Equal(t, int64(7), km)
}

// ------------------------------------------------------------------------
// 3. Properties.
// ------------------------------------------------------------------------

func TestShortestPaths_Idempotent(t *testing.T) {
	g := randomGraph(rand.New(rand.NewSource(7)), 12, 25)
	first, err := dijkstra.ShortestPaths(g, dijkstra.Source("c0"))
	require.NoError(t, err)
	second, err := dijkstra.ShortestPaths(g, dijkstra.Source("c0"))
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	if diff := cmp.Diff(first.Routes().Values(), second.Routes().Values()); diff != "" {
		t.Errorf("recomputation differs (-first +second):\n%s", diff)
	}
}

func TestShortestPaths_FrontiersAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		g := randomGraph(rng, 9, 14)
		a, err := dijkstra.ShortestPaths(g, dijkstra.Source("c0"),
			dijkstra.WithFrontier(func() frontier.Frontier { return frontier.NewSortedStack() }))
		require.NoError(t, err)
		b, err := dijkstra.ShortestPaths(g, dijkstra.Source("c0"),
			dijkstra.WithFrontier(func() frontier.Frontier { return frontier.NewHeap() }))
		require.NoError(t, err)

		for _, city := range g.Cities() {
			assert.Equal(t, a.Distance(city), b.Distance(city), "graph %d city %s", i, city)
		}
	}
}

func TestShortestPaths_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 40; i++ {
		g := randomGraph(rng, 7, 9)
		for name, f := range frontiers() {
			res, err := dijkstra.ShortestPaths(g, dijkstra.Source("c0"), dijkstra.WithFrontier(f))
			require.NoError(t, err)

			want := bruteForce(t, g, "c0")
			for _, city := range g.Cities() {
				got := res.Distance(city)
				w, ok := want[city]
				if !ok {
					assert.Equal(t, dijkstra.Unreachable, got, "%s graph %d: %s must be unreachable", name, i, city)
					continue
				}
				assert.Equal(t, dijkstra.Distance(w), got, "%s graph %d: distance to %s", name, i, city)
			}
		}
	}
}

func TestShortestPaths_PredecessorInvariant(t *testing.T) {
	g := randomGraph(rand.New(rand.NewSource(5)), 15, 30)
	res, err := dijkstra.ShortestPaths(g, dijkstra.Source("c0"))
	require.NoError(t, err)

	for _, city := range res.Cities() {
		rt, _ := res.Route(city)
		if city == "c0" || !rt.Distance.Reachable() {
			continue
		}
		prev := res.Distance(rt.Predecessor)
		require.True(t, prev.Reachable())

		// distance(c) == distance(pred) + weight(pred→c) for some listed edge.
		nb, err := g.Neighbors(rt.Predecessor)
		require.NoError(t, err)
		found := false
		for _, e := range nb {
			if e.To == city && prev+dijkstra.Distance(e.Weight) == rt.Distance {
				found = true
				break
			}
		}
		assert.True(t, found, "no edge %s→%s explains distance %v", rt.Predecessor, city, rt.Distance)
	}
}

// ------------------------------------------------------------------------
// 4. Helpers.
// ------------------------------------------------------------------------

// randomGraph builds n cities c0..c(n-1) and m random connections.
// Some cities may end up disconnected, which is intended.
func randomGraph(rng *rand.Rand, n, m int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddCity(fmt.Sprintf("c%d", i))
	}
	for i := 0; i < m; i++ {
		a := fmt.Sprintf("c%d", rng.Intn(n))
		b := fmt.Sprintf("c%d", rng.Intn(n))
		_ = g.AddConnection(a, b, rng.Int63n(20))
	}
	g.Freeze()

	return g
}

// bruteForce enumerates every simple path from src and keeps the minimum
// weight per reachable city.
func bruteForce(t *testing.T, g *core.Graph, src string) map[string]int64 {
	t.Helper()
	best := map[string]int64{}
	onPath := map[string]bool{}

	var walk func(city string, dist int64)
	walk = func(city string, dist int64) {
		if d, ok := best[city]; !ok || dist < d {
			best[city] = dist
		}
		onPath[city] = true
		nb, err := g.Neighbors(city)
		require.NoError(t, err)
		for _, e := range nb {
			if onPath[e.To] {
				continue
			}
			if dist > math.MaxInt64-e.Weight {
				continue
			}
			walk(e.To, dist+e.Weight)
		}
		onPath[city] = false
	}
	walk(src, 0)

	return best
}
