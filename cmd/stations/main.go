// Command stations computes the shortest route from an origin city to every
// station listed in a CSV station file and prints distances, estimated travel
// times and traced routes.
//
//	stations --stationfile=stations.csv --trace=Dubay
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jessevdk/go-flags"

	"github.com/katalvlaran/stationroute/collections"
	"github.com/katalvlaran/stationroute/core"
	"github.com/katalvlaran/stationroute/dijkstra"
	"github.com/katalvlaran/stationroute/frontier"
	"github.com/katalvlaran/stationroute/stations"
	"github.com/katalvlaran/stationroute/travel"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg, os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[stations] %v\n", err)
		os.Exit(1)
	}
}

// run loads the station file described by cfg and renders the report to out.
// Log output goes to logOut.
func run(cfg *config, out, logOut io.Writer) error {
	log, err := setupLoggers(logOut, cfg.DebugLevel)
	if err != nil {
		return err
	}

	newFrontier := func() frontier.Frontier { return frontier.NewSortedStack() }
	if cfg.Frontier == frontierHeap {
		newFrontier = func() frontier.Frontier { return frontier.NewHeap() }
	}

	timetable := travel.DefaultTimetable()
	if len(cfg.Departures) > 0 {
		timetable, err = travel.ParseDepartures(cfg.Departures)
		if err != nil {
			return err
		}
	}

	log.Infof("Loading stations from %s", cfg.StationFile)
	m, err := stations.Open(cfg.StationFile,
		stations.WithEngineOptions(
			dijkstra.Source(cfg.Source),
			dijkstra.WithFrontier(newFrontier),
		),
		stations.WithTravelOptions(
			travel.WithRate(cfg.Rate),
			travel.WithHopOverhead(cfg.HopOverhead),
		),
		stations.WithTimetable(timetable),
		stations.WithSeparator(cfg.Separator),
	)
	if err != nil {
		return err
	}

	if cfg.Stations {
		adj, err := m.Stations()
		if err != nil {
			return err
		}
		renderStations(out, adj)
	}

	routes, err := m.ShortestRoutes()
	if err != nil {
		return err
	}
	times, err := m.TravelTimes()
	if err != nil {
		return err
	}
	stops, err := m.Schedules()
	if err != nil {
		return err
	}
	renderRoutes(out, m.Source(), routes, times, stops)

	cut, err := m.Disconnected()
	if err != nil {
		return err
	}
	if len(cut) > 0 {
		_, _ = fmt.Fprintf(out, "Not connected to %s: %s\n", m.Source(),
			strings.Join(cut, ", "))
	}

	for _, city := range cfg.Trace {
		tr, err := m.TraceRoute(city)
		if err != nil {
			log.Warnf("Cannot trace %s: %v", city, err)
			_, _ = fmt.Fprintf(out, "%s: %v\n", city, err)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s: %s\n", city, tr)
	}

	return nil
}

// renderRoutes prints one row per city: distance, predecessor, travel time
// and the departure/arrival clocks.
func renderRoutes(w io.Writer, source string,
	routes collections.Map[string, dijkstra.Route],
	times collections.Map[string, travel.Time],
	stops collections.Map[string, travel.Stop]) {

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Routes from " + source)
	t.AppendHeader(table.Row{"Station", "Distance (km)", "Via", "Stops",
		"Travel time (min)", "Departs", "Arrives"})
	for _, city := range routes.Keys() {
		rt, _ := routes.Get(city)
		tt, _ := times.Get(city)
		stop, _ := stops.Get(city)

		via, hops := rt.Predecessor, interface{}(tt.Hops)
		if !rt.Distance.Reachable() {
			via, hops = "-", "-"
		}
		t.AppendRow(table.Row{city, rt.Distance, via, hops, tt,
			stop.DepartureString(), stop.ArrivalString()})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// renderStations prints the adjacency list of every station.
func renderStations(w io.Writer, adj core.Adjacency) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Stations")
	t.AppendHeader(table.Row{"Station", "Connections"})
	for _, city := range adj.Keys() {
		list, _ := adj.Get(city)
		t.AppendRow(table.Row{city, collections.ToSlice(list)})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
