package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/katalvlaran/stationroute/dijkstra"
	"github.com/katalvlaran/stationroute/route"
	"github.com/katalvlaran/stationroute/travel"
)

const (
	defaultStationFile = "stations.csv"
	defaultDebugLevel  = "info"

	frontierStack = "stack"
	frontierHeap  = "heap"
)

// config defines the command line options of the stations tool.
type config struct {
	StationFile string   `short:"f" long:"stationfile" description:"Path to the CSV station file (header row, then cityA,cityB,weight)"`
	Source      string   `short:"s" long:"source" description:"City every route starts from"`
	Rate        float64  `long:"rate" description:"Travel minutes per kilometer"`
	HopOverhead float64  `long:"hopoverhead" description:"Travel minutes added per station on the route"`
	Frontier    string   `long:"frontier" description:"Frontier used by the route engine" choice:"stack" choice:"heap"`
	Trace       []string `short:"t" long:"trace" description:"Print the route to this city; may be repeated"`
	Departures  []string `long:"departure" description:"Departure clock of a station as City=9:35am; may be repeated and replaces the built-in timetable"`
	Separator   string   `long:"separator" description:"Separator between cities in traced routes"`
	Stations    bool     `long:"showstations" description:"Also print the adjacency list of every station"`
	DebugLevel  string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`
}

// defaultConfig returns a config with every option at its default.
func defaultConfig() config {
	return config{
		StationFile: defaultStationFile,
		Source:      dijkstra.DefaultSource,
		Rate:        travel.DefaultRate,
		HopOverhead: travel.DefaultHopOverhead,
		Frontier:    frontierStack,
		Separator:   route.DefaultSeparator,
		DebugLevel:  defaultDebugLevel,
	}
}

// loadConfig parses args over the defaults and validates the result.
func loadConfig(args []string) (*config, error) {
	cfg := defaultConfig()
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	if cfg.Rate < 0 {
		return nil, fmt.Errorf("invalid --rate %v: %w", cfg.Rate, travel.ErrBadRate)
	}
	if cfg.HopOverhead < 0 {
		return nil, fmt.Errorf("invalid --hopoverhead %v: %w", cfg.HopOverhead,
			travel.ErrBadHopOverhead)
	}
	if cfg.Source == "" {
		return nil, dijkstra.ErrEmptySource
	}
	if _, err := travel.ParseDepartures(cfg.Departures); err != nil {
		return nil, fmt.Errorf("invalid --departure: %w", err)
	}

	return &cfg, nil
}
