package main

import (
	"fmt"
	"io"

	"github.com/btcsuite/btclog"

	"github.com/katalvlaran/stationroute/dijkstra"
	"github.com/katalvlaran/stationroute/loader"
	"github.com/katalvlaran/stationroute/stations"
)

// subsystemLoggers maps each subsystem tag to the logger handed to its package.
type subsystemLoggers map[string]btclog.Logger

// setupLoggers creates one sub-logger per subsystem on a shared backend
// writing to w, sets them to level and installs them in their packages.
func setupLoggers(w io.Writer, level string) (btclog.Logger, error) {
	lvl, ok := btclog.LevelFromString(level)
	if !ok {
		return nil, fmt.Errorf("invalid debug level %q", level)
	}

	backend := btclog.NewBackend(w)
	loggers := subsystemLoggers{
		"STRT": backend.Logger("STRT"),
		"DIJK": backend.Logger("DIJK"),
		"LOAD": backend.Logger("LOAD"),
		"STAT": backend.Logger("STAT"),
	}
	for _, l := range loggers {
		l.SetLevel(lvl)
	}

	dijkstra.UseLogger(loggers["DIJK"])
	loader.UseLogger(loggers["LOAD"])
	stations.UseLogger(loggers["STAT"])

	return loggers["STRT"], nil
}
