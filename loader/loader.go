// Package loader reads station connection files.
//
// A station file is CSV with a header row followed by one connection per row:
//
//	cityA,cityB,weight
//	Westside,Bugapest,10
//	Bugapest,Dubay,5
//
// Fields are trimmed of surrounding whitespace; blank lines are ignored.
// The first malformed row aborts the whole load with a *ParseError and no
// connections are returned.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/stationroute/core"
)

var (
	// ErrArity indicates a row without exactly three fields.
	ErrArity = errors.New("loader: row must have exactly 3 fields")

	// ErrBadWeight indicates a weight that is not a non-negative base-10 integer.
	ErrBadWeight = errors.New("loader: weight must be a non-negative integer")

	// ErrEmptyCity indicates a blank city field.
	ErrEmptyCity = errors.New("loader: city name is empty")
)

// ParseError reports a malformed row.
type ParseError struct {
	Line int    // 1-based line number in the input
	Row  string // raw row, fields re-joined with commas
	Err  error  // ErrArity, ErrBadWeight, ErrEmptyCity or a CSV syntax error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("loader: line %d %q: %v", e.Line, e.Row, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

// Read parses every connection from r, skipping the header row.
func Read(r io.Reader) ([]core.Connection, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // arity is checked per row
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var conns []core.Connection
	header := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &ParseError{Line: csvErr.Line, Err: csvErr.Err}
			}
			return nil, fmt.Errorf("loader: read: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if header {
			header = false
			log.Tracef("Skipping header at line %d: %v", line, record)
			continue
		}

		c, err := parseRow(record)
		if err != nil {
			return nil, &ParseError{Line: line, Row: strings.Join(record, ","), Err: err}
		}
		conns = append(conns, c)
	}

	return conns, nil
}

// parseRow turns one CSV record into a Connection. The split parts stay
// local to this call.
func parseRow(record []string) (core.Connection, error) {
	if len(record) != 3 {
		return core.Connection{}, fmt.Errorf("%w: got %d", ErrArity, len(record))
	}
	from := strings.TrimSpace(record[0])
	to := strings.TrimSpace(record[1])
	if from == "" || to == "" {
		return core.Connection{}, ErrEmptyCity
	}

	raw := strings.TrimSpace(record[2])
	w, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return core.Connection{}, fmt.Errorf("%w: %q", ErrBadWeight, raw)
	}
	if w < 0 {
		return core.Connection{}, fmt.Errorf("%w: %d", ErrBadWeight, w)
	}

	return core.Connection{From: from, To: to, Weight: w}, nil
}

// Load reads the station file at path.
func Load(path string) ([]core.Connection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open station file: %w", err)
	}
	defer f.Close()

	conns, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("Loaded %d connections from %s", len(conns), path)

	return conns, nil
}

// ReadGraph parses r and builds a frozen graph from it.
func ReadGraph(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	conns, err := Read(r)
	if err != nil {
		return nil, err
	}

	return core.Build(conns, opts...)
}

// LoadGraph loads the station file at path and builds a frozen graph from it.
func LoadGraph(path string, opts ...core.GraphOption) (*core.Graph, error) {
	conns, err := Load(path)
	if err != nil {
		return nil, err
	}
	g, err := core.Build(conns, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Infof("Station graph from %s: %d cities, %d connections",
		path, g.CityCount(), g.ConnectionCount())

	return g, nil
}
