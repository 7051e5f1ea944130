package travel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/stationroute/collections"
	"github.com/katalvlaran/stationroute/dijkstra"
)

const (
	// ClockLayout is the 12-hour wall-clock format of timetables, e.g. "9:35am".
	ClockLayout = "3:04pm"

	// NotScheduled is rendered for a station without a listed departure.
	NotScheduled = "N/A"

	minutesPerDay = 24 * 60
)

var (
	// ErrBadClock indicates a wall-clock value not in ClockLayout.
	ErrBadClock = errors.New("travel: clock must look like 9:35am")

	// ErrBadDeparture indicates a departure entry not of the form City=9:35am.
	ErrBadDeparture = errors.New("travel: departure must look like City=9:35am")
)

// Clock is a time of day in whole minutes after midnight, in [0, 1440).
type Clock int

// ParseClock parses a 12-hour clock such as "9:35am" or "12:30 PM".
func ParseClock(s string) (Clock, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	t, err := time.Parse(ClockLayout, norm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadClock, s)
	}

	return Clock(t.Hour()*60 + t.Minute()), nil
}

// MustParseClock is like ParseClock but panics on error.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}

	return c
}

// Add returns c advanced by minutes, wrapping past midnight. Fractions of a
// minute are dropped.
func (c Clock) Add(minutes float64) Clock {
	m := (int(c) + int(minutes)) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}

	return Clock(m)
}

// String renders c in ClockLayout.
func (c Clock) String() string {
	return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(c) * time.Minute).
		Format(ClockLayout)
}

// Timetable lists the departure clock of each scheduled station, in the
// order the stations were added.
type Timetable struct {
	departures collections.Map[string, Clock]
}

// NewTimetable returns an empty Timetable.
func NewTimetable() *Timetable {
	return &Timetable{departures: collections.NewHashMap[string, Clock](0)}
}

// DefaultTimetable returns the built-in departure board.
func DefaultTimetable() *Timetable {
	tt := NewTimetable()
	for _, d := range []struct{ city, clock string }{
		{"Bugapest", "9:35am"},
		{"Dubay", "10:30am"},
		{"Berlint", "8:25pm"},
		{"Mosbull", "6:00pm"},
		{"Cayro", "6:40am"},
		{"Bostin", "10:25am"},
		{"Los Angelos", "12:30pm"},
		{"Dome", "1:30pm"},
		{"Takyo", "3:35pm"},
		{"Unstabul", "4:45pm"},
		{"Chicargo", "7:25am"},
		{"Loondun", "2:00pm"},
	} {
		tt.Set(d.city, MustParseClock(d.clock))
	}

	return tt
}

// ParseDepartures builds a Timetable from entries of the form "City=9:35am".
// A repeated city keeps its last clock.
func ParseDepartures(entries []string) (*Timetable, error) {
	tt := NewTimetable()
	for _, e := range entries {
		city, clock, ok := strings.Cut(e, "=")
		city = strings.TrimSpace(city)
		if !ok || city == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadDeparture, e)
		}
		c, err := ParseClock(clock)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadDeparture, e, err)
		}
		tt.Set(city, c)
	}

	return tt, nil
}

// Set lists city as departing at c.
func (tt *Timetable) Set(city string, c Clock) { tt.departures.Put(city, c) }

// Departure returns the departure clock of city and whether it is scheduled.
func (tt *Timetable) Departure(city string) (Clock, bool) {
	return tt.departures.Get(city)
}

// Cities returns every scheduled station.
func (tt *Timetable) Cities() []string { return tt.departures.Keys() }

// Arrival returns departure advanced by the travel time t, and false if t
// is unreachable.
func Arrival(departure Clock, t Time) (Clock, bool) {
	if !t.Reachable {
		return 0, false
	}

	return departure.Add(t.Minutes), true
}

// Stop is the schedule line of one station.
type Stop struct {
	Departure Clock
	Arrival   Clock
	Scheduled bool // a departure is listed for the station
	Reachable bool
}

// DepartureString renders the departure, or NotScheduled.
func (s Stop) DepartureString() string {
	if !s.Scheduled {
		return NotScheduled
	}

	return s.Departure.String()
}

// ArrivalString renders the arrival. A missing departure wins over an
// unreachable station: NotScheduled, then "unreachable".
func (s Stop) ArrivalString() string {
	switch {
	case !s.Scheduled:
		return NotScheduled
	case !s.Reachable:
		return Unreachable.String()
	default:
		return s.Arrival.String()
	}
}

// Stop combines the departure of city with its travel time.
func (tt *Timetable) Stop(city string, t Time) Stop {
	dep, ok := tt.Departure(city)
	if !ok {
		return Stop{Reachable: t.Reachable}
	}
	arr, reachable := Arrival(dep, t)

	return Stop{Departure: dep, Arrival: arr, Scheduled: true, Reachable: reachable}
}

// Schedules projects every city of res and pairs it with tt, in
// res.Cities() order. Errors are those of Times.
func Schedules(res *dijkstra.Result, tt *Timetable, opts ...Option) (collections.Map[string, Stop], error) {
	times, err := Times(res, opts...)
	if err != nil {
		return nil, err
	}

	out := collections.NewHashMap[string, Stop](times.Len())
	keys, vals := times.Keys(), times.Values()
	for i, city := range keys {
		out.Put(city, tt.Stop(city, vals[i]))
	}

	return out, nil
}
