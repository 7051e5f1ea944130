// Package travel projects shortest-route distances into estimated travel
// times.
//
// For every city c of a dijkstra.Result:
//
//	minutes(c) = distance(c) · Rate + hops(c) · HopOverhead
//
// where hops(c) counts the stations after the source on the route to c.
// The defaults are 2.5 minutes per kilometer and 15 minutes per station.
// The source always takes 0 minutes.
//
// A city carrying the dijkstra.Unreachable sentinel yields a Time with
// Reachable == false; no arithmetic is ever performed on the sentinel.
//
// A Timetable adds wall-clock departures per station; the arrival of a
// scheduled, reachable station is its departure advanced by its travel
// time, rendered as a 12-hour clock ("10:15am"). Stations without a listed
// departure render NotScheduled and no arrival is computed for them.
package travel
