// Package stationroute computes minimum-distance train routes from one origin
// station to every other station of an undirected, weighted rail network.
//
// The module is organized as small packages, each usable on its own:
//
//	collections/ — Map, List, Stack and Set contracts with default implementations
//	core/        — the station Graph: symmetric adjacency built from connections
//	loader/      — CSV station files (cityA,cityB,weight) into connections
//	frontier/    — minimum-first work lists: SortedStack and Heap
//	dijkstra/    — single-source shortest paths with an Unreachable sentinel
//	bfs/         — fewest-stops walk and reachability from the origin
//	route/       — path reconstruction and "Westside->A->B" traces
//	travel/      — travel-time projection (minutes per km plus per-stop overhead)
//	stations/    — Manager: one read-mostly facade over all of the above
//	cmd/stations — command line report
//
// Quick start:
//
//	m, err := stations.Open("stations.csv")
//	if err != nil {
//		return err
//	}
//	trace, _ := m.TraceRoute("Dubay") // "Westside->Bugapest->Dubay"
//	tt, _ := m.TravelTime("Bugapest") // 40.0 minutes
package stationroute
