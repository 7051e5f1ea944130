// Package core: station graph types, options and sentinel errors
//
// This file defines Edge, Connection and the Graph container. Graph keeps a
// single RWMutex over its adjacency because every mutation touches both ends
// of a connection; after Freeze the lock is only ever taken for reading.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/stationroute/collections"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyCityID indicates that a city identifier is the empty string.
	ErrEmptyCityID = errors.New("core: city ID is empty")

	// ErrCityNotFound indicates a query referenced a city that is not in the graph.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrNegativeWeight indicates a connection with a negative distance.
	ErrNegativeWeight = errors.New("core: negative connection weight")

	// ErrFrozen indicates a mutation was attempted after Freeze.
	ErrFrozen = errors.New("core: graph is frozen")

	// ErrAdjacencyNotEmpty indicates WithAdjacency was given a pre-populated map.
	ErrAdjacencyNotEmpty = errors.New("core: adjacency map must be empty")
)

// Edge is one directed half of a connection, stored in the adjacency list of
// the city it leaves from.
//
// Edge carries only the adjacency weight. Cumulative path distance lives in
// dijkstra.Route and the two are never mixed.
type Edge struct {
	// To is the neighboring city.
	To string

	// Weight is the connection length in kilometers.
	Weight int64
}

// Connection is one input row: an undirected link between From and To.
type Connection struct {
	From   string
	To     string
	Weight int64
}

// Adjacency is the city → edge-list mapping contract used by Graph.
type Adjacency = collections.Map[string, collections.List[Edge]]

// GraphOption configures a Graph before any connection is added.
type GraphOption func(g *Graph)

// WithAdjacency makes the Graph store its adjacency in m.
// m must be empty; NewGraph panics otherwise, mirroring how invalid options
// are surfaced at construction time.
func WithAdjacency(m Adjacency) GraphOption {
	return func(g *Graph) {
		if m == nil {
			return
		}
		if m.Len() != 0 {
			panic(ErrAdjacencyNotEmpty.Error())
		}
		g.adjacency = m
	}
}

// WithListFactory sets the constructor used for every per-city edge list.
func WithListFactory(fn func() collections.List[Edge]) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.newList = fn
		}
	}
}

// Graph is the undirected, weighted station graph.
//
// mu guards every field below it. connections counts accepted undirected
// links; a suppressed duplicate does not count.
type Graph struct {
	mu sync.RWMutex

	adjacency   Adjacency
	newList     func() collections.List[Edge]
	connections int
	frozen      bool
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: collections.NewHashMap[string, collections.List[Edge]](0),
		newList: func() collections.List[Edge] {
			return collections.NewArrayList[Edge]()
		},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
