// Package core defines the weighted road-graph value type shared by the
// search engine and its collaborators.
//
// A Graph maps vertex IDs to their neighbors with non-negative integer
// weights. Undirected by default: AddEdge("A", "B", w) records both A→B:w
// and B→A:w. Vertices and per-vertex neighbor lists preserve insertion
// order, so iterating the same graph always yields the same sequence —
// algorithms that tie-break on discovery order stay deterministic.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeWeight indicates an edge with negative weight was added.
	// All weights must be ≥ 0 so shortest-path searches stay optimal.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop (u == v) was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is one directed adjacency record: From→To with Weight.
// Undirected graphs store each road as two mirrored Edge entries.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative traversal cost of the edge.
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected makes AddEdge record only the From→To direction
// (default is undirected: both directions).
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// Graph is an in-memory adjacency mapping with insertion-ordered iteration.
//
// mu guards all maps and slices; reads during a search are lock-shared,
// so concurrent independent searches over one built graph are safe.
type Graph struct {
	mu sync.RWMutex

	directed bool

	// vertexOrder lists vertex IDs in first-seen order.
	vertexOrder []string

	// adj[u][v] = weight of edge u→v.
	adj map[string]map[string]int64

	// neighborOrder[u] lists u's neighbor IDs in first-seen order.
	neighborOrder map[string][]string

	edgeCount int
}

// NewGraph creates an empty Graph. Undirected unless WithDirected is given.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adj:           make(map[string]map[string]int64),
		neighborOrder: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
