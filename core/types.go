// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between an already connected pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared by views.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by views.
	Metadata map[string]interface{}
}

// Edge represents an undirected, weighted connection between two vertices.
//
// From and To record the orientation the edge was added with; it carries no
// meaning beyond reproducible printing. Use Other to walk across an edge.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// Weight is the non-negative cost of traversing the edge.
	Weight float64
}

// Other returns the endpoint of e opposite to id.
// For a self-loop it returns id itself. If id is not an endpoint, ok is false.
func (e *Edge) Other(id string) (other string, ok bool) {
	switch id {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	default:
		return "", false
	}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// pairKey is the canonical unordered endpoint pair of an edge (lo <= hi).
type pairKey struct{ lo, hi string }

func keyOf(u, v string) pairKey {
	if v < u {
		u, v = v, u
	}

	return pairKey{lo: u, hi: v}
}

// Graph is the core in-memory graph data structure.
//
// muVert protects the vertex catalog and its insertion order; muEdgeAdj
// protects the edge catalog, edge order, pair index and adjacency lists.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, vertexOrder
	muEdgeAdj sync.RWMutex // guards edges, edgeOrder, pairs, adjacency

	allowLoops bool // allow self-loops

	nextEdgeID uint64 // atomic edge ID generator

	vertices    map[string]*Vertex // vertex ID → Vertex
	vertexOrder []string           // vertex IDs in insertion order

	edges     map[string]*Edge   // edge ID → Edge
	edgeOrder []*Edge            // edges in insertion order
	pairs     map[pairKey]*Edge  // unordered endpoint pair → Edge
	adjacency map[string][]*Edge // vertex ID → incident edges, insertion order
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		pairs:     make(map[pairKey]*Edge),
		adjacency: make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// IsNil reports whether g is a nil interface or wraps a nil *Graph.
// Packages that accept a graph through their own interface use it to reject
// both forms with a single check.
func IsNil(g any) bool {
	if g == nil {
		return true
	}
	cg, ok := g.(*Graph)

	return ok && cg == nil
}
