// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, undirected, weighted Graph that every
// other hamtour package reads from.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; an edge {u,v} is visible from both endpoints.
//   - Simple graph: at most one edge per unordered pair (ErrMultiEdgeNotAllowed).
//   - Self-loops are rejected unless WithLoops() is given.
//   - Weights are finite, non-negative float64 values (ErrBadWeight otherwise).
//   - Collision-free monotonic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Enumeration order is part of the contract, not an accident of map iteration:
//
//	Vertices()      — insertion order (explicit AddVertex or first edge mention)
//	Edges()         — insertion order
//	Neighbors(id)   — incident edges in insertion order
//	NeighborIDs(id) — the opposite endpoints of Neighbors(id), same order
//
// Heuristics built on top of core (tie-breaks in tour.Build, the midpoint of
// partition.Split) rely on this order and are reproducible because of it.
//
// Core Methods:
//
//	AddVertex(id string) error                                   // O(1)
//	HasVertex(id string) bool                                    // O(1)
//	AddEdge(from, to string, weight float64) (string, error)     // O(1)
//	HasEdge(u, v string) bool                                    // O(1)
//	EdgeBetween(u, v string) (*Edge, bool)                       // O(1)
//	GetEdge(edgeID string) (*Edge, error)                        // O(1)
//	Neighbors(id string) ([]*Edge, error)                        // O(d)
//	NeighborIDs(id string) ([]string, error)                     // O(d)
//	Vertices() []string                                          // O(V)
//	Edges() []*Edge                                              // O(E)
//	VertexCount(), EdgeCount() int                               // O(1)
//	Degree(id string) (int, error)                               // O(1)
//
// Views:
//
//	InducedSubgraph(g, keep) *Graph  // O(V+E), keeps order and edge IDs
//
// Errors:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
