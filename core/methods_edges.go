// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeBetween/GetEdge/Edges/EdgeCount,
//       incident-edge enumeration (Neighbors/NeighborIDs). Also: nextEdgeID().
// Determinism:
//   - Edges() and Neighbors() return edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form allows append to a []byte buffer without fmt.
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge {from,to} with the given weight and
// returns its unique Edge.ID. Missing endpoints are added as vertices, in the
// order from, to.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex (insertion order: from, then to).
//  3. Lock muEdgeAdj, reject a second edge on the same unordered pair.
//  4. Generate eid atomically, store in catalog, order, pair index.
//  5. Append to adjacency[from] and, unless a loop, adjacency[to].
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	key := keyOf(from, to)
	if _, exists := g.pairs[key]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edges[eid] = e
	g.edgeOrder = append(g.edgeOrder, e)
	g.pairs[key] = e

	g.adjacency[from] = append(g.adjacency[from], e)
	if from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return eid, nil
}

// HasEdge reports whether an edge {u,v} exists. Symmetric in its arguments.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.pairs[keyOf(u, v)]

	return ok
}

// EdgeBetween returns the edge {u,v} if present. Symmetric in its arguments.
// The returned *Edge must be treated as read-only.
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v string) (*Edge, bool) {
	if u == "" || v == "" {
		return nil, false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.pairs[keyOf(u, v)]

	return e, ok
}

// GetEdge returns the Edge with the given edgeID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns all edges incident to vertex id in insertion order.
// A self-loop appears once.
//
// This is the native edge enumeration order: tour.Build sorts these edges by
// weight with a stable sort, so equal weights are tried in this order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(d), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	inc := g.adjacency[id]
	out := make([]*Edge, len(inc))
	copy(out, inc)

	return out, nil
}

// NeighborIDs returns the opposite endpoint of every incident edge of id,
// in the same order as Neighbors. A self-loop contributes id itself.
// Complexity: O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		other, _ := e.Other(id)
		ids = append(ids, other)
	}

	return ids, nil
}

// nextEdgeID returns a new unique textual edge ID.
//
// Determinism:
//   - Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically.
//   - Produces "e" + decimal digits (no locale/time/randomness).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
