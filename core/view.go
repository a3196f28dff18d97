// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex order, edge order and edge IDs of the source.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Kept vertices appear in the source's insertion order (isolated ones included),
// kept edges in the source's edge order with their original IDs and weights.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	var opts []GraphOption
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	// Copy only kept vertices, in source order.
	g.muVert.RLock()
	for _, id := range g.vertexOrder {
		if !keep[id] {
			continue
		}
		v := g.vertices[id]
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.vertexOrder = append(out.vertexOrder, id)
		out.adjacency[id] = nil
	}
	g.muVert.RUnlock()

	// Copy only edges whose endpoints are both kept.
	g.muEdgeAdj.RLock()
	// Carry the counter so future AddEdge() calls cannot collide with copied IDs.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for _, e := range g.edgeOrder {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight}
		out.edges[ne.ID] = ne
		out.edgeOrder = append(out.edgeOrder, ne)
		out.pairs[keyOf(ne.From, ne.To)] = ne
		out.adjacency[ne.From] = append(out.adjacency[ne.From], ne)
		if ne.From != ne.To {
			out.adjacency[ne.To] = append(out.adjacency[ne.To], ne)
		}
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
