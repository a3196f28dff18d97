// SPDX-License-Identifier: MIT

// Package tour grows Hamiltonian cycles over a weighted undirected graph
// with a greedy nearest-edge heuristic and backtracking.
//
// Build starts from a seed vertex and repeatedly extends the path along the
// cheapest incident edge whose far endpoint is still unvisited. Once every
// vertex is on the path, the cycle is closed if the last vertex is adjacent
// to the seed; otherwise the search undoes its most recent choice and tries
// the next candidate.
//
// Tie-break policy:
//
//	Candidates are the edges incident to the current tail, sorted ascending by
//	weight with a stable sort over core.Graph.Neighbors order. Because core
//	enumerates edges in insertion order, equal-weight edges are tried in the
//	order they were added to the graph.
//
// Outcomes:
//
//	NotFound is a normal result, not an error: the search exhausted every
//	branch from the seed. Errors are reserved for invalid input (nil or empty
//	graph, unknown seed), for the external step bound, and for hook aborts.
//
// The search is single-threaded and keeps its state in an explicit stack of
// decision frames, so deep graphs never grow the goroutine stack.
//
// Complexity: worst case exponential in the vertex count; every frame sorts
// its candidates once, O(d log d) for a tail of degree d.
//
// Besides Build the package offers path helpers shared by the rest of the
// module: Validate / ValidateSimple, Cost, HasEdge and Rotate.
package tour
