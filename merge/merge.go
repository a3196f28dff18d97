// SPDX-License-Identifier: MIT

// Package merge splices two vertex-disjoint paths into one path of the
// parent graph through their cheapest boundary edges.
//
// Policy:
//  1. Boundary edges between the two paths are collected in path mode and
//     sorted ascending by weight (ties keep scan order).
//  2. For each boundary edge (u in a, v in b), a is tried forward then
//     reversed and, for each, b forward then reversed. A closed input is cut
//     open so that u ends the a-part (v starts the b-part) while keeping its
//     cyclic order; an open input is only usable when u (v) already sits at
//     the joining end.
//  3. Every candidate a'+b' must be a simple path of the graph. A candidate
//     of three or more vertices whose endpoints are adjacent can be closed.
//  4. The first bridge, in weight order, with a closable candidate wins. Among
//     its closable candidates the one with the cheapest closing edge is
//     closed into a cycle; equal closing weights keep orientation order.
//  5. Without a closable candidate the first valid one is returned open.
package merge

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hamtour/boundary"
	"github.com/katalvlaran/hamtour/core"
	"github.com/katalvlaran/hamtour/tour"
)

var (
	// ErrGraphNil is returned when the parent graph is nil.
	ErrGraphNil = errors.New("merge: graph is nil")

	// ErrEmptyPath is returned when either input path is empty.
	ErrEmptyPath = errors.New("merge: empty path")

	// ErrOverlap is returned when the two paths share a vertex.
	ErrOverlap = errors.New("merge: paths share a vertex")

	// ErrNoBoundary is returned when no edge joins the two paths.
	ErrNoBoundary = errors.New("merge: no boundary edge between paths")

	// ErrNoSplice is returned when boundary edges exist but none yields a
	// simple path.
	ErrNoSplice = errors.New("merge: no valid splice")
)

// Result describes a splice.
type Result struct {
	// Path covers both inputs; it repeats its first vertex when Closed.
	Path   tour.Path
	Closed bool
	// Bridge is the boundary edge joining a' to b'.
	Bridge boundary.CrossEdge
	// Closing is the edge from the last vertex of b' back to the first
	// vertex of a'; zero when the result is open.
	Closing boundary.CrossEdge
	// Cost is the total weight of Path.
	Cost float64
}

// Merge splices a and b into a single path of g. See the package
// documentation for the splice policy.
//
// Complexity: O(k·(|a|+|b|)) for k boundary edges, after the O(|a|·|b|)
// boundary scan.
func Merge(g tour.Graph, a, b tour.Path) (Result, error) {
	if core.IsNil(g) {
		return Result{}, ErrGraphNil
	}
	if len(a) == 0 || len(b) == 0 {
		return Result{}, ErrEmptyPath
	}
	if id, ok := shared(a, b); ok {
		return Result{}, fmt.Errorf("%w: %q", ErrOverlap, id)
	}

	cross, err := boundary.InterEdges(g, a, b)
	if err != nil {
		return Result{}, fmt.Errorf("merge: %w", err)
	}
	if len(cross) == 0 {
		return Result{}, ErrNoBoundary
	}

	var (
		fallback tour.Path
		bridge   boundary.CrossEdge
	)
	for _, ce := range boundary.SortByWeight(cross) {
		var (
			best    tour.Path
			closing boundary.CrossEdge
		)
		for _, ap := range orientations(a) {
			left, ok := endAt(ap, ce.A)
			if !ok {
				continue
			}
			for _, bp := range orientations(b) {
				right, ok := startAt(bp, ce.B)
				if !ok {
					continue
				}
				cand := append(left.Clone(), right...)
				if tour.ValidateSimple(g, cand) != nil {
					continue
				}
				if fallback == nil {
					fallback, bridge = cand, ce
				}
				first, last := cand[0], cand[len(cand)-1]
				e, ok := g.EdgeBetween(last, first)
				if !ok || len(cand) < 3 {
					continue
				}
				// strictly cheaper only: ties keep orientation order
				if best == nil || e.Weight < closing.Weight {
					best = cand
					closing = boundary.CrossEdge{A: last, B: first, Weight: e.Weight, EdgeID: e.ID}
				}
			}
		}
		if best != nil {
			return finish(g, append(best, best[0]), true, ce, closing)
		}
	}
	if fallback == nil {
		return Result{}, ErrNoSplice
	}

	return finish(g, fallback, false, bridge, boundary.CrossEdge{})
}

func finish(g tour.Graph, p tour.Path, closed bool, bridge, closing boundary.CrossEdge) (Result, error) {
	cost, err := tour.Cost(g, p)
	if err != nil {
		return Result{}, fmt.Errorf("merge: %w", err)
	}

	return Result{Path: p, Closed: closed, Bridge: bridge, Closing: closing, Cost: cost}, nil
}

// orientation is a path as it will be spliced: its vertex sequence without
// a closing repeat, and whether it may be rotated.
type orientation struct {
	seq    tour.Path
	cyclic bool
}

// orientations yields p forward and reversed. Closed paths are cyclic; a
// single vertex is trivially cyclic.
func orientations(p tour.Path) []orientation {
	ring := p.Ring()
	cyclic := p.Closed() || len(ring) == 1
	rev := make(tour.Path, len(ring))
	for i, id := range ring {
		rev[len(ring)-1-i] = id
	}

	return []orientation{{seq: ring, cyclic: cyclic}, {seq: rev, cyclic: cyclic}}
}

// endAt returns o arranged so that it ends with u.
func endAt(o orientation, u string) (tour.Path, bool) {
	i := indexOf(o.seq, u)
	switch {
	case i < 0:
		return nil, false
	case !o.cyclic:
		return o.seq, i == len(o.seq)-1
	}
	out := append(o.seq[i+1:].Clone(), o.seq[:i+1]...)

	return out, true
}

// startAt returns o arranged so that it starts with v.
func startAt(o orientation, v string) (tour.Path, bool) {
	j := indexOf(o.seq, v)
	switch {
	case j < 0:
		return nil, false
	case !o.cyclic:
		return o.seq, j == 0
	}
	out := append(o.seq[j:].Clone(), o.seq[:j]...)

	return out, true
}

func indexOf(p tour.Path, id string) int {
	for i, v := range p {
		if v == id {
			return i
		}
	}

	return -1
}

func shared(a, b tour.Path) (string, bool) {
	in := make(map[string]bool, len(a))
	for _, id := range a {
		in[id] = true
	}
	for _, id := range b {
		if in[id] {
			return id, true
		}
	}

	return "", false
}
