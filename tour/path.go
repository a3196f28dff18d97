// SPDX-License-Identifier: MIT

package tour

import "fmt"

// Validate checks that p is a Hamiltonian cycle of g:
//
//	len(p) == |V|+1, p[0] == p[last], every vertex exactly once in p[:last],
//	and every consecutive pair (closing pair included) is an edge of g.
//
// Complexity: O(|V|) time, O(|V|) space.
func Validate(g Graph, p Path) error {
	if len(p) < 2 {
		return ErrPathTooShort
	}
	if !p.Closed() {
		return ErrPathNotClosed
	}
	if err := checkVertices(g, p[:len(p)-1]); err != nil {
		return err
	}
	if len(p)-1 != g.VertexCount() {
		return fmt.Errorf("%w: %d of %d", ErrMissingVertex, len(p)-1, g.VertexCount())
	}

	return checkEdges(g, p)
}

// ValidateSimple checks that p is a simple path of g, open or closed: no
// vertex repeats (apart from the closing repeat), every vertex exists, and
// consecutive vertices are adjacent. It does not require full coverage.
func ValidateSimple(g Graph, p Path) error {
	if len(p) == 0 {
		return ErrPathTooShort
	}
	if err := checkVertices(g, p.Ring()); err != nil {
		return err
	}

	return checkEdges(g, p)
}

func checkVertices(g Graph, ring Path) error {
	seen := make(map[string]struct{}, len(ring))
	for _, id := range ring {
		if !g.HasVertex(id) {
			return fmt.Errorf("%w: %q", ErrUnknownVertex, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %q", ErrRepeatedVertex, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}

func checkEdges(g Graph, p Path) error {
	for i := 0; i+1 < len(p); i++ {
		if !g.HasEdge(p[i], p[i+1]) {
			return fmt.Errorf("%w: %s-%s", ErrMissingEdge, p[i], p[i+1])
		}
	}

	return nil
}

// Cost sums the weights along consecutive pairs of p. A closed path includes
// its closing edge because the closing repeat is part of p.
func Cost(g Graph, p Path) (float64, error) {
	var total float64
	for i := 0; i+1 < len(p); i++ {
		e, ok := g.EdgeBetween(p[i], p[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: %s-%s", ErrMissingEdge, p[i], p[i+1])
		}
		total += e.Weight
	}

	return total, nil
}

// HasEdge reports whether p traverses the undirected edge {u, v}.
func HasEdge(p Path, u, v string) bool {
	for i := 0; i+1 < len(p); i++ {
		if (p[i] == u && p[i+1] == v) || (p[i] == v && p[i+1] == u) {
			return true
		}
	}

	return false
}

// Rotate returns a fresh closed path that starts and ends at start and
// traverses p's cycle in the same direction.
//
// Complexity: O(len(p)).
func Rotate(p Path, start string) (Path, error) {
	if !p.Closed() {
		return nil, ErrPathNotClosed
	}
	ring := p[:len(p)-1]
	pivot := -1
	for i, id := range ring {
		if id == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, start)
	}

	n := len(ring)
	out := make(Path, n+1)
	for i := 0; i < n; i++ {
		out[i] = ring[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}
