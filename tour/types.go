// SPDX-License-Identifier: MIT

package tour

import (
	"errors"
	"strings"

	"github.com/katalvlaran/hamtour/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed to Build.
	ErrGraphNil = errors.New("tour: graph is nil")

	// ErrEmptyGraph is returned when the graph has no vertices.
	ErrEmptyGraph = errors.New("tour: graph has no vertices")

	// ErrSeedNotFound indicates that the requested seed vertex does not exist.
	ErrSeedNotFound = errors.New("tour: seed vertex not found")

	// ErrStepLimit indicates that the search hit the WithMaxSteps bound
	// before reaching a verdict.
	ErrStepLimit = errors.New("tour: step limit exceeded")
)

// Path validation sentinels.
var (
	ErrPathTooShort   = errors.New("tour: path too short")
	ErrPathNotClosed  = errors.New("tour: path is not closed")
	ErrRepeatedVertex = errors.New("tour: vertex repeated")
	ErrUnknownVertex  = errors.New("tour: vertex not in graph")
	ErrMissingVertex  = errors.New("tour: path does not cover every vertex")
	ErrMissingEdge    = errors.New("tour: consecutive vertices are not adjacent")
)

// Graph is the read-only view Build and the path helpers need.
// *core.Graph satisfies it.
type Graph interface {
	Vertices() []string
	VertexCount() int
	HasVertex(id string) bool
	Neighbors(id string) ([]*core.Edge, error)
	HasEdge(u, v string) bool
	EdgeBetween(u, v string) (*core.Edge, bool)
}

// Outcome is the verdict of a search.
type Outcome int

const (
	// NotFound means every branch from the seed was exhausted.
	NotFound Outcome = iota
	// Found means Result.Path holds a closed Hamiltonian cycle.
	Found
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o == Found {
		return "found"
	}

	return "not_found"
}

// Path is an ordered vertex sequence. A closed path repeats its first vertex
// at the end.
type Path []string

// Closed reports whether p has at least two entries and ends where it starts.
func (p Path) Closed() bool {
	return len(p) >= 2 && p[0] == p[len(p)-1]
}

// Ring returns a copy of p without the closing repeat. Open paths are copied
// unchanged.
func (p Path) Ring() Path {
	if p.Closed() {
		return p[:len(p)-1].Clone()
	}

	return p.Clone()
}

// Clone returns an independent copy of p (nil stays nil).
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// String renders p as "a → b → c".
func (p Path) String() string {
	return strings.Join(p, " → ")
}

// Stats counts the work done by a search.
type Stats struct {
	// Extensions is the number of tentative appends.
	Extensions int
	// Backtracks is the number of appends that were undone.
	Backtracks int
}

// Result is the value returned by Build.
type Result struct {
	Outcome Outcome
	Path    Path    // closed cycle when Outcome == Found, nil otherwise
	Cost    float64 // total weight of Path, including the closing edge
	Stats   Stats
}

// Found reports whether the search produced a cycle.
func (r Result) Found() bool { return r.Outcome == Found }
