// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/hamtour/core"
	"github.com/katalvlaran/hamtour/tour"
)

// DOT renders Graphviz source. Vertices and edges are emitted in graph
// insertion order, so output is byte-for-byte reproducible.
type DOT struct{}

// Render implements Renderer.
func (DOT) Render(w io.Writer, g *core.Graph, p tour.Path) error {
	if g == nil {
		return ErrGraphNil
	}
	ew := &errWriter{w: w}

	fmt.Fprintln(ew, "graph hamtour {")
	fmt.Fprintf(ew, "  node [style=filled, fillcolor=%q];\n", NodeFill)
	for _, id := range g.Vertices() {
		fmt.Fprintf(ew, "  %s;\n", strconv.Quote(id))
	}
	for _, e := range g.Edges() {
		color, onPath := edgeColor(e, p)
		attrs := fmt.Sprintf("label=%q, color=%s", formatWeight(e.Weight), color)
		if onPath {
			attrs += ", penwidth=3"
		}
		fmt.Fprintf(ew, "  %s -- %s [%s];\n", strconv.Quote(e.From), strconv.Quote(e.To), attrs)
	}
	fmt.Fprintln(ew, "}")

	if ew.err != nil {
		return fmt.Errorf("render: dot: %w", ew.err)
	}

	return nil
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
