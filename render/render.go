// SPDX-License-Identifier: MIT

// Package render draws a graph and, optionally, a tour over it.
//
// Renderers take the graph and the path explicitly and write to the given
// io.Writer; they hold no drawing state between calls. Edges traversed by
// the path are drawn blue and bold, the others red. Without a path every
// edge is blue.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/hamtour/core"
	"github.com/katalvlaran/hamtour/tour"
)

// Colours shared by all renderers.
const (
	NodeFill  = "#D4EC90"
	PathColor = "blue"
	RestColor = "red"
)

var (
	// ErrGraphNil is returned when Render receives a nil graph.
	ErrGraphNil = errors.New("render: graph is nil")

	// ErrUnknownFormat is returned by New for unsupported formats.
	ErrUnknownFormat = errors.New("render: unknown format")
)

// Renderer writes a picture of g with the edges of p highlighted. p may be
// nil.
type Renderer interface {
	Render(w io.Writer, g *core.Graph, p tour.Path) error
}

// New returns the renderer for format "dot" or "svg".
func New(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "dot":
		return DOT{}, nil
	case "svg":
		return SVG{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// edgeColor picks the stroke colour of e for path p.
func edgeColor(e *core.Edge, p tour.Path) (color string, onPath bool) {
	if p == nil || tour.HasEdge(p, e.From, e.To) {
		return PathColor, p != nil
	}

	return RestColor, false
}

// errWriter remembers the first write error so drawing code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err

	return n, err
}
