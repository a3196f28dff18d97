// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/hamtour/core"
	"github.com/katalvlaran/hamtour/tour"
)

// SVG defaults.
const (
	defaultSize   = 480
	nodeRadius    = 14
	canvasPadding = 40
)

// SVG renders an SVG picture with vertices on a circle in graph insertion
// order, starting at twelve o'clock and going clockwise. Zero sizes fall back
// to a 480x480 canvas.
type SVG struct {
	Width, Height int
}

type point struct{ x, y int }

// Render implements Renderer.
func (s SVG) Render(w io.Writer, g *core.Graph, p tour.Path) error {
	if g == nil {
		return ErrGraphNil
	}
	width, height := s.Width, s.Height
	if width <= 0 {
		width = defaultSize
	}
	if height <= 0 {
		height = defaultSize
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	if p != nil {
		canvas.Title(p.String())
	}

	pos := circularLayout(g.Vertices(), width, height)

	canvas.Gid("edges")
	for _, e := range g.Edges() {
		a, b := pos[e.From], pos[e.To]
		color, onPath := edgeColor(e, p)
		strokeWidth := 1
		if onPath || p == nil {
			strokeWidth = 3
		}
		canvas.Line(a.x, a.y, b.x, b.y, fmt.Sprintf("stroke:%s;stroke-width:%d", color, strokeWidth))
		canvas.Text((a.x+b.x)/2, (a.y+b.y)/2, formatWeight(e.Weight), "font-size:10px;text-anchor:middle;fill:black")
	}
	canvas.Gend()

	canvas.Gid("vertices")
	for _, id := range g.Vertices() {
		c := pos[id]
		canvas.Circle(c.x, c.y, nodeRadius, "fill:"+NodeFill+";stroke:black;stroke-width:1")
		canvas.Text(c.x, c.y+4, id, "font-size:8px;text-anchor:middle")
	}
	canvas.Gend()
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("render: svg: %w", ew.err)
	}

	return nil
}

// circularLayout spreads ids evenly on the largest circle that fits the
// canvas. A single vertex sits at the centre.
func circularLayout(ids []string, width, height int) map[string]point {
	cx, cy := width/2, height/2
	radius := float64(min(width, height))/2 - canvasPadding
	if radius < 0 {
		radius = 0
	}

	pos := make(map[string]point, len(ids))
	if len(ids) == 1 {
		pos[ids[0]] = point{cx, cy}
		return pos
	}
	for i, id := range ids {
		angle := 2*math.Pi*float64(i)/float64(len(ids)) - math.Pi/2
		pos[id] = point{
			x: cx + int(math.Round(radius*math.Cos(angle))),
			y: cy + int(math.Round(radius*math.Sin(angle))),
		}
	}

	return pos
}
