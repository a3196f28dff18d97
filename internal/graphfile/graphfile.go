// SPDX-License-Identifier: MIT

// Package graphfile reads and writes graphs described in HCL:
//
//	allow_loops = false
//
//	vertex "0" {}
//	vertex "1" {}
//
//	edge "0" "1" {
//	  weight = 3
//	}
//
// Vertex blocks are added first, in file order, then edge blocks in file
// order. Edge endpoints not declared as vertices are added on first mention,
// so vertex declarations are only needed to fix the order or to add isolated
// vertices.
package graphfile

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/hamtour/core"
)

// hclGraphFile is the top-level structure of a graph file for decoding.
type hclGraphFile struct {
	AllowLoops *bool        `hcl:"allow_loops,optional"`
	Vertices   []*hclVertex `hcl:"vertex,block"`
	Edges      []*hclEdge   `hcl:"edge,block"`
}

type hclVertex struct {
	ID string `hcl:"id,label"`
}

type hclEdge struct {
	From   string  `hcl:"from,label"`
	To     string  `hcl:"to,label"`
	Weight float64 `hcl:"weight"`
}

// Load parses the HCL file at path into a new graph.
func Load(path string) (*core.Graph, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to parse %s: %w", path, diags)
	}

	return decode(file, path)
}

// Parse parses HCL source; filename is only used in diagnostics.
func Parse(src []byte, filename string) (*core.Graph, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to parse %s: %w", filename, diags)
	}

	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*core.Graph, error) {
	var parsed hclGraphFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to decode %s: %w", filename, diags)
	}

	var opts []core.GraphOption
	if parsed.AllowLoops != nil && *parsed.AllowLoops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, v := range parsed.Vertices {
		if err := g.AddVertex(v.ID); err != nil {
			return nil, fmt.Errorf("graphfile: %s: vertex %q: %w", filename, v.ID, err)
		}
	}
	for _, e := range parsed.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphfile: %s: edge %q-%q: %w", filename, e.From, e.To, err)
		}
	}

	return g, nil
}

// Encode writes g as HCL: every vertex in order, then every edge in order.
// Parsing the output reproduces g's vertex order, edge order and weights.
func Encode(w io.Writer, g *core.Graph) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	if g.Looped() {
		body.SetAttributeValue("allow_loops", cty.True)
		body.AppendNewline()
	}
	for _, id := range g.Vertices() {
		body.AppendNewBlock("vertex", []string{id})
	}
	for _, e := range g.Edges() {
		body.AppendNewline()
		block := body.AppendNewBlock("edge", []string{e.From, e.To})
		block.Body().SetAttributeValue("weight", cty.NumberFloatVal(e.Weight))
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("graphfile: write: %w", err)
	}

	return nil
}

// Save encodes g into the file at path.
func Save(path string, g *core.Graph) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphfile: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("graphfile: %w", cerr)
		}
	}()

	return Encode(out, g)
}
