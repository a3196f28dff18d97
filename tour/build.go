// SPDX-License-Identifier: MIT

package tour

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hamtour/core"
)

// frame is one decision point: the candidate edges leaving path[i] and the
// cursor of the next candidate to try.
type frame struct {
	cands []*core.Edge
	next  int
}

// search is the mutable state of one Build call. It is owned by a single
// goroutine for the lifetime of the call.
type search struct {
	g      Graph
	opts   Options
	n      int
	path   Path
	onPath map[string]bool
	stats  Stats
}

// Build searches for a Hamiltonian cycle with the greedy nearest-edge
// heuristic and backtracking.
//
// Steps:
//  1. Validate input; resolve the seed (WithSeed or the first vertex).
//  2. Push a frame for the tail: incident edges sorted stably by weight.
//  3. Take the next candidate whose far endpoint is off the path and append it.
//     When the path covers every vertex, close it if the tail is adjacent to
//     the seed, otherwise undo and continue.
//  4. When a frame runs out of candidates, pop it and undo its vertex.
//  5. An empty stack means NotFound.
//
// A one-vertex graph is complete from the start and yields Found only when
// the vertex carries a self-loop.
//
// Returns a Result with Outcome NotFound and a nil error when no cycle is
// reachable; errors signal invalid input, ErrStepLimit or a hook abort.
func Build(g Graph, opts ...Option) (Result, error) {
	if core.IsNil(g) {
		return Result{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	if n == 0 {
		return Result{}, ErrEmptyGraph
	}
	seed := o.Seed
	if seed == "" {
		seed = g.Vertices()[0]
	} else if !g.HasVertex(seed) {
		return Result{}, fmt.Errorf("%w: %q", ErrSeedNotFound, seed)
	}

	s := &search{
		g:      g,
		opts:   o,
		n:      n,
		path:   make(Path, 1, n+1),
		onPath: make(map[string]bool, n),
	}
	s.path[0] = seed
	s.onPath[seed] = true

	return s.run()
}

func (s *search) run() (Result, error) {
	seed := s.path[0]
	if s.n == 1 {
		if s.g.HasEdge(seed, seed) {
			return s.found()
		}

		return s.notFound(), nil
	}

	root, err := s.frame(seed)
	if err != nil {
		return s.notFound(), err
	}
	stack := []frame{root}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.cands) {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break // the seed itself is never undone
			}
			if err = s.pop(); err != nil {
				return s.notFound(), err
			}
			continue
		}

		e := top.cands[top.next]
		top.next++
		v, _ := e.Other(s.tail())
		if s.onPath[v] {
			continue
		}
		if err = s.push(v); err != nil {
			return s.notFound(), err
		}

		if len(s.path) == s.n {
			if s.g.HasEdge(v, seed) {
				return s.found()
			}
			if err = s.pop(); err != nil {
				return s.notFound(), err
			}
			continue
		}

		var next frame
		if next, err = s.frame(v); err != nil {
			return s.notFound(), err
		}
		stack = append(stack, next)
	}

	return s.notFound(), nil
}

// frame collects the edges incident to id in ascending weight order; ties
// keep Neighbors order.
func (s *search) frame(id string) (frame, error) {
	edges, err := s.g.Neighbors(id)
	if err != nil {
		return frame{}, fmt.Errorf("tour: neighbors of %q: %w", id, err)
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	return frame{cands: edges}, nil
}

func (s *search) tail() string { return s.path[len(s.path)-1] }

func (s *search) push(id string) error {
	if s.opts.MaxSteps > 0 && s.stats.Extensions >= s.opts.MaxSteps {
		return fmt.Errorf("%w: %d extensions", ErrStepLimit, s.stats.Extensions)
	}
	s.path = append(s.path, id)
	s.onPath[id] = true
	s.stats.Extensions++
	if s.opts.OnExtend != nil {
		if err := s.opts.OnExtend(id, len(s.path)); err != nil {
			return fmt.Errorf("tour: OnExtend(%s): %w", id, err)
		}
	}

	return nil
}

func (s *search) pop() error {
	depth := len(s.path)
	id := s.path[depth-1]
	s.path = s.path[:depth-1]
	delete(s.onPath, id)
	s.stats.Backtracks++
	if s.opts.OnBacktrack != nil {
		if err := s.opts.OnBacktrack(id, depth); err != nil {
			return fmt.Errorf("tour: OnBacktrack(%s): %w", id, err)
		}
	}

	return nil
}

func (s *search) found() (Result, error) {
	p := append(s.path.Clone(), s.path[0])
	cost, err := Cost(s.g, p)
	if err != nil {
		return s.notFound(), err
	}

	return Result{Outcome: Found, Path: p, Cost: cost, Stats: s.stats}, nil
}

func (s *search) notFound() Result {
	return Result{Outcome: NotFound, Stats: s.stats}
}
