// SPDX-License-Identifier: MIT

// Package solve dispatches a Hamiltonian-cycle search over a core.Graph.
//
// Direct runs tour.Build on the whole graph. DivideAndConquer cuts the graph
// with partition.Split, runs tour.Build on both halves in parallel, splices
// the partial tours with merge.Merge and rotates the result to the seed.
// When a half has no tour, or the splice fails or stays open, the solver
// falls back to Direct and says so in Report.FellBack.
package solve

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hamtour/core"
	"github.com/katalvlaran/hamtour/merge"
	"github.com/katalvlaran/hamtour/partition"
	"github.com/katalvlaran/hamtour/tour"
)

// ErrGraphNil is returned when Solve receives a nil graph.
var ErrGraphNil = errors.New("solve: graph is nil")

// Fallback reasons reported to the logger and the Recorder.
const (
	ReasonHalfNotFound = "half_not_found"
	ReasonMergeFailed  = "merge_failed"
	ReasonMergeOpen    = "merge_open"
	ReasonInvalidTour  = "invalid_tour"
)

// Report is the outcome of Solve.
type Report struct {
	// Strategy is the strategy requested.
	Strategy Strategy
	// Result is the final search result. For a spliced tour, Stats sums the
	// work of both halves.
	Result tour.Result
	// Closed reports whether Result.Path is a closed Hamiltonian cycle.
	Closed bool
	// FellBack is set when DivideAndConquer had to run a direct search.
	FellBack bool
	// Reason names the fallback cause; empty unless FellBack.
	Reason string
	// Halves holds the half searches of DivideAndConquer. A single-vertex
	// half reports Found with a one-element open path.
	Halves [2]tour.Result
}

// Solve searches g for a Hamiltonian cycle with the configured strategy.
//
// NotFound is reported through Report.Result.Outcome with a nil error;
// errors signal invalid input or a search aborted by the step bound.
func Solve(g *core.Graph, opts ...Option) (Report, error) {
	if g == nil {
		return Report{}, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g.VertexCount() == 0 {
		return Report{Strategy: o.strategy}, tour.ErrEmptyGraph
	}
	if o.seed != "" && !g.HasVertex(o.seed) {
		return Report{Strategy: o.strategy}, fmt.Errorf("%w: %q", tour.ErrSeedNotFound, o.seed)
	}

	switch o.strategy {
	case Direct:
		return direct(g, o, Report{Strategy: Direct})
	case DivideAndConquer:
		return divide(g, o)
	default:
		return Report{Strategy: o.strategy}, fmt.Errorf("%w: %s", ErrUnknownStrategy, o.strategy)
	}
}

func direct(g *core.Graph, o options, rep Report) (Report, error) {
	res, err := tour.Build(g, o.tourOptions(o.seed)...)
	o.recorder.ObserveSearch("whole", res)
	if err != nil {
		return rep, fmt.Errorf("solve: direct search: %w", err)
	}
	o.logger.Debug("direct search finished",
		zap.Stringer("outcome", res.Outcome),
		zap.Int("extensions", res.Stats.Extensions),
		zap.Int("backtracks", res.Stats.Backtracks),
	)

	return finish(o, rep, res), nil
}

func divide(g *core.Graph, o options) (Report, error) {
	rep := Report{Strategy: DivideAndConquer}
	if g.VertexCount() < 2 {
		return direct(g, o, rep)
	}

	ga, gb, err := partition.Split(g)
	if err != nil {
		return rep, fmt.Errorf("solve: %w", err)
	}

	scopes := [2]string{"half_a", "half_b"}
	var eg errgroup.Group
	for i, half := range []*core.Graph{ga, gb} {
		i, half := i, half
		eg.Go(func() error {
			res, err := solveHalf(half, o)
			rep.Halves[i] = res
			if err != nil {
				return fmt.Errorf("solve: %s: %w", scopes[i], err)
			}
			return nil
		})
	}
	err = eg.Wait()
	// the recorder is only called from this goroutine
	for i, h := range rep.Halves {
		o.recorder.ObserveSearch(scopes[i], h)
	}
	if err != nil {
		return rep, err
	}

	for _, h := range rep.Halves {
		if !h.Found() {
			return fallback(g, o, rep, ReasonHalfNotFound, nil)
		}
	}

	mr, err := merge.Merge(g, rep.Halves[0].Path, rep.Halves[1].Path)
	switch {
	case err != nil:
		o.recorder.ObserveMerge("error")
		return fallback(g, o, rep, ReasonMergeFailed, err)
	case !mr.Closed:
		o.recorder.ObserveMerge("open")
		return fallback(g, o, rep, ReasonMergeOpen, nil)
	}
	o.recorder.ObserveMerge("closed")

	seed := o.seed
	if seed == "" {
		seed = g.Vertices()[0]
	}
	p, err := tour.Rotate(mr.Path, seed)
	if err == nil {
		err = tour.Validate(g, p)
	}
	if err != nil {
		return fallback(g, o, rep, ReasonInvalidTour, err)
	}

	a, b := rep.Halves[0].Stats, rep.Halves[1].Stats
	res := tour.Result{
		Outcome: tour.Found,
		Path:    p,
		Cost:    mr.Cost,
		Stats: tour.Stats{
			Extensions: a.Extensions + b.Extensions,
			Backtracks: a.Backtracks + b.Backtracks,
		},
	}
	o.logger.Debug("halves spliced",
		zap.String("bridge", mr.Bridge.A+"-"+mr.Bridge.B),
		zap.String("closing", mr.Closing.A+"-"+mr.Closing.B),
		zap.Float64("cost", mr.Cost),
	)

	return finish(o, rep, res), nil
}

// solveHalf searches one half. A single vertex is a trivial open path.
func solveHalf(g *core.Graph, o options) (tour.Result, error) {
	if g.VertexCount() == 1 {
		return tour.Result{Outcome: tour.Found, Path: tour.Path{g.Vertices()[0]}}, nil
	}

	return tour.Build(g, o.tourOptions("")...)
}

func fallback(g *core.Graph, o options, rep Report, reason string, cause error) (Report, error) {
	fields := []zap.Field{zap.String("reason", reason)}
	if cause != nil {
		fields = append(fields, zap.Error(cause))
	}
	o.logger.Info("divide-and-conquer fell back to direct search", fields...)
	o.recorder.ObserveFallback(reason)
	rep.FellBack = true
	rep.Reason = reason

	return direct(g, o, rep)
}

func finish(o options, rep Report, res tour.Result) Report {
	rep.Result = res
	rep.Closed = res.Found()
	if res.Found() {
		o.recorder.ObserveTour(res.Cost)
	}

	return rep
}

func (o options) tourOptions(seed string) []tour.Option {
	var out []tour.Option
	if seed != "" {
		out = append(out, tour.WithSeed(seed))
	}
	if o.maxSteps > 0 {
		out = append(out, tour.WithMaxSteps(o.maxSteps))
	}

	return out
}
