// SPDX-License-Identifier: MIT

package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/hamtour/builder"
	"github.com/katalvlaran/hamtour/core"
	"github.com/katalvlaran/hamtour/solve"
	"github.com/katalvlaran/hamtour/tour"
)

// recorder captures solver events without locking; Solve must call it from
// a single goroutine for this to pass under -race.
type recorder struct {
	scopes    []string
	searches  map[string]int
	merges    []string
	fallbacks []string
	tours     []float64
}

func newRecorder() *recorder { return &recorder{searches: map[string]int{}} }

func (r *recorder) ObserveSearch(scope string, _ tour.Result) {
	r.scopes = append(r.scopes, scope)
	r.searches[scope]++
}

func (r *recorder) ObserveMerge(result string) {
	r.merges = append(r.merges, result)
}

func (r *recorder) ObserveFallback(reason string) {
	r.fallbacks = append(r.fallbacks, reason)
}

func (r *recorder) ObserveTour(cost float64) {
	r.tours = append(r.tours, cost)
}

func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]solve.Strategy{
		"direct":             solve.Direct,
		"":                   solve.Direct,
		"Divide":             solve.DivideAndConquer,
		"divide-and-conquer": solve.DivideAndConquer,
	} {
		got, err := solve.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := solve.ParseStrategy("annealing")
	require.ErrorIs(t, err, solve.ErrUnknownStrategy)

	assert.Equal(t, "divide", solve.DivideAndConquer.String())
	assert.Equal(t, "direct", solve.Direct.String())
}

func TestSolve_Direct(t *testing.T) {
	g := build(t, builder.Reference())
	rec := newRecorder()

	rep, err := solve.Solve(g, solve.WithRecorder(rec))
	require.NoError(t, err)

	assert.Equal(t, solve.Direct, rep.Strategy)
	assert.True(t, rep.Closed)
	assert.False(t, rep.FellBack)
	assert.Equal(t, tour.Path{"0", "1", "2", "5", "4", "6", "7", "3", "0"}, rep.Result.Path)
	assert.Equal(t, 65.0, rep.Result.Cost)
	assert.Equal(t, map[string]int{"whole": 1}, rec.searches)
	assert.Equal(t, []float64{65}, rec.tours)
}

func TestSolve_DivideAndConquerReference(t *testing.T) {
	g := build(t, builder.Reference())
	rec := newRecorder()

	rep, err := solve.Solve(g, solve.WithStrategy(solve.DivideAndConquer), solve.WithRecorder(rec))
	require.NoError(t, err)

	require.True(t, rep.Closed)
	assert.False(t, rep.FellBack)
	assert.Equal(t, tour.Path{"0", "3", "4", "7", "6", "5", "2", "1", "0"}, rep.Result.Path)
	assert.Equal(t, 70.0, rep.Result.Cost)
	require.NoError(t, tour.Validate(g, rep.Result.Path))

	assert.Equal(t, tour.Path{"0", "1", "2", "3", "0"}, rep.Halves[0].Path)
	assert.Equal(t, tour.Path{"4", "7", "6", "5", "4"}, rep.Halves[1].Path)
	assert.Equal(t,
		rep.Halves[0].Stats.Extensions+rep.Halves[1].Stats.Extensions,
		rep.Result.Stats.Extensions)

	assert.Equal(t, map[string]int{"half_a": 1, "half_b": 1}, rec.searches)
	assert.Equal(t, []string{"half_a", "half_b"}, rec.scopes, "halves are reported in order after both finish")
	assert.Equal(t, []string{"closed"}, rec.merges)
	assert.Empty(t, rec.fallbacks)
	assert.Equal(t, []float64{70}, rec.tours)
}

func TestSolve_DivideAndConquerRotatesToSeed(t *testing.T) {
	g := build(t, builder.Reference())

	rep, err := solve.Solve(g, solve.WithStrategy(solve.DivideAndConquer), solve.WithSeed("5"))
	require.NoError(t, err)
	assert.Equal(t, tour.Path{"5", "2", "1", "0", "3", "4", "7", "6", "5"}, rep.Result.Path)
}

func TestSolve_FallbackWhenHalfHasNoTour(t *testing.T) {
	// Each half of C6 is a simple path, so only the direct search succeeds.
	g := build(t, builder.Cycle(6))
	obsCore, logs := observer.New(zapcore.InfoLevel)
	rec := newRecorder()

	rep, err := solve.Solve(g,
		solve.WithStrategy(solve.DivideAndConquer),
		solve.WithLogger(zap.New(obsCore)),
		solve.WithRecorder(rec),
	)
	require.NoError(t, err)

	assert.True(t, rep.FellBack)
	assert.Equal(t, solve.ReasonHalfNotFound, rep.Reason)
	assert.True(t, rep.Closed)
	assert.Equal(t, tour.Path{"0", "1", "2", "3", "4", "5", "0"}, rep.Result.Path)
	assert.Equal(t, tour.NotFound, rep.Halves[0].Outcome)

	entries := logs.FilterMessage("divide-and-conquer fell back to direct search").All()
	require.Len(t, entries, 1)
	assert.Equal(t, solve.ReasonHalfNotFound, entries[0].ContextMap()["reason"])
	assert.Equal(t, []string{solve.ReasonHalfNotFound}, rec.fallbacks)
	assert.Equal(t, 1, rec.searches["whole"])
}

func TestSolve_FallbackWhenSpliceStaysOpen(t *testing.T) {
	// Two triangles joined by one bridge: both halves close, the splice cannot.
	g := build(t, builder.Edges([]builder.EdgeSpec{
		{From: "a", To: "b", Weight: 1}, {From: "b", To: "c", Weight: 1}, {From: "c", To: "a", Weight: 1},
		{From: "x", To: "y", Weight: 1}, {From: "y", To: "z", Weight: 1}, {From: "z", To: "x", Weight: 1},
		{From: "c", To: "x", Weight: 5},
	}))
	rec := newRecorder()

	rep, err := solve.Solve(g, solve.WithStrategy(solve.DivideAndConquer), solve.WithRecorder(rec))
	require.NoError(t, err)

	assert.True(t, rep.FellBack)
	assert.Equal(t, solve.ReasonMergeOpen, rep.Reason)
	assert.False(t, rep.Closed)
	assert.Equal(t, tour.NotFound, rep.Result.Outcome)
	assert.Equal(t, []string{"open"}, rec.merges)
	assert.Empty(t, rec.tours)
}

func TestSolve_FallbackWhenNoBoundary(t *testing.T) {
	g := build(t, builder.Edges([]builder.EdgeSpec{
		{From: "a", To: "b", Weight: 1}, {From: "b", To: "c", Weight: 1}, {From: "c", To: "a", Weight: 1},
		{From: "x", To: "y", Weight: 1}, {From: "y", To: "z", Weight: 1}, {From: "z", To: "x", Weight: 1},
	}))

	rep, err := solve.Solve(g, solve.WithStrategy(solve.DivideAndConquer))
	require.NoError(t, err)
	assert.True(t, rep.FellBack)
	assert.Equal(t, solve.ReasonMergeFailed, rep.Reason)
	assert.Equal(t, tour.NotFound, rep.Result.Outcome)
}

func TestSolve_DivideAndConquerSmallGraphs(t *testing.T) {
	// Single vertex: direct search only.
	single := core.NewGraph()
	require.NoError(t, single.AddVertex("v"))
	rep, err := solve.Solve(single, solve.WithStrategy(solve.DivideAndConquer))
	require.NoError(t, err)
	assert.Equal(t, tour.NotFound, rep.Result.Outcome)
	assert.False(t, rep.FellBack)

	// K3 splits into an edge and a single vertex; the splice closes.
	k3 := build(t, builder.Complete(3))
	rep, err = solve.Solve(k3, solve.WithStrategy(solve.DivideAndConquer))
	require.NoError(t, err)
	assert.True(t, rep.Closed)
	assert.False(t, rep.FellBack)
	assert.Equal(t, tour.Path{"2"}, rep.Halves[1].Path)
	require.NoError(t, tour.Validate(k3, rep.Result.Path))
	assert.Equal(t, "0", rep.Result.Path[0])
}

func TestSolve_Errors(t *testing.T) {
	_, err := solve.Solve(nil)
	require.ErrorIs(t, err, solve.ErrGraphNil)

	_, err = solve.Solve(core.NewGraph())
	require.ErrorIs(t, err, tour.ErrEmptyGraph)

	g := build(t, builder.Reference())
	_, err = solve.Solve(g, solve.WithSeed("42"))
	require.ErrorIs(t, err, tour.ErrSeedNotFound)

	_, err = solve.Solve(g, solve.WithMaxSteps(5))
	require.ErrorIs(t, err, tour.ErrStepLimit)

	_, err = solve.Solve(g, solve.WithStrategy(solve.DivideAndConquer), solve.WithMaxSteps(1))
	require.ErrorIs(t, err, tour.ErrStepLimit)

	_, err = solve.Solve(g, solve.WithStrategy(solve.Strategy(9)))
	require.ErrorIs(t, err, solve.ErrUnknownStrategy)
}

// TestSolve_StrategiesAgreeOnValidity checks that whatever either strategy
// returns on random graphs is a valid tour.
func TestSolve_StrategiesAgreeOnValidity(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		bopts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeights(1, 20)}
		g, err := builder.BuildGraph(nil, bopts, builder.RandomSparse(10, 0.6))
		require.NoError(t, err)

		d, err := solve.Solve(g)
		require.NoError(t, err)
		dc, err := solve.Solve(g, solve.WithStrategy(solve.DivideAndConquer))
		require.NoError(t, err)

		assert.Equal(t, d.Closed, dc.Closed, "seed %d", seed)
		for _, rep := range []solve.Report{d, dc} {
			if rep.Closed {
				require.NoError(t, tour.Validate(g, rep.Result.Path), "seed %d", seed)
				assert.Equal(t, g.Vertices()[0], rep.Result.Path[0])
			}
		}
	}
}
