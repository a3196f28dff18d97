// SPDX-License-Identifier: MIT

package solve

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/hamtour/tour"
)

// Strategy selects how Solve searches.
type Strategy int

const (
	// Direct runs the greedy search on the whole graph.
	Direct Strategy = iota
	// DivideAndConquer splits the graph, solves both halves concurrently and
	// splices the partial tours.
	DivideAndConquer
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("solve: unknown strategy")

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Direct:
		return "direct"
	case DivideAndConquer:
		return "divide"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "direct" and "divide" (alias "divide-and-conquer") to a
// Strategy. Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "direct", "":
		return Direct, nil
	case "divide", "divide-and-conquer":
		return DivideAndConquer, nil
	default:
		return Direct, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Option configures Solve.
type Option func(*options)

type options struct {
	strategy Strategy
	seed     string
	maxSteps int
	logger   *zap.Logger
	recorder Recorder
}

func defaultOptions() options {
	return options{
		strategy: Direct,
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
	}
}

// WithStrategy selects the search strategy (default Direct).
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithSeed sets the vertex the final tour starts from. For Direct it is the
// search seed; for DivideAndConquer the spliced tour is rotated to it.
func WithSeed(id string) Option {
	return func(o *options) { o.seed = id }
}

// WithMaxSteps bounds every individual search; see tour.WithMaxSteps.
func WithMaxSteps(n int) Option {
	return func(o *options) { o.maxSteps = n }
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder sets the metrics sink. A nil recorder keeps the no-op default.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// Recorder receives solver events. internal/metrics provides a Prometheus
// implementation.
//
// Solve calls a Recorder from the goroutine that called Solve, never from
// the goroutines searching the halves, so implementations need no locking
// unless they are shared between concurrent Solve calls.
type Recorder interface {
	// ObserveSearch is called once per greedy search; scope is "whole",
	// "half_a" or "half_b".
	ObserveSearch(scope string, res tour.Result)
	// ObserveMerge is called once per splice attempt with "closed", "open"
	// or "error".
	ObserveMerge(result string)
	// ObserveFallback is called when divide-and-conquer falls back to a
	// direct search.
	ObserveFallback(reason string)
	// ObserveTour is called with the cost of every tour Solve returns.
	ObserveTour(cost float64)
}

type nopRecorder struct{}

func (nopRecorder) ObserveSearch(string, tour.Result) {}
func (nopRecorder) ObserveMerge(string)               {}
func (nopRecorder) ObserveFallback(string)            {}
func (nopRecorder) ObserveTour(float64)               {}
