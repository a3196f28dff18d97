// SPDX-License-Identifier: MIT

// Package metrics exposes solver activity as Prometheus metrics.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/hamtour/tour"
)

// =============================================================================
// Solver Metrics
// =============================================================================

// Recorder implements solve.Recorder on top of a Prometheus registerer.
type Recorder struct {
	SearchesTotal  *prometheus.CounterVec
	Extensions     *prometheus.HistogramVec
	Backtracks     *prometheus.HistogramVec
	MergesTotal    *prometheus.CounterVec
	FallbacksTotal *prometheus.CounterVec
	LastTourCost   prometheus.Gauge
}

// searchBuckets spans trivial rings up to heavily backtracking searches.
var searchBuckets = prometheus.ExponentialBuckets(1, 4, 10)

// New registers the solver metrics with reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		SearchesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hamtour_searches_total",
				Help: "Total number of greedy searches by scope and outcome",
			},
			[]string{"scope", "outcome"},
		),
		Extensions: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hamtour_search_extensions",
				Help:    "Tentative path extensions per search",
				Buckets: searchBuckets,
			},
			[]string{"scope"},
		),
		Backtracks: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hamtour_search_backtracks",
				Help:    "Undone path extensions per search",
				Buckets: searchBuckets,
			},
			[]string{"scope"},
		),
		MergesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hamtour_merges_total",
				Help: "Total number of half-tour splices by result",
			},
			[]string{"result"},
		),
		FallbacksTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hamtour_fallbacks_total",
				Help: "Total number of divide-and-conquer fallbacks to a direct search",
			},
			[]string{"reason"},
		),
		LastTourCost: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "hamtour_last_tour_cost",
				Help: "Total weight of the most recent tour",
			},
		),
	}
}

// ObserveSearch records one search.
func (r *Recorder) ObserveSearch(scope string, res tour.Result) {
	r.SearchesTotal.WithLabelValues(scope, res.Outcome.String()).Inc()
	r.Extensions.WithLabelValues(scope).Observe(float64(res.Stats.Extensions))
	r.Backtracks.WithLabelValues(scope).Observe(float64(res.Stats.Backtracks))
}

// ObserveMerge records one splice attempt.
func (r *Recorder) ObserveMerge(result string) {
	r.MergesTotal.WithLabelValues(result).Inc()
}

// ObserveFallback records one fallback.
func (r *Recorder) ObserveFallback(reason string) {
	r.FallbacksTotal.WithLabelValues(reason).Inc()
}

// ObserveTour records the cost of a returned tour.
func (r *Recorder) ObserveTour(cost float64) {
	r.LastTourCost.Set(cost)
}

// Dump writes every family gathered from g in the Prometheus text format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
