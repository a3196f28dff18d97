// SPDX-License-Identifier: MIT
// Package: hamtour/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn     = decimalID        ("0","1","2",...)
//   • rng      = nil              (pure/deterministic unless seeded)
//   • weightFn = constant 1 for every edge

package builder

import (
	"math/rand"
	"strconv"
)

// WeightFn yields the weight of the k-th emitted edge (0-based) between
// vertex indices i and j. rng is nil unless WithSeed/WithRand was given.
type WeightFn func(k, i, j int, rng *rand.Rand) float64

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	idFn     func(int) string // vertex ID strategy: index -> ID
	rng      *rand.Rand       // nil means “no randomness”
	weightFn WeightFn         // edge weight policy
}

const defaultConstWeight = 1.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		weightFn: func(int, int, int, *rand.Rand) float64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
