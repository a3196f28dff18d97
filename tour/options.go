// SPDX-License-Identifier: MIT

package tour

// Option configures a Build call.
type Option func(*Options)

// Options holds the resolved parameters of a search.
type Options struct {
	// Seed is the starting vertex. Empty means the first vertex in
	// Graph.Vertices order.
	Seed string

	// MaxSteps bounds the number of extensions. Zero means unbounded;
	// exceeding it aborts with ErrStepLimit.
	MaxSteps int

	// OnExtend, if non-nil, runs after a vertex is appended, with the new
	// path length. Returning an error aborts the search with that error.
	OnExtend func(id string, depth int) error

	// OnBacktrack, if non-nil, runs after a vertex is removed, with the
	// path length before removal. Returning an error aborts the search.
	OnBacktrack func(id string, depth int) error
}

// DefaultOptions returns options with no seed override, no step bound and
// no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed sets the starting vertex.
func WithSeed(id string) Option {
	return func(o *Options) { o.Seed = id }
}

// WithMaxSteps bounds the number of extensions; n <= 0 disables the bound.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxSteps = n
	}
}

// WithOnExtend registers a hook fired after every append.
func WithOnExtend(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnExtend = fn }
}

// WithOnBacktrack registers a hook fired after every undo.
func WithOnBacktrack(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnBacktrack = fn }
}
