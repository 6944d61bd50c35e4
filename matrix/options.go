// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the graph→matrix adapter.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// DefaultSelfAvoiding is the diagonal policy of NewAdjacency: false puts a 1
// on every diagonal cell (each node counts as its own neighbor).
const DefaultSelfAvoiding = false

// Options holds resolved adapter settings.
type Options struct {
	selfAvoiding bool
}

// Option mutates Options.
type Option func(*Options)

// WithSelfAvoiding leaves the diagonal of an adjacency matrix at 0, so a row
// sums to the node's degree instead of degree+1.
func WithSelfAvoiding() Option {
	return func(o *Options) {
		o.selfAvoiding = true
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{selfAvoiding: DefaultSelfAvoiding}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
