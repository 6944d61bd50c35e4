// SPDX-License-Identifier: MIT
// Package: netopt/builder
//
// config.go — internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng  = nil  (RandomPlacement falls back to a time-seeded source)
//   • area = unset (RandomPlacement uses area = node count)

package builder

import (
	"math/rand"
	"time"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “not pinned”.
	rng *rand.Rand
	// area is the inclusive upper bound of each placement coordinate.
	area    int
	hasArea bool
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order. Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// randSource returns the configured RNG or a fresh time-seeded one.
func (c builderConfig) randSource() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// placementArea resolves the coordinate bound for n nodes.
func (c builderConfig) placementArea(n int) int {
	if c.hasArea {
		return c.area
	}

	return n
}
