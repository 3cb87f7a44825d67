// SPDX-License-Identifier: MIT
// Package: dronepath/pointgen
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = nil → resolved to rngFromSeed(0) in Generate
//   • maxX/maxY  = 100 (integer coordinates in [0,100))
//   • duplicates = 0

package pointgen

import "math/rand"

const (
	// DefaultBound is the default exclusive upper bound on each axis.
	DefaultBound = 100

	// defaultRNGSeed is used when callers pass seed 0 or no seed at all.
	defaultRNGSeed int64 = 1
)

// genConfig aggregates all knobs used by Generate.
type genConfig struct {
	rng        *rand.Rand
	maxX, maxY int
	duplicates int
}

// newGenConfig applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:        nil,
		maxX:       DefaultBound,
		maxY:       DefaultBound,
		duplicates: 0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
