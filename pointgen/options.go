// SPDX-License-Identifier: MIT
// Package: dronepath/pointgen
//
// options.go: functional options for Generate.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Generate itself returns sentinel errors and never panics.

package pointgen

import (
	"fmt"
	"math/rand"
)

// Option customizes Generate by mutating a genConfig.
type Option func(*genConfig)

// WithSeed creates a new *rand.Rand with the given seed.
// Seed 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
// The RNG is consumed by Generate and must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithBounds sets the exclusive upper bounds of the integer coordinates.
// Panics if either bound is not positive.
func WithBounds(maxX, maxY int) Option {
	if maxX <= 0 || maxY <= 0 {
		panic(fmt.Sprintf("pointgen: WithBounds(%d, %d) must be positive", maxX, maxY))
	}
	return func(c *genConfig) {
		c.maxX, c.maxY = maxX, maxY
	}
}

// WithDuplicates plants k coordinate duplicates of other points.
// Panics if k < 0; k > n/2 is reported by Generate as ErrTooManyDuplicates.
func WithDuplicates(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("pointgen: WithDuplicates(%d) must be non-negative", k))
	}
	return func(c *genConfig) {
		c.duplicates = k
	}
}
