// SPDX-License-Identifier: MIT
// Package: dronepath/pointgen
//
// Package pointgen produces reproducible point sets for dronepath algorithms,
// benchmarks and tests.
//
// The generator is an injected collaborator: algorithms never create points,
// and no process-wide random state is touched. Every call resolves its own
// *rand.Rand from options:
//
//	pts, err := pointgen.Generate(1000,
//	    pointgen.WithSeed(42),          // reproducible stream
//	    pointgen.WithBounds(100, 100),  // integer coordinates in [0,100)
//	    pointgen.WithDuplicates(1),     // plant one coincident pair
//	)
//
// Determinism:
//   - Same n, same options (same seed) ⇒ identical output on every platform.
//   - Seed 0 maps to a fixed default seed; there is no time-based source.
//
// Errors:
//   - ErrTooFewPoints: n < 0.
//   - ErrTooManyDuplicates: more planted duplicates than n/2.
//
// Option constructors panic on meaningless arguments (nil RNG, bounds ≤ 0,
// negative duplicate count). Generate itself never panics.
package pointgen
