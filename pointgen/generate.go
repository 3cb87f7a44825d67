// SPDX-License-Identifier: MIT
// Package: dronepath/pointgen
//
// generate.go: implementation of Generate(n, opts...).
//
// Canonical model:
//   - Draw n points with integer coordinates x∈[0,maxX), y∈[0,maxY),
//     in index order, x before y.
//   - If duplicates k>0: draw a permutation of 0..n-1; sources = perm[:k],
//     targets = perm[k:2k]; points[target] = points[source]. The two index
//     sets are disjoint, so each planted copy survives.
//
// Complexity:
//   - Time: O(n). Space: O(n) for the result (+O(n) permutation when k>0).

package pointgen

import (
	"fmt"

	"github.com/katalvlaran/dronepath/geom"
)

const methodGenerate = "Generate"

// Generate returns n reproducible random points. See package doc for options.
func Generate(n int, opts ...Option) ([]geom.Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodGenerate, n, ErrTooFewPoints)
	}
	cfg := newGenConfig(opts...)
	if cfg.duplicates > n/2 {
		return nil, fmt.Errorf("%s: duplicates=%d > n/2=%d: %w",
			methodGenerate, cfg.duplicates, n/2, ErrTooManyDuplicates)
	}

	rng := cfg.rng
	points := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		points[i] = geom.Point{
			X: float64(rng.Intn(cfg.maxX)),
			Y: float64(rng.Intn(cfg.maxY)),
		}
	}

	if k := cfg.duplicates; k > 0 {
		perm := rng.Perm(n)
		for i := 0; i < k; i++ {
			points[perm[k+i]] = points[perm[i]]
		}
	}

	return points, nil
}
