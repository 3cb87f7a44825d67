// SPDX-License-Identifier: MIT
// Package: dronepath/pointgen
//
// errors.go: sentinel errors for the pointgen package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generate attaches context with %w; sentinels carry no parameters.

package pointgen

import "errors"

// ErrTooFewPoints indicates a negative point count.
var ErrTooFewPoints = errors.New("pointgen: point count must be non-negative")

// ErrTooManyDuplicates indicates that WithDuplicates asked for more planted
// duplicates than the point set can hold (k > n/2).
var ErrTooManyDuplicates = errors.New("pointgen: too many duplicates for point count")
