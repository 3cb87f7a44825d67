// Package route: visit-order utilities shared by tour builders and callers.
//
// This file contains compact helpers that operate on index sequences:
//   - ValidateOrder: open order, a permutation of {0..n-1} starting at start.
//   - ValidateTour:  closed tour, len==n+1 and tour[0]==tour[n]==start.
//   - PathLength:    sum of hop lengths along any index sequence.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) time, one O(n) marker slice at most.
package route

import (
	"fmt"

	"github.com/katalvlaran/dronepath/geom"
)

// ValidateOrder checks that order visits every index in [0..n-1] exactly
// once and begins at start.
//
// Complexity: O(n) time, O(n) space.
func ValidateOrder(order []int, n int, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("%s: start=%d not in [0,%d): %w", methodValidateOrder, start, n, ErrStartOutOfRange)
	}
	if len(order) != n {
		return fmt.Errorf("%s: len=%d, want %d: %w", methodValidateOrder, len(order), n, ErrInvalidOrder)
	}
	if order[0] != start {
		return fmt.Errorf("%s: order[0]=%d, want %d: %w", methodValidateOrder, order[0], start, ErrInvalidOrder)
	}

	return checkPermutation(methodValidateOrder, order, n)
}

// ValidateTour enforces closed-tour invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each index in [0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("%s: start=%d not in [0,%d): %w", methodValidateTour, start, n, ErrStartOutOfRange)
	}
	if len(tour) != n+1 {
		return fmt.Errorf("%s: len=%d, want %d: %w", methodValidateTour, len(tour), n+1, ErrInvalidOrder)
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("%s: tour must start and end at %d: %w", methodValidateTour, start, ErrInvalidOrder)
	}

	return checkPermutation(methodValidateTour, tour[:n], n)
}

// checkPermutation verifies that perm is a permutation of {0..n-1}.
func checkPermutation(method string, perm []int, n int) error {
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < len(perm); i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%s: [%d]=%d not in [0,%d): %w", method, i, v, n, ErrIndexOutOfRange)
		}
		if seen[v] {
			return fmt.Errorf("%s: index %d repeated at position %d: %w", method, v, i, ErrInvalidOrder)
		}
		seen[v] = true
	}

	return nil
}

// PathLength sums the hop lengths along order. Orders with fewer than two
// entries have length 0. Indices are range-checked; revisits are allowed.
//
// Complexity: O(len(order)).
func PathLength(points []geom.Point, order []int) (float64, error) {
	var (
		n   = len(points)
		sum float64
		i   int
		u   int
		v   int
	)
	for i = 0; i < len(order); i++ {
		if v = order[i]; v < 0 || v >= n {
			return 0, fmt.Errorf("%s: order[%d]=%d not in [0,%d): %w", methodPathLength, i, v, n, ErrIndexOutOfRange)
		}
		if i > 0 {
			sum += points[u].DistanceTo(points[v])
		}
		u = v
	}

	return sum, nil
}
