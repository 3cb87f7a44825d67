package closest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dronepath/geom"
)

// ErrInsufficientInput is returned when fewer than two points are given.
var ErrInsufficientInput = errors.New("closest: at least two points are required")

const (
	// MinPoints is the smallest input for which a closest pair exists.
	MinPoints = 2

	// DefaultParallelThreshold is the smallest |xs| at which WithParallel
	// splits the recursion across goroutines.
	DefaultParallelThreshold = 4096

	// bruteForceCutoff is the recursion base case size.
	bruteForceCutoff = 3

	methodBruteForce       = "BruteForce"
	methodDivideAndConquer = "DivideAndConquer"
)

// Options configures DivideAndConquer.
//
// Parallel          – run both recursive halves concurrently on large calls.
// ParallelThreshold – minimum |xs| for a concurrent split (> 3).
type Options struct {
	Parallel          bool
	ParallelThreshold int
}

// Option is a functional option for DivideAndConquer.
type Option func(*Options)

// DefaultOptions returns the sequential configuration.
func DefaultOptions() Options {
	return Options{
		Parallel:          false,
		ParallelThreshold: DefaultParallelThreshold,
	}
}

// WithParallel enables concurrent recursion for calls with at least
// threshold points. Panics if threshold does not exceed the base case size.
func WithParallel(threshold int) Option {
	if threshold <= bruteForceCutoff {
		panic(fmt.Sprintf("closest: WithParallel(threshold=%d) must exceed %d", threshold, bruteForceCutoff))
	}
	return func(o *Options) {
		o.Parallel = true
		o.ParallelThreshold = threshold
	}
}

// validateInput enforces the closest-pair preconditions shared by both algorithms.
func validateInput(method string, points []geom.Point) error {
	if len(points) < MinPoints {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, len(points), MinPoints, ErrInsufficientInput)
	}
	if err := geom.Validate(points); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
