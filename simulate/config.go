package simulate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dronepath/closest"
)

var (
	// ErrNoRuns indicates a configuration asking for fewer than one run.
	ErrNoRuns = errors.New("simulate: runs must be at least 1")

	// ErrBadParallelThreshold indicates a parallel threshold the recursion
	// cannot honour.
	ErrBadParallelThreshold = errors.New("simulate: parallel threshold must exceed 3")
)

// minParallelThreshold mirrors the closest package base case (3) plus one.
const minParallelThreshold = 4

// Config controls one harness invocation.
type Config struct {
	// Runs is the number of timed repetitions per algorithm.
	Runs int

	// Parallel enables the concurrent divide-and-conquer recursion.
	Parallel bool

	// ParallelThreshold is the smallest sub-problem split across goroutines.
	ParallelThreshold int

	// ReturnToBase closes the greedy tour back at its start.
	ReturnToBase bool
}

// DefaultConfig returns a single sequential run with an open tour.
func DefaultConfig() Config {
	return Config{
		Runs:              1,
		Parallel:          false,
		ParallelThreshold: closest.DefaultParallelThreshold,
		ReturnToBase:      false,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Runs < 1 {
		return fmt.Errorf("runs=%d: %w", c.Runs, ErrNoRuns)
	}
	if c.Parallel && c.ParallelThreshold < minParallelThreshold {
		return fmt.Errorf("parallel-threshold=%d: %w", c.ParallelThreshold, ErrBadParallelThreshold)
	}

	return nil
}

// closestOptions translates the config into DivideAndConquer options.
// It must only be called on a validated config.
func (c Config) closestOptions() []closest.Option {
	if !c.Parallel {
		return nil
	}

	return []closest.Option{closest.WithParallel(c.ParallelThreshold)}
}
