package route

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the route package.
var (
	// ErrStartOutOfRange indicates a start index outside [0, n).
	ErrStartOutOfRange = errors.New("route: start index out of range")

	// ErrIndexOutOfRange indicates a visit order referring to a missing point.
	ErrIndexOutOfRange = errors.New("route: point index out of range")

	// ErrInvalidOrder indicates a visit order that skips, repeats or
	// misplaces a stop.
	ErrInvalidOrder = errors.New("route: invalid visit order")
)

const (
	methodGreedy        = "Greedy"
	methodPathLength    = "PathLength"
	methodValidateOrder = "ValidateOrder"
	methodValidateTour  = "ValidateTour"
)

// Result is the outcome of a tour builder.
type Result struct {
	// Order lists point indices in visit order, starting at the start index.
	// With WithReturnToBase the start index is repeated at the end.
	Order []int

	// Hops is the number of flown legs: len(Order)-1, or 0 for empty input.
	Hops int

	// Distance is the sum of all hop lengths.
	Distance float64
}

// Options configures Greedy.
//
// Start        – index of the first waypoint (default 0).
// ReturnToBase – close the tour with a final hop back to Start.
type Options struct {
	Start        int
	ReturnToBase bool
}

// Option is a functional option for Greedy.
type Option func(*Options)

// DefaultOptions returns an open tour starting at index 0.
func DefaultOptions() Options {
	return Options{Start: 0, ReturnToBase: false}
}

// WithStart sets the start index. Panics on a negative index; an index past
// the end of the input is reported by Greedy as ErrStartOutOfRange.
func WithStart(i int) Option {
	if i < 0 {
		panic(fmt.Sprintf("route: WithStart(%d) must be non-negative", i))
	}
	return func(o *Options) {
		o.Start = i
	}
}

// WithReturnToBase makes Greedy fly back to the start after the last stop.
func WithReturnToBase() Option {
	return func(o *Options) {
		o.ReturnToBase = true
	}
}
