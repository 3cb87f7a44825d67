package simulate

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/dronepath/geom"
	"github.com/katalvlaran/dronepath/route"
)

// Tolerance is the largest distance gap at which the two closest-pair
// algorithms are considered to agree.
const Tolerance = 1e-9

// Timing summarises the wall-clock durations of repeated runs.
type Timing struct {
	Runs   int
	Mean   time.Duration
	StdDev time.Duration
	Min    time.Duration
	Max    time.Duration
}

// PairOutcome is the result and timing of one closest-pair algorithm.
type PairOutcome struct {
	Pair   geom.Pair
	Timing Timing
}

// PairReport holds both closest-pair outcomes for one point set.
type PairReport struct {
	BruteForce       PairOutcome
	DivideAndConquer PairOutcome
}

// Agree reports whether both algorithms found the same minimum distance.
func (p PairReport) Agree() bool {
	return math.Abs(p.BruteForce.Pair.Distance()-p.DivideAndConquer.Pair.Distance()) <= Tolerance
}

// RouteOutcome is the result and timing of the greedy tour.
type RouteOutcome struct {
	Route  route.Result
	Timing Timing
}

// Report is the full outcome of Runner.Run.
type Report struct {
	Points int
	Pairs  PairReport
	Route  RouteOutcome
}

// summarize reduces per-run durations to a Timing. ds must be non-empty.
func summarize(ds []time.Duration) Timing {
	xs := make([]float64, len(ds))
	for i, d := range ds {
		xs[i] = float64(d)
	}

	t := Timing{
		Runs: len(ds),
		Min:  time.Duration(floats.Min(xs)),
		Max:  time.Duration(floats.Max(xs)),
	}
	if len(xs) == 1 {
		t.Mean = ds[0]
		return t
	}
	mean, std := stat.MeanStdDev(xs, nil)
	t.Mean = time.Duration(mean)
	t.StdDev = time.Duration(std)

	return t
}
