package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/dronepath/simulate"
)

func writeReport(w io.Writer, rep simulate.Report) error {
	if err := writePoints(w, rep.Points); err != nil {
		return err
	}
	if err := writePairs(w, rep.Pairs); err != nil {
		return err
	}
	return writeRoute(w, rep.Route)
}

func writePoints(w io.Writer, n int) error {
	_, err := fmt.Fprintf(w, "points: %d\n", n)
	return err
}

func writePairs(w io.Writer, p simulate.PairReport) error {
	for _, row := range []struct {
		name string
		out  simulate.PairOutcome
	}{
		{"brute force", p.BruteForce},
		{"divide and conquer", p.DivideAndConquer},
	} {
		if _, err := fmt.Fprintf(w, "%-20s %v\n", row.name+":", row.out.Pair); err != nil {
			return err
		}
		if err := writeTiming(w, row.out.Timing); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "agree: %t\n", p.Agree())
	return err
}

func writeRoute(w io.Writer, r simulate.RouteOutcome) error {
	if _, err := fmt.Fprintf(w, "%-20s hops=%d distance=%.4f\n", "greedy route:", r.Route.Hops, r.Route.Distance); err != nil {
		return err
	}
	return writeTiming(w, r.Timing)
}

func writeTiming(w io.Writer, t simulate.Timing) error {
	_, err := fmt.Fprintf(w, "%-20s runs=%d mean=%v stddev=%v min=%v max=%v\n",
		"", t.Runs, t.Mean, t.StdDev, t.Min, t.Max)
	return err
}
