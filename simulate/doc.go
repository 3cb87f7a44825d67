// Package simulate is the benchmark harness around the dronepath algorithms.
//
// It reproduces the drone-delivery experiment: given one point set, it
// times the brute-force closest pair, the divide-and-conquer closest pair,
// and the greedy visiting tour, and reports results alongside wall-clock
// statistics. The algorithms themselves stay pure; only this package
// measures, logs and records metrics.
//
// Usage:
//
//	r := simulate.NewRunner(
//	    simulate.WithLogger(logrus.StandardLogger()),
//	    simulate.WithCollector(&simulate.BasicCollector{}),
//	)
//	cfg := simulate.DefaultConfig()
//	cfg.Runs = 5
//	rep, err := r.Run(ctx, points, cfg)
//
// Each algorithm is executed cfg.Runs times. Timing holds mean, standard
// deviation (gonum/stat), min and max over the runs. The result kept in the
// report is the one from the last run; every run yields the same answer
// because the algorithms are deterministic.
//
// Cancellation is checked between runs, never inside an algorithm.
//
// Errors:
//   - ErrNoRuns: cfg.Runs < 1.
//   - ErrBadParallelThreshold: cfg.Parallel with a threshold ≤ 3.
//   - closest / route / geom sentinels, wrapped with the failing algorithm.
//   - ctx.Err() when the context is done between runs.
package simulate
