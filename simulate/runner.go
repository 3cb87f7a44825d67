package simulate

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dronepath/closest"
	"github.com/katalvlaran/dronepath/geom"
	"github.com/katalvlaran/dronepath/route"
)

// Runner times the dronepath algorithms on caller-supplied points.
type Runner struct {
	log       logrus.FieldLogger
	collector Collector
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) RunnerOption {
	if l == nil {
		panic("simulate: WithLogger(nil)")
	}
	return func(r *Runner) {
		r.log = l
	}
}

// WithCollector sets the metrics collector. Panics on nil.
func WithCollector(c Collector) RunnerOption {
	if c == nil {
		panic("simulate: WithCollector(nil)")
	}
	return func(r *Runner) {
		r.collector = c
	}
}

// NewRunner returns a Runner logging to logrus.StandardLogger() with no metrics.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		log:       logrus.StandardLogger(),
		collector: NoopCollector{},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run times both closest-pair algorithms and the greedy tour.
func (r *Runner) Run(ctx context.Context, points []geom.Point, cfg Config) (Report, error) {
	pairs, err := r.ClosestPair(ctx, points, cfg)
	if err != nil {
		return Report{}, err
	}
	rt, err := r.Route(ctx, points, cfg)
	if err != nil {
		return Report{}, err
	}

	return Report{Points: len(points), Pairs: pairs, Route: rt}, nil
}

// ClosestPair times BruteForce and DivideAndConquer cfg.Runs times each.
// A disagreement between the two distances is logged as an error; it can
// only come from a defect in one of the algorithms.
func (r *Runner) ClosestPair(ctx context.Context, points []geom.Point, cfg Config) (PairReport, error) {
	if err := cfg.Validate(); err != nil {
		return PairReport{}, fmt.Errorf("simulate: %w", err)
	}

	var (
		rep  PairReport
		err  error
		opts = cfg.closestOptions()
	)
	rep.BruteForce, err = r.timePair(ctx, AlgoBruteForce, points, cfg.Runs, closest.BruteForce)
	if err != nil {
		return PairReport{}, err
	}
	rep.DivideAndConquer, err = r.timePair(ctx, AlgoDivideAndConquer, points, cfg.Runs,
		func(pts []geom.Point) (geom.Pair, error) { return closest.DivideAndConquer(pts, opts...) })
	if err != nil {
		return PairReport{}, err
	}

	if !rep.Agree() {
		r.log.WithFields(logrus.Fields{
			"brute_force":        rep.BruteForce.Pair.Distance(),
			"divide_and_conquer": rep.DivideAndConquer.Pair.Distance(),
		}).Error("closest-pair algorithms disagree")
	}

	return rep, nil
}

// Route times the greedy tour cfg.Runs times.
func (r *Runner) Route(ctx context.Context, points []geom.Point, cfg Config) (RouteOutcome, error) {
	if err := cfg.Validate(); err != nil {
		return RouteOutcome{}, fmt.Errorf("simulate: %w", err)
	}

	var opts []route.Option
	if cfg.ReturnToBase {
		opts = append(opts, route.WithReturnToBase())
	}

	var (
		n         = len(points)
		durations = make([]time.Duration, 0, cfg.Runs)
		res       route.Result
		err       error
	)
	for i := 0; i < cfg.Runs; i++ {
		if err = ctx.Err(); err != nil {
			return RouteOutcome{}, err
		}
		start := time.Now()
		res, err = route.Greedy(points, opts...)
		d := time.Since(start)
		r.collector.RecordRoute(n, d, err)
		if err != nil {
			r.log.WithFields(logrus.Fields{"algorithm": AlgoGreedyRoute, "points": n}).WithError(err).Error("run failed")
			return RouteOutcome{}, fmt.Errorf("simulate: %s: %w", AlgoGreedyRoute, err)
		}
		durations = append(durations, d)
		r.log.WithFields(logrus.Fields{"algorithm": AlgoGreedyRoute, "run": i, "elapsed": d}).Debug("run completed")
	}

	out := RouteOutcome{Route: res, Timing: summarize(durations)}
	r.log.WithFields(logrus.Fields{
		"algorithm": AlgoGreedyRoute,
		"points":    n,
		"hops":      res.Hops,
		"distance":  res.Distance,
		"mean":      out.Timing.Mean,
	}).Info("route planned")

	return out, nil
}

// timePair runs one closest-pair algorithm `runs` times.
func (r *Runner) timePair(
	ctx context.Context,
	algo Algorithm,
	points []geom.Point,
	runs int,
	fn func([]geom.Point) (geom.Pair, error),
) (PairOutcome, error) {
	var (
		n         = len(points)
		durations = make([]time.Duration, 0, runs)
		pair      geom.Pair
		err       error
	)
	for i := 0; i < runs; i++ {
		if err = ctx.Err(); err != nil {
			return PairOutcome{}, err
		}
		start := time.Now()
		pair, err = fn(points)
		d := time.Since(start)
		r.collector.RecordClosestPair(algo, n, d, err)
		if err != nil {
			r.log.WithFields(logrus.Fields{"algorithm": algo, "points": n}).WithError(err).Error("run failed")
			return PairOutcome{}, fmt.Errorf("simulate: %s: %w", algo, err)
		}
		durations = append(durations, d)
		r.log.WithFields(logrus.Fields{"algorithm": algo, "run": i, "elapsed": d}).Debug("run completed")
	}

	out := PairOutcome{Pair: pair, Timing: summarize(durations)}
	r.log.WithFields(logrus.Fields{
		"algorithm": algo,
		"points":    n,
		"distance":  pair.Distance(),
		"mean":      out.Timing.Mean,
	}).Info("closest pair found")

	return out, nil
}
