package simulate

import (
	"sync/atomic"
	"time"
)

// Algorithm names one of the timed algorithms.
type Algorithm string

const (
	AlgoBruteForce       Algorithm = "brute-force"
	AlgoDivideAndConquer Algorithm = "divide-and-conquer"
	AlgoGreedyRoute      Algorithm = "greedy-route"
)

// Collector receives one record per timed run.
// Implement it to forward harness metrics to a monitoring system.
type Collector interface {
	// RecordClosestPair is called after each closest-pair run.
	// n is the input size, err is nil on success.
	RecordClosestPair(algo Algorithm, n int, duration time.Duration, err error)

	// RecordRoute is called after each greedy tour run.
	RecordRoute(n int, duration time.Duration, err error)
}

// NoopCollector discards all records.
type NoopCollector struct{}

func (NoopCollector) RecordClosestPair(Algorithm, int, time.Duration, error) {}
func (NoopCollector) RecordRoute(int, time.Duration, error)                  {}

// BasicCollector keeps in-memory counters. It is safe for concurrent use.
type BasicCollector struct {
	BruteForceCount       atomic.Int64
	BruteForceNanos       atomic.Int64
	DivideAndConquerCount atomic.Int64
	DivideAndConquerNanos atomic.Int64
	RouteCount            atomic.Int64
	RouteNanos            atomic.Int64
	Errors                atomic.Int64
}

// RecordClosestPair implements Collector.
func (b *BasicCollector) RecordClosestPair(algo Algorithm, _ int, duration time.Duration, err error) {
	switch algo {
	case AlgoBruteForce:
		b.BruteForceCount.Add(1)
		b.BruteForceNanos.Add(duration.Nanoseconds())
	case AlgoDivideAndConquer:
		b.DivideAndConquerCount.Add(1)
		b.DivideAndConquerNanos.Add(duration.Nanoseconds())
	}
	if err != nil {
		b.Errors.Add(1)
	}
}

// RecordRoute implements Collector.
func (b *BasicCollector) RecordRoute(_ int, duration time.Duration, err error) {
	b.RouteCount.Add(1)
	b.RouteNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.Errors.Add(1)
	}
}
