package closest

import (
	"cmp"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dronepath/geom"
)

// item is a point tagged with its position in the x-ordered view.
// The rank makes the y partition exact when several points share the split x.
type item struct {
	p    geom.Point
	rank int
}

// solver carries the immutable recursion configuration.
type solver struct {
	parallel  bool
	threshold int
}

// DivideAndConquer returns the closest pair in O(n log n).
//
// Inputs with n ≤ 3 take the brute-force path on the caller's order and are
// therefore bit-identical to BruteForce. For larger inputs the reported
// distance always equals BruteForce's; the pair itself may differ under ties.
//
// The input slice is never modified.
func DivideAndConquer(points []geom.Point, opts ...Option) (geom.Pair, error) {
	if err := validateInput(methodDivideAndConquer, points); err != nil {
		return geom.Pair{}, err
	}
	if len(points) <= bruteForceCutoff {
		return bruteForce(points), nil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	xs, ys := orderedViews(points)
	s := solver{parallel: o.Parallel, threshold: o.ParallelThreshold}

	return s.solve(xs, ys), nil
}

// orderedViews builds the x-ascending and y-ascending views of points.
// Both are freshly allocated; ranks are assigned after the x sort.
//
// Complexity: O(n log n).
func orderedViews(points []geom.Point) (xs, ys []item) {
	xs = make([]item, len(points))
	for i, p := range points {
		xs[i] = item{p: p}
	}
	slices.SortStableFunc(xs, func(a, b item) int { return cmp.Compare(a.p.X, b.p.X) })
	for i := range xs {
		xs[i].rank = i
	}

	ys = slices.Clone(xs)
	slices.SortStableFunc(ys, func(a, b item) int { return cmp.Compare(a.p.Y, b.p.Y) })

	return xs, ys
}

// solve is the recursive step. xs and ys hold the same points, ordered by x
// and by y respectively; xs is a contiguous run of ranks.
func (s solver) solve(xs, ys []item) geom.Pair {
	n := len(xs)
	if n <= bruteForceCutoff {
		return bruteForceBase(xs)
	}

	mid := n / 2
	midX := xs[mid].p.X
	split := xs[mid].rank

	// Stable linear partition of ys; never a re-sort.
	leftY := make([]item, 0, mid)
	rightY := make([]item, 0, n-mid)
	for _, it := range ys {
		if it.rank < split {
			leftY = append(leftY, it)
		} else {
			rightY = append(rightY, it)
		}
	}

	var left, right geom.Pair
	if s.parallel && n >= s.threshold {
		var g errgroup.Group
		g.Go(func() error {
			left = s.solve(xs[:mid], leftY)
			return nil
		})
		right = s.solve(xs[mid:], rightY)
		_ = g.Wait() // branches cannot fail
	} else {
		left = s.solve(xs[:mid], leftY)
		right = s.solve(xs[mid:], rightY)
	}

	best := left
	if right.Distance() < left.Distance() {
		best = right
	}
	d := best.Distance()

	return stripClosest(collectStrip(ys, midX, d), d, best)
}

// bruteForceBase runs the brute-force scan on a base-case slice (|xs| ≤ 3).
func bruteForceBase(xs []item) geom.Pair {
	var buf [bruteForceCutoff]geom.Point
	for i, it := range xs {
		buf[i] = it.p
	}

	return bruteForce(buf[:len(xs)])
}
