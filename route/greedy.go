package route

import (
	"fmt"

	"github.com/katalvlaran/dronepath/geom"
)

// Greedy builds a nearest-neighbour tour over points.
//
// Empty input yields the zero Result. A single point yields Order [start]
// with no hops. Otherwise the tour accumulates exactly n−1 hops, plus one
// closing hop when WithReturnToBase is set.
//
// Complexity: O(n²) time, O(n) space.
func Greedy(points []geom.Point, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(points)
	if n == 0 {
		return Result{}, nil
	}
	if o.Start < 0 || o.Start >= n {
		return Result{}, fmt.Errorf("%s: start=%d not in [0,%d): %w", methodGreedy, o.Start, n, ErrStartOutOfRange)
	}
	if err := geom.Validate(points); err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodGreedy, err)
	}

	var (
		visited = make([]bool, n)
		order   = make([]int, 1, n+1)
		cur     = o.Start
		total   float64
		next    int
		hop     float64
	)
	order[0] = cur
	visited[cur] = true

	for step := 1; step < n; step++ {
		next, hop = nearestUnvisited(points, visited, cur)
		total += hop
		visited[next] = true
		order = append(order, next)
		cur = next
	}

	if o.ReturnToBase && n > 1 {
		total += points[cur].DistanceTo(points[o.Start])
		order = append(order, o.Start)
	}

	return Result{Order: order, Hops: len(order) - 1, Distance: total}, nil
}

// TotalDistance returns the length of the open greedy tour starting at the
// first point. It is 0 for fewer than two points.
func TotalDistance(points []geom.Point) (float64, error) {
	res, err := Greedy(points)
	if err != nil {
		return 0, err
	}

	return res.Distance, nil
}

// nearestUnvisited returns the closest unvisited index to points[cur] and
// its distance. The first unvisited index seeds the candidate, so a result
// always exists while at least one point remains; callers guarantee that.
// Ties go to the lowest index.
func nearestUnvisited(points []geom.Point, visited []bool, cur int) (int, float64) {
	var (
		from     = points[cur]
		best     = -1
		bestDist float64
		d        float64
	)
	for i, p := range points {
		if visited[i] {
			continue
		}
		d = from.DistanceTo(p)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}

	return best, bestDist
}
