package closest

import (
	"math"

	"github.com/katalvlaran/dronepath/geom"
)

// collectStrip returns, in y order, the points of ys whose x-distance from
// the split line is strictly below d.
//
// Complexity: O(|ys|).
func collectStrip(ys []item, midX, d float64) []item {
	strip := make([]item, 0, len(ys))
	for _, it := range ys {
		if math.Abs(it.p.X-midX) < d {
			strip = append(strip, it)
		}
	}

	return strip
}

// stripClosest scans a y-ordered strip for a pair closer than d.
//
// Each point is compared with its successors only while their y gap is below
// the running minimum. At most a constant number of points fit in the
// d×2d box above any point, so the inner loop is amortised O(1).
// The result is never worse than best; empty and single-point strips return
// best unchanged.
//
// Complexity: O(|strip|).
func stripClosest(strip []item, d float64, best geom.Pair) geom.Pair {
	var (
		minDist = d
		n       = len(strip)
		i, j    int
		dist    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n && strip[j].p.Y-strip[i].p.Y < minDist; j++ {
			dist = strip[i].p.DistanceTo(strip[j].p)
			if dist < minDist {
				minDist = dist
				best = geom.Pair{P1: strip[i].p, P2: strip[j].p}
			}
		}
	}

	return best
}
