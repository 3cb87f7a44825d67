package closest

import "github.com/katalvlaran/dronepath/geom"

// BruteForce returns the closest pair by examining every pair i<j once.
// Among equally close pairs the first one in iteration order is returned.
//
// Complexity: O(n²) time, O(1) extra space.
func BruteForce(points []geom.Point) (geom.Pair, error) {
	if err := validateInput(methodBruteForce, points); err != nil {
		return geom.Pair{}, err
	}

	return bruteForce(points), nil
}

// bruteForce assumes len(points) ≥ 2.
func bruteForce(points []geom.Point) geom.Pair {
	var (
		n       = len(points)
		best    = geom.Pair{P1: points[0], P2: points[1]}
		minDist = best.Distance()
		i, j    int
		d       float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = points[i].DistanceTo(points[j])
			if d < minDist {
				minDist = d
				best = geom.Pair{P1: points[i], P2: points[j]}
			}
		}
	}

	return best
}
