package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite indicates a point with a NaN or infinite coordinate.
var ErrNonFinite = errors.New("geom: point coordinates must be finite")

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// String renders p as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distance returns the Euclidean distance between a and b.
// It is symmetric and returns 0 for coincident points.
func Distance(a, b Point) float64 {
	return a.DistanceTo(b)
}

// Pair is an unordered pair of points. Its distance is derived from P1 and
// P2 on every call and is never stored.
type Pair struct {
	P1, P2 Point
}

// Distance returns the Euclidean distance between the two points of the pair.
func (p Pair) Distance() float64 {
	return p.P1.DistanceTo(p.P2)
}

// String renders the pair together with its distance.
func (p Pair) String() string {
	return fmt.Sprintf("Pair{p1=%v, p2=%v, distance=%g}", p.P1, p.P2, p.Distance())
}

// Validate reports the first point with a non-finite coordinate.
//
// Complexity: O(n).
func Validate(points []Point) error {
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("Validate: points[%d]=%v: %w", i, p, ErrNonFinite)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
