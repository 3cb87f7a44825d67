// Package geom defines the planar primitives shared by every dronepath
// algorithm: an immutable 2D Point and an unordered Pair of points.
//
// Point is a plain value type. Copies are cheap and can never be mutated
// behind a caller's back, so algorithms are free to build as many ordered
// views of the same input as they need.
//
// Distances are always Euclidean and always computed on demand:
//
//	d := geom.Distance(a, b)       // == a.DistanceTo(b) == b.DistanceTo(a)
//	p := geom.Pair{P1: a, P2: b}
//	d = p.Distance()               // recomputed from P1/P2 on every call
//
// Coincident points are legal and have distance 0.
//
// Input validation:
//
//	Validate rejects NaN/±Inf coordinates with ErrNonFinite (wrapped with the
//	offending index). All higher-level packages call it at entry.
package geom
