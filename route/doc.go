// Package route plans approximate visiting tours over planar points.
//
// Greedy implements the nearest-neighbour heuristic used to simulate a
// drone that must visit every waypoint: start at a chosen point, repeatedly
// fly to the nearest point not yet visited, and stop when none remain.
//
//   - Complexity: O(n²) time (n−1 steps, each a linear scan), O(n) memory.
//   - The tour is open by default (no return to the start). WithReturnToBase
//     appends the closing hop.
//   - Visitation is tracked by input index, never by coordinate value, so
//     coincident waypoints are distinct stops reached at zero cost.
//   - Ties between equally near candidates go to the lowest index.
//
// The heuristic is approximate. It is not a TSP solver and gives no bound
// relative to the optimal tour.
//
// Utilities shared with callers that hold their own visit orders:
//
//   - PathLength: sum of hop lengths along an index order.
//   - ValidateOrder: open order: a permutation of 0..n-1 starting at start.
//   - ValidateTour: closed tour: as above plus a final return to start.
//
// Errors (sentinel):
//   - ErrStartOutOfRange: start index outside [0, n).
//   - ErrIndexOutOfRange: an order refers to a missing point.
//   - ErrInvalidOrder: an order is not a valid visiting sequence.
//   - geom.ErrNonFinite: a NaN or infinite coordinate.
//
// Example:
//
//	res, err := route.Greedy(points, route.WithStart(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("visited %d stops in %d hops, %.2f units\n",
//	    len(res.Order), res.Hops, res.Distance)
package route
