// Package closest finds the closest pair among a set of planar points.
//
// Two algorithms are provided on []geom.Point:
//
//   - BruteForce: examines every unordered pair (i<j) exactly once.
//
//   - Complexity: O(n²) time, O(1) extra space.
//
//   - Ties: the first pair in iteration order wins.
//
//   - DivideAndConquer: the classical recursive split on x with a
//     y-ordered strip merge.
//
//   - Complexity: O(n log n) time, O(n log n) total allocations
//     (one y-partition buffer pair per recursion level).
//
//   - For n ≤ 3 it runs the brute-force path on the input order, so the
//     result is bit-identical to BruteForce.
//
// Algorithm outline (DivideAndConquer):
//
//  1. Build two views of the input: ascending by x and ascending by y
//     (both stable sorts). Every element remembers its rank in the x view.
//  2. solve(xs, ys):
//     - |xs| ≤ 3                → brute force.
//     - mid = |xs|/2            → left = xs[:mid], right = xs[mid:].
//     - partition ys in order   → rank < xs[mid].rank goes left, else right.
//     Ties on the split x-coordinate are routed by rank, so the y halves
//     always hold exactly the same points as the x halves.
//     - recurse on both halves, keep the better pair, d = its distance.
//     - strip = ys ∩ {|x − xs[mid].x| < d}, still in y order.
//     - scan the strip: each point is compared with its successors while
//     their y gap stays below the running minimum.
//
// The y views are never re-sorted: each level filters its caller's slice in
// linear time, which is what keeps the total cost at O(n log n).
//
// Parallelism:
//
//	WithParallel(threshold) runs the two recursive halves of any call with
//	|xs| ≥ threshold on separate goroutines (golang.org/x/sync/errgroup).
//	Partition and strip merge stay sequential. Results are identical to the
//	sequential run.
//
// Errors:
//   - ErrInsufficientInput: fewer than two points.
//   - geom.ErrNonFinite: a NaN or infinite coordinate.
package closest
