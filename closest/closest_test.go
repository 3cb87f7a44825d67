package closest_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/dronepath/closest"
	"github.com/katalvlaran/dronepath/geom"
	"github.com/katalvlaran/dronepath/pointgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tol is the distance agreement tolerance between the two algorithms.
const tol = 1e-9

// samePair reports whether two pairs hold the same points in either orientation.
func samePair(a, b geom.Pair) bool {
	return (a.P1 == b.P1 && a.P2 == b.P2) || (a.P1 == b.P2 && a.P2 == b.P1)
}

// TestClosest_InsufficientInput ensures both algorithms reject n < 2.
func TestClosest_InsufficientInput(t *testing.T) {
	inputs := [][]geom.Point{nil, {}, {geom.Pt(1, 1)}}
	for _, pts := range inputs {
		_, err := closest.BruteForce(pts)
		assert.ErrorIs(t, err, closest.ErrInsufficientInput, "BruteForce n=%d", len(pts))

		_, err = closest.DivideAndConquer(pts)
		assert.ErrorIs(t, err, closest.ErrInsufficientInput, "DivideAndConquer n=%d", len(pts))
	}
}

// TestClosest_NonFinite ensures NaN/Inf coordinates are rejected up front.
func TestClosest_NonFinite(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(math.NaN(), 2), geom.Pt(3, 3), geom.Pt(4, 4)}

	_, err := closest.BruteForce(pts)
	assert.ErrorIs(t, err, geom.ErrNonFinite)

	_, err = closest.DivideAndConquer(pts)
	assert.ErrorIs(t, err, geom.ErrNonFinite)
}

// TestClosest_TwoClusters covers {(0,0),(0,1),(5,5),(5,6)}: distance 1, both agree.
func TestClosest_TwoClusters(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(5, 5), geom.Pt(5, 6)}

	bf, err := closest.BruteForce(pts)
	require.NoError(t, err)
	dc, err := closest.DivideAndConquer(pts)
	require.NoError(t, err)

	assert.Equal(t, 1.0, bf.Distance())
	assert.Equal(t, 1.0, dc.Distance())

	a := geom.Pair{P1: geom.Pt(0, 0), P2: geom.Pt(0, 1)}
	b := geom.Pair{P1: geom.Pt(5, 5), P2: geom.Pt(5, 6)}
	assert.True(t, samePair(bf, a) || samePair(bf, b), "unexpected pair %v", bf)
	assert.True(t, samePair(dc, a) || samePair(dc, b), "unexpected pair %v", dc)
	assert.True(t, samePair(bf, a), "first pair in iteration order wins ties")
}

// TestClosest_Collinear covers (0,0),(1,0),(2,0),(100,0): distance 1 between neighbours.
func TestClosest_Collinear(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(100, 0)}

	bf, err := closest.BruteForce(pts)
	require.NoError(t, err)
	dc, err := closest.DivideAndConquer(pts)
	require.NoError(t, err)

	assert.Equal(t, 1.0, bf.Distance())
	assert.Equal(t, 1.0, dc.Distance())
	assert.NotEqual(t, geom.Pt(100, 0), dc.P1)
	assert.NotEqual(t, geom.Pt(100, 0), dc.P2)
}

// TestClosest_SmallInputsIdentical checks that n ≤ 3 gives bit-identical results.
func TestClosest_SmallInputsIdentical(t *testing.T) {
	cases := [][]geom.Point{
		{geom.Pt(3, 1), geom.Pt(0, 0)},
		{geom.Pt(9, 9), geom.Pt(0, 0), geom.Pt(1, 1)},
		{geom.Pt(2, 0), geom.Pt(0, 0), geom.Pt(1, 0)}, // tie: two pairs at distance 1
		{geom.Pt(5, 5), geom.Pt(5, 5), geom.Pt(5, 5)},
	}
	for _, pts := range cases {
		bf, err := closest.BruteForce(pts)
		require.NoError(t, err)
		dc, err := closest.DivideAndConquer(pts)
		require.NoError(t, err)
		assert.Equal(t, bf, dc, "n=%d must share the brute-force path", len(pts))
		assert.Equal(t, math.Float64bits(bf.Distance()), math.Float64bits(dc.Distance()))
	}
}

// TestClosest_CoincidentPoints ensures a duplicate pair is reported at distance 0.
func TestClosest_CoincidentPoints(t *testing.T) {
	pts := []geom.Point{
		geom.Pt(10, 10), geom.Pt(0, 0), geom.Pt(40, 3), geom.Pt(7, 7),
		geom.Pt(22, 15), geom.Pt(40, 3), geom.Pt(90, 90),
	}

	bf, err := closest.BruteForce(pts)
	require.NoError(t, err)
	dc, err := closest.DivideAndConquer(pts)
	require.NoError(t, err)

	assert.Equal(t, 0.0, bf.Distance())
	assert.Equal(t, 0.0, dc.Distance())
	assert.Equal(t, geom.Pt(40, 3), dc.P1)
	assert.Equal(t, geom.Pt(40, 3), dc.P2)
}

// TestClosest_PlantedDuplicateInRandomSet plants one duplicate in a large random set.
func TestClosest_PlantedDuplicateInRandomSet(t *testing.T) {
	pts, err := pointgen.Generate(2000,
		pointgen.WithSeed(11),
		pointgen.WithBounds(1<<30, 1<<30),
		pointgen.WithDuplicates(1),
	)
	require.NoError(t, err)

	bf, err := closest.BruteForce(pts)
	require.NoError(t, err)
	dc, err := closest.DivideAndConquer(pts)
	require.NoError(t, err)

	assert.Equal(t, 0.0, bf.Distance())
	assert.Equal(t, 0.0, dc.Distance())
}

// TestClosest_SharedSplitX stresses the y partition when many points share
// the split x-coordinate.
func TestClosest_SharedSplitX(t *testing.T) {
	var pts []geom.Point
	for i := 0; i < 40; i++ {
		pts = append(pts, geom.Pt(5, float64(i*3)))
	}
	// A close pair straddling the shared column, plus scattered neighbours.
	pts = append(pts, geom.Pt(4.4, 61), geom.Pt(5.2, 60.1), geom.Pt(1, 1), geom.Pt(9, 100))

	bf, err := closest.BruteForce(pts)
	require.NoError(t, err)
	dc, err := closest.DivideAndConquer(pts)
	require.NoError(t, err)

	assert.InDelta(t, bf.Distance(), dc.Distance(), tol)
	assert.InDelta(t, math.Hypot(0.2, 0.1), dc.Distance(), tol)
}

// TestClosest_AllOnOneVertical covers the extreme tie case: every point has x=0.
func TestClosest_AllOnOneVertical(t *testing.T) {
	pts := make([]geom.Point, 0, 64)
	for i := 63; i >= 0; i-- {
		pts = append(pts, geom.Pt(0, float64(i*i)))
	}

	bf, err := closest.BruteForce(pts)
	require.NoError(t, err)
	dc, err := closest.DivideAndConquer(pts)
	require.NoError(t, err)

	assert.Equal(t, 1.0, bf.Distance())
	assert.Equal(t, 1.0, dc.Distance())
}

// TestClosest_RandomAgreement cross-checks both algorithms on seeded random sets.
func TestClosest_RandomAgreement(t *testing.T) {
	sizes := []int{4, 5, 7, 16, 33, 100, 257, 1000}
	for seed := int64(1); seed <= 8; seed++ {
		for _, n := range sizes {
			pts, err := pointgen.Generate(n, pointgen.WithSeed(seed), pointgen.WithBounds(1000, 1000))
			require.NoError(t, err)

			bf, err := closest.BruteForce(pts)
			require.NoError(t, err)
			dc, err := closest.DivideAndConquer(pts)
			require.NoError(t, err)

			assert.InDelta(t, bf.Distance(), dc.Distance(), tol, "seed=%d n=%d", seed, n)
		}
	}
}

// TestClosest_DenseGridAgreement uses a small grid so ties are everywhere.
func TestClosest_DenseGridAgreement(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		pts, err := pointgen.Generate(300, pointgen.WithSeed(seed), pointgen.WithBounds(4, 500))
		require.NoError(t, err)

		bf, err := closest.BruteForce(pts)
		require.NoError(t, err)
		dc, err := closest.DivideAndConquer(pts)
		require.NoError(t, err)

		assert.InDelta(t, bf.Distance(), dc.Distance(), tol, "seed=%d", seed)
	}
}

// TestClosest_Idempotent runs each algorithm twice on the same input.
func TestClosest_Idempotent(t *testing.T) {
	pts, err := pointgen.Generate(500, pointgen.WithSeed(3))
	require.NoError(t, err)

	bf1, _ := closest.BruteForce(pts)
	bf2, _ := closest.BruteForce(pts)
	assert.Equal(t, bf1, bf2)

	dc1, _ := closest.DivideAndConquer(pts)
	dc2, _ := closest.DivideAndConquer(pts)
	assert.Equal(t, dc1, dc2)
}

// TestDivideAndConquer_InputUntouched verifies the caller's slice is not reordered.
func TestDivideAndConquer_InputUntouched(t *testing.T) {
	pts, err := pointgen.Generate(200, pointgen.WithSeed(4))
	require.NoError(t, err)
	orig := slices.Clone(pts)

	_, err = closest.DivideAndConquer(pts, closest.WithParallel(8))
	require.NoError(t, err)
	assert.Equal(t, orig, pts)
}

// TestDivideAndConquer_ParallelMatchesSequential checks that the concurrent
// recursion returns exactly the sequential pair.
func TestDivideAndConquer_ParallelMatchesSequential(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		pts, err := pointgen.Generate(3000, pointgen.WithSeed(seed), pointgen.WithBounds(10000, 10000))
		require.NoError(t, err)

		seq, err := closest.DivideAndConquer(pts)
		require.NoError(t, err)
		par, err := closest.DivideAndConquer(pts, closest.WithParallel(4))
		require.NoError(t, err)

		assert.Equal(t, seq, par, "seed=%d", seed)
	}
}

// TestWithParallel_Panics verifies the option rejects thresholds at or below the base case.
func TestWithParallel_Panics(t *testing.T) {
	assert.Panics(t, func() { closest.WithParallel(3) })
	assert.Panics(t, func() { closest.WithParallel(-1) })
	assert.NotPanics(t, func() { closest.WithParallel(4) })
}

// TestDefaultOptions pins the sequential defaults.
func TestDefaultOptions(t *testing.T) {
	o := closest.DefaultOptions()
	assert.False(t, o.Parallel)
	assert.Equal(t, closest.DefaultParallelThreshold, o.ParallelThreshold)
}
