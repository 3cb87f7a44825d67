package pointgen_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dronepath/geom"
	"github.com/katalvlaran/dronepath/pointgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_Determinism verifies that equal seeds give equal point sets.
func TestGenerate_Determinism(t *testing.T) {
	a, err := pointgen.Generate(200, pointgen.WithSeed(42))
	require.NoError(t, err)
	b, err := pointgen.Generate(200, pointgen.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the same points")

	c, err := pointgen.Generate(200, pointgen.WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds should differ")
}

// TestGenerate_ZeroSeedIsDefault checks the seed==0 policy.
func TestGenerate_ZeroSeedIsDefault(t *testing.T) {
	a, err := pointgen.Generate(50)
	require.NoError(t, err)
	b, err := pointgen.Generate(50, pointgen.WithSeed(0))
	require.NoError(t, err)
	c, err := pointgen.Generate(50, pointgen.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c, "seed 0 maps to the default seed 1")
}

// TestGenerate_Bounds ensures every coordinate is an integer inside the bounds.
func TestGenerate_Bounds(t *testing.T) {
	pts, err := pointgen.Generate(500, pointgen.WithSeed(7), pointgen.WithBounds(10, 3))
	require.NoError(t, err)
	require.Len(t, pts, 500)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 10.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 3.0)
		assert.Equal(t, float64(int(p.X)), p.X, "x must be integral")
		assert.Equal(t, float64(int(p.Y)), p.Y, "y must be integral")
	}
}

// TestGenerate_Duplicates checks that planted duplicates are present even on
// a huge grid where accidental collisions are practically impossible.
func TestGenerate_Duplicates(t *testing.T) {
	const n, k = 100, 3
	pts, err := pointgen.Generate(n,
		pointgen.WithSeed(5),
		pointgen.WithBounds(1<<30, 1<<30),
		pointgen.WithDuplicates(k),
	)
	require.NoError(t, err)

	seen := make(map[geom.Point]int, n)
	for _, p := range pts {
		seen[p]++
	}
	dups := 0
	for _, c := range seen {
		dups += c - 1
	}
	assert.Equal(t, k, dups)
}

// TestGenerate_WithRand uses a caller-owned RNG.
func TestGenerate_WithRand(t *testing.T) {
	a, err := pointgen.Generate(20, pointgen.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)
	b, err := pointgen.Generate(20, pointgen.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestGenerate_Errors covers sentinel errors and empty output.
func TestGenerate_Errors(t *testing.T) {
	_, err := pointgen.Generate(-1)
	assert.ErrorIs(t, err, pointgen.ErrTooFewPoints)

	_, err = pointgen.Generate(5, pointgen.WithDuplicates(3))
	assert.ErrorIs(t, err, pointgen.ErrTooManyDuplicates)

	pts, err := pointgen.Generate(0)
	require.NoError(t, err)
	assert.Empty(t, pts)
}

// TestOptions_Panics verifies option constructors fail fast.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { pointgen.WithRand(nil) })
	assert.Panics(t, func() { pointgen.WithBounds(0, 1) })
	assert.Panics(t, func() { pointgen.WithBounds(1, -1) })
	assert.Panics(t, func() { pointgen.WithDuplicates(-1) })
}
