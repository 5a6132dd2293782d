package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perigp/dataset"
)

func TestSinusoidBounded(t *testing.T) {
	x, y := dataset.Sinusoid(6, 0.1, 1)
	require.Len(t, x, 6)
	require.Len(t, y, 6)
	assert.Equal(t, 0.0, x[0])
	assert.Equal(t, 1.0, x[5])
	for i := range x {
		// Targets stay in a band around the noiseless sinusoid.
		assert.InDelta(t, math.Sin(2*math.Pi*x[i]), y[i], 1.0)
	}
}

func TestSinusoidDeterministic(t *testing.T) {
	_, y1 := dataset.Sinusoid(6, 0.1, 42)
	_, y2 := dataset.Sinusoid(6, 0.1, 42)
	assert.Equal(t, y1, y2)

	_, y3 := dataset.Sinusoid(6, 0.1, 43)
	assert.NotEqual(t, y1, y3)
}

func TestGrid(t *testing.T) {
	grid := dataset.Grid(101, 0, 1)
	require.Len(t, grid, 101)
	assert.Equal(t, 0.0, grid[0])
	assert.Equal(t, 1.0, grid[100])
	assert.InDelta(t, 0.5, grid[50], 1e-12)
}
