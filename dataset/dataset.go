package dataset

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sinusoid returns n inputs evenly spaced on [0, 1] and noisy targets
// sin(2 pi x) + eps, with eps drawn from N(0, sigma^2) under the given
// seed.
func Sinusoid(n int, sigma float64, seed uint64) (x, y []float64) {
	x = make([]float64, n)
	floats.Span(x, 0, 1)
	noise := distuv.Normal{
		Mu:    0,
		Sigma: sigma,
		Src:   rand.NewSource(seed),
	}
	y = make([]float64, n)
	for i := range x {
		y[i] = math.Sin(2*math.Pi*x[i]) + noise.Rand()
	}
	return x, y
}

// Grid returns n points evenly spaced on [lo, hi].
func Grid(n int, lo, hi float64) []float64 {
	xs := make([]float64, n)
	floats.Span(xs, lo, hi)
	return xs
}
