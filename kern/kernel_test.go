package kern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perigp/kern"
)

// fdCovDeriv approximates the hyperparameter partials of k.Cov(a, b) by
// central differences.
func fdCovDeriv(k kern.Kernel, a, b float64) []float64 {
	const h = 1e-6
	hyper := k.Hyper(nil)
	deriv := make([]float64, len(hyper))
	bumped := make([]float64, len(hyper))
	for j := range hyper {
		copy(bumped, hyper)
		bumped[j] = hyper[j] + h
		k.SetHyper(bumped)
		hi := k.Cov(a, b)
		bumped[j] = hyper[j] - h
		k.SetHyper(bumped)
		lo := k.Cov(a, b)
		deriv[j] = (hi - lo) / (2 * h)
	}
	k.SetHyper(hyper)
	return deriv
}

func checkDeriv(t *testing.T, k kern.Kernel, pairs [][2]float64) {
	t.Helper()
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		want := fdCovDeriv(k, a, b)
		got := k.CovDeriv(a, b, nil)
		require.Len(t, got, k.NumHyper())
		for j := range want {
			assert.InDeltaf(t, want[j], got[j], 1e-5,
				"partial %d at (%v, %v)", j, a, b)
		}
	}
}

var derivPairs = [][2]float64{
	{0, 0}, {0.1, 0.35}, {-1.2, 0.7}, {2.0, 2.0}, {0.5, -0.5},
}

func TestPeriodicCov(t *testing.T) {
	k := kern.NewPeriodic(0.3, 1.0)
	// Unit variance on the diagonal.
	assert.Equal(t, 1.0, k.Cov(0.42, 0.42))
	// Symmetry.
	assert.Equal(t, k.Cov(0.1, 0.9), k.Cov(0.9, 0.1))
	// Exact periodicity.
	assert.InDelta(t, k.Cov(0.1, 0.3), k.Cov(0.1, 1.3), 1e-12)
}

func TestPeriodicDeriv(t *testing.T) {
	checkDeriv(t, kern.NewPeriodic(0.3, 1.1), derivPairs)
}

func TestRBFCov(t *testing.T) {
	k := kern.NewRBF(0.5)
	assert.Equal(t, 1.0, k.Cov(1.5, 1.5))
	assert.Greater(t, k.Cov(0, 0.1), k.Cov(0, 0.5))
}

func TestRBFDeriv(t *testing.T) {
	checkDeriv(t, kern.NewRBF(0.7), derivPairs)
}

func TestConstantDeriv(t *testing.T) {
	checkDeriv(t, kern.NewConstant(1.4), derivPairs)
}

func TestScale(t *testing.T) {
	inner := kern.NewPeriodic(0.3, 1.0)
	k := kern.NewScale(inner, 2.5)
	assert.InDelta(t, 2.5*inner.Cov(0.1, 0.4), k.Cov(0.1, 0.4), 1e-12)
	assert.Equal(t, []string{"outputscale", "lengthscale", "period"}, k.Names(nil))
	assert.Equal(t, []float64{2.5, 0.3, 1.0}, k.Hyper(nil))
	checkDeriv(t, k, derivPairs)
}

func TestAdd(t *testing.T) {
	k := kern.NewAdd(
		kern.NewAdd(kern.NewRBF(0.5), kern.NewConstant(0.2)),
		kern.NewPeriodic(0.3, 1.0),
	)
	// Parts are flattened, hyperparameter lists concatenate in order.
	assert.Equal(t, 4, k.NumHyper())
	assert.Equal(t,
		[]string{"lengthscale", "variance", "lengthscale", "period"},
		k.Names(nil))
	assert.InDelta(t, 0.2+2.0, k.Cov(0.5, 0.5), 1e-12)
	checkDeriv(t, k, derivPairs)
}

func TestSetHyperRoundTrip(t *testing.T) {
	k := kern.NewScale(kern.NewPeriodic(0.3, 1.0), 1.5)
	k.SetHyper([]float64{2.0, 0.25, 0.8})
	assert.Equal(t, []float64{2.0, 0.25, 0.8}, k.Hyper(nil))
}

func TestSetHyperPanics(t *testing.T) {
	k := kern.NewPeriodic(0.3, 1.0)
	assert.PanicsWithValue(t, kern.ErrHyperLength, func() {
		k.SetHyper([]float64{0.3})
	})
	assert.PanicsWithValue(t, kern.ErrNotPositive, func() {
		k.SetHyper([]float64{0.3, -1})
	})
	assert.PanicsWithValue(t, kern.ErrNotPositive, func() {
		kern.NewRBF(0)
	})
}
