package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"perigp/dataset"
	"perigp/gp"
)

func loadedModel(t *testing.T, x, y []float64, draws int) *gp.Regression {
	t.Helper()
	model, err := newModel(x, y)
	require.NoError(t, err)
	samples := map[string][]float64{
		"mean.constant":      {-0.2, 0, 0.3},
		"kernel.outputscale": {1.1, 1.5, 1.9},
		"kernel.lengthscale": {0.1, 0.3, 0.45},
		"kernel.period":      {0.8, 1.0, 1.6},
		"noise.variance":     {0.08, 0.15, 0.25},
	}
	for name, vals := range samples {
		samples[name] = vals[:draws]
	}
	require.NoError(t, model.LoadSamples(samples))
	return model
}

func TestRoundTripBatched(t *testing.T) {
	x, y := dataset.Sinusoid(numTrain, 0.1, 1)
	model := loadedModel(t, x, y, 3)
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, roundTrip(path, model, x, y, zap.NewNop()))
}

func TestRoundTripBatchOfOne(t *testing.T) {
	x, y := dataset.Sinusoid(numTrain, 0.1, 1)
	model := loadedModel(t, x, y, 1)
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, roundTrip(path, model, x, y, zap.NewNop()))
}
