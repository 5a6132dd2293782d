package sample

import (
	"errors"
	"math"
	"math/rand"
	"os"

	"bitbucket.org/dtolpin/infergo/infer"
	"go.uber.org/zap"
)

var ErrBadInit = errors.New("log posterior not finite at the initial point")
var ErrSamplerStopped = errors.New("sampler stopped early")

// Config holds the sampling schedule. Warmup draws are discarded.
// A non-zero Seed makes the draws reproducible.
type Config struct {
	NumSamples int
	Warmup     int
	StepSize   float64
	Seed       uint64
}

// DefaultConfig returns 100 retained draws after 100 warmup draws,
// shortened to 2 and 2 when the CI environment marker is set.
func DefaultConfig() Config {
	cfg := Config{
		NumSamples: 100,
		Warmup:     100,
		StepSize:   0.1,
		Seed:       1,
	}
	if os.Getenv("CI") != "" {
		cfg.NumSamples = 2
		cfg.Warmup = 2
	}
	return cfg
}

// Samples maps a parameter name to its drawn values, one per retained
// draw, on the constrained scale.
type Samples map[string][]float64

// Draws returns the number of retained draws.
func (s Samples) Draws() int {
	for _, vals := range s {
		return len(vals)
	}
	return 0
}

// Run draws from the posterior with NUTS and returns the retained
// draws keyed by parameter name. It blocks until the whole schedule
// has run. Trajectory simulation is delegated to infergo; the step
// size is fixed and the trajectory length adapts per draw.
func Run(p *Posterior, cfg Config, logger *zap.Logger) (Samples, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	x := p.Init()
	if ll := p.Observe(x); math.IsInf(ll, 0) || math.IsNaN(ll) {
		return nil, ErrBadInit
	}

	// infergo draws its randomness from the default math/rand source.
	if cfg.Seed != 0 {
		rand.Seed(int64(cfg.Seed))
	}

	nuts := &infer.NUTS{
		Eps: cfg.StepSize,
	}
	samples := make(chan []float64)
	nuts.Sample(p, x, samples)
	defer nuts.Stop()

	names := p.Names()
	out := make(Samples, len(names))
	for _, name := range names {
		out[name] = make([]float64, 0, cfg.NumSamples)
	}

	theta := make([]float64, len(names))
	total := cfg.Warmup + cfg.NumSamples
	for i := 0; i < total; i++ {
		draw, ok := <-samples
		if !ok || len(draw) == 0 {
			return nil, ErrSamplerStopped
		}
		if i < cfg.Warmup {
			continue
		}
		theta = p.Constrain(draw, theta)
		for j, name := range names {
			out[name] = append(out[name], theta[j])
		}
		if n := i - cfg.Warmup + 1; n%50 == 0 || n == cfg.NumSamples {
			logger.Info("sampling",
				zap.Int("draws", n),
				zap.Int("total", cfg.NumSamples))
		}
	}
	return out, nil
}
