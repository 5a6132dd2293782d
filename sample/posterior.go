package sample

import (
	"math"

	"perigp/gp"
	"perigp/prior"
)

// Posterior is the unnormalized log posterior of a regression model's
// hyperparameters over the unconstrained sampling space. It is an
// infergo model with a hand-coded gradient: each coordinate is mapped
// onto its parameter's domain by the prior's support transform (or the
// domain's default transform when no prior is registered), and Observe
// accumulates the priors, the log-Jacobians of the transforms and the
// marginal log-likelihood.
type Posterior struct {
	model  *gp.Regression
	names  []string
	priors []prior.Prior // nil entries stand for an improper flat prior
	trans  []prior.Transform

	theta []float64 // scratch: constrained values
	score []float64 // scratch: d logp / d theta
	glml  []float64 // scratch: marginal-likelihood gradient
	slope []float64 // scratch: d theta / d x
	grad  []float64 // gradient of Observe, saved for Gradient
}

// NewPosterior snapshots the model's registered priors. Parameters
// without a prior sample over their whole domain.
func NewPosterior(m *gp.Regression) *Posterior {
	params := m.Params()
	p := &Posterior{
		model:  m,
		names:  make([]string, len(params)),
		priors: make([]prior.Prior, len(params)),
		trans:  make([]prior.Transform, len(params)),
		theta:  make([]float64, len(params)),
		score:  make([]float64, len(params)),
		glml:   make([]float64, len(params)),
		slope:  make([]float64, len(params)),
		grad:   make([]float64, len(params)),
	}
	for i, info := range params {
		p.names[i] = info.Name
		p.priors[i] = info.Prior
		switch {
		case info.Prior != nil:
			p.trans[i] = info.Prior.Support()
		case info.Positive:
			p.trans[i] = prior.Exp{}
		default:
			p.trans[i] = prior.Identity{}
		}
	}
	return p
}

// Dim returns the dimension of the sampling space.
func (p *Posterior) Dim() int {
	return len(p.names)
}

// Names returns the parameter names, aligned with the coordinates.
func (p *Posterior) Names() []string {
	return append([]string(nil), p.names...)
}

// Init returns the sampler's starting point: the model's current
// values pulled back through the transforms. A value outside a prior's
// support maps to 0, the middle of the transformed space.
func (p *Posterior) Init() []float64 {
	x := make([]float64, len(p.names))
	for i, name := range p.names {
		vals, err := p.model.Values(name)
		if err != nil {
			panic(err)
		}
		x[i] = p.trans[i].Inverse(vals[0])
		if math.IsInf(x[i], 0) || math.IsNaN(x[i]) {
			x[i] = 0
		}
	}
	return x
}

// Constrain maps a point of the sampling space onto the parameter
// domains, writing into dst when it has the right length.
func (p *Posterior) Constrain(x, dst []float64) []float64 {
	if len(dst) != len(x) {
		dst = make([]float64, len(x))
	}
	for i := range x {
		dst[i] = p.trans[i].Forward(x[i])
	}
	return dst
}

// Observe returns the unnormalized log posterior at x and saves its
// gradient.
func (p *Posterior) Observe(x []float64) float64 {
	ll := 0.0
	for i := range x {
		logdet, dlogdet := p.trans[i].LogDetJacobian(x[i])
		p.theta[i] = p.trans[i].Forward(x[i])
		p.slope[i] = math.Exp(logdet)
		p.grad[i] = dlogdet
		ll += logdet
		if pr := p.priors[i]; pr != nil {
			logp, score := pr.Logp(p.theta[i])
			ll += logp
			p.score[i] = score
		} else {
			p.score[i] = 0
		}
	}
	lml, err := p.model.LogMarginal(p.theta, p.glml)
	if err != nil {
		for i := range p.grad {
			p.grad[i] = 0
		}
		return math.Inf(-1)
	}
	ll += lml
	for i := range x {
		p.grad[i] += (p.score[i] + p.glml[i]) * p.slope[i]
	}
	return ll
}

// Gradient returns the gradient saved by the last call to Observe.
func (p *Posterior) Gradient() []float64 {
	return p.grad
}
