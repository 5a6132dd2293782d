package gp

import (
	"errors"
	"fmt"

	"perigp/kern"
	"perigp/prior"
)

var ErrDataLength = errors.New("inputs and targets have different lengths")
var ErrUnknownParam = errors.New("unknown parameter")
var ErrBadSupport = errors.New("prior support exceeds parameter domain")
var ErrShapeMismatch = errors.New("parameter shape mismatch")

// ParamInfo describes one named hyperparameter of a regression model.
type ParamInfo struct {
	Name     string
	Positive bool
	Prior    prior.Prior // nil when no prior is registered
}

type param struct {
	name     string
	positive bool
	prior    prior.Prior
	values   []float64 // one entry per batch index
}

// Regression is a Gaussian-process regression model with a constant mean,
// a covariance kernel and Gaussian observation noise. Hyperparameters are
// addressed by name, in canonical order: "mean.constant", the kernel's
// hyperparameters prefixed with "kernel.", then "noise.variance". Each
// parameter holds one value per batch index; the batch size is 1 until a
// sample set is loaded.
type Regression struct {
	kernel kern.Kernel
	x, y   []float64
	params []*param
	index  map[string]int
	nKern  int
	batch  int
}

// NewRegression builds a single-instance model over the given training
// set. The mean constant starts at 0 and the noise variance at 0.1; the
// kernel keeps the values it was constructed with.
func NewRegression(kernel kern.Kernel, x, y []float64) *Regression {
	if len(x) != len(y) {
		panic(ErrDataLength)
	}
	nKern := kernel.NumHyper()
	params := make([]*param, 0, nKern+2)
	params = append(params, &param{
		name:   "mean.constant",
		values: []float64{0},
	})
	names := kernel.Names(nil)
	hyper := kernel.Hyper(nil)
	for i, name := range names {
		params = append(params, &param{
			name:     "kernel." + name,
			positive: true,
			values:   []float64{hyper[i]},
		})
	}
	params = append(params, &param{
		name:     "noise.variance",
		positive: true,
		values:   []float64{0.1},
	})
	index := make(map[string]int, len(params))
	for i, p := range params {
		index[p.name] = i
	}
	return &Regression{
		kernel: kernel,
		x:      append([]float64(nil), x...),
		y:      append([]float64(nil), y...),
		params: params,
		index:  index,
		nKern:  nKern,
		batch:  1,
	}
}

// Names returns the parameter names in canonical order.
func (m *Regression) Names() []string {
	names := make([]string, len(m.params))
	for i, p := range m.params {
		names[i] = p.name
	}
	return names
}

// NumParams returns the number of hyperparameters.
func (m *Regression) NumParams() int {
	return len(m.params)
}

// BatchSize returns the current leading dimension of the parameters: 1
// for a single-instance model, the draw count after LoadSamples.
func (m *Regression) BatchSize() int {
	return m.batch
}

// Values returns a copy of the named parameter's values, one per batch
// index.
func (m *Regression) Values(name string) ([]float64, error) {
	i, ok := m.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	return append([]float64(nil), m.params[i].values...), nil
}

// Params describes the parameters in canonical order.
func (m *Regression) Params() []ParamInfo {
	infos := make([]ParamInfo, len(m.params))
	for i, p := range m.params {
		infos[i] = ParamInfo{Name: p.name, Positive: p.positive, Prior: p.prior}
	}
	return infos
}

// RegisterPrior attaches a prior to one named parameter. The prior's
// support must lie inside the parameter's domain.
func (m *Regression) RegisterPrior(name string, p prior.Prior) error {
	i, ok := m.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	if m.params[i].positive && !positiveSupport(p.Support()) {
		return fmt.Errorf("%w: %q is positive", ErrBadSupport, name)
	}
	m.params[i].prior = p
	return nil
}

func positiveSupport(t prior.Transform) bool {
	switch t := t.(type) {
	case prior.Exp:
		return true
	case prior.Interval:
		return t.Lo >= 0
	default:
		return false
	}
}

// LoadSamples converts the model to a batch model: each parameter's
// values are replaced by the per-draw values of the sample set.
func (m *Regression) LoadSamples(samples map[string][]float64) error {
	return m.load(samples, false)
}

func (m *Regression) load(values map[string][]float64, strict bool) error {
	for name := range values {
		if _, ok := m.index[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownParam, name)
		}
	}
	batch := -1
	for _, p := range m.params {
		vals, ok := values[p.name]
		if !ok {
			return fmt.Errorf("%w: missing %q", ErrShapeMismatch, p.name)
		}
		if len(vals) == 0 {
			return fmt.Errorf("%w: %q is empty", ErrShapeMismatch, p.name)
		}
		if batch == -1 {
			batch = len(vals)
		} else if len(vals) != batch {
			return fmt.Errorf("%w: %q has leading dimension %d, want %d",
				ErrShapeMismatch, p.name, len(vals), batch)
		}
	}
	if strict && batch != m.batch {
		return fmt.Errorf("%w: leading dimension %d, model has %d",
			ErrShapeMismatch, batch, m.batch)
	}
	for _, p := range m.params {
		p.values = append(p.values[:0], values[p.name]...)
	}
	m.batch = batch
	return nil
}

// thetaAt collects the constrained parameter vector at batch index i.
func (m *Regression) thetaAt(i int, dst []float64) []float64 {
	for _, p := range m.params {
		dst = append(dst, p.values[i])
	}
	return dst
}
