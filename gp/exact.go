package gp

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var ErrNotPositiveDefinite = errors.New("covariance matrix not positive definite")
var ErrParamLength = errors.New("parameter vector has wrong length")

const log2Pi = 1.8378770664093453

// factorize assembles K = k(x, x) + noise*I at the given constrained
// parameter vector and returns its Cholesky decomposition together with
// alpha = K^-1 (y - mean).
func (m *Regression) factorize(theta []float64) (chol *mat.Cholesky, r, alpha *mat.VecDense, err error) {
	if len(theta) != len(m.params) {
		panic(ErrParamLength)
	}
	mean := theta[0]
	noise := theta[len(theta)-1]
	m.kernel.SetHyper(theta[1 : 1+m.nKern])

	n := len(m.x)
	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := m.kernel.Cov(m.x[i], m.x[j])
			if i == j {
				v += noise
			}
			cov.SetSym(i, j, v)
		}
	}
	chol = &mat.Cholesky{}
	if ok := chol.Factorize(cov); !ok {
		return nil, nil, nil, ErrNotPositiveDefinite
	}
	r = mat.NewVecDense(n, nil)
	for i, y := range m.y {
		r.SetVec(i, y-mean)
	}
	alpha = mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(alpha, r); err != nil {
		return nil, nil, nil, err
	}
	return chol, r, alpha, nil
}

// LogMarginal returns the marginal log-likelihood of the training
// targets at the constrained parameter vector theta (canonical order).
// When grad is non-nil it receives the analytic gradient with respect
// to theta; it must have length NumParams.
func (m *Regression) LogMarginal(theta, grad []float64) (float64, error) {
	chol, r, alpha, err := m.factorize(theta)
	if err != nil {
		return math.Inf(-1), err
	}
	n := len(m.x)

	// ll = -0.5 * dot(r, alpha) - 0.5 * logdet(K) - n/2 * log(2 pi)
	ll := -0.5*mat.Dot(r, alpha) - 0.5*chol.LogDet() - 0.5*float64(n)*log2Pi
	if grad == nil {
		return ll, nil
	}
	if len(grad) != len(m.params) {
		panic(ErrParamLength)
	}

	var kinv mat.SymDense
	if err := chol.InverseTo(&kinv); err != nil {
		return math.Inf(-1), err
	}

	// d ll / d mean = sum(alpha)
	grad[0] = floats.Sum(alpha.RawVector().Data)

	// d ll / d theta_t = 0.5 * (dot(alpha, dot(dK/dt, alpha)) - tr(Kinv dK/dt))
	for t := 1; t <= m.nKern; t++ {
		grad[t] = 0
	}
	deriv := make([]float64, 0, m.nKern)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			deriv = m.kernel.CovDeriv(m.x[i], m.x[j], deriv[:0])
			w := alpha.AtVec(i)*alpha.AtVec(j) - kinv.At(i, j)
			if i != j {
				w *= 2 // off-diagonal terms appear twice in the symmetric sums
			}
			for t, d := range deriv {
				grad[1+t] += 0.5 * w * d
			}
		}
	}

	// d ll / d noise = 0.5 * (dot(alpha, alpha) - tr(Kinv))
	trace := 0.0
	for i := 0; i < n; i++ {
		trace += kinv.At(i, i)
	}
	grad[len(grad)-1] = 0.5 * (mat.Dot(alpha, alpha) - trace)

	return ll, nil
}

// Predict returns the posterior predictive mean and variance of the
// observed targets at the test inputs, for every batch index. Both
// outputs are indexed [batch][test point].
func (m *Regression) Predict(xs []float64) (means, vars [][]float64, err error) {
	means = make([][]float64, m.batch)
	vars = make([][]float64, m.batch)
	theta := make([]float64, 0, len(m.params))
	for b := 0; b < m.batch; b++ {
		theta = m.thetaAt(b, theta[:0])
		means[b], vars[b], err = m.predictOne(theta, xs)
		if err != nil {
			return nil, nil, err
		}
	}
	return means, vars, nil
}

func (m *Regression) predictOne(theta, xs []float64) (mean, variance []float64, err error) {
	chol, _, alpha, err := m.factorize(theta)
	if err != nil {
		return nil, nil, err
	}
	mu := theta[0]
	noise := theta[len(theta)-1]
	n := len(m.x)

	mean = make([]float64, len(xs))
	variance = make([]float64, len(xs))
	kvec := mat.NewVecDense(n, nil)
	w := mat.NewVecDense(n, nil)
	for s, x := range xs {
		for i := 0; i < n; i++ {
			kvec.SetVec(i, m.kernel.Cov(x, m.x[i]))
		}
		// mean = mu + dot(k, alpha)
		mean[s] = mu + mat.Dot(kvec, alpha)
		// var = k(x, x) + noise - dot(k, solve(K, k))
		if err := chol.SolveVecTo(w, kvec); err != nil {
			return nil, nil, err
		}
		variance[s] = m.kernel.Cov(x, x) + noise - mat.Dot(kvec, w)
	}
	return mean, variance, nil
}
