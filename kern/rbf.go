package kern

import (
	"math"
)

var (
	rbf *RBF
	_   Kernel = rbf // Check that RBF respects the Kernel interface.
)

// RBF is the squared-exponential covariance,
// :math:`k(a, b) = \exp(-(a - b)^2 / (2 \ell^2))`.
type RBF struct {
	lscale float64
}

func NewRBF(lscale float64) *RBF {
	checkPositive(lscale)
	return &RBF{
		lscale: lscale,
	}
}

func (k *RBF) Cov(a, b float64) float64 {
	r := a - b
	return math.Exp(-r * r / (2 * k.lscale * k.lscale))
}

func (k *RBF) NumHyper() int {
	return 1
}

func (k *RBF) Names(dst []string) []string {
	return append(dst, "lengthscale")
}

func (k *RBF) Hyper(dst []float64) []float64 {
	return append(dst, k.lscale)
}

func (k *RBF) SetHyper(src []float64) {
	checkHyper(src, 1)
	checkPositive(src...)
	k.lscale = src[0]
}

func (k *RBF) CovDeriv(a, b float64, dst []float64) []float64 {
	r := a - b
	l2 := k.lscale * k.lscale
	cov := math.Exp(-r * r / (2 * l2))
	// dk/dl = k * r^2 / l^3
	return append(dst, cov*r*r/(l2*k.lscale))
}
