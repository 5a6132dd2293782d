package kern

import (
	"math"
)

var (
	periodic *Periodic
	_        Kernel = periodic // Check that Periodic respects the Kernel interface.
)

// Periodic is the exp-sine-squared covariance,
// :math:`k(a, b) = \exp(-2 \sin^2(\pi |a - b| / p) / \ell^2)`.
type Periodic struct {
	lscale float64
	period float64
}

func NewPeriodic(lscale, period float64) *Periodic {
	checkPositive(lscale, period)
	return &Periodic{
		lscale: lscale,
		period: period,
	}
}

func (k *Periodic) Cov(a, b float64) float64 {
	s := math.Sin(math.Pi * math.Abs(a-b) / k.period)
	return math.Exp(-2 * s * s / (k.lscale * k.lscale))
}

func (k *Periodic) NumHyper() int {
	return 2
}

func (k *Periodic) Names(dst []string) []string {
	return append(dst, "lengthscale", "period")
}

func (k *Periodic) Hyper(dst []float64) []float64 {
	return append(dst, k.lscale, k.period)
}

func (k *Periodic) SetHyper(src []float64) {
	checkHyper(src, 2)
	checkPositive(src...)
	k.lscale = src[0]
	k.period = src[1]
}

func (k *Periodic) CovDeriv(a, b float64, dst []float64) []float64 {
	r := math.Abs(a - b)
	u := math.Pi * r / k.period
	s := math.Sin(u)
	l2 := k.lscale * k.lscale
	cov := math.Exp(-2 * s * s / l2)
	// dk/dl = k * 4 sin^2(u) / l^3
	dl := cov * 4 * s * s / (l2 * k.lscale)
	// dk/dp = k * 2 pi r sin(2u) / (l^2 p^2)
	dp := cov * 2 * math.Pi * r * math.Sin(2*u) / (l2 * k.period * k.period)
	return append(dst, dl, dp)
}
