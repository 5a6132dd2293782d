package prior

import (
	"math"
)

// Transform is a smooth bijection from the unconstrained sampling space
// onto a parameter domain.
type Transform interface {
	// Forward maps an unconstrained value into the parameter domain.
	Forward(x float64) float64

	// Inverse maps a parameter value back to the unconstrained space.
	Inverse(y float64) float64

	// LogDetJacobian returns log |dForward/dx| at x, and its derivative
	// with respect to x.
	LogDetJacobian(x float64) (logdet, dlogdet float64)
}

var (
	_ Transform = Identity{}
	_ Transform = Exp{}
	_ Transform = Interval{}
)

// Identity maps the unconstrained space onto itself.
type Identity struct{}

func (Identity) Forward(x float64) float64 { return x }

func (Identity) Inverse(y float64) float64 { return y }

func (Identity) LogDetJacobian(x float64) (float64, float64) {
	return 0, 0
}

// Exp maps the unconstrained space onto the positive reals.
type Exp struct{}

func (Exp) Forward(x float64) float64 { return math.Exp(x) }

func (Exp) Inverse(y float64) float64 { return math.Log(y) }

func (Exp) LogDetJacobian(x float64) (float64, float64) {
	return x, 1
}

// Interval maps the unconstrained space onto (Lo, Hi) through the
// logistic function.
type Interval struct {
	Lo, Hi float64
}

func (t Interval) Forward(x float64) float64 {
	// The logistic saturates in float64 around |x| ~ 37; the image has
	// to stay inside the open interval.
	y := t.Lo + (t.Hi-t.Lo)*logistic(x)
	if y <= t.Lo {
		return math.Nextafter(t.Lo, t.Hi)
	}
	if y >= t.Hi {
		return math.Nextafter(t.Hi, t.Lo)
	}
	return y
}

func (t Interval) Inverse(y float64) float64 {
	p := (y - t.Lo) / (t.Hi - t.Lo)
	return math.Log(p / (1 - p))
}

func (t Interval) LogDetJacobian(x float64) (float64, float64) {
	// d/dx [lo + (hi-lo) s(x)] = (hi-lo) s(x) (1 - s(x)), and
	// log s(x) = -softplus(-x), log(1 - s(x)) = -softplus(x).
	logdet := math.Log(t.Hi-t.Lo) - softplus(-x) - softplus(x)
	return logdet, 1 - 2*logistic(x)
}

func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func softplus(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}
