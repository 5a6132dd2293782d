package prior

import (
	"errors"
	"math"
)

var ErrBadInterval = errors.New("interval bounds out of order")

// Prior is a log density over a single hyperparameter.
type Prior interface {
	// Logp returns the log density at theta and its derivative with
	// respect to theta.
	Logp(theta float64) (logp, score float64)

	// Support returns the transform whose image is the prior's support.
	Support() Transform
}

var (
	_ Prior = Uniform{}
	_ Prior = Normal{}
	_ Prior = LogNormal{}
)

// Uniform is the uniform density on (Lo, Hi).
type Uniform struct {
	Lo, Hi float64
}

func NewUniform(lo, hi float64) Uniform {
	if hi <= lo {
		panic(ErrBadInterval)
	}
	return Uniform{Lo: lo, Hi: hi}
}

func (p Uniform) Logp(theta float64) (float64, float64) {
	if theta <= p.Lo || theta >= p.Hi {
		return math.Inf(-1), 0
	}
	return -math.Log(p.Hi - p.Lo), 0
}

func (p Uniform) Support() Transform {
	return Interval{Lo: p.Lo, Hi: p.Hi}
}
