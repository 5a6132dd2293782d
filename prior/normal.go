package prior

import (
	"math"

	"bitbucket.org/dtolpin/infergo/dist"
)

// Normal is the normal density with mean Mu and standard deviation Sigma.
type Normal struct {
	Mu, Sigma float64
}

func (p Normal) Logp(theta float64) (float64, float64) {
	logp := dist.Normal.Logp(p.Mu, p.Sigma, theta)
	return logp, -(theta - p.Mu) / (p.Sigma * p.Sigma)
}

func (p Normal) Support() Transform {
	return Identity{}
}

// LogNormal is the log-normal density on the positive reals: log(theta)
// is normal with mean Mu and standard deviation Sigma.
type LogNormal struct {
	Mu, Sigma float64
}

func (p LogNormal) Logp(theta float64) (float64, float64) {
	u := math.Log(theta)
	logp := dist.Normal.Logp(p.Mu, p.Sigma, u) - u
	return logp, (-(u-p.Mu)/(p.Sigma*p.Sigma) - 1) / theta
}

func (p LogNormal) Support() Transform {
	return Exp{}
}
