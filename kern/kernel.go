package kern

import (
	"errors"
)

var ErrHyperLength = errors.New("hyperparameter slice has wrong length")
var ErrNotPositive = errors.New("hyperparameter must be positive")

// Kernel is a stationary covariance function over scalar inputs, together
// with its named hyperparameters and their partial derivatives.
type Kernel interface {
	// Covariance between two inputs, :math:`k(a, b)`.
	Cov(a, b float64) float64

	// Number of hyperparameters.
	NumHyper() int

	// Hyperparameter names, appended to dst in canonical order.
	Names(dst []string) []string

	// Current hyperparameter values, appended to dst in canonical order.
	Hyper(dst []float64) []float64

	// Set the hyperparameters from src, in canonical order.
	SetHyper(src []float64)

	// Partial derivatives :math:`\partial k(a, b) / \partial \theta_j`
	// at the current hyperparameter values, appended to dst in
	// canonical order.
	CovDeriv(a, b float64, dst []float64) []float64
}

func checkHyper(src []float64, n int) {
	if len(src) != n {
		panic(ErrHyperLength)
	}
}

func checkPositive(vals ...float64) {
	for _, v := range vals {
		if v <= 0 {
			panic(ErrNotPositive)
		}
	}
}
