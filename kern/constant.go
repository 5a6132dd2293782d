package kern

var (
	constant *Constant
	_        Kernel = constant // Check that Constant respects the Kernel interface.
)

// Constant is a constant covariance, :math:`k(a, b) = \sigma^2`.
type Constant struct {
	variance float64
}

func NewConstant(variance float64) *Constant {
	checkPositive(variance)
	return &Constant{
		variance: variance,
	}
}

func (k *Constant) Cov(a, b float64) float64 {
	return k.variance
}

func (k *Constant) NumHyper() int {
	return 1
}

func (k *Constant) Names(dst []string) []string {
	return append(dst, "variance")
}

func (k *Constant) Hyper(dst []float64) []float64 {
	return append(dst, k.variance)
}

func (k *Constant) SetHyper(src []float64) {
	checkHyper(src, 1)
	checkPositive(src...)
	k.variance = src[0]
}

func (k *Constant) CovDeriv(a, b float64, dst []float64) []float64 {
	return append(dst, 1.0)
}
