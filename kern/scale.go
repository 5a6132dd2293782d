package kern

var (
	scale *Scale
	_     Kernel = scale // Check that Scale respects the Kernel interface.
)

// Scale multiplies a kernel by an output scale,
// :math:`k(a, b) = \sigma_f^2 \, k_0(a, b)`. Its hyperparameter list is
// the output scale followed by the wrapped kernel's.
type Scale struct {
	kernel Kernel
	scale  float64
}

func NewScale(kernel Kernel, outputscale float64) *Scale {
	checkPositive(outputscale)
	return &Scale{
		kernel: kernel,
		scale:  outputscale,
	}
}

func (k *Scale) Cov(a, b float64) float64 {
	return k.scale * k.kernel.Cov(a, b)
}

func (k *Scale) NumHyper() int {
	return 1 + k.kernel.NumHyper()
}

func (k *Scale) Names(dst []string) []string {
	return k.kernel.Names(append(dst, "outputscale"))
}

func (k *Scale) Hyper(dst []float64) []float64 {
	return k.kernel.Hyper(append(dst, k.scale))
}

func (k *Scale) SetHyper(src []float64) {
	checkHyper(src, k.NumHyper())
	checkPositive(src[0])
	k.scale = src[0]
	k.kernel.SetHyper(src[1:])
}

func (k *Scale) CovDeriv(a, b float64, dst []float64) []float64 {
	dst = append(dst, k.kernel.Cov(a, b))
	n := len(dst)
	dst = k.kernel.CovDeriv(a, b, dst)
	for i := n; i < len(dst); i++ {
		dst[i] *= k.scale
	}
	return dst
}
