package kern

// Add is a sum of kernels. Its hyperparameter list is the concatenation
// of the parts' lists, in part order.
type Add struct {
	parts  []Kernel
	nHyper int
}

var (
	add *Add
	_   Kernel = add // Check that Add respects the Kernel interface.
)

func NewAdd(first, second Kernel) *Add {
	parts := make([]Kernel, 0, 2)
	switch first := first.(type) {
	case *Add:
		parts = append(parts, first.parts...)
	default:
		parts = append(parts, first)
	}
	switch second := second.(type) {
	case *Add:
		parts = append(parts, second.parts...)
	default:
		parts = append(parts, second)
	}
	nHyper := 0
	for _, part := range parts {
		nHyper += part.NumHyper()
	}
	return &Add{
		parts:  parts,
		nHyper: nHyper,
	}
}

func (k *Add) Cov(a, b float64) float64 {
	cov := 0.0
	for _, part := range k.parts {
		cov += part.Cov(a, b)
	}
	return cov
}

func (k *Add) NumHyper() int {
	return k.nHyper
}

func (k *Add) Names(dst []string) []string {
	for _, part := range k.parts {
		dst = part.Names(dst)
	}
	return dst
}

func (k *Add) Hyper(dst []float64) []float64 {
	for _, part := range k.parts {
		dst = part.Hyper(dst)
	}
	return dst
}

func (k *Add) SetHyper(src []float64) {
	checkHyper(src, k.nHyper)
	for _, part := range k.parts {
		n := part.NumHyper()
		part.SetHyper(src[:n])
		src = src[n:]
	}
}

func (k *Add) CovDeriv(a, b float64, dst []float64) []float64 {
	for _, part := range k.parts {
		dst = part.CovDeriv(a, b, dst)
	}
	return dst
}
