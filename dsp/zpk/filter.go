package zpk

import (
	"github.com/cwbudde/algo-vecmath"
)

// Filter applies the zero/pole/gain filter to x causally with zero initial
// conditions. The output has the same length as x.
//
// Root sets that are closed under conjugation produce real coefficients and
// run a real-valued recursion. Otherwise the recursion runs on complex
// values and the real part of the output is returned.
func Filter(x []float64, zeros, poles []complex128, opts ...Option) []float64 {
	cfg := applyOptions(opts)
	tf := NewTransferFunction(zeros, poles)

	src := x
	if cfg.gain != 1 && len(x) > 0 {
		src = make([]float64, len(x))
		vecmath.ScaleBlock(src, x, cfg.gain)
	}

	return tf.Filter(src)
}

// Filter runs the difference equation
//
//	y[n] = (sum_k B[k]*x[n-k] - sum_{j>=1} A[j]*y[n-j]) / A[0]
//
// over x with zero initial conditions, in Direct Form II Transposed.
func (tf TransferFunction) Filter(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 || len(tf.A) == 0 || tf.A[0] == 0 {
		return out
	}

	b, a := normalized(tf.B, tf.A)
	if (TransferFunction{B: b, A: a}).IsReal() {
		filterReal(out, x, realParts(b), realParts(a))
	} else {
		filterComplex(out, x, b, a)
	}
	return out
}

// normalized pads b and a to equal length and divides both by a[0].
func normalized(b, a []complex128) ([]complex128, []complex128) {
	n := max(len(b), len(a))
	nb := make([]complex128, n)
	na := make([]complex128, n)
	a0 := a[0]
	for i, c := range b {
		nb[i] = c / a0
	}
	for i, c := range a {
		na[i] = c / a0
	}
	return nb, na
}

func realParts(c []complex128) []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v)
	}
	return out
}

func filterReal(dst, src, b, a []float64) {
	n := len(b)
	if n == 1 {
		vecmath.ScaleBlock(dst, src, b[0])
		return
	}

	d := make([]float64, n-1)
	last := n - 2
	for i, x := range src {
		y := b[0]*x + d[0]
		for k := range last {
			d[k] = b[k+1]*x - a[k+1]*y + d[k+1]
		}
		d[last] = b[n-1]*x - a[n-1]*y
		dst[i] = y
	}
}

func filterComplex(dst, src []float64, b, a []complex128) {
	n := len(b)
	d := make([]complex128, n)
	last := n - 2
	for i, xr := range src {
		x := complex(xr, 0)
		y := b[0]*x + d[0]
		for k := range last {
			d[k] = b[k+1]*x - a[k+1]*y + d[k+1]
		}
		if last >= 0 {
			d[last] = b[n-1]*x - a[n-1]*y
		}
		dst[i] = real(y)
	}
}
