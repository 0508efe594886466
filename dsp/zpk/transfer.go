package zpk

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-zplane/internal/polyroot"
)

// ErrInvalidPoints is returned when a response is requested for fewer than
// one frequency bin.
var ErrInvalidPoints = errors.New("zpk: number of points must be > 0")

// realTol is the relative tolerance below which coefficient imaginary parts
// are treated as rounding noise.
const realTol = 1e-10

// TransferFunction holds the numerator and denominator polynomials of a
// rational filter in descending powers of z:
//
//	H(z) = (B[0]*z^M + ... + B[M]) / (A[0]*z^N + ... + A[N])
//
// Read as coefficients of z^-k, the same slices are the feedforward and
// feedback taps of the difference equation: B[0] multiplies x[n].
type TransferFunction struct {
	B []complex128
	A []complex128
}

// NewTransferFunction expands zeros, poles and gain into polynomial form.
// Only the [WithGain] option is relevant.
func NewTransferFunction(zeros, poles []complex128, opts ...Option) TransferFunction {
	cfg := applyOptions(opts)
	return TransferFunction{
		B: polyroot.FromRoots(zeros, complex(cfg.gain, 0)),
		A: polyroot.FromRoots(poles, 1),
	}
}

// Coefficients returns the numerator and denominator taps for the given
// zero/pole/gain set.
func Coefficients(zeros, poles []complex128, opts ...Option) (b, a []complex128) {
	tf := NewTransferFunction(zeros, poles, opts...)
	return tf.B, tf.A
}

// Order returns the filter order, the larger polynomial degree.
func (tf TransferFunction) Order() int {
	return max(len(tf.B), len(tf.A)) - 1
}

// IsReal reports whether both polynomials have real coefficients, which is
// the case when zeros and poles are closed under conjugation.
func (tf TransferFunction) IsReal() bool {
	return polyroot.IsReal(tf.B, realTol) && polyroot.IsReal(tf.A, realTol)
}

// Eval returns B(z)/A(z).
func (tf TransferFunction) Eval(z complex128) complex128 {
	return polyroot.PolyEval(tf.B, z) / polyroot.PolyEval(tf.A, z)
}

// Zeros recovers the numerator roots.
func (tf TransferFunction) Zeros() ([]complex128, error) {
	return roots(tf.B)
}

// Poles recovers the denominator roots.
func (tf TransferFunction) Poles() ([]complex128, error) {
	return roots(tf.A)
}

func roots(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, nil
	}
	r, err := polyroot.DurandKerner(coeff)
	if err != nil {
		return nil, fmt.Errorf("zpk: root finding failed: %w", err)
	}
	return r, nil
}

// FrequencyResponse samples B/A at w = pi*k/n, k = 0..n-1, using one FFT of
// length 2n per polynomial. Polynomials longer than 2n are folded, which is
// exact for the sampled frequencies. 2n must be a length supported by the
// FFT backend; powers of two always are.
//
// The degenerate placeholder rule of the package-level [FrequencyResponse]
// applies when either polynomial is exactly c*z.
func (tf TransferFunction) FrequencyResponse(n int) (Response, error) {
	if n <= 0 {
		return Response{}, ErrInvalidPoints
	}

	size := 2 * n
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Response{}, fmt.Errorf("zpk: failed to create FFT plan: %w", err)
	}

	num, err := foldedSpectrum(plan, tf.B, size)
	if err != nil {
		return Response{}, err
	}
	den, err := foldedSpectrum(plan, tf.A, size)
	if err != nil {
		return Response{}, err
	}

	// The FFT evaluates sum(c[k] * e^{-jwk}); shifting by e^{jw*degree}
	// turns that into the polynomial value at e^{jw}.
	shift := float64((len(tf.B) - 1) - (len(tf.A) - 1))
	freqs := make([]float64, n)
	h := make([]complex128, n)
	for i := range n {
		w := math.Pi * float64(i) / float64(n)
		freqs[i] = w
		h[i] = cmplx.Exp(complex(0, w*shift)) * num[i] / den[i]
	}

	return newResponse(freqs, h, isMonomialZ(tf.B) || isMonomialZ(tf.A)), nil
}

func foldedSpectrum(plan *algofft.Plan[complex128], coeff []complex128, size int) ([]complex128, error) {
	src := make([]complex128, size)
	for k, c := range coeff {
		src[k%size] += c
	}
	dst := make([]complex128, size)
	if err := plan.Forward(dst, src); err != nil {
		return nil, fmt.Errorf("zpk: forward FFT failed: %w", err)
	}
	return dst, nil
}

// isMonomialZ matches c*z, the expansion of the root set {0}.
func isMonomialZ(coeff []complex128) bool {
	return len(coeff) == 2 && coeff[1] == 0
}
