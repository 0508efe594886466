package zpk

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// Response is a sampled frequency response.
type Response struct {
	// Frequencies in radians per sample, in [0, pi).
	Frequencies []float64
	// MagnitudeDB is 20*log10(|H|).
	MagnitudeDB []float64
	// Phase is arg(H) in radians, unwrapped.
	Phase []float64
	// H holds the complex response values.
	H []complex128
}

// Len returns the number of frequency bins.
func (r Response) Len() int { return len(r.Frequencies) }

// FrequencyResponse evaluates k*prod(z-z_i)/prod(z-p_i) at z = e^{jw} for
// w = pi*n/N, n = 0..N-1.
//
// When either root set is exactly {0} the magnitude is reported as all
// zeros; this is the placeholder "no filter" state and would otherwise show
// a meaningless spike. Phase is computed normally in that case.
func FrequencyResponse(zeros, poles []complex128, opts ...Option) Response {
	cfg := applyOptions(opts)
	n := cfg.points

	freqs := make([]float64, n)
	h := make([]complex128, n)
	k := complex(cfg.gain, 0)
	for i := range n {
		w := math.Pi * float64(i) / float64(n)
		z := cmplx.Exp(complex(0, w))

		num := k
		for _, zi := range zeros {
			num *= z - zi
		}
		den := complex(1, 0)
		for _, pi := range poles {
			den *= z - pi
		}

		freqs[i] = w
		h[i] = num / den
	}

	return newResponse(freqs, h, isOrigin(zeros) || isOrigin(poles))
}

func newResponse(freqs []float64, h []complex128, degenerate bool) Response {
	n := len(h)
	mag := make([]float64, n)
	phase := make([]float64, n)

	if !degenerate {
		re := make([]float64, n)
		im := make([]float64, n)
		for i, v := range h {
			re[i] = real(v)
			im[i] = imag(v)
		}
		vecmath.Magnitude(mag, re, im)
		for i, m := range mag {
			mag[i] = 20 * math.Log10(m)
		}
	}

	for i, v := range h {
		phase[i] = cmplx.Phase(v)
	}

	return Response{
		Frequencies: freqs,
		MagnitudeDB: mag,
		Phase:       UnwrapPhase(phase),
		H:           h,
	}
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
// Jumps larger than pi between neighbours are corrected by the multiple of
// 2*pi that brings them back into [-pi, pi].
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		if math.Abs(d) > math.Pi {
			offset -= 2 * math.Pi * math.Round(d/(2*math.Pi))
		}
		out[i] = phase[i] + offset
	}
	return out
}

func isOrigin(roots []complex128) bool {
	return len(roots) == 1 && roots[0] == 0
}
