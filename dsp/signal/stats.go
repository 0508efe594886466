package signal

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats summarises a window of samples.
type Stats struct {
	Length      int
	DC          float64 // mean
	RMS         float64
	RMSdB       float64
	Peak        float64 // max |x|
	PeakdB      float64
	CrestFactor float64 // peak / RMS (linear)
}

// Measure computes Stats for x. dB fields are -Inf for silent input.
func Measure(x []float64) Stats {
	n := len(x)
	if n == 0 {
		return Stats{RMSdB: math.Inf(-1), PeakdB: math.Inf(-1)}
	}

	s := Stats{
		Length: n,
		DC:     vecmath.Sum(x) / float64(n),
		RMS:    RMS(x),
		Peak:   vecmath.MaxAbs(x),
	}
	s.RMSdB = ampTodB(s.RMS)
	s.PeakdB = ampTodB(s.Peak)
	if s.RMS != 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	return s
}

// RMS returns the root-mean-square of x.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(vecmath.DotProduct(x, x) / float64(len(x)))
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(a)
}
