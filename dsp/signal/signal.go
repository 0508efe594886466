// Package signal holds time-stamped sample sequences and their file I/O.
package signal

import (
	"errors"
	"fmt"
)

// MinLength is the minimum number of samples a loaded signal must have to
// be eligible for filtering.
const MinLength = 10000

var (
	// ErrTooShort is returned when a loaded signal has fewer than
	// MinLength samples.
	ErrTooShort = errors.New("signal: too short")
	// ErrMalformed is returned for input that cannot be read as
	// (time, amplitude) rows.
	ErrMalformed = errors.New("signal: malformed input")
)

// Signal is an ordered sequence of (time, amplitude) samples. Time is
// expected to be strictly increasing; this is not checked.
type Signal struct {
	Time      []float64
	Amplitude []float64
}

// New pairs time stamps with amplitudes.
func New(time, amplitude []float64) (Signal, error) {
	if len(time) != len(amplitude) {
		return Signal{}, fmt.Errorf("signal: length mismatch: %d time stamps, %d amplitudes", len(time), len(amplitude))
	}
	return Signal{Time: time, Amplitude: amplitude}, nil
}

// FromSamples stamps samples with their index as time.
func FromSamples(amplitude []float64) Signal {
	t := make([]float64, len(amplitude))
	for i := range t {
		t[i] = float64(i)
	}
	return Signal{Time: t, Amplitude: amplitude}
}

// Len returns the number of samples.
func (s Signal) Len() int { return len(s.Amplitude) }

// Eligible reports whether the signal is long enough to be filtered.
func (s Signal) Eligible() bool { return s.Len() >= MinLength }
