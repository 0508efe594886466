package allpass

import (
	"errors"
	"fmt"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-zplane/dsp/zpk"
)

// ErrIndexOutOfRange is returned when a library entry or stage index does
// not exist.
var ErrIndexOutOfRange = errors.New("allpass: index out of range")

// DefaultCoefficients seed [DefaultLibrary].
var DefaultCoefficients = []complex128{
	complex(1, 1.2),
	complex(-1.1, 0.9),
	complex(-1.3, 0.7),
}

// Entry is one all-pass section: a zero at A and a pole at 1/conj(A).
type Entry struct {
	A complex128
}

// Zero returns the section zero.
func (e Entry) Zero() complex128 { return e.A }

// Pole returns the section pole, 1/conj(A).
func (e Entry) Pole() complex128 { return 1 / cmplx.Conj(e.A) }

// Label returns the display text of the coefficient.
func (e Entry) Label() string { return Format(e.A) }

// PreviewPhaseResponse evaluates the section on its own. Only the phase is
// of interest; the magnitude is the constant 20*log10(|A|).
func (e Entry) PreviewPhaseResponse(opts ...zpk.Option) zpk.Response {
	return zpk.FrequencyResponse([]complex128{e.Zero()}, []complex128{e.Pole()}, opts...)
}

// Commit appends the section to the active stage list.
func (e Entry) Commit(s *Stages) error {
	return s.Add(e.A)
}

// Library is a fixed catalog of all-pass sections offered for preview.
type Library struct {
	entries []Entry
}

// NewLibrary builds a catalog from coefficients, skipping any that fail
// [Validate].
func NewLibrary(coeffs ...complex128) *Library {
	l := &Library{entries: make([]Entry, 0, len(coeffs))}
	for _, a := range coeffs {
		if Validate(a) == nil {
			l.entries = append(l.entries, Entry{A: a})
		}
	}
	return l
}

// DefaultLibrary returns a catalog of [DefaultCoefficients].
func DefaultLibrary() *Library {
	return NewLibrary(DefaultCoefficients...)
}

// Len returns the number of entries.
func (l *Library) Len() int { return len(l.entries) }

// Entries returns a copy of the catalog.
func (l *Library) Entries() []Entry { return slices.Clone(l.entries) }

// Entry returns the i-th entry.
func (l *Library) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(l.entries) {
		return Entry{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return l.entries[i], nil
}
