package allpass

import (
	"fmt"
	"slices"
)

// Sink receives the full all-pass list after every change.
// *zplane.Model satisfies it.
type Sink interface {
	SetAllPass(coeffs []complex128)
}

// Stages is the ordered list of active all-pass corrections.
type Stages struct {
	sink   Sink
	values []complex128
}

// NewStages returns an empty list that pushes changes to sink. A nil sink
// is allowed.
func NewStages(sink Sink) *Stages {
	return &Stages{sink: sink}
}

// Add appends a coefficient.
func (s *Stages) Add(a complex128) error {
	if err := Validate(a); err != nil {
		return err
	}
	s.values = append(s.values, a)
	s.push()
	return nil
}

// AddText parses text and appends the coefficient. Nothing changes on
// error.
func (s *Stages) AddText(text string) error {
	a, err := ParseCoefficient(text)
	if err != nil {
		return err
	}
	return s.Add(a)
}

// Remove deletes the i-th stage. Only single-index removal is supported.
func (s *Stages) Remove(i int) error {
	if i < 0 || i >= len(s.values) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	s.values = slices.Delete(s.values, i, i+1)
	s.push()
	return nil
}

// Entry returns the i-th stage as a library-style entry.
func (s *Stages) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(s.values) {
		return Entry{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return Entry{A: s.values[i]}, nil
}

// Values returns a copy of the coefficients in order.
func (s *Stages) Values() []complex128 { return slices.Clone(s.values) }

// Labels returns the display text of every stage.
func (s *Stages) Labels() []string {
	out := make([]string, len(s.values))
	for i, a := range s.values {
		out[i] = Format(a)
	}
	return out
}

// Len returns the number of stages.
func (s *Stages) Len() int { return len(s.values) }

func (s *Stages) push() {
	if s.sink != nil {
		s.sink.SetAllPass(slices.Clone(s.values))
	}
}
