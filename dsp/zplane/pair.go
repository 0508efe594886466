package zplane

import (
	"math/cmplx"

	"github.com/google/uuid"
)

// Kind tells whether a pair is a zero or a pole.
type Kind int

const (
	Zero Kind = iota
	Pole
)

func (k Kind) String() string {
	switch k {
	case Zero:
		return "zero"
	case Pole:
		return "pole"
	default:
		return "unknown"
	}
}

// Slot selects one of the two points of a pair.
type Slot int

const (
	PrimarySlot Slot = iota
	ConjugateSlot
)

func (s Slot) String() string {
	if s == ConjugateSlot {
		return "conjugate"
	}
	return "primary"
}

// PairID identifies a pair for its whole lifetime.
type PairID uuid.UUID

func newPairID() PairID { return PairID(uuid.New()) }

func (id PairID) String() string { return uuid.UUID(id).String() }

// ParsePairID parses the textual form produced by [PairID.String].
func ParsePairID(s string) (PairID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return PairID{}, err
	}
	return PairID(u), nil
}

// Pair is a zero or pole with an optional conjugate point.
//
// At creation Conjugate == conj(Primary). The two points may drift apart
// when the conjugate slot is moved on its own.
type Pair struct {
	ID           PairID
	Kind         Kind
	Primary      complex128
	Conjugate    complex128
	HasConjugate bool
}

func newPair(kind Kind, v complex128, withConjugate bool) Pair {
	p := Pair{ID: newPairID(), Kind: kind, Primary: v}
	if withConjugate {
		p.Conjugate = cmplx.Conj(v)
		p.HasConjugate = true
	}
	return p
}

// Points returns the primary followed by the conjugate if present.
func (p Pair) Points() []complex128 {
	if p.HasConjugate {
		return []complex128{p.Primary, p.Conjugate}
	}
	return []complex128{p.Primary}
}

// Hit reports whether pt lies in the tolerance square of half-side r around
// either point of the pair. Bounds are inclusive.
func (p Pair) Hit(pt complex128, r float64) bool {
	if inSquare(p.Primary, pt, r) {
		return true
	}
	return p.HasConjugate && inSquare(p.Conjugate, pt, r)
}

func inSquare(center, pt complex128, r float64) bool {
	return real(center)-r <= real(pt) && real(pt) <= real(center)+r &&
		imag(center)-r <= imag(pt) && imag(pt) <= imag(center)+r
}

// Marker is one plotted point: a rendering projection of a pair slot.
type Marker struct {
	ID    PairID
	Kind  Kind
	Slot  Slot
	Value complex128
}
