package zplane

import (
	"errors"
	"fmt"
	"math/cmplx"
	"slices"
	"sync"
)

// HitRadius is the half-side of the square tolerance region used by
// [Model.HitTest], in plane units.
const HitRadius = 0.045

var (
	// ErrUnknownPair is returned when an id does not name a pair in the model.
	ErrUnknownPair = errors.New("zplane: unknown pair")
	// ErrNoConjugate is returned when the conjugate slot of a pair without
	// one is addressed.
	ErrNoConjugate = errors.New("zplane: pair has no conjugate")
)

// Listener is notified after every completed mutation. goToEditor is false
// for changes that only touch the all-pass list, so a UI can refresh without
// switching to the pole/zero editor.
//
// Listeners run synchronously and may call read accessors, but must not
// mutate the model from inside the callback.
type Listener func(goToEditor bool)

// Model is the authoritative pole/zero set of a design. The zero value is
// ready to use.
type Model struct {
	// notifyMu makes mutate-then-notify a single critical section.
	notifyMu sync.Mutex
	mu       sync.RWMutex

	zeros     []Pair
	poles     []Pair
	allPass   []complex128
	listeners []Listener
}

// New returns an empty model with the given listeners registered.
func New(listeners ...Listener) *Model {
	m := &Model{}
	for _, l := range listeners {
		m.OnChange(l)
	}
	return m
}

// OnChange registers a listener. Nil listeners are ignored.
func (m *Model) OnChange(l Listener) {
	if l == nil {
		return
	}
	m.mu.Lock()
	m.listeners = append(m.listeners, l)
	m.mu.Unlock()
}

// mutate applies fn under the write lock and, if fn reports a change,
// notifies every listener once after the lock is released.
func (m *Model) mutate(goToEditor bool, fn func() bool) {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	changed := fn()
	listeners := slices.Clone(m.listeners)
	m.mu.Unlock()

	if !changed {
		return
	}
	for _, l := range listeners {
		l(goToEditor)
	}
}

// AddZero appends a zero at v, with its conjugate if requested. The location
// is not validated.
func (m *Model) AddZero(v complex128, withConjugate bool) PairID {
	p := newPair(Zero, v, withConjugate)
	m.mutate(true, func() bool {
		m.zeros = append(m.zeros, p)
		return true
	})
	return p.ID
}

// AddPole appends a pole at v, with its conjugate if requested. Stability
// is not enforced.
func (m *Model) AddPole(v complex128, withConjugate bool) PairID {
	p := newPair(Pole, v, withConjugate)
	m.mutate(true, func() bool {
		m.poles = append(m.poles, p)
		return true
	})
	return p.ID
}

// Move relocates one slot of a pair.
//
// Moving the primary of a pair with a conjugate also moves the conjugate to
// conj(v). Moving the conjugate slot leaves the primary where it is; the
// conjugate stays independent until the next primary move.
func (m *Model) Move(id PairID, slot Slot, v complex128) error {
	var err error
	m.mutate(true, func() bool {
		p := m.lookup(id)
		if p == nil {
			err = fmt.Errorf("%w: %s", ErrUnknownPair, id)
			return false
		}
		switch slot {
		case PrimarySlot:
			p.Primary = v
			if p.HasConjugate {
				p.Conjugate = cmplx.Conj(v)
			}
		case ConjugateSlot:
			if !p.HasConjugate {
				err = fmt.Errorf("%w: %s", ErrNoConjugate, id)
				return false
			}
			p.Conjugate = v
		default:
			err = fmt.Errorf("zplane: invalid slot %d", slot)
			return false
		}
		return true
	})
	return err
}

// Remove deletes a pair, both slots, from its collection.
func (m *Model) Remove(id PairID) error {
	var err error
	m.mutate(true, func() bool {
		if i := indexOf(m.zeros, id); i >= 0 {
			m.zeros = slices.Delete(m.zeros, i, i+1)
			return true
		}
		if i := indexOf(m.poles, id); i >= 0 {
			m.poles = slices.Delete(m.poles, i, i+1)
			return true
		}
		err = fmt.Errorf("%w: %s", ErrUnknownPair, id)
		return false
	})
	return err
}

// HitTest returns the ids of every zero and pole pair with a point inside
// the [HitRadius] square around pt, zeros first.
func (m *Model) HitTest(pt complex128) []PairID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []PairID
	for _, p := range m.zeros {
		if p.Hit(pt, HitRadius) {
			ids = append(ids, p.ID)
		}
	}
	for _, p := range m.poles {
		if p.Hit(pt, HitRadius) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// RemoveAt deletes every pair hit at pt from both collections in one pass
// and returns how many were removed. Listeners are notified once if
// anything was removed.
func (m *Model) RemoveAt(pt complex128) int {
	removed := 0
	m.mutate(true, func() bool {
		hit := func(p Pair) bool {
			if p.Hit(pt, HitRadius) {
				removed++
				return true
			}
			return false
		}
		m.zeros = slices.DeleteFunc(m.zeros, hit)
		m.poles = slices.DeleteFunc(m.poles, hit)
		return removed > 0
	})
	return removed
}

// ClearZeros removes all zero pairs.
func (m *Model) ClearZeros() {
	m.mutate(true, func() bool {
		m.zeros = nil
		return true
	})
}

// ClearPoles removes all pole pairs.
func (m *Model) ClearPoles() {
	m.mutate(true, func() bool {
		m.poles = nil
		return true
	})
}

// ClearAll removes all zero and pole pairs with a single notification.
// The all-pass list is kept.
func (m *Model) ClearAll() {
	m.mutate(true, func() bool {
		m.zeros = nil
		m.poles = nil
		return true
	})
}

// SetAllPass replaces the all-pass coefficient list. Listeners receive
// goToEditor=false.
func (m *Model) SetAllPass(coeffs []complex128) {
	cp := slices.Clone(coeffs)
	m.mutate(false, func() bool {
		m.allPass = cp
		return true
	})
}

// AllPass returns a copy of the all-pass coefficient list.
func (m *Model) AllPass() []complex128 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.allPass)
}

// Zeros returns a copy of the zero pairs in insertion order.
func (m *Model) Zeros() []Pair {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.zeros)
}

// Poles returns a copy of the pole pairs in insertion order.
func (m *Model) Poles() []Pair {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.poles)
}

// Pair returns the pair with the given id.
func (m *Model) Pair(id PairID) (Pair, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := indexOf(m.zeros, id); i >= 0 {
		return m.zeros[i], true
	}
	if i := indexOf(m.poles, id); i >= 0 {
		return m.poles[i], true
	}
	return Pair{}, false
}

// Markers returns one entry per plotted point: zeros then poles, each pair
// contributing its primary and, if present, its conjugate.
func (m *Model) Markers() []Marker {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Marker, 0, 2*(len(m.zeros)+len(m.poles)))
	for _, set := range [][]Pair{m.zeros, m.poles} {
		for _, p := range set {
			out = append(out, Marker{ID: p.ID, Kind: p.Kind, Slot: PrimarySlot, Value: p.Primary})
			if p.HasConjugate {
				out = append(out, Marker{ID: p.ID, Kind: p.Kind, Slot: ConjugateSlot, Value: p.Conjugate})
			}
		}
	}
	return out
}

// EffectiveZeros returns the zero set fed to the transfer-function engine:
// every zero pair flattened in insertion order, followed by the all-pass
// coefficients.
func (m *Model) EffectiveZeros() []complex128 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := flatten(m.zeros, len(m.allPass))
	return append(out, m.allPass...)
}

// EffectivePoles returns every pole pair flattened in insertion order,
// followed by 1/conj(a) for each all-pass coefficient a.
func (m *Model) EffectivePoles() []complex128 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := flatten(m.poles, len(m.allPass))
	for _, a := range m.allPass {
		out = append(out, 1/cmplx.Conj(a))
	}
	return out
}

func flatten(pairs []Pair, extra int) []complex128 {
	out := make([]complex128, 0, 2*len(pairs)+extra)
	for _, p := range pairs {
		out = append(out, p.Primary)
		if p.HasConjugate {
			out = append(out, p.Conjugate)
		}
	}
	return out
}

// lookup returns a pointer into the live collections. Callers hold mu.
func (m *Model) lookup(id PairID) *Pair {
	if i := indexOf(m.zeros, id); i >= 0 {
		return &m.zeros[i]
	}
	if i := indexOf(m.poles, id); i >= 0 {
		return &m.poles[i]
	}
	return nil
}

func indexOf(pairs []Pair, id PairID) int {
	return slices.IndexFunc(pairs, func(p Pair) bool { return p.ID == id })
}
