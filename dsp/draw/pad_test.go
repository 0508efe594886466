package draw

import (
	"testing"

	"github.com/cwbudde/algo-zplane/dsp/zplane"
	"github.com/cwbudde/algo-zplane/dsp/zpk"
	"github.com/cwbudde/algo-zplane/internal/testutil"
)

type fixedSource struct {
	zeros, poles []complex128
}

func (s fixedSource) EffectiveZeros() []complex128 { return s.zeros }
func (s fixedSource) EffectivePoles() []complex128 { return s.poles }

func TestNoEmissionBeforeFull(t *testing.T) {
	p := NewPad(fixedSource{})

	for i := range DefaultChunkSize - 1 {
		if _, ok := p.Push(float64(i)); ok {
			t.Fatalf("emitted after %d samples", i+1)
		}
	}
	if p.Len() != DefaultChunkSize-1 {
		t.Fatalf("Len()=%d", p.Len())
	}
}

func TestFirstChunk(t *testing.T) {
	p := NewPad(fixedSource{})
	ramp := testutil.Ramp(DefaultChunkSize)

	var (
		c  Chunk
		ok bool
	)
	for _, v := range ramp {
		c, ok = p.Push(v)
	}
	if !ok {
		t.Fatal("no chunk after 100 samples")
	}

	if len(c.Original) != 90 || len(c.OriginalX) != 90 {
		t.Fatalf("original len=%d/%d, want 90", len(c.Original), len(c.OriginalX))
	}
	if len(c.Filtered) != 99 || len(c.FilteredX) != 99 {
		t.Fatalf("filtered len=%d/%d, want 99", len(c.Filtered), len(c.FilteredX))
	}

	testutil.RequireSliceNearlyEqual(t, c.Original, ramp[10:], 0)
	testutil.RequireSliceNearlyEqual(t, c.OriginalX, ramp[10:], 0)
	testutil.RequireSliceNearlyEqual(t, c.Filtered, ramp[1:], 1e-12)
	testutil.RequireSliceNearlyEqual(t, c.FilteredX, ramp[1:], 0)
}

func TestEvictionKeepsWindow(t *testing.T) {
	p := NewPad(fixedSource{}, WithChunkSize(5), WithSettle(1))

	var c Chunk
	for i := range 8 {
		c, _ = p.Push(float64(i * 10))
	}

	if p.Len() != 5 {
		t.Fatalf("Len()=%d, want 5", p.Len())
	}
	testutil.RequireSliceNearlyEqual(t, c.Original, []float64{40, 50, 60, 70}, 0)
	testutil.RequireSliceNearlyEqual(t, c.OriginalX, []float64{4, 5, 6, 7}, 0)
	testutil.RequireSliceNearlyEqual(t, c.FilteredX, []float64{4, 5, 6, 7}, 0)
}

func TestFilterFollowsSource(t *testing.T) {
	m := zplane.New()
	m.AddZero(1, false)
	p := NewPad(m, WithChunkSize(6), WithSettle(0), WithGain(2))

	x := []float64{1, 4, 9, 16, 25, 36}
	var c Chunk
	for _, v := range x {
		c, _ = p.Push(v)
	}

	want := zpk.Filter(x, []complex128{1}, nil, zpk.WithGain(2))[1:]
	testutil.RequireSliceNearlyEqual(t, c.Filtered, want, 1e-12)
	testutil.RequireSliceNearlyEqual(t, c.Filtered, []float64{6, 10, 14, 18, 22}, 1e-12)
}

func TestReset(t *testing.T) {
	p := NewPad(fixedSource{}, WithChunkSize(3), WithSettle(0))
	for i := range 5 {
		p.Push(float64(i))
	}

	p.Reset()
	if p.Len() != 0 {
		t.Fatalf("Len()=%d after Reset", p.Len())
	}

	p.Push(7)
	p.Push(8)
	c, ok := p.Push(9)
	if !ok {
		t.Fatal("no chunk after refill")
	}
	testutil.RequireSliceNearlyEqual(t, c.OriginalX, []float64{0, 1, 2}, 0)
}
