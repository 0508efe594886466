package signal

import (
	"math"
	"testing"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(WithSampleRate(48000))

	s, err := g.Sine(1000, 1, 128)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	if s.Len() != 128 || len(s.Time) != 128 {
		t.Fatalf("len=%d/%d, want 128", s.Len(), len(s.Time))
	}

	if got := s.Time[48]; math.Abs(got-0.001) > 1e-15 {
		t.Fatalf("Time[48]=%v, want 0.001", got)
	}
}

func TestSineRejectsEmpty(t *testing.T) {
	if _, err := NewGenerator().Sine(10, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	a, err := NewGenerator(WithSeed(42)).WhiteNoise(1, 32)
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewGenerator(WithSeed(42)).WhiteNoise(1, 32)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a.Amplitude {
		if a.Amplitude[i] != b.Amplitude[i] {
			t.Fatalf("mismatch at %d: %v != %v", i, a.Amplitude[i], b.Amplitude[i])
		}
		if math.Abs(a.Amplitude[i]) > 1 {
			t.Fatalf("sample %d out of range: %v", i, a.Amplitude[i])
		}
	}

	if _, err := NewGenerator().WhiteNoise(-1, 8); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
}

func TestMix(t *testing.T) {
	a := FromSamples([]float64{1, 2, 3, 4})
	b := FromSamples([]float64{10, 20, 30})

	got := Mix(a, b)
	want := []float64{11, 22, 33}

	if got.Len() != len(want) {
		t.Fatalf("len=%d, want %d", got.Len(), len(want))
	}
	for i := range want {
		if got.Amplitude[i] != want[i] || got.Time[i] != float64(i) {
			t.Fatalf("sample %d = (%v, %v)", i, got.Time[i], got.Amplitude[i])
		}
	}

	if Mix().Len() != 0 {
		t.Fatal("Mix() of nothing should be empty")
	}
}

func TestNewLengthMismatch(t *testing.T) {
	if _, err := New([]float64{0, 1}, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}

	s, err := New([]float64{0, 1}, []float64{3, 4})
	if err != nil || s.Len() != 2 {
		t.Fatalf("New() = %v, %v", s, err)
	}
	if s.Eligible() {
		t.Fatal("two samples should not be eligible for filtering")
	}
}
