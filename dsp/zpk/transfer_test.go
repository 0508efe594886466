package zpk

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-zplane/internal/testutil"
)

func TestTransferFunction_EvalMatchesZPK(t *testing.T) {
	tests := []struct {
		name         string
		zeros, poles []complex128
		gain         float64
	}{
		{"empty", nil, nil, 1},
		{"gain only", nil, nil, 2.5},
		{"conjugate pairs", []complex128{complex(0.2, 0.9), complex(0.2, -0.9)}, []complex128{complex(0.6, 0.4), complex(0.6, -0.4)}, 1},
		{"more zeros than poles", []complex128{1, -1, complex(0, 1)}, []complex128{0.3}, 0.7},
		{"more poles than zeros", []complex128{0.1}, []complex128{0.2, complex(-0.4, 0.5), complex(0.9, 0.1)}, 1.3},
		{"with all-pass", []complex128{complex(1, 1.2)}, []complex128{1 / cmplx.Conj(complex(1, 1.2))}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tf := NewTransferFunction(tc.zeros, tc.poles, WithGain(tc.gain))
			for _, w := range []float64{0, 0.3, 1, 2, 3.1} {
				z := cmplx.Exp(complex(0, w))
				want := complex(tc.gain, 0)
				for _, zi := range tc.zeros {
					want *= z - zi
				}
				for _, pi := range tc.poles {
					want /= z - pi
				}
				testutil.RequireComplexNear(t, tf.Eval(z), want, 1e-10)
			}
		})
	}
}

func TestTransferFunction_FFTResponseMatchesDirect(t *testing.T) {
	tests := []struct {
		name         string
		zeros, poles []complex128
		points       int
	}{
		{"balanced", []complex128{complex(0.7, 0.7), complex(0.7, -0.7)}, []complex128{complex(0.5, 0.5), complex(0.5, -0.5)}, 64},
		{"excess zeros", []complex128{-1, -1, 0.5}, []complex128{0.2}, 32},
		{"excess poles", []complex128{0.4}, []complex128{0.1, complex(0.3, 0.6), complex(0.3, -0.6)}, 128},
		{"complex coefficients", []complex128{complex(0.1, 0.8)}, []complex128{complex(-0.2, 0.5)}, 16},
		{"folded", []complex128{0.9, -0.9, complex(0, 0.9), complex(0, -0.9), 0.5, -0.5, 0.1, -0.1, 0.3, -0.3}, []complex128{0.2}, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gain := 1.7
			tf := NewTransferFunction(tc.zeros, tc.poles, WithGain(gain))
			got, err := tf.FrequencyResponse(tc.points)
			if err != nil {
				t.Fatal(err)
			}
			want := FrequencyResponse(tc.zeros, tc.poles, WithGain(gain), WithPoints(tc.points))

			testutil.RequireSliceNearlyEqual(t, got.Frequencies, want.Frequencies, 1e-15)
			for i := range want.H {
				testutil.RequireComplexNear(t, got.H[i], want.H[i], 1e-9)
			}
			testutil.RequireSliceNearlyEqual(t, got.MagnitudeDB, want.MagnitudeDB, 1e-8)
			testutil.RequireSliceNearlyEqual(t, got.Phase, want.Phase, 1e-8)
		})
	}
}

func TestTransferFunction_FFTResponseDegenerate(t *testing.T) {
	tf := NewTransferFunction([]complex128{0}, nil)
	resp, err := tf.FrequencyResponse(16)
	if err != nil {
		t.Fatal(err)
	}
	for i, m := range resp.MagnitudeDB {
		if m != 0 {
			t.Fatalf("bin %d: magnitude %v, want 0", i, m)
		}
	}
}

func TestTransferFunction_FFTResponseInvalidPoints(t *testing.T) {
	_, err := NewTransferFunction(nil, nil).FrequencyResponse(0)
	if !errors.Is(err, ErrInvalidPoints) {
		t.Fatalf("err=%v, want ErrInvalidPoints", err)
	}
}

func TestTransferFunction_OrderAndReality(t *testing.T) {
	pair := NewTransferFunction([]complex128{complex(0.3, 0.4), complex(0.3, -0.4)}, []complex128{0.5})
	if pair.Order() != 2 {
		t.Fatalf("order=%d, want 2", pair.Order())
	}
	if !pair.IsReal() {
		t.Fatal("conjugate-closed set should have real coefficients")
	}

	// A conjugate slot dragged away from its mirror breaks the symmetry.
	dragged := NewTransferFunction([]complex128{complex(0.3, 0.4), complex(0.35, -0.4)}, nil)
	if dragged.IsReal() {
		t.Fatal("asymmetric set should have complex coefficients")
	}

	if NewTransferFunction(nil, nil).Order() != 0 {
		t.Fatal("empty set should have order 0")
	}
}

func TestTransferFunction_RootsRoundTrip(t *testing.T) {
	zeros := []complex128{complex(0.2, 0.9), complex(0.2, -0.9), -0.5}
	poles := []complex128{complex(0.8, 0.1), complex(0.8, -0.1)}
	tf := NewTransferFunction(zeros, poles, WithGain(3))

	gotZeros, err := tf.Zeros()
	if err != nil {
		t.Fatal(err)
	}
	gotPoles, err := tf.Poles()
	if err != nil {
		t.Fatal(err)
	}

	requireSameRoots(t, gotZeros, zeros)
	requireSameRoots(t, gotPoles, poles)

	none, err := NewTransferFunction(nil, nil).Zeros()
	if err != nil || none != nil {
		t.Fatalf("empty numerator: roots=%v err=%v", none, err)
	}
}

func TestCoefficients(t *testing.T) {
	b, a := Coefficients([]complex128{1}, []complex128{0.5, -0.5}, WithGain(2))
	wantB := []complex128{2, -2}
	wantA := []complex128{1, 0, -0.25}
	if len(b) != len(wantB) || len(a) != len(wantA) {
		t.Fatalf("b=%v a=%v", b, a)
	}
	for i := range wantB {
		testutil.RequireComplexNear(t, b[i], wantB[i], 1e-15)
	}
	for i := range wantA {
		testutil.RequireComplexNear(t, a[i], wantA[i], 1e-15)
	}
}

func requireSameRoots(t *testing.T, got, want []complex128) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d roots, want %d", len(got), len(want))
	}
	for _, w := range want {
		best := math.MaxFloat64
		for _, g := range got {
			best = math.Min(best, cmplx.Abs(g-w))
		}
		if best > 1e-8 {
			t.Fatalf("root %v not found in %v", w, got)
		}
	}
}
