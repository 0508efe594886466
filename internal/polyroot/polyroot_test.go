package polyroot

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"
)

func almostEqual(valA, valB, tol float64) bool {
	if valA == valB {
		return true
	}

	diff := math.Abs(valA - valB)
	if tol > 0 && tol < 1 {
		mag := math.Max(math.Abs(valA), math.Abs(valB))
		if mag > 1 {
			return diff/mag < tol
		}
	}

	return diff < tol
}

func TestFromRoots(t *testing.T) {
	tests := []struct {
		name  string
		roots []complex128
		scale complex128
		want  []complex128
	}{
		{"empty", nil, 1, []complex128{1}},
		{"empty scaled", nil, 2.5, []complex128{2.5}},
		{"single", []complex128{0.5}, 1, []complex128{1, -0.5}},
		{"origin", []complex128{0}, 1, []complex128{1, 0}},
		{"real pair", []complex128{1, 2}, 1, []complex128{1, -3, 2}},
		{"conjugate pair", []complex128{complex(0.5, 0.5), complex(0.5, -0.5)}, 1, []complex128{1, -1, 0.5}},
		{"scaled", []complex128{-1}, 3, []complex128{3, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FromRoots(tc.roots, tc.scale)
			if len(got) != len(tc.want) {
				t.Fatalf("len=%d, want %d (%v)", len(got), len(tc.want), got)
			}
			for i := range got {
				if cmplx.Abs(got[i]-tc.want[i]) > 1e-12 {
					t.Fatalf("coeff[%d]=%v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestFromRoots_EvaluatesToZeroAtRoots(t *testing.T) {
	roots := []complex128{complex(0.9, 0.2), complex(-0.3, 0.7), 0.1, complex(1.2, -0.4)}
	coeff := FromRoots(roots, 1)

	for i, r := range roots {
		if v := PolyEval(coeff, r); cmplx.Abs(v) > 1e-12 {
			t.Errorf("root %d: p(%v)=%v, want ~0", i, r, v)
		}
	}
}

func TestDurandKerner_Quadratic(t *testing.T) {
	// z^2 - 3z + 2 = (z-1)(z-2), roots at 1 and 2
	coeff := []complex128{1, -3, 2}

	roots, err := DurandKerner(coeff)
	if err != nil {
		t.Fatal(err)
	}

	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}

	r := []float64{real(roots[0]), real(roots[1])}
	sort.Float64s(r)

	if !almostEqual(r[0], 1.0, 1e-10) || !almostEqual(r[1], 2.0, 1e-10) {
		t.Errorf("expected roots {1,2}, got %v", r)
	}
}

func TestDurandKerner_Linear(t *testing.T) {
	roots, err := DurandKerner([]complex128{2, -1})
	if err != nil {
		t.Fatal(err)
	}

	if len(roots) != 1 || cmplx.Abs(roots[0]-0.5) > 1e-15 {
		t.Fatalf("roots=%v, want [0.5]", roots)
	}
}

func TestDurandKerner_RecoversExpandedRoots(t *testing.T) {
	want := []complex128{complex(0.6, 0.6), complex(0.6, -0.6), -0.4, complex(0, 0.95)}
	roots, err := DurandKerner(FromRoots(want, 1))
	if err != nil {
		t.Fatal(err)
	}

	for _, w := range want {
		best := math.MaxFloat64
		for _, r := range roots {
			best = math.Min(best, cmplx.Abs(r-w))
		}
		if best > 1e-8 {
			t.Errorf("root %v not recovered (closest distance %v)", w, best)
		}
	}
}

func TestDurandKerner_Degenerate(t *testing.T) {
	if _, err := DurandKerner([]complex128{1}); err == nil {
		t.Error("expected error for constant polynomial")
	}

	if _, err := DurandKerner([]complex128{0, 1, 2}); err == nil {
		t.Error("expected error for zero leading coefficient")
	}
}

func TestPolyEval(t *testing.T) {
	// 2z^2 + 3z + 1 at z=2 = 15
	if got := PolyEval([]complex128{2, 3, 1}, 2); got != 15 {
		t.Errorf("got %v, want 15", got)
	}

	if got := PolyEval(nil, 3); got != 0 {
		t.Errorf("empty polynomial: got %v, want 0", got)
	}
}

func TestIsConjugate(t *testing.T) {
	if !IsConjugate(complex(1, 2), complex(1, -2), ConjugateTol) {
		t.Error("expected conjugates")
	}

	if IsConjugate(complex(1, 2), complex(1, 2), ConjugateTol) {
		t.Error("did not expect conjugates")
	}
}

func TestIsReal(t *testing.T) {
	pair := FromRoots([]complex128{complex(0.3, 0.8), complex(0.3, -0.8)}, 1)
	if !IsReal(pair, 1e-12) {
		t.Errorf("conjugate pair expansion should be real: %v", pair)
	}

	lone := FromRoots([]complex128{complex(0.3, 0.8)}, 1)
	if IsReal(lone, 1e-12) {
		t.Errorf("single complex root expansion should not be real: %v", lone)
	}
}
