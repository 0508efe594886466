package signal

import (
	"math"
	"testing"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name  string
		input []float64
		want  Stats
	}{
		{
			name:  "square",
			input: []float64{1, -1, 1, -1},
			want:  Stats{Length: 4, DC: 0, RMS: 1, RMSdB: 0, Peak: 1, PeakdB: 0, CrestFactor: 1},
		},
		{
			name:  "dc",
			input: []float64{0.5, 0.5},
			want:  Stats{Length: 2, DC: 0.5, RMS: 0.5, RMSdB: 20 * math.Log10(0.5), Peak: 0.5, PeakdB: 20 * math.Log10(0.5), CrestFactor: 1},
		},
		{
			name:  "silence",
			input: []float64{0, 0, 0},
			want:  Stats{Length: 3, RMSdB: math.Inf(-1), PeakdB: math.Inf(-1)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Measure(tc.input)
			if got.Length != tc.want.Length {
				t.Fatalf("Length=%d, want %d", got.Length, tc.want.Length)
			}
			check := func(field string, g, w float64) {
				t.Helper()
				if math.IsInf(w, -1) {
					if !math.IsInf(g, -1) {
						t.Fatalf("%s=%v, want -Inf", field, g)
					}
					return
				}
				if math.Abs(g-w) > 1e-12 {
					t.Fatalf("%s=%v, want %v", field, g, w)
				}
			}
			check("DC", got.DC, tc.want.DC)
			check("RMS", got.RMS, tc.want.RMS)
			check("RMSdB", got.RMSdB, tc.want.RMSdB)
			check("Peak", got.Peak, tc.want.Peak)
			check("PeakdB", got.PeakdB, tc.want.PeakdB)
			check("CrestFactor", got.CrestFactor, tc.want.CrestFactor)
		})
	}
}

func TestMeasureEmpty(t *testing.T) {
	s := Measure(nil)
	if s.Length != 0 || !math.IsInf(s.RMSdB, -1) || !math.IsInf(s.PeakdB, -1) {
		t.Fatalf("Measure(nil)=%+v", s)
	}
	if RMS(nil) != 0 {
		t.Fatal("RMS(nil) should be 0")
	}
}
