package allpass

import (
	"errors"
	"testing"
)

func TestParseComplex(t *testing.T) {
	tests := []struct {
		in   string
		want complex128
	}{
		{"1+1.2j", complex(1, 1.2)},
		{"1 + 1.2j", complex(1, 1.2)},
		{"-1.1 + 0.9j", complex(-1.1, 0.9)},
		{" -1.3+0.7J ", complex(-1.3, 0.7)},
		{"0.5 - 0.25j", complex(0.5, -0.25)},
		{"0.5", 0.5},
		{"2j", complex(0, 2)},
		{"(1-2j)", complex(1, -2)},
		{"1e-1+3e0j", complex(0.1, 3)},
		{"j", complex(0, 1)},
		{"-j", complex(0, -1)},
		{"1-j", complex(1, -1)},
		{"0.5 + J", complex(0.5, 1)},
		{"(2+j)", complex(2, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseComplex(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseComplex_Malformed(t *testing.T) {
	for _, in := range []string{"abc", "", "   ", "()", "1+2i", "1+2", "1+2jj", "j1", "1+1.2k", "1e-j"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseComplex(in); !errors.Is(err, ErrMalformedCoefficient) {
				t.Fatalf("err=%v, want ErrMalformedCoefficient", err)
			}
			if CanAdd(in) {
				t.Fatal("CanAdd must be false for malformed input")
			}
		})
	}
}

func TestParseCoefficient_RejectsZero(t *testing.T) {
	if _, err := ParseCoefficient("0+0j"); !errors.Is(err, ErrInvalidCoefficient) {
		t.Fatalf("err=%v, want ErrInvalidCoefficient", err)
	}
	if CanAdd("0") {
		t.Fatal("zero coefficient must not enable add")
	}
	if !CanAdd("1-j") {
		t.Fatal("implied unit imaginary part must enable add")
	}
	if !CanAdd("1 + 1.2j") {
		t.Fatal("valid coefficient must enable add")
	}
}

func TestFormat_RoundTrips(t *testing.T) {
	tests := []struct {
		in   complex128
		want string
	}{
		{complex(1, 1.2), "1 + 1.2j"},
		{complex(-1.1, 0.9), "-1.1 + 0.9j"},
		{complex(0.5, -0.25), "0.5 - 0.25j"},
		{complex(2, 0), "2 + 0j"},
	}

	for _, tc := range tests {
		got := Format(tc.in)
		if got != tc.want {
			t.Fatalf("Format(%v)=%q, want %q", tc.in, got, tc.want)
		}
		back, err := ParseComplex(got)
		if err != nil || back != tc.in {
			t.Fatalf("ParseComplex(%q)=%v, %v; want %v", got, back, err, tc.in)
		}
	}
}
