// Package polyroot provides polynomial expansion, evaluation and
// root-finding utilities shared by the transfer-function packages.
//
// Coefficients are always in descending power order:
// coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// FromRoots expands scale * prod(z - roots[i]) into coefficients.
// An empty root set yields the constant polynomial {scale}.
func FromRoots(roots []complex128, scale complex128) []complex128 {
	coeff := make([]complex128, 1, len(roots)+1)
	coeff[0] = 1

	for _, r := range roots {
		coeff = append(coeff, 0)
		for i := len(coeff) - 1; i > 0; i-- {
			coeff[i] -= r * coeff[i-1]
		}
	}

	if scale != 1 {
		for i := range coeff {
			coeff[i] *= scale
		}
	}

	return coeff
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method.
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	if n == 1 {
		return []complex128{-norm[1]}, nil
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := PolyEval(norm, roots[i]) / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0
	for _, r := range roots {
		if res := cmplx.Abs(PolyEval(norm, r)); res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method.
func PolyEval(coeff []complex128, x complex128) complex128 {
	if len(coeff) == 0 {
		return 0
	}

	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}

// IsReal reports whether every coefficient is real within tol, relative to
// the largest coefficient magnitude. Root sets closed under conjugation
// expand to real polynomials up to rounding.
func IsReal(coeff []complex128, tol float64) bool {
	peak := 0.0
	for _, c := range coeff {
		if m := cmplx.Abs(c); m > peak {
			peak = m
		}
	}

	limit := tol * math.Max(1, peak)
	for _, c := range coeff {
		if math.Abs(imag(c)) > limit {
			return false
		}
	}

	return true
}
