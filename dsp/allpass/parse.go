package allpass

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformedCoefficient is returned for text that is not a complex
// literal of the form "<real>[+|-]<imag>j".
var ErrMalformedCoefficient = errors.New("allpass: malformed coefficient")

// ErrInvalidCoefficient is returned for coefficients that parse but cannot
// form an all-pass section.
var ErrInvalidCoefficient = errors.New("allpass: invalid coefficient")

// ParseComplex parses a complex literal such as "1+1.2j" or "-1.1 + 0.9j".
// All whitespace is removed first. A bare real ("0.5") or bare imaginary
// ("2j") part is accepted, as are enclosing parentheses. The imaginary unit
// is written j or J; a bare unit ("j", "1-j") has coefficient 1.
func ParseComplex(s string) (complex128, error) {
	text := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	inner := strings.TrimSuffix(text, ")")
	if inner == "" {
		return 0, fmt.Errorf("%w: empty", ErrMalformedCoefficient)
	}
	switch inner[len(inner)-1] {
	case 'i', 'I':
		return 0, fmt.Errorf("%w: %q", ErrMalformedCoefficient, s)
	case 'j', 'J':
		idx := len(inner) - 1
		coeff := ""
		if impliedUnit(inner[:idx]) {
			coeff = "1"
		}
		text = text[:idx] + coeff + "i" + text[idx+1:]
	}

	v, err := strconv.ParseComplex(text, 128)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedCoefficient, s)
	}
	return v, nil
}

// impliedUnit reports whether the imaginary unit following prefix has no
// digits of its own. A sign after an exponent marker does not count.
func impliedUnit(prefix string) bool {
	n := len(prefix)
	if n == 0 {
		return true
	}
	switch prefix[n-1] {
	case '(':
		return true
	case '+', '-':
		return n == 1 || (prefix[n-2] != 'e' && prefix[n-2] != 'E')
	}
	return false
}

// ParseCoefficient parses text with [ParseComplex] and checks that the
// result can be used as an all-pass coefficient.
func ParseCoefficient(text string) (complex128, error) {
	a, err := ParseComplex(text)
	if err != nil {
		return 0, err
	}
	if err := Validate(a); err != nil {
		return 0, err
	}
	return a, nil
}

// Validate rejects coefficients without a finite reciprocal-conjugate pole.
func Validate(a complex128) error {
	if a == 0 || cmplx.IsInf(a) || cmplx.IsNaN(a) {
		return fmt.Errorf("%w: %v has no finite mirror pole", ErrInvalidCoefficient, a)
	}
	return nil
}

// CanAdd reports whether text is an acceptable coefficient. It drives the
// enabled state of an add action without surfacing an error.
func CanAdd(text string) bool {
	_, err := ParseCoefficient(text)
	return err == nil
}

// Format renders a coefficient as "<real> + <imag>j" or "<real> - <imag>j",
// a form accepted by [ParseComplex].
func Format(a complex128) string {
	re := strconv.FormatFloat(real(a), 'g', -1, 64)
	im := imag(a)
	sign := "+"
	if math.Signbit(im) {
		sign = "-"
		im = -im
	}
	return fmt.Sprintf("%s %s %sj", re, sign, strconv.FormatFloat(im, 'g', -1, 64))
}
