// Package zpk evaluates filters given in zero/pole/gain form.
//
// A filter is described by its zeros z_i, poles p_i and a scalar gain k:
//
//	H(z) = k * prod(z - z_i) / prod(z - p_i)
//
// [FrequencyResponse] samples H on the upper half of the unit circle.
// [Filter] expands the roots into numerator/denominator polynomials and runs
// the resulting difference equation over a signal with zero initial
// conditions. [TransferFunction] exposes the expanded polynomials directly.
//
// All functions are pure and safe for concurrent use.
package zpk
