// Package zplane holds the editable pole/zero set of a filter design.
//
// A [Model] owns ordered zero and pole [Pair] values plus a list of all-pass
// coefficients. Each pair is one logical point, optionally carrying its
// complex-conjugate mirror. The numerical view consumed by the zpk package
// is the flattened [Model.EffectiveZeros] and [Model.EffectivePoles].
//
// Every mutation notifies the registered listeners exactly once, after the
// mutation is complete.
package zplane
