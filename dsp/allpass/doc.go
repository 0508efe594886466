// Package allpass provides first-order all-pass phase-correction sections.
//
// An all-pass section with coefficient a places a zero at a and a pole at
// 1/conj(a); its magnitude response is flat and only the phase changes.
// [Library] is a catalog of ready-made sections for preview, [Stages] is
// the active correction list pushed into a pole/zero model.
package allpass
