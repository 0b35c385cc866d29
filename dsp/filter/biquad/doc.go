// Package biquad provides the second-order IIR runtime for the Z-plane
// filter engine.
//
// A [Section] implements Direct Form II Transposed processing with optional
// per-section tanh saturation. Six sections are chained in fixed order by a
// [Cascade], forming the 12th-order recursive structure the morphing filter
// drives. Coefficient generation from pole positions lives in
// dsp/filter/zplane; this package is the signal path only.
package biquad
