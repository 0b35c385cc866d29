package zplane

import "math"

// NumPoles is the number of pole pairs per shape. Together with the
// matching cascade length this fixes the filter at 12th order.
const NumPoles = 6

// ReferenceRate is the sample rate (Hz) at which all shape data is
// defined. Poles are remapped from this domain to the operating rate via
// the bilinear transform.
const ReferenceRate = 48000.0

// PolePair is a complex-conjugate pole pair in polar form. R is the
// radius (0 <= R < 1 for a stable pole) and Theta the angle in radians,
// 2*pi*freq/sampleRate at the defining rate.
type PolePair struct {
	R     float64
	Theta float64
}

// IsStable reports whether the pole lies strictly inside the unit circle.
func (p PolePair) IsStable() bool {
	return p.R < 1
}

// FrequencyHz returns the resonance frequency the pole encodes at the
// given sample rate.
func (p PolePair) FrequencyHz(sampleRate float64) float64 {
	return math.Abs(p.Theta) / (2 * math.Pi) * sampleRate
}

// Shape is an ordered set of six pole pairs describing one timbral
// endpoint of a morph, defined at [ReferenceRate].
type Shape [NumPoles]PolePair
