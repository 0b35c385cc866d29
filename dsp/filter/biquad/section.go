package biquad

import "math"

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Passthrough returns unity-gain coefficients (B0=1, all else 0).
func Passthrough() Coefficients {
	return Coefficients{B0: 1}
}

// Section is a single biquad filter with coefficients, internal state and
// an optional per-section saturation stage. It implements Direct Form II
// Transposed processing.
type Section struct {
	Coefficients

	d0, d1     float64
	saturation float64
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
//
// If the saturation amount is non-zero, the output passes through a tanh
// soft clipper with gain 1 + saturation*4. A non-finite result (possible
// under extreme coefficient combinations) is coerced to 0 so the recursion
// cannot propagate NaN or Inf downstream.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	if s.saturation > 0 {
		y = math.Tanh(y * (1 + s.saturation*4))
	}

	if math.IsNaN(y) || math.IsInf(y, 0) {
		y = 0
	}

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// Reset clears the delay line to zero. Coefficients and saturation are
// left untouched.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// SetSaturation sets the soft-clip amount, clamped into [0, 1].
func (s *Section) SetSaturation(amt float64) {
	if amt < 0 || math.IsNaN(amt) {
		amt = 0
	} else if amt > 1 {
		amt = 1
	}

	s.saturation = amt
}

// Saturation returns the current soft-clip amount.
func (s *Section) Saturation() float64 { return s.saturation }

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}
