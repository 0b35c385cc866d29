package biquad

// NumSections is the fixed number of second-order sections in a [Cascade],
// giving a 12th-order recursive structure.
const NumSections = 6

// Cascade is a fixed-order series of six biquad sections. The section
// order is significant: with per-section saturation enabled the chain is
// not commutative, because each clipper shapes the harmonic content the
// following sections see.
type Cascade struct {
	sections [NumSections]Section
}

// NewCascade returns a cascade with every section in unity passthrough
// and zero state.
func NewCascade() *Cascade {
	c := &Cascade{}
	for i := range c.sections {
		c.sections[i].Coefficients = Passthrough()
	}

	return c
}

// ProcessSample cascades the input through all sections in fixed order.
func (c *Cascade) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Cascade) ProcessBlock(buf []float64) {
	for i := range buf {
		buf[i] = c.ProcessSample(buf[i])
	}
}

// Reset clears all section delay lines. Coefficients are preserved.
func (c *Cascade) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// SetCoefficients replaces the coefficients of section i, preserving its
// delay-line state so a running filter glides rather than clicks.
func (c *Cascade) SetCoefficients(i int, coeffs Coefficients) {
	c.sections[i].Coefficients = coeffs
}

// SetSaturation sets the soft-clip amount of every section uniformly.
func (c *Cascade) SetSaturation(amt float64) {
	for i := range c.sections {
		c.sections[i].SetSaturation(amt)
	}
}

// Section returns a pointer to the i-th section for inspection or
// modification.
func (c *Cascade) Section(i int) *Section {
	return &c.sections[i]
}

// Order returns the total filter order (2 per section).
func (c *Cascade) Order() int {
	return 2 * NumSections
}
