package zplane

import (
	"fmt"
	"math"
)

// Calibration bundles the hardware-derived tuning constants of the
// filter. Each Filter carries its own copy, so instances with different
// profiles can coexist; the values are read once at construction and
// never mutated afterwards.
type Calibration struct {
	// Intensity is the neutral resonance boost used by Prepare and by the
	// Engine when no explicit intensity is supplied.
	Intensity float64

	// Drive is the neutral pre-filter drive amount.
	Drive float64

	// Saturation is the initial per-section soft-clip amount.
	Saturation float64

	// MaxPoleRadius caps the boosted pole radius; poles at or above the
	// unit circle are unstable, and headroom below it keeps the recursion
	// bounded under single-precision hosts.
	MaxPoleRadius float64

	// ZeroPlacement positions section zeros at this fraction of the pole
	// radius. Larger values sharpen resonance, smaller values tame it.
	ZeroPlacement float64

	// IntensityScale converts the [0, 1] intensity control into a radius
	// multiplier, r *= 1 + intensity*IntensityScale.
	IntensityScale float64

	// DriveScale converts the [0, 1] drive control into tanh input gain,
	// g = 1 + drive*DriveScale.
	DriveScale float64

	// SaturationScale converts the per-section saturation amount into
	// tanh gain the same way.
	SaturationScale float64
}

// DefaultCalibration returns the profile measured from the original
// hardware units.
func DefaultCalibration() Calibration {
	return Calibration{
		Intensity:       0.4,
		Drive:           0.2,
		Saturation:      0.2,
		MaxPoleRadius:   0.995,
		ZeroPlacement:   0.9,
		IntensityScale:  0.06,
		DriveScale:      4.0,
		SaturationScale: 4.0,
	}
}

// Validate checks the calibration for values the filter cannot operate
// with.
func (c Calibration) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"intensity", c.Intensity},
		{"drive", c.Drive},
		{"saturation", c.Saturation},
		{"max pole radius", c.MaxPoleRadius},
		{"zero placement", c.ZeroPlacement},
		{"intensity scale", c.IntensityScale},
		{"drive scale", c.DriveScale},
		{"saturation scale", c.SaturationScale},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || f.value < 0 {
			return fmt.Errorf("zplane: calibration %s must be non-negative and finite: %f", f.name, f.value)
		}
	}

	if c.MaxPoleRadius >= 1 {
		return fmt.Errorf("zplane: calibration max pole radius must be < 1 for stability: %f", c.MaxPoleRadius)
	}

	if c.ZeroPlacement > 1 {
		return fmt.Errorf("zplane: calibration zero placement must be <= 1: %f", c.ZeroPlacement)
	}

	return nil
}
