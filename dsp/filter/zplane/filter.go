package zplane

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-zplane/dsp/filter/biquad"
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	calibration Calibration
	saturation  float64
}

func defaultConfig() config {
	cal := DefaultCalibration()

	return config{
		calibration: cal,
		saturation:  cal.Saturation,
	}
}

// WithCalibration replaces the default tuning profile.
func WithCalibration(cal Calibration) Option {
	return func(cfg *config) error {
		if err := cal.Validate(); err != nil {
			return err
		}

		cfg.calibration = cal
		cfg.saturation = cal.Saturation

		return nil
	}
}

// WithSaturation overrides the initial per-section soft-clip amount.
func WithSaturation(amt float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(amt) || amt < 0 || amt > 1 {
			return fmt.Errorf("zplane: saturation must be in [0, 1]: %f", amt)
		}

		cfg.saturation = amt

		return nil
	}
}

// Filter is the morphing Z-plane orchestrator. It owns one saturating
// biquad cascade per channel, the two shape endpoints, and a cache of the
// most recently generated poles for visualization.
//
// The two cascades share one coefficient computation but keep fully
// independent delay-line state, so stereo content stays decorrelated
// through the resonances.
type Filter struct {
	cascadeL *biquad.Cascade
	cascadeR *biquad.Cascade

	polesA [NumPoles]PolePair
	polesB [NumPoles]PolePair

	lastPoles [NumPoles]PolePair

	cal        Calibration
	sampleRate float64

	lastMorph     float64
	lastIntensity float64
}

// New constructs a filter morphing between shapeA and shapeB. The shapes
// are copied verbatim; both cascades start in unity passthrough with the
// configured saturation. Callers are responsible for supplying stable
// shape data (radius in [0, 1), finite angle); preset shapes always
// qualify.
func New(shapeA, shapeB Shape, opts ...Option) (*Filter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	f := &Filter{
		cascadeL:   biquad.NewCascade(),
		cascadeR:   biquad.NewCascade(),
		cal:        cfg.calibration,
		sampleRate: ReferenceRate,

		// NaN sentinels force the first UpdateCoeffs to compute even if
		// the caller passes the neutral values.
		lastMorph:     math.NaN(),
		lastIntensity: math.NaN(),
	}

	copy(f.polesA[:], shapeA[:])
	copy(f.polesB[:], shapeB[:])

	for i := range f.lastPoles {
		f.lastPoles[i] = PolePair{R: 0.5}
	}

	f.cascadeL.SetSaturation(cfg.saturation)
	f.cascadeR.SetSaturation(cfg.saturation)

	return f, nil
}

// SampleRate returns the active sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Calibration returns the tuning profile the filter was built with.
func (f *Filter) Calibration() Calibration { return f.cal }

// Prepare stores the operating sample rate, clears all cascade state and
// computes an initial coefficient set at neutral morph and intensity.
func (f *Filter) Prepare(sampleRate float64) error {
	if math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) || sampleRate <= 0 {
		return fmt.Errorf("zplane: sample rate must be > 0 and finite: %f", sampleRate)
	}

	f.sampleRate = sampleRate
	f.cascadeL.Reset()
	f.cascadeR.Reset()

	f.lastMorph = math.NaN()
	f.lastIntensity = math.NaN()
	f.UpdateCoeffs(0.5, f.cal.Intensity)

	return nil
}

// Reset clears the delay lines of both cascades. Coefficients, saturation
// and the pole cache are preserved.
func (f *Filter) Reset() {
	f.cascadeL.Reset()
	f.cascadeR.Reset()
}

// UpdateCoeffs regenerates the cascade coefficients from the morph and
// intensity controls. Both are clamped into [0, 1]; out-of-range values
// are never rejected.
//
// Call this at most once per processing block, before ProcessStereo for
// that block, on the processing goroutine. The call is allocation-free.
// When morph and intensity match the previously computed values the
// cascades already hold the right coefficients and the call returns
// immediately.
func (f *Filter) UpdateCoeffs(morph, intensity float64) {
	morph = clamp01(morph)
	intensity = clamp01(intensity)

	if morph == f.lastMorph && intensity == f.lastIntensity {
		return
	}

	f.lastMorph = morph
	f.lastIntensity = intensity

	boost := 1 + intensity*f.cal.IntensityScale

	for i := 0; i < NumPoles; i++ {
		// Interpolate in the 48 kHz reference domain, then remap to the
		// operating rate.
		p := InterpolatePole(f.polesA[i], f.polesB[i], morph, true)
		p = RemapPole(p, f.sampleRate)

		p.R = math.Min(p.R*boost, f.cal.MaxPoleRadius)

		f.lastPoles[i] = p

		coeffs := poleToBiquad(p, f.cal.ZeroPlacement)
		f.cascadeL.SetCoefficients(i, coeffs)
		f.cascadeR.SetCoefficients(i, coeffs)
	}
}

// ProcessStereo filters both channels in place with the current
// coefficients. drive and mix are clamped into [0, 1]. Each frame is
// soft-clipped by tanh with gain 1 + drive*DriveScale ahead of the
// cascade, then blended with the unprocessed input using equal-power
// weights: out = wet*sqrt(mix) + dry*sqrt(1-mix). The dry term is the
// true input, not the driven signal, so mix 0 is a genuine bypass.
//
// min(len(left), len(right)) frames are processed. Allocation-free and
// panic-free.
func (f *Filter) ProcessStereo(left, right []float64, drive, mix float64) {
	drive = clamp01(drive)
	mix = clamp01(mix)

	driveGain := 1 + drive*f.cal.DriveScale
	wetG := math.Sqrt(mix)
	dryG := math.Sqrt(1 - mix)

	n := len(left)
	if len(right) < n {
		n = len(right)
	}

	for i := 0; i < n; i++ {
		dryL := left[i]
		dryR := right[i]

		wetL := f.cascadeL.ProcessSample(math.Tanh(dryL * driveGain))
		wetR := f.cascadeR.ProcessSample(math.Tanh(dryR * driveGain))

		left[i] = wetL*wetG + dryL*dryG
		right[i] = wetR*wetG + dryR*dryG
	}
}

// ProcessMono filters a single channel in place through the left cascade
// with the same drive and mix semantics as ProcessStereo.
func (f *Filter) ProcessMono(buf []float64, drive, mix float64) {
	drive = clamp01(drive)
	mix = clamp01(mix)

	driveGain := 1 + drive*f.cal.DriveScale
	wetG := math.Sqrt(mix)
	dryG := math.Sqrt(1 - mix)

	for i, dry := range buf {
		wet := f.cascadeL.ProcessSample(math.Tanh(dry * driveGain))
		buf[i] = wet*wetG + dry*dryG
	}
}

// SetSaturation sets the soft-clip amount of every section in both
// cascades, clamped into [0, 1].
func (f *Filter) SetSaturation(amt float64) {
	f.cascadeL.SetSaturation(amt)
	f.cascadeR.SetSaturation(amt)
}

// LastPoles returns the six most recently generated poles, as cached by
// UpdateCoeffs. Intended for visualization; no side effects.
func (f *Filter) LastPoles() [NumPoles]PolePair {
	return f.lastPoles
}

// Morph returns the last morph value applied by UpdateCoeffs.
func (f *Filter) Morph() float64 { return f.lastMorph }

// Intensity returns the last intensity value applied by UpdateCoeffs.
func (f *Filter) Intensity() float64 { return f.lastIntensity }
