package envelope

import (
	"fmt"
	"math"
)

const (
	defaultAttackMs  = 0.489
	defaultReleaseMs = 80.0
	defaultDepth     = 0.75

	minTimeMs = 0.001
	maxTimeMs = 10000.0
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	attackMs  float64
	releaseMs float64
	depth     float64
}

func defaultConfig() config {
	return config{
		attackMs:  defaultAttackMs,
		releaseMs: defaultReleaseMs,
		depth:     defaultDepth,
	}
}

// WithAttackMs sets the attack time constant in milliseconds.
func WithAttackMs(ms float64) Option {
	return func(cfg *config) error {
		if err := validateTimeMs(ms, "attack"); err != nil {
			return err
		}

		cfg.attackMs = ms

		return nil
	}
}

// WithReleaseMs sets the release time constant in milliseconds.
func WithReleaseMs(ms float64) Option {
	return func(cfg *config) error {
		if err := validateTimeMs(ms, "release"); err != nil {
			return err
		}

		cfg.releaseMs = ms

		return nil
	}
}

// WithDepth sets the output scaling in [0, 1].
func WithDepth(depth float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(depth) || depth < 0 || depth > 1 {
			return fmt.Errorf("envelope: depth must be in [0, 1]: %f", depth)
		}

		cfg.depth = depth

		return nil
	}
}

// Follower is a one-pole attack/release amplitude detector.
//
// Per sample it rectifies the input, moves the internal state toward the
// rectified level with the attack coefficient when rising and the release
// coefficient when falling, and returns the state scaled by depth and
// clamped to [0, 1].
type Follower struct {
	sampleRate float64

	attackMs  float64
	releaseMs float64
	depth     float64

	attackCoef  float64
	releaseCoef float64
	state       float64
}

// New constructs a follower at the given sample rate.
func New(sampleRate float64, opts ...Option) (*Follower, error) {
	if err := validateSampleRate(sampleRate); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	f := &Follower{
		sampleRate: sampleRate,
		attackMs:   cfg.attackMs,
		releaseMs:  cfg.releaseMs,
		depth:      cfg.depth,
	}
	f.updateCoefficients()

	return f, nil
}

// SampleRate returns the sample rate in Hz.
func (f *Follower) SampleRate() float64 { return f.sampleRate }

// AttackMs returns the attack time constant in milliseconds.
func (f *Follower) AttackMs() float64 { return f.attackMs }

// ReleaseMs returns the release time constant in milliseconds.
func (f *Follower) ReleaseMs() float64 { return f.releaseMs }

// Depth returns the output scaling factor.
func (f *Follower) Depth() float64 { return f.depth }

// State returns the raw (unscaled) detector state.
func (f *Follower) State() float64 { return f.state }

// SetSampleRate updates the sample rate and recomputes coefficients.
func (f *Follower) SetSampleRate(sampleRate float64) error {
	if err := validateSampleRate(sampleRate); err != nil {
		return err
	}

	f.sampleRate = sampleRate
	f.updateCoefficients()

	return nil
}

// SetAttackMs updates the attack time and recomputes coefficients.
func (f *Follower) SetAttackMs(ms float64) error {
	if err := validateTimeMs(ms, "attack"); err != nil {
		return err
	}

	f.attackMs = ms
	f.updateCoefficients()

	return nil
}

// SetReleaseMs updates the release time and recomputes coefficients.
func (f *Follower) SetReleaseMs(ms float64) error {
	if err := validateTimeMs(ms, "release"); err != nil {
		return err
	}

	f.releaseMs = ms
	f.updateCoefficients()

	return nil
}

// SetDepth updates the output scaling, clamped into [0, 1]. Unlike the
// time constants this never recomputes coefficients, so it is cheap to
// call from the audio thread.
func (f *Follower) SetDepth(depth float64) {
	if math.IsNaN(depth) || depth < 0 {
		depth = 0
	} else if depth > 1 {
		depth = 1
	}

	f.depth = depth
}

// Reset clears the detector state.
func (f *Follower) Reset() {
	f.state = 0
}

// ProcessSample advances the detector by one sample and returns the
// depth-scaled envelope in [0, 1].
func (f *Follower) ProcessSample(x float64) float64 {
	rect := math.Abs(x)

	alpha := f.releaseCoef
	if rect > f.state {
		alpha = f.attackCoef
	}

	f.state += alpha * (rect - f.state)

	out := f.state * f.depth
	if out < 0 {
		return 0
	}
	if out > 1 {
		return 1
	}

	return out
}

// ProcessBlock advances the detector across buf and returns the envelope
// value after the final sample. The buffer is not modified.
func (f *Follower) ProcessBlock(buf []float64) float64 {
	out := math.Min(math.Max(f.state*f.depth, 0), 1)
	for _, x := range buf {
		out = f.ProcessSample(x)
	}

	return out
}

func (f *Follower) updateCoefficients() {
	attackSec := math.Max(f.attackMs*0.001, 1e-6)
	releaseSec := math.Max(f.releaseMs*0.001, 1e-6)

	f.attackCoef = 1 - math.Exp(-1/(attackSec*f.sampleRate))
	f.releaseCoef = 1 - math.Exp(-1/(releaseSec*f.sampleRate))
}

func validateSampleRate(sampleRate float64) error {
	if math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) || sampleRate <= 0 {
		return fmt.Errorf("envelope: sample rate must be > 0 and finite: %f", sampleRate)
	}

	return nil
}

func validateTimeMs(ms float64, name string) error {
	if math.IsNaN(ms) || ms < minTimeMs || ms > maxTimeMs {
		return fmt.Errorf("envelope: %s must be in [%g, %g] ms: %f", name, minTimeMs, maxTimeMs, ms)
	}

	return nil
}
