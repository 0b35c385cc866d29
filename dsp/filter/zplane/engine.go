package zplane

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-zplane/dsp/envelope"
)

const defaultEnvelopeAmount = 0.2

// EngineOption mutates engine construction.
type EngineOption func(*engineConfig) error

type engineConfig struct {
	morph     float64
	intensity float64
	drive     float64
	mix       float64
	envAmount float64

	filterOpts []Option
	envOpts    []envelope.Option
}

// WithMorph sets the base morph position in [0, 1].
func WithMorph(morph float64) EngineOption {
	return func(cfg *engineConfig) error {
		if err := validateUnit(morph, "morph"); err != nil {
			return err
		}

		cfg.morph = morph

		return nil
	}
}

// WithIntensity sets the resonance intensity in [0, 1].
func WithIntensity(intensity float64) EngineOption {
	return func(cfg *engineConfig) error {
		if err := validateUnit(intensity, "intensity"); err != nil {
			return err
		}

		cfg.intensity = intensity

		return nil
	}
}

// WithDrive sets the pre-filter drive in [0, 1].
func WithDrive(drive float64) EngineOption {
	return func(cfg *engineConfig) error {
		if err := validateUnit(drive, "drive"); err != nil {
			return err
		}

		cfg.drive = drive

		return nil
	}
}

// WithMix sets the equal-power dry/wet blend in [0, 1].
func WithMix(mix float64) EngineOption {
	return func(cfg *engineConfig) error {
		if err := validateUnit(mix, "mix"); err != nil {
			return err
		}

		cfg.mix = mix

		return nil
	}
}

// WithEnvelopeAmount sets how strongly the envelope pushes the morph
// position, in [0, 1].
func WithEnvelopeAmount(amount float64) EngineOption {
	return func(cfg *engineConfig) error {
		if err := validateUnit(amount, "envelope amount"); err != nil {
			return err
		}

		cfg.envAmount = amount

		return nil
	}
}

// WithFilterOptions forwards options to the underlying Filter.
func WithFilterOptions(opts ...Option) EngineOption {
	return func(cfg *engineConfig) error {
		cfg.filterOpts = append(cfg.filterOpts, opts...)
		return nil
	}
}

// WithEnvelopeOptions forwards options to the underlying envelope
// follower.
func WithEnvelopeOptions(opts ...envelope.Option) EngineOption {
	return func(cfg *engineConfig) error {
		cfg.envOpts = append(cfg.envOpts, opts...)
		return nil
	}
}

// Engine drives a Filter the way the original effect does: an envelope
// follower tracks the left input channel and pushes the morph position
// upward from its base value, coefficients regenerate once per block, and
// the block is then streamed through the stereo cascade.
type Engine struct {
	filter *Filter
	env    *envelope.Follower

	morph     float64
	intensity float64
	drive     float64
	mix       float64
	envAmount float64

	level float64
}

// NewEngine constructs an engine morphing between shapeA and shapeB at
// the given sample rate. Defaults follow the filter's calibration profile
// for intensity and drive, with full wet mix and a base morph of 0.5.
func NewEngine(sampleRate float64, shapeA, shapeB Shape, opts ...EngineOption) (*Engine, error) {
	cal := DefaultCalibration()

	cfg := engineConfig{
		morph:     0.5,
		intensity: cal.Intensity,
		drive:     cal.Drive,
		mix:       1,
		envAmount: defaultEnvelopeAmount,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	filter, err := New(shapeA, shapeB, cfg.filterOpts...)
	if err != nil {
		return nil, err
	}

	env, err := envelope.New(sampleRate, cfg.envOpts...)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		filter:    filter,
		env:       env,
		morph:     cfg.morph,
		intensity: cfg.intensity,
		drive:     cfg.drive,
		mix:       cfg.mix,
		envAmount: cfg.envAmount,
	}

	if err := filter.Prepare(sampleRate); err != nil {
		return nil, err
	}

	return e, nil
}

// Filter exposes the underlying orchestrator, e.g. for response plots.
func (e *Engine) Filter() *Filter { return e.filter }

// Level returns the envelope output after the most recent block, in
// [0, 1]. Useful for metering.
func (e *Engine) Level() float64 { return e.level }

// SetMorph sets the base morph position, clamped into [0, 1].
func (e *Engine) SetMorph(morph float64) { e.morph = clamp01(morph) }

// SetIntensity sets the resonance intensity, clamped into [0, 1].
func (e *Engine) SetIntensity(intensity float64) { e.intensity = clamp01(intensity) }

// SetDrive sets the pre-filter drive, clamped into [0, 1].
func (e *Engine) SetDrive(drive float64) { e.drive = clamp01(drive) }

// SetMix sets the dry/wet blend, clamped into [0, 1].
func (e *Engine) SetMix(mix float64) { e.mix = clamp01(mix) }

// SetEnvelopeAmount sets the morph modulation depth, clamped into [0, 1].
func (e *Engine) SetEnvelopeAmount(amount float64) { e.envAmount = clamp01(amount) }

// SetSaturation forwards to the filter's per-section saturation.
func (e *Engine) SetSaturation(amt float64) { e.filter.SetSaturation(amt) }

// Prepare re-targets the engine to a new sample rate, resetting all
// filter and detector state.
func (e *Engine) Prepare(sampleRate float64) error {
	if err := e.env.SetSampleRate(sampleRate); err != nil {
		return err
	}

	e.env.Reset()
	e.level = 0

	return e.filter.Prepare(sampleRate)
}

// Reset clears filter and envelope state without touching parameters.
func (e *Engine) Reset() {
	e.filter.Reset()
	e.env.Reset()
	e.level = 0
}

// ProcessBlock runs one block: the envelope tracks the unprocessed left
// channel, the morph position becomes clamp(base + level*amount, 0, 1),
// coefficients regenerate once, and both channels are filtered in place.
// Allocation-free.
func (e *Engine) ProcessBlock(left, right []float64) {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}

	e.level = e.env.ProcessBlock(left[:n])

	modMorph := clamp01(e.morph + e.level*e.envAmount)
	e.filter.UpdateCoeffs(modMorph, e.intensity)
	e.filter.ProcessStereo(left[:n], right[:n], e.drive, e.mix)
}

func validateUnit(v float64, name string) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("zplane: %s must be in [0, 1]: %f", name, v)
	}

	return nil
}
