package zplane

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-zplane/dsp/filter/biquad"
)

// maxFFTSize bounds ImpulseSpectrum requests; beyond this the rounding
// in nextPowerOf2 would overflow and the allocation is absurd anyway.
const maxFFTSize = 1 << 30

// Response returns the linear complex frequency response of the current
// coefficient set at freqHz. It is derived from the left cascade; both
// channels share one coefficient set, so the right channel is identical.
// Per-section saturation is a nonlinearity and is not reflected.
func (f *Filter) Response(freqHz float64) complex128 {
	return f.cascadeL.Response(freqHz, f.sampleRate)
}

// MagnitudeDB returns the cascaded magnitude response in dB at freqHz.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	return f.cascadeL.MagnitudeDB(freqHz, f.sampleRate)
}

// MagnitudeGrid evaluates |H(f)| across freqs into dst. Both slices must
// have the same length. The final magnitude pass runs through SIMD
// kernels when available.
//
// This helper allocates scratch space and belongs on an analysis or UI
// path, not the audio thread.
func (f *Filter) MagnitudeGrid(dst, freqs []float64) error {
	if len(dst) != len(freqs) {
		return fmt.Errorf("zplane: dst length %d != freqs length %d", len(dst), len(freqs))
	}

	if len(freqs) == 0 {
		return nil
	}

	re := make([]float64, len(freqs))
	im := make([]float64, len(freqs))
	for i, freq := range freqs {
		h := f.cascadeL.Response(freq, f.sampleRate)
		re[i] = real(h)
		im[i] = imag(h)
	}

	vecmath.Magnitude(dst, re, im)

	return nil
}

// ImpulseSpectrum measures the linear transfer function by running a unit
// impulse through a clean copy of the current coefficient set and taking
// the FFT of the response. It returns the magnitudes of the first
// fftSize/2+1 bins; bin k corresponds to k*sampleRate/fftSize Hz.
//
// fftSize is rounded up to the next power of two and must be in
// [2, 1<<30]. Saturation is deliberately excluded so the result is the
// transfer function, not a distortion snapshot. Allocates; not for the
// audio thread.
func (f *Filter) ImpulseSpectrum(fftSize int) ([]float64, error) {
	if fftSize < 2 || fftSize > maxFFTSize {
		return nil, fmt.Errorf("zplane: fft size must be in [2, %d]: %d", maxFFTSize, fftSize)
	}

	fftSize = nextPowerOf2(fftSize)

	// Clean cascade: same coefficients, zero state, no saturation.
	probe := biquad.NewCascade()
	for i := 0; i < biquad.NumSections; i++ {
		probe.SetCoefficients(i, f.cascadeL.Section(i).Coefficients)
	}

	impulse := make([]float64, fftSize)
	impulse[0] = 1
	probe.ProcessBlock(impulse)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("zplane: failed to create FFT plan: %w", err)
	}

	timeDomain := make([]complex128, fftSize)
	for i, v := range impulse {
		timeDomain[i] = complex(v, 0)
	}

	freqDomain := make([]complex128, fftSize)
	if err := plan.Forward(freqDomain, timeDomain); err != nil {
		return nil, fmt.Errorf("zplane: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(freqDomain[i])
		im[i] = imag(freqDomain[i])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)

	return out, nil
}

// PeakFrequencyHz scans the magnitude response over (0, Nyquist) with the
// given number of points and returns the frequency of the largest
// response. Useful for labeling presets; allocation-free.
func (f *Filter) PeakFrequencyHz(points int) float64 {
	if points < 2 {
		points = 2
	}

	nyquist := f.sampleRate / 2
	best := 0.0
	bestMag := math.Inf(-1)

	for i := 1; i < points; i++ {
		freq := nyquist * float64(i) / float64(points)
		mag := cmplx.Abs(f.cascadeL.Response(freq, f.sampleRate))
		if mag > bestMag {
			bestMag = mag
			best = freq
		}
	}

	return best
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
