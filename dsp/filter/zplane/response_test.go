package zplane

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-zplane/internal/testutil"
)

func TestFilter_ResponseMatchesMagnitudeDB(t *testing.T) {
	f := newTestFilter(t)
	f.UpdateCoeffs(0.3, 0.6)

	for _, freq := range []float64{50, 200, 1000, 5000, 15000} {
		mag := cmplx.Abs(f.Response(freq))
		wantDB := 20 * math.Log10(mag)

		if got := f.MagnitudeDB(freq); !almostEqual(got, wantDB, 1e-9) {
			t.Errorf("freq %v: MagnitudeDB = %v, want %v", freq, got, wantDB)
		}
	}
}

func TestFilter_MagnitudeGrid(t *testing.T) {
	f := newTestFilter(t)
	f.UpdateCoeffs(0.7, 0.4)

	freqs := []float64{20, 100, 440, 1000, 4000, 12000, 20000}
	got := make([]float64, len(freqs))

	if err := f.MagnitudeGrid(got, freqs); err != nil {
		t.Fatalf("MagnitudeGrid: %v", err)
	}

	for i, freq := range freqs {
		want := cmplx.Abs(f.Response(freq))
		if !almostEqual(got[i], want, 1e-9) {
			t.Errorf("freq %v: grid magnitude %v, want %v", freq, got[i], want)
		}
	}
}

func TestFilter_MagnitudeGridLengthMismatch(t *testing.T) {
	f := newTestFilter(t)

	if err := f.MagnitudeGrid(make([]float64, 3), make([]float64, 4)); err == nil {
		t.Error("expected length mismatch error")
	}

	if err := f.MagnitudeGrid(nil, nil); err != nil {
		t.Errorf("empty grid: %v", err)
	}
}

func TestFilter_ImpulseSpectrum(t *testing.T) {
	f := newTestFilter(t)
	f.UpdateCoeffs(0.5, 0.5)

	const size = 4096
	spec, err := f.ImpulseSpectrum(size)
	if err != nil {
		t.Fatalf("ImpulseSpectrum: %v", err)
	}

	if len(spec) != size/2+1 {
		t.Fatalf("len = %d, want %d", len(spec), size/2+1)
	}

	// The FFT of the truncated impulse response must agree with the
	// closed-form transfer function; the residual tail of a pole at
	// radius 0.995 is negligible after 4096 samples.
	fs := f.SampleRate()
	for _, bin := range []int{0, 1, 16, 128, 1024, size / 2} {
		want := cmplx.Abs(f.Response(float64(bin) * fs / size))
		testutil.RequireNearlyEqualRel(t, spec[bin], want, 1e-3)
	}
}

func TestFilter_ImpulseSpectrumRoundsUp(t *testing.T) {
	f := newTestFilter(t)

	spec, err := f.ImpulseSpectrum(100)
	if err != nil {
		t.Fatalf("ImpulseSpectrum: %v", err)
	}

	if len(spec) != 128/2+1 {
		t.Errorf("len = %d, want %d after rounding 100 up to 128", len(spec), 128/2+1)
	}
}

func TestFilter_ImpulseSpectrumRejectsBadSizes(t *testing.T) {
	f := newTestFilter(t)

	// Oversized requests must error out rather than overflow the
	// power-of-two rounding.
	for _, size := range []int{-1, 0, 1, 1<<30 + 1, math.MaxInt} {
		if _, err := f.ImpulseSpectrum(size); err == nil {
			t.Errorf("size %d: expected error", size)
		}
	}
}

func TestFilter_PeakFrequencyHz(t *testing.T) {
	f := newTestFilter(t)
	f.UpdateCoeffs(0, 1)

	peak := f.PeakFrequencyHz(2048)
	nyquist := f.SampleRate() / 2

	if peak <= 0 || peak >= nyquist {
		t.Fatalf("peak %v Hz outside (0, %v)", peak, nyquist)
	}

	// At morph 0 the response is VowelA's; its strongest resonances sit
	// below 4 kHz.
	if peak > 4000 {
		t.Errorf("peak %v Hz, want a low-frequency formant", peak)
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{100, 128},
		{1024, 1024},
		{1025, 2048},
	}

	for _, tt := range tests {
		if got := nextPowerOf2(tt.in); got != tt.want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
