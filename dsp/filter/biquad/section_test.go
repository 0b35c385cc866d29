package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// resonant returns coefficients for a complex-conjugate pole pair at
// radius 0.9, angle 0.5 rad, with a flat numerator.
func resonant() Coefficients {
	return Coefficients{B0: 1, A1: -2 * 0.9 * math.Cos(0.5), A2: 0.81}
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}
	st := s.State()
	if st != [2]float64{0, 0} {
		t.Fatalf("initial state not zero: %v", st)
	}
	if s.Saturation() != 0 {
		t.Fatalf("initial saturation = %v, want 0", s.Saturation())
	}
}

func TestProcessSample_Passthrough(t *testing.T) {
	s := NewSection(Passthrough())
	input := []float64{1, 0, -1, 0.5, 0.25}
	for i, x := range input {
		y := s.ProcessSample(x)
		if !almostEqual(y, x, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSample_DFIIT(t *testing.T) {
	// Hand-traced DF-II-T with specific coefficients:
	// B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04
	//
	// Step through with x = [1, 0, 0, 0]:
	//
	// n=0: y=0.25*1+0 = 0.25
	//      d0=0.5*1-(-0.2)*0.25+0 = 0.5+0.05 = 0.55
	//      d1=0.25*1-0.04*0.25 = 0.25-0.01 = 0.24
	//
	// n=1: y=0.25*0+0.55 = 0.55
	//      d0=0.5*0-(-0.2)*0.55+0.24 = 0.11+0.24 = 0.35
	//      d1=0.25*0-0.04*0.55 = -0.022
	//
	// n=2: y=0.25*0+0.35 = 0.35
	//      d0=0.5*0-(-0.2)*0.35+(-0.022) = 0.07-0.022 = 0.048
	//      d1=0.25*0-0.04*0.35 = -0.014
	//
	// n=3: y=0.25*0+0.048 = 0.048
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		y := s.ProcessSample(x)
		if !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestProcessSample_ImpulseDecays(t *testing.T) {
	s := NewSection(resonant())
	s.ProcessSample(1)

	peak := 0.0
	last := math.Inf(1)
	for i := 0; i < 1000; i++ {
		y := s.ProcessSample(0)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("sample %d: non-finite output %v", i, y)
		}
		if a := math.Abs(y); a > peak {
			peak = a
		}
		last = math.Abs(y)
	}

	if last >= peak*0.01 {
		t.Fatalf("impulse response did not decay: peak=%v last=%v", peak, last)
	}
}

func TestProcessSample_SaturationBound(t *testing.T) {
	for _, sat := range []float64{0.1, 0.5, 1.0} {
		s := NewSection(resonant())
		s.SetSaturation(sat)
		for _, x := range []float64{1e3, -1e3, 1e9, -1e9} {
			y := s.ProcessSample(x)
			if math.Abs(y) > 1 {
				t.Errorf("sat=%v input=%v: |output| = %v, want <= 1", sat, x, math.Abs(y))
			}
		}
	}
}

func TestProcessSample_NonFiniteCoercedToZero(t *testing.T) {
	// An unstable denominator with huge feedback drives the recursion to
	// overflow; the output must be pinned to 0 rather than going Inf/NaN.
	s := NewSection(Coefficients{B0: 1, A1: -1e308, A2: 1e308})
	s.ProcessSample(1)

	for i := 0; i < 16; i++ {
		y := s.ProcessSample(1)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("sample %d: non-finite output %v", i, y)
		}
	}
}

func TestSetSaturation_Clamped(t *testing.T) {
	s := NewSection(Passthrough())

	s.SetSaturation(2)
	if s.Saturation() != 1 {
		t.Errorf("SetSaturation(2): got %v, want 1", s.Saturation())
	}

	s.SetSaturation(-0.5)
	if s.Saturation() != 0 {
		t.Errorf("SetSaturation(-0.5): got %v, want 0", s.Saturation())
	}

	s.SetSaturation(math.NaN())
	if s.Saturation() != 0 {
		t.Errorf("SetSaturation(NaN): got %v, want 0", s.Saturation())
	}
}

func TestReset_ClearsStateOnly(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)
	s.SetSaturation(0.3)
	s.ProcessSample(1)
	s.ProcessSample(0.5)

	if s.State() == [2]float64{0, 0} {
		t.Fatal("state should be non-zero before reset")
	}

	s.Reset()

	if s.State() != [2]float64{0, 0} {
		t.Fatalf("state not cleared: %v", s.State())
	}
	if s.Coefficients != c {
		t.Fatalf("reset must not touch coefficients: got %v", s.Coefficients)
	}
	if s.Saturation() != 0.3 {
		t.Fatalf("reset must not touch saturation: got %v", s.Saturation())
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

	ref := NewSection(c)
	ref.SetSaturation(0.4)
	blk := NewSection(c)
	blk.SetSaturation(0.4)

	buf := make([]float64, 64)
	want := make([]float64, 64)
	for i := range buf {
		buf[i] = math.Sin(0.1 * float64(i))
		want[i] = ref.ProcessSample(buf[i])
	}

	blk.ProcessBlock(buf)

	for i := range buf {
		if !almostEqual(buf[i], want[i], eps) {
			t.Fatalf("sample %d: got %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	s := NewSection(resonant())
	s.ProcessSample(1)
	s.ProcessSample(-0.5)

	saved := s.State()
	a := s.ProcessSample(0.25)

	s.SetState(saved)
	b := s.ProcessSample(0.25)

	if !almostEqual(a, b, eps) {
		t.Fatalf("restored state diverges: %v vs %v", a, b)
	}
}
