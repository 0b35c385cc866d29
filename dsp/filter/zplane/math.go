package zplane

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-zplane/dsp/filter/biquad"
)

const (
	// unitCircleClamp keeps remapped radii strictly off the unit circle so
	// the inverse bilinear transform stays well conditioned.
	unitCircleClamp = 0.999999

	// logRadiusFloor guards ln(0) during geodesic interpolation.
	logRadiusFloor = 1e-9

	// bilinearEpsilon is the singularity guard for both bilinear
	// denominators.
	bilinearEpsilon = 1e-12
)

// WrapAngle wraps a into [-pi, pi] by repeatedly adding or subtracting
// 2*pi, so angle deltas always describe the shortest arc. Both boundary
// values pass through unchanged; callers only feed the result to cos or
// scale it, so the two representations of the half turn are equivalent.
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}

	return a
}

// InterpolatePole blends two pole pairs at position t in [0, 1]
// (t is clamped before use).
//
// With geodesic true the radius follows the geometric mean
// exp((1-t)*ln(rA) + t*ln(rB)), which spaces resonance bandwidth evenly
// across the morph; the linear blend is audibly uneven and exists for
// comparison. The angle always takes the shortest wrapped arc from A to B.
func InterpolatePole(a, b PolePair, t float64, geodesic bool) PolePair {
	t = clamp01(t)

	var r float64
	if geodesic {
		lnA := math.Log(math.Max(a.R, logRadiusFloor))
		lnB := math.Log(math.Max(b.R, logRadiusFloor))
		r = math.Exp((1-t)*lnA + t*lnB)
	} else {
		r = a.R + t*(b.R-a.R)
	}

	delta := WrapAngle(b.Theta - a.Theta)

	return PolePair{R: r, Theta: a.Theta + t*delta}
}

// RemapPole re-maps a pole defined at [ReferenceRate] to targetFs while
// preserving the analog frequency it encodes, via an inverse-then-forward
// bilinear transform. Naive linear angle scaling would alias the upper
// resonances at high rates.
//
// Degenerate inputs degrade to the identity: rates within 0.1 Hz of the
// reference take a fast path, rates below 1 kHz and near-singular
// bilinear denominators return the pole unchanged.
func RemapPole(p PolePair, targetFs float64) PolePair {
	if math.Abs(targetFs-ReferenceRate) < 0.1 {
		return p
	}

	if targetFs < 1000 {
		return p
	}

	r := p.R
	if r > unitCircleClamp {
		r = unitCircleClamp
	} else if r < 0 {
		r = 0
	}

	z := cmplx.Rect(r, p.Theta)

	den := z + 1
	if cmplx.Abs(den) < bilinearEpsilon {
		return p
	}

	s := complex(2*ReferenceRate, 0) * (z - 1) / den

	denFwd := complex(2*targetFs, 0) - s
	if cmplx.Abs(denFwd) < bilinearEpsilon {
		return p
	}

	zNew := (complex(2*targetFs, 0) + s) / denFwd

	return PolePair{
		R:     math.Min(cmplx.Abs(zNew), unitCircleClamp),
		Theta: cmplx.Phase(zNew),
	}
}

// PoleToBiquad converts a pole pair into biquad coefficients using the
// default calibration's zero placement. See [Calibration.PoleToBiquad].
func PoleToBiquad(p PolePair) biquad.Coefficients {
	return poleToBiquad(p, DefaultCalibration().ZeroPlacement)
}

// poleToBiquad places the denominator at the conjugate pole pair and the
// zeros at zeroPlacement times the pole radius, then normalizes the
// numerator's absolute sum to bound the section gain. The 0.25 floor on
// the normalizer prevents divide-by-near-zero blowups when the numerator
// collapses.
func poleToBiquad(p PolePair, zeroPlacement float64) biquad.Coefficients {
	cosTheta := math.Cos(p.Theta)

	a1 := -2 * p.R * cosTheta
	a2 := p.R * p.R

	rz := zeroPlacement * p.R
	if rz < 0 {
		rz = 0
	} else if rz > 0.999 {
		rz = 0.999
	}

	b0 := 1.0
	b1 := -2 * rz * cosTheta
	b2 := rz * rz

	norm := 1 / math.Max(0.25, math.Abs(b0)+math.Abs(b1)+math.Abs(b2))

	return biquad.Coefficients{
		B0: b0 * norm,
		B1: b1 * norm,
		B2: b2 * norm,
		A1: a1,
		A2: a2,
	}
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
