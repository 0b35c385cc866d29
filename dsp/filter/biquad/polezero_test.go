package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestPoles_ConjugatePair(t *testing.T) {
	// Denominator built from r=0.9, theta=0.5 must root back to the same
	// conjugate pair.
	r, theta := 0.9, 0.5
	c := Coefficients{B0: 1, A1: -2 * r * math.Cos(theta), A2: r * r}

	poles := c.Poles()
	for i, p := range poles {
		if !almostEqual(cmplx.Abs(p), r, 1e-9) {
			t.Errorf("pole %d: |p| = %v, want %v", i, cmplx.Abs(p), r)
		}
		if !almostEqual(math.Abs(cmplx.Phase(p)), theta, 1e-9) {
			t.Errorf("pole %d: |arg| = %v, want %v", i, math.Abs(cmplx.Phase(p)), theta)
		}
	}

	if cmplx.Abs(poles[0]-cmplx.Conj(poles[1])) > 1e-9 {
		t.Fatalf("poles are not conjugates: %v, %v", poles[0], poles[1])
	}
}

func TestZeros_Passthrough(t *testing.T) {
	c := Passthrough()
	zeros := c.Zeros()
	if zeros != [2]complex128{} {
		t.Fatalf("passthrough zeros = %v, want none", zeros)
	}
}

func TestQuadraticRoots_Linear(t *testing.T) {
	// a=0 degenerates to a single root -c/b.
	roots := quadraticRoots(0, 2, -1)
	if !almostEqual(real(roots[0]), 0.5, eps) || imag(roots[0]) != 0 {
		t.Fatalf("linear root = %v, want 0.5", roots[0])
	}
}
