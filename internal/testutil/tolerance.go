package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t unless got and want have the same
// length and agree elementwise within eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireNearlyEqualRel fails t unless got is within relTol of want,
// measured relative to max(1, |want|). Suited to magnitude-spectrum
// comparisons where the expected values span several orders.
func RequireNearlyEqualRel(t *testing.T, got, want, relTol float64) {
	t.Helper()

	tol := relTol * math.Max(1, math.Abs(want))
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (diff %v > tol %v)", got, want, math.Abs(got-want), tol)
	}
}

// RequireFinite fails t if any sample in any of the given channels is
// NaN or Inf. Pass one buffer per channel.
func RequireFinite(t *testing.T, channels ...[]float64) {
	t.Helper()

	for ch, data := range channels {
		for i, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("channel %d index %d: non-finite value %v", ch, i, v)
			}
		}
	}
}

// MaxAbsDiff returns the largest elementwise absolute difference between
// a and b, failing t on a length mismatch.
func MaxAbsDiff(t *testing.T, a, b []float64) float64 {
	t.Helper()

	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff
}
