// Package testutil holds shared helpers for package tests: tolerance
// assertions and deterministic rate/pressure builders.
package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}

// ModulatedRate returns a nonnegative rate waveform mean*(1+depth*cos(2*pi*f0*t)),
// the canonical phase-locked firing pattern for vector strength tests.
func ModulatedRate(mean, depth, f0, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * f0 / sampleRate

	for i := range out {
		out[i] = mean * (1 + depth*math.Cos(step*float64(i)))
	}

	return out
}
