package stim

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Envelope returns a raised-cosine onset/offset gain envelope of length n.
//
// The first round(rampDur*sampleRate) samples rise from 0 following the
// first half of a symmetric Hann window of length 2*round(rampDur*sampleRate);
// the last as many samples are the exact mirror (time reversal) of the
// rising segment; everything in between is 1. A rampDur of 0 yields the
// identity envelope (all ones).
func Envelope(rampDur, sampleRate float64, n int) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	if rampDur < 0 {
		return nil, ErrInvalidRampDuration
	}

	nRamp := int(math.Round(rampDur * sampleRate))
	if 2*nRamp > n {
		return nil, ErrRampTooLong
	}

	env := make([]float64, n)
	for i := range env {
		env[i] = 1
	}

	if nRamp == 0 {
		return env, nil
	}

	// First half of a 2*nRamp-point symmetric Hann window. The mirrored
	// falling segment shares the exact same values, so the envelope is
	// symmetric sample for sample.
	den := float64(2*nRamp - 1)
	for k := 0; k < nRamp; k++ {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(k)/den)
		env[k] = w
		env[n-1-k] = w
	}

	return env, nil
}

// Ramp applies a raised-cosine onset/offset envelope to signal and returns
// a new slice. The input is left untouched.
func Ramp(signal []float64, rampDur, sampleRate float64) ([]float64, error) {
	env, err := Envelope(rampDur, sampleRate, len(signal))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(signal))
	vecmath.MulBlock(out, signal, env)

	return out, nil
}

// RampInPlace applies a raised-cosine onset/offset envelope to signal in place.
func RampInPlace(signal []float64, rampDur, sampleRate float64) error {
	env, err := Envelope(rampDur, sampleRate, len(signal))
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(signal, env)

	return nil
}

// RampMatrix applies the ramp to a signal stored as a 1xN (row) or Nx1
// (column) matrix and returns a matrix of the same orientation. Any other
// shape fails with ErrNotVector; orientation has no effect on the values.
func RampMatrix(signal [][]float64, rampDur, sampleRate float64) ([][]float64, error) {
	rows := len(signal)
	if rows == 0 {
		return nil, ErrNotVector
	}

	cols := len(signal[0])
	for _, r := range signal {
		if len(r) != cols {
			return nil, ErrNotVector
		}
	}

	switch {
	case rows == 1:
		ramped, err := Ramp(signal[0], rampDur, sampleRate)
		if err != nil {
			return nil, err
		}

		return [][]float64{ramped}, nil
	case cols == 1:
		flat := make([]float64, rows)
		for i := range signal {
			flat[i] = signal[i][0]
		}

		ramped, err := Ramp(flat, rampDur, sampleRate)
		if err != nil {
			return nil, err
		}

		out := make([][]float64, rows)
		for i, v := range ramped {
			out[i] = []float64{v}
		}

		return out, nil
	default:
		return nil, ErrNotVector
	}
}
