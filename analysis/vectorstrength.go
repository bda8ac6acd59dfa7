package analysis

import "math"

// VectorStrength returns the phase-locking strength of a firing-rate
// waveform at frequency f0.
//
// It is the magnitude of the rate's Fourier component at f0 divided by
// its DC component:
//
//	VS = |sum_k r[k] * exp(-i*2*pi*f0*k/fs)| / sum_k r[k]
//
// A rate perfectly modulated as 1+cos(2*pi*f0*t) gives 0.5 over an
// integer number of cycles; a constant rate gives 0. Returns 0 for an
// all-zero rate, where the measure is undefined.
func VectorStrength(rate []float64, sampleRate, f0 float64) (float64, error) {
	if len(rate) == 0 {
		return 0, ErrEmptyRate
	}

	if sampleRate <= 0 {
		return 0, ErrInvalidSampleRate
	}

	if f0 <= 0 {
		return 0, ErrInvalidFrequency
	}

	step := 2 * math.Pi * f0 / sampleRate

	var sumRe, sumIm, sum float64

	for i, r := range rate {
		theta := step * float64(i)
		sumRe += r * math.Cos(theta)
		sumIm -= r * math.Sin(theta)
		sum += r
	}

	if sum == 0 {
		return 0, nil
	}

	return math.Hypot(sumRe, sumIm) / sum, nil
}
