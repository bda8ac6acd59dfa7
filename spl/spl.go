// Package spl converts between sound pressure in pascals and sound
// pressure level in dB SPL (20*log10 convention, 20 µPa reference).
package spl

import "math"

// ReferencePressure is the standard SPL reference of 20 µPa.
const ReferencePressure = 20e-6

// Pascal converts a level in dB SPL to RMS pressure in pascals.
func Pascal(db float64) float64 {
	return ReferencePressure * math.Pow(10, db/20)
}

// FromPascal converts an RMS pressure in pascals to dB SPL.
// Returns -Inf for zero and NaN for negative pressures.
func FromPascal(pa float64) float64 {
	if pa < 0 {
		return math.NaN()
	}

	if pa == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(pa/ReferencePressure)
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Level returns the level of a pressure waveform in dB SPL, computed from
// its RMS value. Returns -Inf for an all-zero or empty signal.
func Level(signal []float64) float64 {
	return FromPascal(RMS(signal))
}
