package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// RateSpectrum returns the one-sided amplitude spectrum of a firing-rate
// waveform, Hann-windowed and zero-padded to the next power of two.
//
// mags[i] is the amplitude at freqs[i] = i*fs/fftSize in the same units
// as the rate; the window's coherent gain is compensated so a pure
// modulation component recovers its time-domain amplitude. Used by the
// phase-locking demos to show harmonic structure of the driven rate.
func RateSpectrum(rate []float64, sampleRate float64) (mags, freqs []float64, err error) {
	if len(rate) == 0 {
		return nil, nil, ErrEmptyRate
	}

	if sampleRate <= 0 {
		return nil, nil, ErrInvalidSampleRate
	}

	fftSize := nextPowerOf2(len(rate))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, nil, fmt.Errorf("analysis: failed to create FFT plan: %w", err)
	}

	win := hann(len(rate))

	var winSum float64
	for _, w := range win {
		winSum += w
	}

	in := make([]complex128, fftSize)
	for i, r := range rate {
		in[i] = complex(r*win[i], 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("analysis: forward FFT failed: %w", err)
	}

	binCount := fftSize/2 + 1
	mags = make([]float64, binCount)
	freqs = make([]float64, binCount)

	for i := 0; i < binCount; i++ {
		scale := 2 / winSum
		if i == 0 || i == fftSize/2 {
			scale = 1 / winSum
		}

		mags[i] = cmplx.Abs(out[i]) * scale
		freqs[i] = float64(i) * sampleRate / float64(fftSize)
	}

	return mags, freqs, nil
}

// hann returns a symmetric Hann window of length n.
func hann(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}

	den := float64(n - 1)
	for i := range out {
		out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/den)
	}

	return out
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
