package anm

import (
	"errors"
	"math"
)

// Errors returned by CF axis builders.
var (
	ErrCFOrder = errors.New("anm: low CF must be less than high CF")
	ErrCFCount = errors.New("anm: CF count must be >= 1")
	ErrCFRange = errors.New("anm: CFs must be positive")
)

// LogSpace returns n characteristic frequencies spaced logarithmically
// between lo and hi inclusive.
func LogSpace(lo, hi float64, n int) ([]float64, error) {
	if err := validateAxis(lo, hi, n); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out, nil
	}

	step := math.Log(hi/lo) / float64(n-1)
	for i := range out {
		out[i] = lo * math.Exp(float64(i)*step)
	}

	// Pin the endpoint exactly despite rounding in the exponential.
	out[n-1] = hi

	return out, nil
}

// ERBSpace returns n characteristic frequencies spaced uniformly on the
// ERB-number scale (Glasberg & Moore, 1990) between lo and hi inclusive.
//
// The ERB number of a frequency f in Hz is
//
//	E(f) = 21.4 * log10(4.37*f/1000 + 1)
//
// which matches the spacing of equivalent rectangular bandwidths along
// the cochlea and is the conventional CF axis for population responses.
func ERBSpace(lo, hi float64, n int) ([]float64, error) {
	if err := validateAxis(lo, hi, n); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out, nil
	}

	eLo := ERBNumber(lo)
	eHi := ERBNumber(hi)
	step := (eHi - eLo) / float64(n-1)

	for i := range out {
		out[i] = erbNumberInverse(eLo + float64(i)*step)
	}

	out[0] = lo
	out[n-1] = hi

	return out, nil
}

// ERBNumber converts a frequency in Hz to its ERB number.
func ERBNumber(freqHz float64) float64 {
	return 21.4 * math.Log10(4.37*freqHz/1000+1)
}

func erbNumberInverse(erb float64) float64 {
	return (math.Pow(10, erb/21.4) - 1) * 1000 / 4.37
}

func validateAxis(lo, hi float64, n int) error {
	if n < 1 {
		return ErrCFCount
	}

	if lo <= 0 || hi <= 0 {
		return ErrCFRange
	}

	if n > 1 && lo >= hi {
		return ErrCFOrder
	}

	return nil
}
