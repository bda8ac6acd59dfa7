// Package anm defines the boundary to an external auditory-nerve model.
//
// The model itself (basilar-membrane filtering, inner-hair-cell
// transduction, synapse adaptation) lives outside this repository. This
// package only fixes the input/output contract: a pressure waveform in
// pascals plus a set of characteristic frequencies in, per-fiber
// inner-hair-cell and firing-rate waveforms out.
package anm

import "errors"

// Errors returned when driving a model.
var (
	ErrEmptyPressure     = errors.New("anm: pressure waveform must not be empty")
	ErrNoCFs             = errors.New("anm: at least one characteristic frequency is required")
	ErrNilModel          = errors.New("anm: model must not be nil")
	ErrInvalidSampleRate = errors.New("anm: sample rate must be positive")
)

// Response holds the per-fiber output of one simulation run.
//
// IHC and Rate are indexed [cf][sample]: one row per characteristic
// frequency, each row as long as the input pressure waveform.
type Response struct {
	SampleRate float64     // Hz
	CFs        []float64   // characteristic frequencies, Hz
	IHC        [][]float64 // inner-hair-cell potential per CF
	Rate       [][]float64 // instantaneous firing rate per CF, spikes/s
}

// Model is an auditory-periphery simulation consumed as an opaque function.
type Model interface {
	Simulate(pressure []float64, sampleRate float64, cfs []float64) (*Response, error)
}

// ModelFunc adapts a plain function to the Model interface.
type ModelFunc func(pressure []float64, sampleRate float64, cfs []float64) (*Response, error)

// Simulate calls f.
func (f ModelFunc) Simulate(pressure []float64, sampleRate float64, cfs []float64) (*Response, error) {
	return f(pressure, sampleRate, cfs)
}

// ValidateInput checks the common preconditions shared by model wrappers.
func ValidateInput(pressure []float64, cfs []float64) error {
	if len(pressure) == 0 {
		return ErrEmptyPressure
	}

	if len(cfs) == 0 {
		return ErrNoCFs
	}

	return nil
}
