// Package anmtest provides a deterministic stand-in for the external
// auditory-nerve model, for tests and demos that exercise the driving and
// analysis code without the real simulation.
package anmtest

import (
	"math"

	"github.com/guestdaniel/anm-demos/anm"
)

// Model is a trivial linear-rectifier double for anm.Model.
//
// Its inner-hair-cell output is the input pressure compressed through
// tanh, and its firing rate is spontaneous rate plus half-wave rectified
// pressure times Gain. It has no tuning: every CF row responds
// identically. That is deliberately unphysiological but makes expected
// values easy to compute in tests, while preserving the properties the
// analysis layer relies on (rates grow with level and phase-lock to the
// stimulus).
type Model struct {
	Spont float64 // spontaneous rate, spikes/s
	Gain  float64 // spikes/s per pascal of rectified pressure
}

// New returns a Model with the given spontaneous rate and pressure gain.
func New(spont, gain float64) *Model {
	return &Model{Spont: spont, Gain: gain}
}

// Simulate implements anm.Model.
func (m *Model) Simulate(pressure []float64, sampleRate float64, cfs []float64) (*anm.Response, error) {
	if err := anm.ValidateInput(pressure, cfs); err != nil {
		return nil, err
	}

	if sampleRate <= 0 {
		return nil, anm.ErrInvalidSampleRate
	}

	ihcRow := make([]float64, len(pressure))
	rateRow := make([]float64, len(pressure))

	for i, p := range pressure {
		ihcRow[i] = math.Tanh(p)

		r := 0.0
		if p > 0 {
			r = p
		}

		rateRow[i] = m.Spont + m.Gain*r
	}

	resp := &anm.Response{
		SampleRate: sampleRate,
		CFs:        append([]float64(nil), cfs...),
		IHC:        make([][]float64, len(cfs)),
		Rate:       make([][]float64, len(cfs)),
	}

	for c := range cfs {
		resp.IHC[c] = append([]float64(nil), ihcRow...)
		resp.Rate[c] = append([]float64(nil), rateRow...)
	}

	return resp, nil
}
