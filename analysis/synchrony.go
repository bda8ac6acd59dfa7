package analysis

import (
	"fmt"
	"math"

	"github.com/guestdaniel/anm-demos/anm"
	"github.com/guestdaniel/anm-demos/stim"
)

// SynchronyConfig describes a phase-locking sweep across tone frequency.
//
// Tone is the stimulus template; its Frequency field is overridden per
// point, and the model is probed at a CF equal to the tone frequency so
// each point measures an on-CF fiber. OnsetSkip behaves as in
// RateLevelConfig.
type SynchronyConfig struct {
	Tone        stim.Tone
	Frequencies []float64 // Hz, one response point per entry
	OnsetSkip   float64   // seconds
}

// SynchronyPoint is one point of a vector-strength-versus-frequency curve.
type SynchronyPoint struct {
	Frequency      float64 // Hz
	VectorStrength float64 // 0..1
}

// SynchronyCurve measures vector strength at each stimulus frequency,
// characterizing the roll-off of phase locking with frequency.
func SynchronyCurve(m anm.Model, cfg SynchronyConfig) ([]SynchronyPoint, error) {
	if m == nil {
		return nil, anm.ErrNilModel
	}

	if len(cfg.Frequencies) == 0 {
		return nil, ErrNoFrequencies
	}

	skip := cfg.OnsetSkip
	if skip <= 0 {
		skip = cfg.Tone.RampDuration
	}

	points := make([]SynchronyPoint, len(cfg.Frequencies))

	for i, freq := range cfg.Frequencies {
		tone := cfg.Tone
		tone.Frequency = freq

		pressure, err := tone.Generate()
		if err != nil {
			return nil, fmt.Errorf("analysis: tone at %g Hz: %w", freq, err)
		}

		resp, err := m.Simulate(pressure, tone.SampleRate, []float64{freq})
		if err != nil {
			return nil, fmt.Errorf("analysis: model at %g Hz: %w", freq, err)
		}

		if len(resp.Rate) == 0 {
			return nil, ErrEmptyResponse
		}

		rate := resp.Rate[0]

		// Trim the ramps so onset transients do not dilute the measure.
		k := int(math.Round(skip * tone.SampleRate))
		if 2*k < len(rate) {
			rate = rate[k : len(rate)-k]
		}

		vs, err := VectorStrength(rate, tone.SampleRate, freq)
		if err != nil {
			return nil, err
		}

		points[i] = SynchronyPoint{Frequency: freq, VectorStrength: vs}
	}

	return points, nil
}
