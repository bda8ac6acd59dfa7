package analysis

import (
	"fmt"
	"math"

	"github.com/guestdaniel/anm-demos/anm"
	"github.com/guestdaniel/anm-demos/stim"
)

// RateLevelConfig describes a rate-level sweep.
//
// Tone is the stimulus template; its Level field is overridden per point.
// The model is probed at the single characteristic frequency CF. OnsetSkip
// is the duration excluded from both ends of the response before
// averaging; when <= 0 it defaults to the tone's ramp duration, so the
// average covers only the sustained portion of the stimulus.
type RateLevelConfig struct {
	Tone      stim.Tone
	Levels    []float64 // dB SPL, one response point per entry
	CF        float64   // Hz
	OnsetSkip float64   // seconds
}

// RateLevelPoint is one point of a rate-level function.
type RateLevelPoint struct {
	Level float64 // dB SPL
	Rate  float64 // mean steady-state firing rate, spikes/s
}

// RateLevel synthesizes one tone per level, drives the model, and returns
// the mean steady-state firing rate of the CF fiber at each level.
func RateLevel(m anm.Model, cfg RateLevelConfig) ([]RateLevelPoint, error) {
	if m == nil {
		return nil, anm.ErrNilModel
	}

	if len(cfg.Levels) == 0 {
		return nil, ErrNoLevels
	}

	skip := cfg.OnsetSkip
	if skip <= 0 {
		skip = cfg.Tone.RampDuration
	}

	points := make([]RateLevelPoint, len(cfg.Levels))

	for i, level := range cfg.Levels {
		tone := cfg.Tone
		tone.Level = level

		pressure, err := tone.Generate()
		if err != nil {
			return nil, fmt.Errorf("analysis: tone at %g dB SPL: %w", level, err)
		}

		resp, err := m.Simulate(pressure, tone.SampleRate, []float64{cfg.CF})
		if err != nil {
			return nil, fmt.Errorf("analysis: model at %g dB SPL: %w", level, err)
		}

		if len(resp.Rate) == 0 {
			return nil, ErrEmptyResponse
		}

		rate, err := steadyStateMean(resp.Rate[0], tone.SampleRate, skip)
		if err != nil {
			return nil, err
		}

		points[i] = RateLevelPoint{Level: level, Rate: rate}
	}

	return points, nil
}

// steadyStateMean averages rate with skip seconds excluded from each end.
// Falls back to the full waveform when the skip would leave nothing.
func steadyStateMean(rate []float64, sampleRate, skip float64) (float64, error) {
	if len(rate) == 0 {
		return 0, ErrEmptyRate
	}

	n := len(rate)
	k := int(math.Round(skip * sampleRate))

	lo, hi := k, n-k
	if lo >= hi {
		lo, hi = 0, n
	}

	var sum float64
	for _, r := range rate[lo:hi] {
		sum += r
	}

	return sum / float64(hi-lo), nil
}
