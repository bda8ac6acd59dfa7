package analysis

import (
	"math"

	"github.com/guestdaniel/anm-demos/anm"
)

// NeurogramConfig controls the time rebinning of a population response.
//
// Window is the frame length in seconds; Hop is the frame advance and
// defaults to half the window when <= 0.
type NeurogramConfig struct {
	Window float64 // seconds
	Hop    float64 // seconds
}

// Neurogram is a population response rebinned into coarse time frames:
// one row per characteristic frequency, one column per frame.
type Neurogram struct {
	CFs   []float64   // Hz, copied from the response
	Times []float64   // frame center times, seconds
	Rate  [][]float64 // [cf][frame] Hann-weighted mean rate, spikes/s
}

// ComputeNeurogram rebins the response's rate waveforms into overlapping
// Hann-weighted frames. The weighting suppresses framing artifacts at the
// cost of slight temporal smearing, which is the conventional trade for
// neurogram displays.
func ComputeNeurogram(resp *anm.Response, cfg NeurogramConfig) (*Neurogram, error) {
	if resp == nil {
		return nil, ErrNilResponse
	}

	if resp.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	if len(resp.Rate) == 0 {
		return nil, ErrEmptyResponse
	}

	if cfg.Window <= 0 {
		return nil, ErrInvalidWindow
	}

	hop := cfg.Hop
	if hop <= 0 {
		hop = cfg.Window / 2
	}

	winLen := int(math.Round(cfg.Window * resp.SampleRate))
	if winLen < 1 {
		winLen = 1
	}

	hopLen := int(math.Round(hop * resp.SampleRate))
	if hopLen < 1 {
		return nil, ErrInvalidHop
	}

	n := len(resp.Rate[0])
	for _, row := range resp.Rate {
		if len(row) == 0 {
			return nil, ErrEmptyRate
		}

		if len(row) < n {
			n = len(row)
		}
	}

	frames := 0
	if n >= winLen {
		frames = (n-winLen)/hopLen + 1
	}

	// Weights normalized to sum 1 so each frame is a weighted mean.
	weights := hann(winLen)

	var weightSum float64
	for _, w := range weights {
		weightSum += w
	}

	if weightSum == 0 {
		weightSum = 1
	}

	ng := &Neurogram{
		CFs:   append([]float64(nil), resp.CFs...),
		Times: make([]float64, frames),
		Rate:  make([][]float64, len(resp.Rate)),
	}

	for f := 0; f < frames; f++ {
		center := float64(f*hopLen) + float64(winLen-1)/2
		ng.Times[f] = center / resp.SampleRate
	}

	for c, row := range resp.Rate {
		out := make([]float64, frames)

		for f := 0; f < frames; f++ {
			start := f * hopLen

			var sum float64
			for k, w := range weights {
				sum += w * row[start+k]
			}

			out[f] = sum / weightSum
		}

		ng.Rate[c] = out
	}

	return ng, nil
}
