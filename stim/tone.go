package stim

import (
	"math"

	"github.com/guestdaniel/anm-demos/spl"
)

// Tone describes a ramped pure-tone pressure stimulus.
//
// The zero value is not useful; construct tones with NewTone so unset
// fields pick up their defaults.
type Tone struct {
	Frequency    float64 // Hz
	Phase        float64 // radians
	Duration     float64 // seconds
	SampleRate   float64 // Hz
	RampDuration float64 // seconds
	Level        float64 // dB SPL
}

// DefaultTone returns the default tone configuration: 1 kHz, zero phase,
// 1 s duration at 100 kHz, 10 ms ramps, 10 dB SPL.
func DefaultTone() Tone {
	return Tone{
		Frequency:    1000,
		Phase:        0,
		Duration:     1,
		SampleRate:   100e3,
		RampDuration: 10e-3,
		Level:        10,
	}
}

// ToneOption configures a Tone.
type ToneOption func(*Tone)

// WithFrequency sets the tone frequency in Hz.
func WithFrequency(hz float64) ToneOption {
	return func(t *Tone) {
		t.Frequency = hz
	}
}

// WithPhase sets the starting phase in radians.
func WithPhase(rad float64) ToneOption {
	return func(t *Tone) {
		t.Phase = rad
	}
}

// WithDuration sets the tone duration in seconds.
func WithDuration(seconds float64) ToneOption {
	return func(t *Tone) {
		t.Duration = seconds
	}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(hz float64) ToneOption {
	return func(t *Tone) {
		t.SampleRate = hz
	}
}

// WithRampDuration sets the onset/offset ramp duration in seconds.
func WithRampDuration(seconds float64) ToneOption {
	return func(t *Tone) {
		t.RampDuration = seconds
	}
}

// WithLevel sets the stimulus level in dB SPL.
func WithLevel(db float64) ToneOption {
	return func(t *Tone) {
		t.Level = db
	}
}

// NewTone returns a Tone starting from DefaultTone with opts applied.
func NewTone(opts ...ToneOption) Tone {
	t := DefaultTone()
	for _, opt := range opts {
		if opt != nil {
			opt(&t)
		}
	}

	return t
}

// Validate checks that the tone parameters are valid.
func (t Tone) Validate() error {
	if t.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	if t.Duration <= 0 {
		return ErrInvalidDuration
	}

	if t.Frequency < 0 {
		return ErrInvalidFrequency
	}

	if t.RampDuration < 0 {
		return ErrInvalidRampDuration
	}

	return nil
}

// Samples returns the number of samples the generated tone will have.
func (t Tone) Samples() int {
	return int(math.Round(t.Duration * t.SampleRate))
}

// Generate synthesizes the tone as a pressure waveform in pascals.
//
// The time axis is the half-open interval [0, Duration) sampled every
// 1/SampleRate seconds. The sinusoid sin(2*pi*Frequency*t + Phase) is
// ramped with the raised-cosine envelope and scaled by
//
//	Pref * 10^(Level/20) * sqrt(2)
//
// where Pref = 20e-6 Pa. The sqrt(2) restores unit RMS for the sinusoid
// (peak amplitude of a unit-RMS sine), so the waveform's RMS pressure
// matches Level in dB SPL outside the ramp segments.
func (t Tone) Generate() ([]float64, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, t.Samples())
	step := 2 * math.Pi * t.Frequency / t.SampleRate

	for i := range out {
		out[i] = math.Sin(step*float64(i) + t.Phase)
	}

	if err := RampInPlace(out, t.RampDuration, t.SampleRate); err != nil {
		return nil, err
	}

	amp := spl.Pascal(t.Level) * math.Sqrt2
	for i := range out {
		out[i] *= amp
	}

	return out, nil
}
