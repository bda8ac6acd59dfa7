package stim

import "errors"

// Errors returned by stimulus synthesis functions.
var (
	ErrNotVector           = errors.New("stim: signal must be a single row or column vector")
	ErrRampTooLong         = errors.New("stim: ramp duration too long for signal length")
	ErrInvalidRampDuration = errors.New("stim: ramp duration must be >= 0")
	ErrInvalidDuration     = errors.New("stim: duration must be positive")
	ErrInvalidSampleRate   = errors.New("stim: sample rate must be positive")
	ErrInvalidFrequency    = errors.New("stim: frequency must be >= 0")
)
