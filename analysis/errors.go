package analysis

import "errors"

// Errors returned by analysis functions.
var (
	ErrEmptyRate         = errors.New("analysis: rate waveform must not be empty")
	ErrInvalidSampleRate = errors.New("analysis: sample rate must be positive")
	ErrInvalidFrequency  = errors.New("analysis: analysis frequency must be positive")
	ErrNoLevels          = errors.New("analysis: at least one stimulus level is required")
	ErrNoFrequencies     = errors.New("analysis: at least one stimulus frequency is required")
	ErrNilResponse       = errors.New("analysis: response must not be nil")
	ErrInvalidWindow     = errors.New("analysis: window duration must be positive")
	ErrInvalidHop        = errors.New("analysis: hop duration must be positive")
	ErrEmptyResponse     = errors.New("analysis: response has no rate rows")
)
