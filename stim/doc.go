// Package stim synthesizes acoustic stimuli for auditory-periphery
// simulations.
//
// The two building blocks are the raised-cosine onset/offset ramp and the
// pure-tone synthesizer that composes it:
//
//	t := stim.NewTone(
//	    stim.WithFrequency(1000),
//	    stim.WithLevel(50),
//	    stim.WithDuration(0.1),
//	)
//	pressure, _ := t.Generate()
//
// Generated waveforms are sound pressure in pascals, calibrated so the
// RMS pressure of the sustained portion matches the requested dB SPL
// level. All functions are pure: inputs are never mutated (except by the
// explicit InPlace variants) and no state is shared between calls.
package stim
