// Package analysis computes the standard characterizations of
// auditory-nerve responses used by the demos: rate-level functions,
// phase-locking (vector strength) curves, rate spectra, and population
// neurograms.
//
// Everything here operates on the firing-rate waveforms returned across
// the anm.Model boundary; the simulation itself is external.
package analysis
