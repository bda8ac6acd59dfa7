// Command synchrony prints a vector-strength-versus-frequency curve.
//
// Like the other demos it drives the linear test double from anm/anmtest;
// a real model binding shows the physiological phase-locking roll-off
// above a few kHz.
//
// Usage:
//
//	synchrony [flags]
//
// Examples:
//
//	synchrony -from 250 -to 8000 -points 12
//	synchrony -level 40 -dur 0.2
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guestdaniel/anm-demos/analysis"
	"github.com/guestdaniel/anm-demos/anm"
	"github.com/guestdaniel/anm-demos/anm/anmtest"
	"github.com/guestdaniel/anm-demos/stim"
)

func main() {
	from := flag.Float64("from", 250, "lowest tone frequency in Hz")
	to := flag.Float64("to", 8000, "highest tone frequency in Hz")
	points := flag.Int("points", 10, "number of log-spaced frequencies")
	level := flag.Float64("level", 40, "stimulus level in dB SPL")
	dur := flag.Float64("dur", 0.1, "tone duration in seconds")
	fs := flag.Float64("fs", 100e3, "sample rate in Hz")
	ramp := flag.Float64("ramp", 10e-3, "ramp duration in seconds")
	spont := flag.Float64("spont", 50, "test double spontaneous rate in spikes/s")
	gain := flag.Float64("gain", 5000, "test double gain in spikes/s per Pa")
	flag.Parse()

	freqs, err := anm.LogSpace(*from, *to, *points)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := analysis.SynchronyConfig{
		Tone: stim.NewTone(
			stim.WithLevel(*level),
			stim.WithDuration(*dur),
			stim.WithSampleRate(*fs),
			stim.WithRampDuration(*ramp),
		),
		Frequencies: freqs,
	}

	curve, err := analysis.SynchronyCurve(anmtest.New(*spont, *gain), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Frequency [Hz]\tVector strength\n")
	fmt.Fprintf(tw, "--------------\t---------------\n")

	for _, p := range curve {
		fmt.Fprintf(tw, "%.1f\t%.4f\n", p.Frequency, p.VectorStrength)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
