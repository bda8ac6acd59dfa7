// Command ratelevel prints the rate-level function of a model fiber.
//
// The external auditory-nerve model is not part of this repository, so
// the command drives the linear test double from anm/anmtest; swap in a
// real model binding to reproduce published rate-level curves.
//
// Usage:
//
//	ratelevel [flags]
//
// Examples:
//
//	ratelevel -cf 1000 -from 0 -to 80 -step 10
//	ratelevel -cf 4000 -dur 0.2 -fs 100000
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guestdaniel/anm-demos/analysis"
	"github.com/guestdaniel/anm-demos/anm/anmtest"
	"github.com/guestdaniel/anm-demos/stim"
)

func main() {
	cf := flag.Float64("cf", 1000, "characteristic frequency in Hz (also the tone frequency)")
	from := flag.Float64("from", 0, "lowest stimulus level in dB SPL")
	to := flag.Float64("to", 80, "highest stimulus level in dB SPL")
	step := flag.Float64("step", 10, "level step in dB")
	dur := flag.Float64("dur", 0.1, "tone duration in seconds")
	fs := flag.Float64("fs", 100e3, "sample rate in Hz")
	ramp := flag.Float64("ramp", 10e-3, "ramp duration in seconds")
	spont := flag.Float64("spont", 50, "test double spontaneous rate in spikes/s")
	gain := flag.Float64("gain", 5000, "test double gain in spikes/s per Pa")
	flag.Parse()

	if *step <= 0 || *to < *from {
		fmt.Fprintln(os.Stderr, "error: level range must be ascending with a positive step")
		os.Exit(1)
	}

	var levels []float64
	for l := *from; l <= *to; l += *step {
		levels = append(levels, l)
	}

	cfg := analysis.RateLevelConfig{
		Tone: stim.NewTone(
			stim.WithFrequency(*cf),
			stim.WithDuration(*dur),
			stim.WithSampleRate(*fs),
			stim.WithRampDuration(*ramp),
		),
		Levels: levels,
		CF:     *cf,
	}

	points, err := analysis.RateLevel(anmtest.New(*spont, *gain), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Level [dB SPL]\tRate [spikes/s]\n")
	fmt.Fprintf(tw, "--------------\t---------------\n")

	for _, p := range points {
		fmt.Fprintf(tw, "%.1f\t%.2f\n", p.Level, p.Rate)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
