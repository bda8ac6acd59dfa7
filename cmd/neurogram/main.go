// Command neurogram prints a population neurogram as a CSV matrix:
// one row per characteristic frequency, one column per time frame.
//
// Drives the linear test double from anm/anmtest; pipe the output into
// any plotting tool for the conventional heatmap view.
//
// Usage:
//
//	neurogram [flags]
//
// Examples:
//
//	neurogram -freq 1000 -level 40
//	neurogram -cfs 40 -lo 200 -hi 16000 -win 0.005
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/guestdaniel/anm-demos/analysis"
	"github.com/guestdaniel/anm-demos/anm"
	"github.com/guestdaniel/anm-demos/anm/anmtest"
	"github.com/guestdaniel/anm-demos/stim"
)

func main() {
	freq := flag.Float64("freq", 1000, "tone frequency in Hz")
	level := flag.Float64("level", 40, "stimulus level in dB SPL")
	dur := flag.Float64("dur", 0.1, "tone duration in seconds")
	fs := flag.Float64("fs", 100e3, "sample rate in Hz")
	ramp := flag.Float64("ramp", 10e-3, "ramp duration in seconds")
	nCFs := flag.Int("cfs", 21, "number of ERB-spaced characteristic frequencies")
	lo := flag.Float64("lo", 200, "lowest CF in Hz")
	hi := flag.Float64("hi", 20000, "highest CF in Hz")
	win := flag.Float64("win", 2.5e-3, "neurogram frame length in seconds")
	spont := flag.Float64("spont", 50, "test double spontaneous rate in spikes/s")
	gain := flag.Float64("gain", 5000, "test double gain in spikes/s per Pa")
	flag.Parse()

	tone := stim.NewTone(
		stim.WithFrequency(*freq),
		stim.WithLevel(*level),
		stim.WithDuration(*dur),
		stim.WithSampleRate(*fs),
		stim.WithRampDuration(*ramp),
	)

	pressure, err := tone.Generate()
	if err != nil {
		fail(err)
	}

	cfs, err := anm.ERBSpace(*lo, *hi, *nCFs)
	if err != nil {
		fail(err)
	}

	resp, err := anmtest.New(*spont, *gain).Simulate(pressure, tone.SampleRate, cfs)
	if err != nil {
		fail(err)
	}

	ng, err := analysis.ComputeNeurogram(resp, analysis.NeurogramConfig{Window: *win})
	if err != nil {
		fail(err)
	}

	// Header row: CF label column then frame center times.
	cols := make([]string, 0, len(ng.Times)+1)
	cols = append(cols, "cf_hz")

	for _, t := range ng.Times {
		cols = append(cols, strconv.FormatFloat(t, 'g', 6, 64))
	}

	fmt.Println(strings.Join(cols, ","))

	for c, row := range ng.Rate {
		cols = cols[:0]
		cols = append(cols, strconv.FormatFloat(ng.CFs[c], 'f', 1, 64))

		for _, v := range row {
			cols = append(cols, strconv.FormatFloat(v, 'g', 6, 64))
		}

		fmt.Println(strings.Join(cols, ","))
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
