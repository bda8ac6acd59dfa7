package stim_test

import (
	"fmt"

	"github.com/guestdaniel/anm-demos/stim"
)

func ExampleEnvelope() {
	env, err := stim.Envelope(0.002, 1000, 8)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.2f %.2f %.2f %.2f %.2f %.2f %.2f %.2f\n",
		env[0], env[1], env[2], env[3], env[4], env[5], env[6], env[7])

	// Output:
	// 0.00 0.75 1.00 1.00 1.00 1.00 0.75 0.00
}

func ExampleRamp() {
	signal := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	out, err := stim.Ramp(signal, 0.002, 1000)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.2f %.2f ... %.2f %.2f\n", out[0], out[1], out[6], out[7])

	// Output:
	// 0.00 0.75 ... 0.75 0.00
}

func ExampleTone_Generate() {
	t := stim.NewTone(
		stim.WithFrequency(1000),
		stim.WithLevel(20),
		stim.WithDuration(0.1),
		stim.WithSampleRate(100e3),
		stim.WithRampDuration(0.01),
	)

	pressure, err := t.Generate()
	if err != nil {
		panic(err)
	}

	fmt.Printf("%d samples, starts at %.0f Pa\n", len(pressure), pressure[0])

	// Output:
	// 10000 samples, starts at 0 Pa
}
