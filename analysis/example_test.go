package analysis_test

import (
	"fmt"
	"math"

	"github.com/guestdaniel/anm-demos/analysis"
)

func ExampleVectorStrength() {
	// A firing rate fully modulated at 100 Hz.
	const fs = 10e3

	rate := make([]float64, 1000)
	for i := range rate {
		rate[i] = 80 * (1 + math.Cos(2*math.Pi*100*float64(i)/fs))
	}

	vs, err := analysis.VectorStrength(rate, fs, 100)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.2f\n", vs)

	// Output:
	// 0.50
}
