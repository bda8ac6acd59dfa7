package stim

import (
	"math"
	"testing"
)

func TestEnvelopeIdentity(t *testing.T) {
	env, err := Envelope(0, 100e3, 64)
	if err != nil {
		t.Fatal(err)
	}

	if len(env) != 64 {
		t.Fatalf("len = %d, want 64", len(env))
	}

	for i, v := range env {
		if v != 1 {
			t.Fatalf("env[%d] = %v, want 1", i, v)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	const (
		fs      = 1000.0
		rampDur = 0.1 // 100-sample ramps
		n       = 1000
		nRamp   = 100
	)

	env, err := Envelope(rampDur, fs, n)
	if err != nil {
		t.Fatal(err)
	}

	if env[0] != 0 {
		t.Errorf("first sample = %v, want 0", env[0])
	}

	if env[n-1] != 0 {
		t.Errorf("last sample = %v, want 0", env[n-1])
	}

	// Rising segment is monotonically nondecreasing.
	for k := 1; k < nRamp; k++ {
		if env[k] < env[k-1] {
			t.Fatalf("rising segment not monotonic at %d: %v < %v", k, env[k], env[k-1])
		}
	}

	// Falling segment is the exact mirror of the rising one.
	for k := 0; k < nRamp; k++ {
		if env[k] != env[n-1-k] {
			t.Fatalf("asymmetric at %d: %v != %v", k, env[k], env[n-1-k])
		}
	}

	// Sustain segment is exactly 1.
	for i := nRamp; i < n-nRamp; i++ {
		if env[i] != 1 {
			t.Fatalf("sustain sample %d = %v, want 1", i, env[i])
		}
	}

	// The taper's inner edge reaches 1 within floating-point tolerance.
	if math.Abs(env[nRamp-1]-1) > 1e-3 {
		t.Errorf("end of onset = %v, want ~1", env[nRamp-1])
	}
}

func TestEnvelopeNoSustain(t *testing.T) {
	// 2*nRamp == n is allowed: the sustain segment has zero length.
	env, err := Envelope(0.05, 1000, 100)
	if err != nil {
		t.Fatal(err)
	}

	if len(env) != 100 {
		t.Fatalf("len = %d, want 100", len(env))
	}

	for k := 0; k < 50; k++ {
		if env[k] != env[99-k] {
			t.Fatalf("asymmetric at %d", k)
		}
	}
}

func TestEnvelopeValidation(t *testing.T) {
	tests := []struct {
		name    string
		rampDur float64
		fs      float64
		n       int
		wantErr error
	}{
		{"zero sample rate", 0.01, 0, 100, ErrInvalidSampleRate},
		{"negative sample rate", 0.01, -1, 100, ErrInvalidSampleRate},
		{"negative ramp", -0.01, 1000, 100, ErrInvalidRampDuration},
		{"ramp too long", 1.0, 100e3, 100, ErrRampTooLong},
		{"barely too long", 0.051, 1000, 100, ErrRampTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Envelope(tt.rampDur, tt.fs, tt.n)
			if err != tt.wantErr {
				t.Errorf("Envelope() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRampOnesYieldsEnvelope(t *testing.T) {
	const (
		fs      = 10e3
		rampDur = 0.005
		n       = 200
	)

	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	ramped, err := Ramp(ones, rampDur, fs)
	if err != nil {
		t.Fatal(err)
	}

	env, err := Envelope(rampDur, fs, n)
	if err != nil {
		t.Fatal(err)
	}

	for i := range ramped {
		if ramped[i] != env[i] {
			t.Fatalf("index %d: ramped %v != envelope %v", i, ramped[i], env[i])
		}
	}
}

func TestRampPreservesInput(t *testing.T) {
	signal := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	orig := append([]float64(nil), signal...)

	if _, err := Ramp(signal, 0.002, 1000); err != nil {
		t.Fatal(err)
	}

	for i := range signal {
		if signal[i] != orig[i] {
			t.Fatalf("input mutated at %d: %v != %v", i, signal[i], orig[i])
		}
	}
}

func TestRampInPlaceMatchesRamp(t *testing.T) {
	const (
		fs      = 48e3
		rampDur = 0.001
		n       = 480
	)

	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * 100 * float64(i) / fs)
	}

	want, err := Ramp(signal, rampDur, fs)
	if err != nil {
		t.Fatal(err)
	}

	if err := RampInPlace(signal, rampDur, fs); err != nil {
		t.Fatal(err)
	}

	for i := range signal {
		if signal[i] != want[i] {
			t.Fatalf("index %d: in-place %v != copy %v", i, signal[i], want[i])
		}
	}
}

func TestRampErrorLeavesInputUntouched(t *testing.T) {
	signal := []float64{1, 2, 3}

	err := RampInPlace(signal, 1.0, 100e3)
	if err != ErrRampTooLong {
		t.Fatalf("error = %v, want ErrRampTooLong", err)
	}

	for i, want := range []float64{1, 2, 3} {
		if signal[i] != want {
			t.Fatalf("input mutated at %d", i)
		}
	}
}

func TestRampMatrixOrientation(t *testing.T) {
	const (
		fs      = 1000.0
		rampDur = 0.002
	)

	flat := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	want, err := Ramp(flat, rampDur, fs)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("row", func(t *testing.T) {
		out, err := RampMatrix([][]float64{flat}, rampDur, fs)
		if err != nil {
			t.Fatal(err)
		}

		if len(out) != 1 || len(out[0]) != len(flat) {
			t.Fatalf("shape = %dx%d, want 1x%d", len(out), len(out[0]), len(flat))
		}

		for i := range want {
			if out[0][i] != want[i] {
				t.Fatalf("index %d: %v != %v", i, out[0][i], want[i])
			}
		}
	})

	t.Run("column", func(t *testing.T) {
		col := make([][]float64, len(flat))
		for i, v := range flat {
			col[i] = []float64{v}
		}

		out, err := RampMatrix(col, rampDur, fs)
		if err != nil {
			t.Fatal(err)
		}

		if len(out) != len(flat) {
			t.Fatalf("rows = %d, want %d", len(out), len(flat))
		}

		for i := range want {
			if len(out[i]) != 1 || out[i][0] != want[i] {
				t.Fatalf("index %d: %v != %v", i, out[i], want[i])
			}
		}
	})
}

func TestRampMatrixRejectsNonVector(t *testing.T) {
	tests := []struct {
		name   string
		signal [][]float64
	}{
		{"empty", nil},
		{"2x2", [][]float64{{1, 2}, {3, 4}}},
		{"3x2", [][]float64{{1, 2}, {3, 4}, {5, 6}}},
		{"ragged", [][]float64{{1}, {2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RampMatrix(tt.signal, 0.001, 1000)
			if err != ErrNotVector {
				t.Errorf("RampMatrix() error = %v, want ErrNotVector", err)
			}
		})
	}
}
