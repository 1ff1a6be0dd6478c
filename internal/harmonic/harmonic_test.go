package harmonic

import (
	"math"
	"testing"
)

// synthesize builds a sea-level series for W known constituents so Analyze
// can try to recover their complex amplitudes exactly, per spec.md §8's
// "harmonic analysis <-> synthesis" property and end-to-end scenario 7.
func synthesize(n int, amp, phaseDeg, freqDegPerSample []float64) (h []float64, f, vu [][]float64) {
	w := len(amp)
	f = make([][]float64, w)
	vu = make([][]float64, w)
	for k := 0; k < w; k++ {
		f[k] = make([]float64, n)
		vu[k] = make([]float64, n)
		for s := 0; s < n; s++ {
			f[k][s] = 1.0
			vu[k][s] = freqDegPerSample[k] * float64(s) * math.Pi / 180.0
		}
	}
	h = make([]float64, n)
	for s := 0; s < n; s++ {
		var sum float64
		for k := 0; k < w; k++ {
			phase := phaseDeg[k] * math.Pi / 180.0
			sum += amp[k] * math.Cos(vu[k][s]+phase)
		}
		h[s] = sum
	}
	return h, f, vu
}

func TestAnalyzeRecoversKnownAmplitudes(t *testing.T) {
	amp := []float64{2.0, 0.8, 0.3}
	phaseDeg := []float64{30, 200, 90}
	freq := []float64{28.9841042, 30.0, 28.4397295} // M2, S2, N2 deg/hr, treated here as deg/sample
	n := 24 * 30
	h, f, vu := synthesize(n, amp, phaseDeg, freq)

	got, err := Analyze(h, f, vu)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(got) != len(amp) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(amp))
	}
	for k := range amp {
		// h = A cos(vu+phase) = A cos(phase) cos(vu) - A sin(phase) sin(vu),
		// so the cosine/sine columns recover A*exp(-i*phase).
		want := complexFromAmpPhase(amp[k], -phaseDeg[k])
		diff := got[k] - want
		if math.Hypot(real(diff), imag(diff)) > 1e-7 {
			t.Errorf("constituent %d: got %v, want %v", k, got[k], want)
		}
	}
}

func complexFromAmpPhase(amp, phaseDeg float64) complex128 {
	phase := phaseDeg * math.Pi / 180.0
	return complex(amp*math.Cos(phase), amp*math.Sin(phase))
}

func TestAnalyzePropagatesNaN(t *testing.T) {
	h := []float64{1, 2, math.NaN(), 4}
	f := [][]float64{{1, 1, 1, 1}}
	vu := [][]float64{{0, 0.1, 0.2, 0.3}}
	got, err := Analyze(h, f, vu)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !math.IsNaN(real(got[0])) || !math.IsNaN(imag(got[0])) {
		t.Error("expected an all-NaN result when h contains NaN")
	}
}

func TestAnalyzeRejectsShapeMismatch(t *testing.T) {
	h := []float64{1, 2, 3}
	f := [][]float64{{1, 1, 1}, {1, 1}}
	vu := [][]float64{{0, 0, 0}, {0, 0, 0}}
	if _, err := Analyze(h, f, vu); err == nil {
		t.Fatal("expected a ShapeMismatch error")
	}
}

func TestAnalyzeRejectsNoConstituents(t *testing.T) {
	if _, err := Analyze([]float64{1, 2, 3}, nil, nil); err == nil {
		t.Fatal("expected a ShapeMismatch error for zero constituents")
	}
}
