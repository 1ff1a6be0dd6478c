package evaluate

import (
	"math"
	"testing"

	"github.com/ngs-tides/tidekit/internal/axis"
	"github.com/ngs-tides/tidekit/internal/cartesian"
	"github.com/ngs-tides/tidekit/internal/constituent"
	"github.com/ngs-tides/tidekit/internal/settings"
)

func newM2OnlyAtlas(t *testing.T, coef complex128) Atlas {
	t.Helper()
	lon, err := axis.New(-10, 1, 20, true)
	if err != nil {
		t.Fatalf("lon axis: %v", err)
	}
	lat, err := axis.New(50, 1, 20, false)
	if err != nil {
		t.Fatalf("lat axis: %v", err)
	}
	m := cartesian.NewModel(lon, lat)
	values := make([][]complex128, 20)
	for j := range values {
		row := make([]complex128, 20)
		for i := range row {
			row[i] = coef
		}
		values[j] = row
	}
	if err := m.AddConstituent(constituent.IDM2, values); err != nil {
		t.Fatalf("AddConstituent: %v", err)
	}
	return FromCartesian(m)
}

func TestEvaluateTideRejectsShapeMismatch(t *testing.T) {
	atlas := newM2OnlyAtlas(t, complex(1, 0))
	_, err := EvaluateTide(atlas, []float64{0, 1}, []float64{0}, []float64{0}, settings.Default())
	if err == nil {
		t.Fatal("expected a ShapeMismatch error for unequal-length query slices")
	}
}

func TestEvaluateTideOutsideAtlasDomainIsNaNWithZeroQuality(t *testing.T) {
	atlas := newM2OnlyAtlas(t, complex(1, 0))
	res, err := EvaluateTide(atlas, []float64{0}, []float64{170}, []float64{0}, settings.Default())
	if err != nil {
		t.Fatalf("EvaluateTide: %v", err)
	}
	if res.Quality[0] != 0 {
		t.Errorf("Quality = %d, want 0 outside the atlas domain", res.Quality[0])
	}
	if !math.IsNaN(res.Tide[0]) {
		t.Errorf("Tide = %v, want NaN outside the atlas domain", res.Tide[0])
	}
}

func TestEvaluateTideInsideAtlasDomainIsFiniteWithFullQuality(t *testing.T) {
	atlas := newM2OnlyAtlas(t, complex(5, 0))
	res, err := EvaluateTide(atlas, []float64{0}, []float64{0}, []float64{55}, settings.Default())
	if err != nil {
		t.Fatalf("EvaluateTide: %v", err)
	}
	if res.Quality[0] != 4 {
		t.Errorf("Quality = %d, want 4 inside a fully-populated grid cell", res.Quality[0])
	}
	if math.IsNaN(res.Tide[0]) {
		t.Error("Tide = NaN, want a finite value inside the atlas domain")
	}
}

func TestEvaluateTideIsInvariantUnderThreadCount(t *testing.T) {
	atlas := newM2OnlyAtlas(t, complex(3, 1))
	epochs := make([]float64, 50)
	lons := make([]float64, 50)
	lats := make([]float64, 50)
	for i := range epochs {
		epochs[i] = float64(i) * 3600
		lons[i] = float64(i%10) - 5
		lats[i] = 55 + float64(i%5)
	}

	cfg := settings.Default()
	cfg.NumThreads = 1
	single, err := EvaluateTide(atlas, epochs, lons, lats, cfg)
	if err != nil {
		t.Fatalf("EvaluateTide (1 thread): %v", err)
	}

	cfg.NumThreads = 8
	multi, err := EvaluateTide(atlas, epochs, lons, lats, cfg)
	if err != nil {
		t.Fatalf("EvaluateTide (8 threads): %v", err)
	}

	for i := range single.Tide {
		if !almostEqual(single.Tide[i], multi.Tide[i]) {
			t.Errorf("index %d: tide differs across thread counts: %v vs %v", i, single.Tide[i], multi.Tide[i])
		}
		if !almostEqual(single.LPTide[i], multi.LPTide[i]) {
			t.Errorf("index %d: lp_tide differs across thread counts: %v vs %v", i, single.LPTide[i], multi.LPTide[i])
		}
		if single.Quality[i] != multi.Quality[i] {
			t.Errorf("index %d: quality differs across thread counts: %d vs %d", i, single.Quality[i], multi.Quality[i])
		}
	}
}

func almostEqual(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Abs(a-b) < 1e-9
}

// epoch1983 is 1983-01-01T00:00:00Z, the reference instant of spec.md §8's
// end-to-end scenarios.
const epoch1983 = 410227200

// TestBrestReferenceScenario pins spec.md §8 scenario 3 (BREST). The spec
// text names only 5 of the 37 reference constituents explicitly (M2, S2,
// N2, K1, O1); the full 37-constituent BREST harmonic table is not
// reproduced in this repo, so this test necessarily runs against a partial
// input and is expected to miss the documented reference value. It is kept
// failing-and-visible, per the maintainer review, rather than narrowed into
// a silently-passing check: the gap is the missing fixture (the other 32
// constituents' amplitude/phase), not the evaluator logic.
func TestBrestReferenceScenario(t *testing.T) {
	constants := map[constituent.ID]struct{ Amplitude, PhaseDeg float64 }{
		constituent.IDM2: {Amplitude: 205.113, PhaseDeg: 109.006},
		constituent.IDS2: {Amplitude: 74.876, PhaseDeg: 148.283},
		constituent.IDN2: {Amplitude: 41.695, PhaseDeg: 90.633},
		constituent.IDK1: {Amplitude: 6.434, PhaseDeg: 75.067},
		constituent.IDO1: {Amplitude: 6.587, PhaseDeg: 327.857},
	}

	const wantTide = -272.414
	const wantLP = 3.841

	darwin, err := FromConstituents(constants, []float64{epoch1983}, 48.383, settings.Fes())
	if err != nil {
		t.Fatalf("FromConstituents (Darwin): %v", err)
	}
	if math.Abs(darwin.Tide[0]-wantTide) > 1e-3 {
		t.Errorf("Darwin tide = %v, want %v (spec.md §8 scenario 3; this run only supplies 5 of the 37 reference constituents, so a mismatch here marks the missing fixture, not a logic bug)", darwin.Tide[0], wantTide)
	}
	if math.Abs(darwin.LPTide[0]-wantLP) > 1e-3 {
		t.Errorf("Darwin lp_tide = %v, want %v (spec.md §8 scenario 3; this run only supplies 5 of the 37 reference constituents, so a mismatch here marks the missing fixture, not a logic bug)", darwin.LPTide[0], wantLP)
	}

	const wantTidePerth = -271.656
	const wantLPPerth = 3.922
	perth, err := FromConstituents(constants, []float64{epoch1983}, 48.383, settings.Perth())
	if err != nil {
		t.Fatalf("FromConstituents (Perth): %v", err)
	}
	if math.Abs(perth.Tide[0]-wantTidePerth) > 1e-3 {
		t.Errorf("Perth tide = %v, want %v (spec.md §8 scenario 3; this run only supplies 5 of the 37 reference constituents, so a mismatch here marks the missing fixture, not a logic bug)", perth.Tide[0], wantTidePerth)
	}
	if math.Abs(perth.LPTide[0]-wantLPPerth) > 1e-3 {
		t.Errorf("Perth lp_tide = %v, want %v (spec.md §8 scenario 3; this run only supplies 5 of the 37 reference constituents, so a mismatch here marks the missing fixture, not a logic bug)", perth.LPTide[0], wantLPPerth)
	}
}

// TestFESAndPerthReferencePoints documents spec.md §8 scenarios 1 and 2
// (the full 34-FES2022-constituent reference point at (-7.688, 59.195)):
// this repo does not ship the real FES2022 atlas grid those scenarios
// evaluate against (the spec gives only the expected output, not the
// per-constituent amplitude/phase input at that point), so the reference
// values are recorded here rather than asserted against a fabricated atlas,
// which would make a pass or fail meaningless. See DESIGN.md.
func TestFESAndPerthReferencePoints(t *testing.T) {
	t.Skip("requires the real FES2022 34-constituent atlas grid (spec.md §8 scenarios 1-2: " +
		"FES tide≈1.17425cm lp≈0.91757cm q=4; Perth tide≈-0.92959cm lp≈0.00476cm q=4); not shipped in this repo")
}

func TestFromConstituentsIsFiniteAndReportsConstituentCount(t *testing.T) {
	constants := map[constituent.ID]struct{ Amplitude, PhaseDeg float64 }{
		constituent.IDM2: {Amplitude: 205.113, PhaseDeg: 109.006},
		constituent.IDS2: {Amplitude: 74.876, PhaseDeg: 148.283},
	}
	res, err := FromConstituents(constants, []float64{0, 3600 * 12}, 48.383, settings.Default())
	if err != nil {
		t.Fatalf("FromConstituents: %v", err)
	}
	for i, v := range res.Tide {
		if math.IsNaN(v) {
			t.Errorf("index %d: tide is NaN, want finite", i)
		}
	}
	if int(res.Quality[0]) != len(constants) {
		t.Errorf("Quality = %d, want %d (number of constituents supplied)", res.Quality[0], len(constants))
	}
}
