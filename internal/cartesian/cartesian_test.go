package cartesian

import (
	"math"
	"testing"

	"github.com/ngs-tides/tidekit/internal/axis"
	"github.com/ngs-tides/tidekit/internal/constituent"
)

// newGrid builds a 3x3 grid over lon,lat in {0,1,2}x{0,1,2} with
// G[i,j] = (lon+2*lat) + i*(lon-2*lat), the fixture from spec.md's
// TESTABLE PROPERTIES scenario 5.
func newGrid(t *testing.T) *Model {
	t.Helper()
	lon, err := axis.New(0, 1, 3, false)
	if err != nil {
		t.Fatalf("lon axis: %v", err)
	}
	lat, err := axis.New(0, 1, 3, false)
	if err != nil {
		t.Fatalf("lat axis: %v", err)
	}
	m := NewModel(lon, lat)

	values := make([][]complex128, 3)
	for j := 0; j < 3; j++ {
		row := make([]complex128, 3)
		for i := 0; i < 3; i++ {
			lonV := float64(i)
			latV := float64(j)
			row[i] = complex(lonV+2*latV, lonV-2*latV)
		}
		values[j] = row
	}
	if err := m.AddConstituent(constituent.IDM2, values); err != nil {
		t.Fatalf("AddConstituent: %v", err)
	}
	return m
}

func TestBilinearAtGridNodeReturnsExactValue(t *testing.T) {
	m := newGrid(t)
	values, quality, err := m.Interpolate(1, 1)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	want := complex(1.0+2*1.0, 1.0-2*1.0)
	if values[0].Coef != want {
		t.Errorf("Interpolate(1,1) = %v, want %v", values[0].Coef, want)
	}
	if quality != 4 {
		t.Errorf("quality = %d, want 4", quality)
	}
}

func TestBilinearMidpointMatchesSpecFixture(t *testing.T) {
	m := newGrid(t)
	values, quality, err := m.Interpolate(0.5, 0.5)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	want := complex(1.5, -0.5)
	if math.Abs(real(values[0].Coef)-real(want)) > 1e-9 || math.Abs(imag(values[0].Coef)-imag(want)) > 1e-9 {
		t.Errorf("Interpolate(0.5,0.5) = %v, want %v", values[0].Coef, want)
	}
	if quality != 4 {
		t.Errorf("quality = %d, want 4", quality)
	}
}

func TestInterpolateOutsideNonPeriodicBoundsIsUndefined(t *testing.T) {
	m := newGrid(t)
	values, quality, err := m.Interpolate(10, 10)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if quality != 0 {
		t.Errorf("quality = %d, want 0 outside the grid", quality)
	}
	if !math.IsNaN(real(values[0].Coef)) {
		t.Errorf("Coef = %v, want NaN", values[0].Coef)
	}
}

func TestNaNCornersAreSkippedAndWeightsRenormalized(t *testing.T) {
	lon, _ := axis.New(0, 1, 2, false)
	lat, _ := axis.New(0, 1, 2, false)
	m := NewModel(lon, lat)
	nan := complex(math.NaN(), math.NaN())
	if err := m.AddConstituent(constituent.IDM2, [][]complex128{
		{10, nan},
		{20, 30},
	}); err != nil {
		t.Fatalf("AddConstituent: %v", err)
	}

	values, quality, err := m.Interpolate(0.5, 0)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if math.IsNaN(real(values[0].Coef)) {
		t.Fatal("expected a finite value when at least one corner is non-NaN")
	}
	if quality <= 0 || quality >= 4 {
		t.Errorf("quality = %d, want in (0,4) with one NaN corner contributing", quality)
	}
}

func TestAllNaNCornersYieldNaN(t *testing.T) {
	lon, _ := axis.New(0, 1, 2, false)
	lat, _ := axis.New(0, 1, 2, false)
	m := NewModel(lon, lat)
	nan := complex(math.NaN(), math.NaN())
	if err := m.AddConstituent(constituent.IDM2, [][]complex128{
		{nan, nan},
		{nan, nan},
	}); err != nil {
		t.Fatalf("AddConstituent: %v", err)
	}

	values, _, err := m.Interpolate(0.5, 0.5)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if !math.IsNaN(real(values[0].Coef)) {
		t.Error("expected NaN when all four corners are NaN")
	}
}

func TestAddConstituentRejectsShapeMismatch(t *testing.T) {
	lon, _ := axis.New(0, 1, 3, false)
	lat, _ := axis.New(0, 1, 3, false)
	m := NewModel(lon, lat)
	err := m.AddConstituent(constituent.IDM2, [][]complex128{{1, 2}, {3, 4}})
	if err == nil {
		t.Fatal("expected a ShapeMismatch error for a grid of the wrong dimensions")
	}
}
