package lpe

import (
	"math"
	"testing"

	"github.com/ngs-tides/tidekit/internal/astro"
	"github.com/ngs-tides/tidekit/internal/constituent"
)

func TestComputeIsFiniteAtEquator(t *testing.T) {
	// At the equator sin(phi) = 0, so (3*0-1)/2 = -0.5: order2 terms do not
	// vanish there, but the value must stay finite.
	a := astro.Compute(1_700_000_000, astro.Meeus)
	v0 := Compute(0, a, nil)
	if math.IsNaN(v0) || math.IsInf(v0, 0) {
		t.Fatalf("Compute at equator = %v, want finite", v0)
	}
}

func TestComputeVariesWithLatitude(t *testing.T) {
	a := astro.Compute(1_700_000_000, astro.Meeus)
	equator := Compute(0, a, nil)
	midLat := Compute(45, a, nil)
	if equator == midLat {
		t.Error("Compute should vary with latitude (P2/P3 weighting depends on sin phi)")
	}
}

func TestComputeExcludesDynamicWaves(t *testing.T) {
	a := astro.Compute(1_700_000_000, astro.Meeus)
	full := Compute(45, a, nil)

	// Exclude the dynamic key matching the Mf row (s=2,h=0,p=0,n=0).
	mf := constituent.Doodson{0, 2, 0, 0, 0, 0, 0}
	reduced := Compute(45, a, []constituent.Doodson{mf})

	if reduced == full {
		t.Error("excluding the Mf dynamic key should change the LPE sum (Mf is a non-zero order2 row)")
	}
}

// TestLPEReferenceScenario pins spec.md §8 scenario 4: synthetic astronomic
// angles, lat=1 deg, asserted against the documented reference values both
// with no waves marked dynamic and with Mm/Mf/Mtm/MSqm/Ssa marked dynamic.
// order2/order3 here carry only the dominant CTE lines (12+2 rows, not the
// reference library's full 106+17), so this is expected to miss the
// documented values by more than the missing rows' combined amplitude; per
// the maintainer review this is kept as a real, visible assertion rather
// than narrowed into a weaker check. See DESIGN.md.
func TestLPEReferenceScenario(t *testing.T) {
	a := astro.Angles{S: 3.4550, H: 4.8910, P: 5.2822, N: 6.0264, P1: 4.9292}

	const wantNoDynamic = 0.41377
	got := Compute(1, a, nil)
	if math.Abs(got-wantNoDynamic) > 1e-3 {
		t.Errorf("Compute(no dynamic) = %v, want %v (spec.md §8 scenario 4; this package's CTE table only carries the dominant 12+2 of the reference 106+17 rows)", got, wantNoDynamic)
	}

	// Mm, Mf, Mtm, MSqm, Ssa by their (s, h, p, N') Doodson keys.
	dynamic := []constituent.Doodson{
		{0, 1, 0, -1, 0, 0, 0},  // Mm
		{0, 2, 0, 0, 0, 0, 0},   // Mf
		{0, 3, 0, -1, 0, 0, 0},  // Mtm
		{0, 4, -2, 0, 0, 0, 0},  // MSqm
		{0, 0, 2, 0, 0, 0, 0},   // Ssa
	}
	const wantDynamic = -0.58598
	got = Compute(1, a, dynamic)
	if math.Abs(got-wantDynamic) > 1e-3 {
		t.Errorf("Compute(Mm/Mf/Mtm/MSqm/Ssa dynamic) = %v, want %v (spec.md §8 scenario 4; this package's CTE table only carries the dominant 12+2 of the reference 106+17 rows)", got, wantDynamic)
	}
}

func TestProudmanNodeTideFiniteAndVariesWithLatitude(t *testing.T) {
	eq := ProudmanNodeTide(0)
	pole := ProudmanNodeTide(90)
	if math.IsNaN(eq) || math.IsNaN(pole) {
		t.Fatal("ProudmanNodeTide returned NaN")
	}
	if eq == pole {
		t.Error("ProudmanNodeTide should differ between equator and pole (P2(sin phi) is latitude-dependent)")
	}
}
