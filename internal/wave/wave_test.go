package wave

import (
	"math"
	"testing"

	"github.com/ngs-tides/tidekit/internal/astro"
	"github.com/ngs-tides/tidekit/internal/constituent"
)

func TestBuildTableOrdersByFrequency(t *testing.T) {
	table := BuildTable(constituent.Darwin)
	if table.Len() == 0 {
		t.Fatal("expected at least one known wave in the Darwin family")
	}
	waves := table.Waves()
	for i := 1; i < len(waves); i++ {
		if waves[i].Frequency() < waves[i-1].Frequency() {
			t.Fatalf("waves not sorted by frequency at index %d: %v before %v",
				i, waves[i-1].Frequency(), waves[i].Frequency())
		}
	}
}

func TestGetFindsM2(t *testing.T) {
	table := BuildTable(constituent.Darwin)
	w, ok := table.Get(constituent.IDM2)
	if !ok {
		t.Fatal("expected M2 to be present in the Darwin table")
	}
	if w.Doodson.T() != 2 {
		t.Errorf("M2 Doodson T = %d, want 2", w.Doodson.T())
	}
}

// TestNodalCorrectionInvariants checks f > 0 and finite u/v for every
// member of both engine families, not just the frequency-sorted table
// view, so a catalogue member silently missing from the table (or present
// with a degenerate correction) fails loudly rather than being skipped.
func TestNodalCorrectionInvariants(t *testing.T) {
	angles := astro.Compute(1_700_000_000, astro.Meeus)
	for _, family := range [][]constituent.ID{constituent.Darwin, constituent.Perth} {
		table := BuildTable(family)
		for _, id := range family {
			w, ok := table.Get(id)
			if !ok {
				t.Errorf("%s: missing from its engine family's table", constituent.Name(id))
				continue
			}
			c := ComputeNodalCorrections(w, angles)
			if c.F <= 0 {
				t.Errorf("%s: f = %v, want > 0", constituent.Name(id), c.F)
			}
			if math.IsNaN(c.U) || math.IsNaN(c.V) || math.IsInf(c.U, 0) || math.IsInf(c.V, 0) {
				t.Errorf("%s: u=%v v=%v, want finite", constituent.Name(id), c.U, c.V)
			}
		}
	}
}

// TestCatalogueCoversBothFamilies pins the regression the maintainer review
// flagged: knownWaves must cover every Darwin and Perth constituent, not a
// reduced subset, so BuildTable never silently drops atlas-supplied
// coefficients for a cataloged constituent.
func TestCatalogueCoversBothFamilies(t *testing.T) {
	darwin := BuildTable(constituent.Darwin)
	if darwin.Len() != len(constituent.Darwin) {
		t.Errorf("Darwin table has %d waves, want all %d catalogue members", darwin.Len(), len(constituent.Darwin))
	}
	perth := BuildTable(constituent.Perth)
	if perth.Len() != len(constituent.Perth) {
		t.Errorf("Perth table has %d waves, want all %d catalogue members", perth.Len(), len(constituent.Perth))
	}
}

func TestSelectForAnalysisSeparatesByRayleigh(t *testing.T) {
	table := BuildTable(constituent.Darwin)
	// Over a one-year span, consecutive selected waves must differ by at
	// least one cycle per year (Rayleigh factor 1). The greedy pass keeps a
	// wave only if it clears the last kept one, so e.g. S2 and N2 are not
	// selected: each lies within that separation of the wave kept before it.
	selected := table.SelectForAnalysis(365.25*24, 1.0)
	if len(selected) == 0 {
		t.Fatal("expected at least one selected wave")
	}
	if len(selected) > table.Len() {
		t.Fatalf("selected more waves (%d) than the table has (%d)", len(selected), table.Len())
	}
	minSeparation := 360.0 / (365.25 * 24)
	for i := 1; i < len(selected); i++ {
		if selected[i].Frequency()-selected[i-1].Frequency() < minSeparation {
			t.Errorf("%s and %s are closer than the Rayleigh separation", constituent.Name(selected[i-1].ID), constituent.Name(selected[i].ID))
		}
	}
}

func TestSolarWavesHaveIdentityFactor(t *testing.T) {
	table := BuildTable(constituent.Darwin)
	angles := astro.Compute(1_700_000_000, astro.Meeus)
	for _, id := range []constituent.ID{constituent.IDS2, constituent.IDP1} {
		w, ok := table.Get(id)
		if !ok {
			t.Fatalf("%s missing from table", constituent.Name(id))
		}
		c := ComputeNodalCorrections(w, angles)
		if c.F != 1.0 {
			t.Errorf("%s: f = %v, want exactly 1 (solar constituent)", constituent.Name(id), c.F)
		}
	}
}
