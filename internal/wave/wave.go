// Package wave computes per-constituent nodal corrections (f, u) and the
// equilibrium angle v, and assembles an ordered, frequency-sorted table of
// waves selected by the Rayleigh criterion. It generalizes the teacher's
// switch-case nodal-factor dispatch (internal/domain/nodal.go) from eight
// hardcoded constituents to an enumerated factor-law table covering the
// full catalogue, following the reference library's
// Wave(ident, type, doodson..., factor_law) construction.
package wave

import (
	"math"
	"sort"

	"github.com/ngs-tides/tidekit/internal/astro"
	"github.com/ngs-tides/tidekit/internal/constituent"
)

// TidalType classifies a wave as long or short period, matching the
// reference library's Wave::TidalType.
type TidalType int

const (
	LongPeriod TidalType = iota
	ShortPeriod
)

// USpecial names a wave's extra, non-linear u-correction term beyond the
// (ξ, ν, ν', ν'', R) linear combination: M1's nodal angle has a closed-form
// arctangent term (Schureman eq. 203) that isn't a fixed multiple of any
// auxiliary angle.
type USpecial int

const (
	// USpecialNone adds no extra term.
	USpecialNone USpecial = iota
	// USpecialM1 subtracts atan(1/sqrt(k197_1 + k197_2*cos(2*(P-Xi)))),
	// grounded on original_source/include/fes/darwin/wave.hpp's M1 class.
	USpecialM1
)

// Wave is one tidal constituent's static properties: its Doodson argument,
// the fixed coefficients used to combine the nodal auxiliaries into u, and
// the named amplitude-factor law used to compute f.
type Wave struct {
	ID      constituent.ID
	Type    TidalType
	Doodson constituent.Doodson

	// u-combination coefficients (ξ, ν, ν', ν'', R). RCoef is nonzero only
	// for L2 and waves that inherit L2's nodal correction by combination
	// (e.g. ML4 = M2+L2).
	XiCoef, NuCoef, NuPrimeCoef, NuSecCoef, RCoef int8

	// USpecial names an additional non-linear u term beyond the ξ/ν/ν'/ν''/R
	// linear combination (only M1 has one).
	USpecial USpecial

	Factor FactorLaw
}

// Frequency returns the wave's angular speed in degrees per hour.
func (w Wave) Frequency() float64 { return w.Doodson.Frequency() }

// Correction is the nodal correction triple for one wave at one instant:
// f (amplitude factor, always > 0), u and v (phase angles, radians).
type Correction struct {
	F float64
	U float64
	V float64
}

// ComputeNodalCorrections evaluates w's nodal correction at the given
// astronomic angle bundle, following spec.md §4.2: v combines the
// primaries (τ, s, h, p, p₁) and the quarter-turn shift; u combines the
// auxiliaries (ξ, ν, ν', ν'') by w's fixed coefficients; f comes from w's
// named factor law, a closed-form trig expression in I (and, for a few
// waves, ν).
func ComputeNodalCorrections(w Wave, a astro.Angles) Correction {
	d := w.Doodson
	v := float64(d.T())*a.Tau + float64(d.S())*a.S + float64(d.H())*a.H +
		float64(d.P())*a.P + float64(d.P1())*a.P1 + float64(d.Shift())*math.Pi/2.0

	u := float64(w.XiCoef)*a.Xi + float64(w.NuCoef)*a.Nu +
		float64(w.NuPrimeCoef)*a.NuPrime + float64(w.NuSecCoef)*a.NuSec +
		float64(w.RCoef)*a.R
	if w.USpecial == USpecialM1 {
		u -= math.Atan(1.0 / math.Sqrt(2.310+1.435*math.Cos(2.0*(a.P-a.Xi))))
	}

	f := evalFactorLaw(w.Factor, a)

	return Correction{F: f, U: u, V: v}
}

// Table is an ordered, immutable collection of waves selected for one
// engine family (Darwin or Doodson/Perth). Tables are built once by
// NewTable and are safe for concurrent read-only use; per-worker state
// (nodal corrections at a given instant) lives in a TableState, not here.
type Table struct {
	waves       []Wave
	byFrequency []int // indices into waves, sorted ascending by frequency
	byID        map[constituent.ID]int
}

// NewTable builds a Table from an unordered list of waves.
func NewTable(waves []Wave) *Table {
	t := &Table{
		waves: append([]Wave(nil), waves...),
		byID:  make(map[constituent.ID]int, len(waves)),
	}
	t.byFrequency = make([]int, len(waves))
	for i, w := range t.waves {
		t.byID[w.ID] = i
		t.byFrequency[i] = i
	}
	sort.Slice(t.byFrequency, func(i, j int) bool {
		return t.waves[t.byFrequency[i]].Frequency() < t.waves[t.byFrequency[j]].Frequency()
	})
	return t
}

// Len returns the number of waves in the table.
func (t *Table) Len() int { return len(t.waves) }

// Waves returns the table's waves in frequency-ascending order.
func (t *Table) Waves() []Wave {
	out := make([]Wave, len(t.byFrequency))
	for i, idx := range t.byFrequency {
		out[i] = t.waves[idx]
	}
	return out
}

// Get returns the wave with the given constituent ID and whether it is
// present in the table.
func (t *Table) Get(id constituent.ID) (Wave, bool) {
	idx, ok := t.byID[id]
	if !ok {
		return Wave{}, false
	}
	return t.waves[idx], true
}

// SelectForAnalysis applies the Rayleigh criterion to t's waves over an
// observation span of durationHours: two waves are considered separable
// only if their frequencies differ by at least 1/durationHours cycles per
// hour (360/durationHours degrees per hour) times the Rayleigh factor.
// Waves that cannot be separated from a lower-frequency neighbor already
// selected are dropped, mirroring the reference library's
// select_waves_for_analysis binding (src/core/darwin/table.cpp).
func (t *Table) SelectForAnalysis(durationHours, rayleigh float64) []Wave {
	sorted := t.Waves()
	if len(sorted) == 0 || durationHours <= 0 {
		return sorted
	}
	minSeparation := rayleigh * 360.0 / durationHours

	selected := make([]Wave, 0, len(sorted))
	selected = append(selected, sorted[0])
	for i := 1; i < len(sorted); i++ {
		prev := selected[len(selected)-1]
		if sorted[i].Frequency()-prev.Frequency() >= minSeparation {
			selected = append(selected, sorted[i])
		}
	}
	return selected
}
