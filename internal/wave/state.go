package wave

import (
	"github.com/ngs-tides/tidekit/internal/astro"
	"github.com/ngs-tides/tidekit/internal/constituent"
)

// State is a wave's mutable per-evaluation data: the nodal correction
// triple plus the tidal coefficient loaded from an atlas and whether that
// coefficient came from the atlas (modeled) or from admittance inference.
// Per spec.md §3/§9, this is kept separate from the immutable catalogue
// Wave so one Table can be shared read-only across workers while each
// worker owns its own State slice.
type State struct {
	F         float64
	U         float64
	V         float64
	Tide      complex128
	IsModeled bool
}

// TableState is a worker-local mutable overlay on a shared, read-only
// Table: one State per wave, indexed the same way the Table orders its
// waves. Building a TableState never copies the Table itself, matching
// spec.md §5 ("a clone of the wave table... constituent data is
// shared-immutable").
type TableState struct {
	table  *Table
	states []State
}

// NewState allocates a zeroed TableState over t.
func (t *Table) NewState() *TableState {
	return &TableState{table: t, states: make([]State, len(t.waves))}
}

// Table returns the immutable Table this TableState overlays.
func (ts *TableState) Table() *Table { return ts.table }

// Get returns the wave and its current state for id.
func (ts *TableState) Get(id constituent.ID) (Wave, State, bool) {
	idx, ok := ts.table.byID[id]
	if !ok {
		return Wave{}, State{}, false
	}
	return ts.table.waves[idx], ts.states[idx], true
}

// SetTide loads an atlas-derived complex coefficient onto id's state and
// marks it modeled. It reports whether id is present in the underlying
// Table.
func (ts *TableState) SetTide(id constituent.ID, tide complex128) bool {
	idx, ok := ts.table.byID[id]
	if !ok {
		return false
	}
	ts.states[idx].Tide = tide
	ts.states[idx].IsModeled = true
	return true
}

// SetInferred sets an inference-derived complex coefficient onto id's
// state without marking it modeled, matching spec.md's is_modeled
// "came from atlas vs. inferred" distinction.
func (ts *TableState) SetInferred(id constituent.ID, tide complex128) bool {
	idx, ok := ts.table.byID[id]
	if !ok {
		return false
	}
	ts.states[idx].Tide = tide
	ts.states[idx].IsModeled = false
	return true
}

// Range calls fn once per wave in table order, passing a pointer into the
// TableState's own State slice so fn may mutate it in place (used by
// inference to fill unmodeled minors and by the evaluator to apply nodal
// corrections).
func (ts *TableState) Range(fn func(w Wave, s *State)) {
	for i, w := range ts.table.waves {
		fn(w, &ts.states[i])
	}
}

// ApplyNodalCorrections computes (f, u, v) for every wave in the table at
// astronomic angle bundle a and stores them onto each wave's state,
// leaving Tide/IsModeled untouched. groupModulations is accepted but not
// used: no engine family in this module applies side-band group
// modulations, so f and u are the plain nodal corrections for both the
// Darwin and the Doodson/Perth tables.
func (ts *TableState) ApplyNodalCorrections(a astro.Angles, groupModulations bool) {
	_ = groupModulations
	for i, w := range ts.table.waves {
		c := ComputeNodalCorrections(w, a)
		ts.states[i].F = c.F
		ts.states[i].U = c.U
		ts.states[i].V = c.V
	}
}
