package atlasio

import "github.com/ngs-tides/tidekit/internal/constituent"

// ToConstants adapts a []StationConstituent into the
// map[constituent.ID]struct{Amplitude,PhaseDeg float64} shape
// evaluate.FromConstituents expects. A constituent.ID repeated in the
// input keeps its last occurrence, matching the teacher's loader's
// last-write-wins override semantics.
func ToConstants(cs []StationConstituent) map[constituent.ID]struct{ Amplitude, PhaseDeg float64 } {
	out := make(map[constituent.ID]struct{ Amplitude, PhaseDeg float64 }, len(cs))
	for _, c := range cs {
		out[c.ID] = struct{ Amplitude, PhaseDeg float64 }{Amplitude: c.Amplitude, PhaseDeg: c.PhaseDeg}
	}
	return out
}
