package evaluate

import (
	"math"

	"github.com/ngs-tides/tidekit/internal/astro"
	"github.com/ngs-tides/tidekit/internal/cartesian"
	"github.com/ngs-tides/tidekit/internal/constituent"
	"github.com/ngs-tides/tidekit/internal/lgp"
)

// Value pairs a constituent with its atlas-interpolated complex tidal
// coefficient, the common currency between the Cartesian and LGP atlas
// representations.
type Value struct {
	ID   constituent.ID
	Coef complex128
}

// Accelerator is worker-local query-acceleration state threaded explicitly
// through Atlas.Interpolate and the evaluator's angle computation, per
// spec.md §9 ("the accelerator / cache... a worker-local value, not global
// thread-local state"). Its LGP field is unused for a Cartesian atlas.
type Accelerator struct {
	angles     astro.Angles
	hasAngles  bool
	angleEpoch float64

	LGP *lgp.Accelerator
}

// NewAccelerator returns an empty Accelerator with its own LGP triangle
// cache, suitable for one worker's exclusive use.
func NewAccelerator() *Accelerator {
	return &Accelerator{LGP: lgp.NewAccelerator()}
}

// anglesAt returns the astronomic angle bundle for epochSeconds, reusing
// the accelerator's cached bundle if it was computed within
// timeToleranceSeconds of epochSeconds (spec.md §4.7 step 1).
func (acc *Accelerator) anglesAt(epochSeconds float64, formula astro.Formula, timeToleranceSeconds float64) astro.Angles {
	if acc.hasAngles && math.Abs(epochSeconds-acc.angleEpoch) <= timeToleranceSeconds {
		return acc.angles
	}
	acc.angles = astro.Compute(epochSeconds, formula)
	acc.angleEpoch = epochSeconds
	acc.hasAngles = true
	return acc.angles
}

// Atlas is the spatial-interpolation boundary the evaluator consumes: a
// Cartesian regular-grid model or an LGP unstructured-triangle model, both
// adapted to the same (lon, lat, accelerator) -> (values, quality) shape.
type Atlas interface {
	Interpolate(lon, lat float64, acc *Accelerator) ([]Value, int, error)
}

type cartesianAtlas struct{ model *cartesian.Model }

// FromCartesian adapts a cartesian.Model into an Atlas.
func FromCartesian(m *cartesian.Model) Atlas { return cartesianAtlas{model: m} }

func (a cartesianAtlas) Interpolate(lon, lat float64, _ *Accelerator) ([]Value, int, error) {
	values, quality, err := a.model.Interpolate(lon, lat)
	if err != nil {
		return nil, 0, err
	}
	return convertCartesian(values), quality, nil
}

func convertCartesian(values []cartesian.Value) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = Value{ID: v.ID, Coef: v.Coef}
	}
	return out
}

type lgpAtlas struct{ model *lgp.Model }

// FromLGP adapts an lgp.Model into an Atlas.
func FromLGP(m *lgp.Model) Atlas { return lgpAtlas{model: m} }

func (a lgpAtlas) Interpolate(lon, lat float64, acc *Accelerator) ([]Value, int, error) {
	if acc == nil {
		acc = NewAccelerator()
	}
	values, quality, err := a.model.Interpolate(lon, lat, acc.LGP)
	if err != nil {
		return nil, 0, err
	}
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = Value{ID: v.ID, Coef: v.Coef}
	}
	return out, quality, nil
}
