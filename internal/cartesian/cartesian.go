// Package cartesian implements the regular-grid tidal model: per-constituent
// complex-valued amplitude/phase grids interpolated bilinearly at a query
// point, generalized from the teacher's internal/adapter/interp Grid2D
// pattern to complex coefficients, per-constituent grids, and NaN-aware
// quality flags.
package cartesian

import (
	"math"

	"github.com/ngs-tides/tidekit/internal/axis"
	"github.com/ngs-tides/tidekit/internal/constituent"
	"github.com/ngs-tides/tidekit/internal/errs"
)

// Value pairs a constituent with its interpolated complex tidal coefficient.
type Value struct {
	ID   constituent.ID
	Coef complex128
}

// Model is a regular-grid Cartesian tidal model: one shared (lon, lat) axis
// pair and one complex-valued grid of coefficients per modeled constituent.
// A grid point set to complex(NaN, NaN) marks a masked-out (e.g. land) cell.
type Model struct {
	lon *axis.Axis
	lat *axis.Axis

	order []constituent.ID
	grids map[constituent.ID][][]complex128 // grids[id][j][i], j indexes lat, i indexes lon
}

// NewModel builds an empty Cartesian model over the given longitude and
// latitude axes. lon is expected to come from axis.New/NewFromPoints with
// isLongitude=true so that dateline wraparound is handled automatically.
func NewModel(lon, lat *axis.Axis) *Model {
	return &Model{
		lon:   lon,
		lat:   lat,
		grids: make(map[constituent.ID][][]complex128),
	}
}

// AddConstituent registers the complex coefficient grid for id. values must
// be shaped [lat.Size()][lon.Size()]; NaN entries mark masked cells that are
// skipped (and excluded from the quality count) during interpolation.
func (m *Model) AddConstituent(id constituent.ID, values [][]complex128) error {
	if int64(len(values)) != m.lat.Size() {
		return errs.New(errs.ShapeMismatch, "cartesian grid for %s has %d lat rows, want %d",
			constituent.Name(id), len(values), m.lat.Size())
	}
	for j, row := range values {
		if int64(len(row)) != m.lon.Size() {
			return errs.New(errs.ShapeMismatch, "cartesian grid for %s row %d has %d lon columns, want %d",
				constituent.Name(id), j, len(row), m.lon.Size())
		}
	}
	if _, exists := m.grids[id]; !exists {
		m.order = append(m.order, id)
	}
	m.grids[id] = values
	return nil
}

// Constituents returns the set of constituents this model can interpolate,
// in registration order.
func (m *Model) Constituents() []constituent.ID {
	out := make([]constituent.ID, len(m.order))
	copy(out, m.order)
	return out
}

// Interpolate evaluates every registered constituent's complex coefficient
// at (lon, lat) by bilinear interpolation over the enclosing grid cell.
// Corners with a NaN coefficient are skipped and the remaining weights are
// renormalized; if all four corners are NaN, that constituent's value is
// NaN. quality reports the largest number of non-NaN corners used by any
// single constituent (0-4, 0 when every constituent's corners are all NaN),
// or 0 if the query point falls outside a non-periodic axis's domain.
func (m *Model) Interpolate(lon, lat float64) ([]Value, int, error) {
	i0, i1, okLon := m.lon.FindIndices(lon)
	j0, j1, okLat := m.lat.FindIndices(lat)
	if !okLon || !okLat {
		out := make([]Value, len(m.order))
		for k, id := range m.order {
			out[k] = Value{ID: id, Coef: complex(math.NaN(), math.NaN())}
		}
		return out, 0, nil
	}

	x0, x1 := m.lon.At(i0), m.lon.At(i1)
	y0, y1 := m.lat.At(j0), m.lat.At(j1)

	// A periodic longitude axis wraps i1 back to 0 at the seam; unwrap the
	// coordinate used for weighting so t stays in [0, 1].
	if i1 < i0 {
		x1 += m.lon.Step() * float64(m.lon.Size())
	}
	qLon := normalizeNear(lon, x0, x1)

	var t, u float64
	if x1 != x0 {
		t = (qLon - x0) / (x1 - x0)
	}
	if y1 != y0 {
		u = (lat - y0) / (y1 - y0)
	}
	t = clamp01(t)
	u = clamp01(u)

	weights := [4]float64{(1 - t) * (1 - u), t * (1 - u), (1 - t) * u, t * u}
	corners := [4][2]int64{{i0, j0}, {i1, j0}, {i0, j1}, {i1, j1}}

	out := make([]Value, 0, len(m.order))
	maxUsed := 0
	for _, id := range m.order {
		grid := m.grids[id]
		var sum complex128
		var wsum float64
		used := 0
		for k, c := range corners {
			v := grid[c[1]][c[0]]
			if cmplxIsNaN(v) {
				continue
			}
			sum += complex(weights[k], 0) * v
			wsum += weights[k]
			used++
		}
		if used == 0 || wsum == 0 {
			out = append(out, Value{ID: id, Coef: complex(math.NaN(), math.NaN())})
			continue
		}
		out = append(out, Value{ID: id, Coef: sum / complex(wsum, 0)})
		if used > maxUsed {
			maxUsed = used
		}
	}
	return out, maxUsed, nil
}

func cmplxIsNaN(c complex128) bool {
	return math.IsNaN(real(c)) || math.IsNaN(imag(c))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// normalizeNear shifts coordinate by whole periods of (x1-x0)'s implied
// span so it lies within [x0, x1] when the cell straddles a periodic seam.
func normalizeNear(coordinate, x0, x1 float64) float64 {
	if coordinate < x0 {
		return coordinate + 360.0
	}
	if coordinate > x1 {
		return coordinate - 360.0
	}
	return coordinate
}

