// Package lgp implements the unstructured-triangle tidal model: LGP1
// (piecewise-linear, 3 dofs/triangle) and LGP2 (piecewise-quadratic, 6
// dofs/triangle) barycentric interpolation over a mesh.Index, with
// inverse-distance-weighted nearest-vertex extrapolation outside the mesh
// and an optional bounding-box dof filter, grounded on
// original_source/include/fes/tidal_model/lgp.hpp and spec.md §4.3.2.
package lgp

import (
	"math"

	"github.com/ngs-tides/tidekit/internal/constituent"
	"github.com/ngs-tides/tidekit/internal/errs"
	"github.com/ngs-tides/tidekit/internal/mesh"
)

// Value pairs a constituent with its interpolated complex tidal coefficient.
type Value struct {
	ID   constituent.ID
	Coef complex128
}

// Model is an LGP1 (N=1) or LGP2 (N=2) unstructured tidal model: a mesh
// index plus a (T x 3N) matrix of LGP dof codes mapping each triangle to
// its degrees of freedom in a global dof vector, and a complex coefficient
// vector per modeled constituent.
type Model struct {
	index *mesh.Index
	n     int // 1 or 2
	codes [][]int32

	order  []constituent.ID
	coeffs map[constituent.ID][]complex128

	maxDistanceKm float64
	bbox          *BoundingBox
	dofIndex      map[int32]int32 // set only when bbox is active: global code -> compact slot
}

// BoundingBox restricts an LGP model to a compact sub-domain: dofs whose
// code is not reachable through any in-box triangle return NaN.
type BoundingBox struct {
	LonMin, LonMax, LatMin, LatMax float64
}

func (b *BoundingBox) contains(lon, lat float64) bool {
	return lon >= b.LonMin && lon <= b.LonMax && lat >= b.LatMin && lat <= b.LatMax
}

// NewModel builds an empty LGP model of order n (1 or 2) over index, with
// per-triangle dof codes. codes must have one row per triangle in index,
// each of length 3*n; codes must be non-negative, matching spec.md's
// "negative LGP codes" DomainError condition.
func NewModel(index *mesh.Index, n int, codes [][]int32) (*Model, error) {
	if n != 1 && n != 2 {
		return nil, errs.New(errs.DomainError, "lgp: order must be 1 or 2, got %d", n)
	}
	if len(codes) != index.NumTriangles() {
		return nil, errs.New(errs.ShapeMismatch, "lgp: %d code rows, want %d (one per triangle)", len(codes), index.NumTriangles())
	}
	for ti, row := range codes {
		if len(row) != 3*n {
			return nil, errs.New(errs.ShapeMismatch, "lgp: triangle %d has %d dof codes, want %d", ti, len(row), 3*n)
		}
		for _, c := range row {
			if c < 0 {
				return nil, errs.New(errs.DomainError, "lgp: triangle %d has negative dof code %d", ti, c)
			}
		}
	}
	return &Model{
		index:  index,
		n:      n,
		codes:  codes,
		coeffs: make(map[constituent.ID][]complex128),
	}, nil
}

// maxCode returns the largest dof code across the whole model.
func (m *Model) maxCode() int32 {
	var max int32 = -1
	for _, row := range m.codes {
		for _, c := range row {
			if c > max {
				max = c
			}
		}
	}
	return max
}

// AddConstituent registers id's complex dof vector, which must have length
// max(code)+1.
func (m *Model) AddConstituent(id constituent.ID, coeffs []complex128) error {
	want := int(m.maxCode()) + 1
	if len(coeffs) != want {
		return errs.New(errs.ShapeMismatch, "lgp: %s coefficient vector has %d entries, want %d",
			constituent.Name(id), len(coeffs), want)
	}
	if _, exists := m.coeffs[id]; !exists {
		m.order = append(m.order, id)
	}
	m.coeffs[id] = coeffs
	return nil
}

// Constituents returns the set of constituents this model can interpolate.
func (m *Model) Constituents() []constituent.ID {
	out := make([]constituent.ID, len(m.order))
	copy(out, m.order)
	return out
}

// SetMaxDistance sets the maximum extrapolation distance, in kilometres, a
// query point may lie from the nearest mesh vertex before Interpolate
// gives up and returns quality 0.
func (m *Model) SetMaxDistance(km float64) { m.maxDistanceKm = km }

// SetBoundingBox restricts the model to box: dofs unreachable from any
// in-box triangle return NaN, and any query touching them yields quality 0,
// per spec.md §4.3.2 step 5.
func (m *Model) SetBoundingBox(box BoundingBox) {
	m.bbox = &box
	m.dofIndex = make(map[int32]int32)
	var next int32
	for ti, row := range m.codes {
		inBox := false
		for _, v := range m.index.Triangle(triangleID(ti)) {
			lon, lat := m.index.Vertex(v)
			if box.contains(lon, lat) {
				inBox = true
				break
			}
		}
		if !inBox {
			continue
		}
		for _, c := range row {
			if _, ok := m.dofIndex[c]; !ok {
				m.dofIndex[c] = next
				next++
			}
		}
	}
}

func triangleID(i int) mesh.TriangleID { return mesh.TriangleID(i) }

// Accelerator is worker-local query-acceleration state: the last triangle
// selected by Interpolate, consulted before a fresh mesh.Index lookup. Per
// spec.md §9, this is an explicit value the caller threads through, not
// global thread-local state.
type Accelerator struct {
	hasLast      bool
	lastTriangle mesh.TriangleID
}

// NewAccelerator returns an empty Accelerator.
func NewAccelerator() *Accelerator { return &Accelerator{} }

// candidateSlotCount bounds the R-tree nearest-slot query per spec.md
// §4.3.2 step 2 ("11 nearest vertex-slots").
const candidateSlotCount = 11

// Interpolate evaluates every registered constituent's complex coefficient
// at (lon, lat) following spec.md §4.3.2: barycentric (LGP1) or quadratic
// (LGP2) interpolation inside a covering triangle, inverse-distance-weighted
// extrapolation from nearby vertices outside the mesh, or quality 0 if
// neither applies.
func (m *Model) Interpolate(lon, lat float64, acc *Accelerator) ([]Value, int, error) {
	if acc == nil {
		acc = NewAccelerator()
	}

	if acc.hasLast {
		if beta, ok := m.barycentric(acc.lastTriangle, lon, lat); ok {
			return m.evalTriangle(acc.lastTriangle, beta)
		}
	}

	for _, ti := range m.index.CandidateTriangles(lon, lat, candidateSlotCount) {
		if beta, ok := m.barycentric(ti, lon, lat); ok {
			acc.hasLast = true
			acc.lastTriangle = ti
			return m.evalTriangle(ti, beta)
		}
	}

	return m.extrapolate(lon, lat)
}

// barycentric tests whether (lon, lat) falls inside triangle ti in planar
// (lon, lat) space and, if so, returns the basis weights for the model's
// order. Vertex longitudes are unwrapped into the window centred on the
// query longitude before the planar Jacobian is formed, so triangles
// straddling the antimeridian are handled correctly.
func (m *Model) barycentric(ti mesh.TriangleID, lon, lat float64) ([]float64, bool) {
	tri := m.index.Triangle(ti)
	var plon, plat [3]float64
	for c, v := range tri {
		vl, vb := m.index.Vertex(v)
		plon[c] = unwrapNear(vl, lon)
		plat[c] = vb
	}

	dLon1 := plon[1] - plon[0]
	dLat1 := plat[1] - plat[0]
	dLon2 := plon[2] - plon[0]
	dLat2 := plat[2] - plat[0]
	jac := dLon1*dLat2 - dLat1*dLon2
	if jac == 0 {
		return nil, false
	}

	dqLon := lon - plon[0]
	dqLat := lat - plat[0]

	xi := (dqLon*dLat2 - dqLat*dLon2) / jac
	eta := (dLon1*dqLat - dLat1*dqLon) / jac

	const eps = 1e-9
	if xi < -eps || eta < -eps || xi+eta > 1+eps {
		return nil, false
	}
	xi = clamp01(xi)
	eta = clamp01(eta)

	if m.n == 1 {
		return []float64{1 - xi - eta, xi, eta}, true
	}
	return []float64{
		2 * (xi + eta - 0.5) * (xi + eta - 1),
		-4 * xi * (xi + eta - 1),
		2 * xi * (xi - 0.5),
		4 * xi * eta,
		2 * eta * (eta - 0.5),
		-4 * eta * (xi + eta - 1),
	}, true
}

func (m *Model) evalTriangle(ti mesh.TriangleID, beta []float64) ([]Value, int, error) {
	row := m.codes[ti]
	out := make([]Value, 0, len(m.order))
	quality := 3 * m.n
	for _, id := range m.order {
		coeffs := m.coeffs[id]
		var sum complex128
		valid := true
		for k, code := range row {
			slot, ok := m.resolveCode(code)
			if !ok {
				valid = false
				break
			}
			sum += complex(beta[k], 0) * coeffs[slot]
		}
		if !valid {
			out = append(out, Value{ID: id, Coef: complex(math.NaN(), math.NaN())})
			quality = 0
			continue
		}
		out = append(out, Value{ID: id, Coef: sum})
	}
	return out, quality, nil
}

// resolveCode maps a global dof code to its slot in a constituent's
// coefficient vector, honoring an active bounding-box filter (spec.md
// §4.3.2 step 5): a code outside the filtered set reports !ok. The
// vectors AddConstituent stores are full length, so the slot is the code.
func (m *Model) resolveCode(code int32) (int32, bool) {
	if m.dofIndex == nil {
		return code, true
	}
	if _, ok := m.dofIndex[code]; !ok {
		return 0, false
	}
	return code, true
}

// extrapolate implements spec.md §4.3.2 step 4: re-query the R-tree for up
// to min(128, 16*(minDistanceKm/10)) neighbour slots, retain every vertex
// within maxDistanceKm, and inverse-distance-square weight their dofs.
func (m *Model) extrapolate(lon, lat float64) ([]Value, int, error) {
	if m.maxDistanceKm <= 0 {
		return m.allNaN(), 0, nil
	}
	nearest := m.index.NearestSlots(lon, lat, 1)
	if len(nearest) == 0 || nearest[0].DistanceKm > m.maxDistanceKm {
		return m.allNaN(), 0, nil
	}
	minDistanceKm := nearest[0].DistanceKm

	n := int(16 * (minDistanceKm / 10.0))
	if n < candidateSlotCount {
		n = candidateSlotCount
	}
	if n > 128 {
		n = 128
	}

	slots := m.index.NearestSlots(lon, lat, n)
	type retained struct {
		vertex mesh.VertexID
		dKm    float64
	}
	seen := make(map[mesh.VertexID]bool, len(slots))
	var kept []retained
	for _, s := range slots {
		if s.DistanceKm > m.maxDistanceKm || seen[s.Vertex] {
			continue
		}
		seen[s.Vertex] = true
		kept = append(kept, retained{vertex: s.Vertex, dKm: s.DistanceKm})
	}
	if len(kept) == 0 {
		return m.allNaN(), 0, nil
	}

	vertexCode := m.vertexCodeMap()
	out := make([]Value, 0, len(m.order))
	for _, id := range m.order {
		coeffs := m.coeffs[id]
		var sum complex128
		var wsum float64
		for _, r := range kept {
			code, ok := vertexCode[r.vertex]
			if !ok {
				continue
			}
			slot, ok := m.resolveCode(code)
			if !ok {
				continue
			}
			d := r.dKm
			if d == 0 {
				d = 1e-9
			}
			w := 1.0 / (d * d)
			sum += complex(w, 0) * coeffs[slot]
			wsum += w
		}
		if wsum == 0 {
			out = append(out, Value{ID: id, Coef: complex(math.NaN(), math.NaN())})
			continue
		}
		out = append(out, Value{ID: id, Coef: sum / complex(wsum, 0)})
	}

	used := len(kept)
	if used > 127 {
		used = 127
	}
	return out, -used, nil
}

// vertexCodeMap derives, for each vertex, the LGP1 dof code it owns (the
// corner dof, used only for extrapolation's vertex-valued lookup). LGP2
// mid-edge dofs have no single owning vertex and are not used here.
func (m *Model) vertexCodeMap() map[mesh.VertexID]int32 {
	out := make(map[mesh.VertexID]int32)
	for ti := 0; ti < m.index.NumTriangles(); ti++ {
		tri := m.index.Triangle(mesh.TriangleID(ti))
		row := m.codes[ti]
		for c, v := range tri {
			out[v] = row[c]
		}
	}
	return out
}

func (m *Model) allNaN() []Value {
	out := make([]Value, len(m.order))
	for i, id := range m.order {
		out[i] = Value{ID: id, Coef: complex(math.NaN(), math.NaN())}
	}
	return out
}

func unwrapNear(lon, near float64) float64 {
	for lon-near > 180 {
		lon -= 360
	}
	for lon-near < -180 {
		lon += 360
	}
	return lon
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
