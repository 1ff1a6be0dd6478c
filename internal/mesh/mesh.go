// Package mesh implements the unstructured-triangle spatial index the LGP
// tidal models query: an R-tree-equivalent nearest-vertex and
// candidate-triangle lookup in ECEF space, grounded on
// original_source/include/fes/mesh/index.hpp (a boost::geometry rstar index
// over per-triangle edge positions) and rebuilt here on
// github.com/golang/geo/s2's ShapeIndex + ClosestEdgeQuery, which gives the
// same logarithmic nearest-neighbour queries on the sphere without a
// hand-rolled tree.
package mesh

import (
	"sort"

	"github.com/golang/geo/s2"

	"github.com/ngs-tides/tidekit/internal/errs"
)

// VertexID indexes into the mesh's vertex list.
type VertexID int32

// TriangleID indexes into the mesh's triangle list.
type TriangleID int32

// slot is one (vertex, triangle) payload the spec calls for: the index
// stores 3*T edge-ECEF positions, one per triangle corner, so that a
// nearest-slot hit identifies both the vertex and the triangle it belongs
// to without a secondary lookup.
type slot struct {
	vertex   VertexID
	triangle TriangleID
}

// Index is an unstructured triangulation (V vertices, T triangles) with an
// s2 ShapeIndex over 3*T duplicated vertex positions (one per incident
// triangle corner), mirroring the reference library's R-tree payload
// layout. Index is immutable after NewIndex and safe for concurrent reads.
type Index struct {
	lons, lats []float64 // degrees, len V
	points     []s2.Point
	triangles  [][3]VertexID // len T

	shapeIdx *s2.ShapeIndex
	slots    []slot // len 3T, slots[i] corresponds to points of the PointVector shape
	slotPts  s2.PointVector
}

// NewIndex builds a mesh index from V vertex coordinates (degrees) and T
// triangles, each a 3-tuple of vertex indices. It returns a DomainError if
// any triangle index is out of [0, V) or fewer than 3 vertices/1 triangle
// are given.
func NewIndex(lons, lats []float64, triangles [][3]int32) (*Index, error) {
	if len(lons) != len(lats) {
		return nil, errs.New(errs.ShapeMismatch, "mesh: %d longitudes but %d latitudes", len(lons), len(lats))
	}
	if len(lons) < 3 || len(triangles) < 1 {
		return nil, errs.New(errs.DomainError, "mesh: need at least 3 vertices and 1 triangle")
	}

	idx := &Index{
		lons:      append([]float64(nil), lons...),
		lats:      append([]float64(nil), lats...),
		points:    make([]s2.Point, len(lons)),
		triangles: make([][3]VertexID, len(triangles)),
	}
	for i := range lons {
		idx.points[i] = s2.PointFromLatLng(s2.LatLngFromDegrees(lats[i], lons[i]))
	}
	for ti, tri := range triangles {
		for c := 0; c < 3; c++ {
			v := tri[c]
			if v < 0 || int(v) >= len(lons) {
				return nil, errs.New(errs.DomainError, "mesh: triangle %d vertex %d=%d out of range [0,%d)", ti, c, v, len(lons))
			}
			idx.triangles[ti][c] = VertexID(v)
		}
	}

	idx.slots = make([]slot, 0, 3*len(triangles))
	idx.slotPts = make(s2.PointVector, 0, 3*len(triangles))
	for ti, tri := range idx.triangles {
		for c := 0; c < 3; c++ {
			v := tri[c]
			idx.slots = append(idx.slots, slot{vertex: v, triangle: TriangleID(ti)})
			idx.slotPts = append(idx.slotPts, idx.points[v])
		}
	}

	idx.shapeIdx = s2.NewShapeIndex()
	idx.shapeIdx.Add(idx.slotPts)
	return idx, nil
}

// NumVertices returns V.
func (ix *Index) NumVertices() int { return len(ix.lons) }

// NumTriangles returns T.
func (ix *Index) NumTriangles() int { return len(ix.triangles) }

// Vertex returns the (lon, lat) degrees of vertex id.
func (ix *Index) Vertex(id VertexID) (lon, lat float64) {
	return ix.lons[id], ix.lats[id]
}

// Triangle returns the three vertex IDs of triangle id.
func (ix *Index) Triangle(id TriangleID) [3]VertexID {
	return ix.triangles[id]
}

// DistanceKm returns the great-circle distance, in kilometres, between
// (lon, lat) and vertex id, on the WGS84 mean radius.
func (ix *Index) DistanceKm(lon, lat float64, id VertexID) float64 {
	const earthRadiusKm = 6371.0088
	p := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
	angle := p.Distance(ix.points[id])
	return float64(angle) * earthRadiusKm
}

// NearestSlotResult is one hit from a nearest-slot query: the vertex and
// the triangle it belongs to, plus its distance from the query point.
type NearestSlotResult struct {
	Vertex     VertexID
	Triangle   TriangleID
	DistanceKm float64
}

// NearestSlots returns up to k nearest (vertex, triangle) slots to (lon,
// lat), ordered by ascending distance, following spec.md §4.3.2 step 2
// ("query R-tree for the 11 nearest vertex-slots").
func (ix *Index) NearestSlots(lon, lat float64, k int) []NearestSlotResult {
	if k <= 0 {
		return nil
	}
	target := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
	opts := s2.NewClosestEdgeQueryOptions().MaxResults(k)
	query := s2.NewClosestEdgeQuery(ix.shapeIdx, opts)
	results := query.FindEdges(s2.NewMinDistanceToPointTarget(target))

	const earthRadiusKm = 6371.0088
	out := make([]NearestSlotResult, 0, len(results))
	for _, r := range results {
		sl := ix.slots[r.EdgeID()]
		out = append(out, NearestSlotResult{
			Vertex:     sl.vertex,
			Triangle:   sl.triangle,
			DistanceKm: r.Distance().Angle().Radians() * earthRadiusKm,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out
}

// CandidateTriangles returns the deduplicated, distance-ordered set of
// triangles incident to the k nearest vertex-slots of (lon, lat).
func (ix *Index) CandidateTriangles(lon, lat float64, k int) []TriangleID {
	slots := ix.NearestSlots(lon, lat, k)
	seen := make(map[TriangleID]bool, len(slots))
	out := make([]TriangleID, 0, len(slots))
	for _, s := range slots {
		if !seen[s.Triangle] {
			seen[s.Triangle] = true
			out = append(out, s.Triangle)
		}
	}
	return out
}

