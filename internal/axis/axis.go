// Package axis implements a regular, evenly-spaced one-dimensional
// coordinate axis with optional longitude periodicity, grounded on
// original_source/include/fes/axis.hpp.
package axis

import (
	"math"

	"github.com/ngs-tides/tidekit/internal/errs"
)

// Axis describes start + i*step for i in [0, size), with optional
// longitude wraparound when the axis spans exactly one period (360°).
type Axis struct {
	start       float64
	step        float64
	size        int64
	isLongitude bool
	isAscending bool
	isPeriodic  bool
}

// New builds an Axis from explicit parameters. It returns a DomainError
// if size < 2 or step == 0, matching spec.md's "fewer than 2 axis points"
// invariant.
func New(start, step float64, size int64, isLongitude bool) (*Axis, error) {
	if size < 2 {
		return nil, errs.New(errs.DomainError, "axis must have at least 2 points, got %d", size)
	}
	if step == 0 {
		return nil, errs.New(errs.DomainError, "axis step must be non-zero")
	}
	a := &Axis{
		start:       start,
		step:        step,
		size:        size,
		isLongitude: isLongitude,
		isAscending: step > 0,
	}
	if isLongitude {
		span := math.Abs(step * float64(size))
		a.isPeriodic = math.Abs(span-360.0) < 1e-6
	}
	return a, nil
}

// NewFromPoints builds an Axis by checking that points are evenly spaced
// (within epsilon), the way the reference library's vector constructor
// does. Returns a DomainError if the points are not evenly spaced or
// there are fewer than 2.
func NewFromPoints(points []float64, isLongitude bool, epsilon float64) (*Axis, error) {
	if len(points) < 2 {
		return nil, errs.New(errs.DomainError, "axis must have at least 2 points, got %d", len(points))
	}
	step := points[1] - points[0]
	for i := 1; i < len(points); i++ {
		got := points[i] - points[i-1]
		if math.Abs(got-step) > epsilon {
			return nil, errs.New(errs.DomainError,
				"axis points are not evenly spaced: step %.9g at index %d, expected %.9g", got, i, step)
		}
	}
	return New(points[0], step, int64(len(points)), isLongitude)
}

// Size returns the number of points on the axis.
func (a *Axis) Size() int64 { return a.size }

// Step returns the spacing between consecutive points.
func (a *Axis) Step() float64 { return a.step }

// IsLongitude reports whether this axis represents longitude in degrees.
func (a *Axis) IsLongitude() bool { return a.isLongitude }

// IsPeriodic reports whether this axis is a full 360° longitude wrap.
func (a *Axis) IsPeriodic() bool { return a.isPeriodic }

// At returns the coordinate value at index; it panics if index is out of
// [0, Size()), matching the reference library's precondition (callers are
// expected to check bounds or go through FindIndex/FindIndices).
func (a *Axis) At(index int64) float64 {
	if index < 0 || index >= a.size {
		panic("axis: index out of range")
	}
	return a.start + float64(index)*a.step
}

// MinValue returns the smallest coordinate on the axis.
func (a *Axis) MinValue() float64 {
	if a.isAscending {
		return a.start
	}
	return a.At(a.size - 1)
}

// MaxValue returns the largest coordinate on the axis.
func (a *Axis) MaxValue() float64 {
	if a.isAscending {
		return a.At(a.size - 1)
	}
	return a.start
}

// normalizeCoordinate wraps coordinate into [MinValue, MinValue+360) when
// the axis is a periodic longitude axis and coordinate falls outside that
// range; otherwise it is returned unchanged.
func (a *Axis) normalizeCoordinate(coordinate float64) float64 {
	if !a.isPeriodic {
		return coordinate
	}
	min := a.MinValue()
	if coordinate >= min+360.0 || coordinate < min {
		w := math.Mod(coordinate-min, 360.0)
		if w < 0 {
			w += 360.0
		}
		return min + w
	}
	return coordinate
}

// FindIndex returns the index of the axis point closest to coordinate. If
// bounded is true, out-of-range coordinates clamp to 0 or Size()-1;
// otherwise FindIndex returns -1 for out-of-range coordinates.
func (a *Axis) FindIndex(coordinate float64, bounded bool) int64 {
	c := a.normalizeCoordinate(coordinate)
	index := int64(math.Round((c - a.start) / a.step))
	if index < 0 {
		if bounded {
			return 0
		}
		return -1
	}
	if index >= a.size {
		if bounded {
			return a.size - 1
		}
		return -1
	}
	return index
}

// FindIndices returns the bracketing pair (i0, i1) such that
// At(i0) <= coordinate < At(i1) (for an ascending axis), and ok=false if
// coordinate lies outside the axis's (possibly periodic) domain.
func (a *Axis) FindIndices(coordinate float64) (i0, i1 int64, ok bool) {
	c := a.normalizeCoordinate(coordinate)
	lo := (c - a.start) / a.step
	i0f := math.Floor(lo)
	i0 = int64(i0f)
	i1 = i0 + 1

	if a.isPeriodic {
		i0 = ((i0 % a.size) + a.size) % a.size
		i1 = (i0 + 1) % a.size
		return i0, i1, true
	}
	if i0 < 0 || i1 >= a.size {
		return 0, 0, false
	}
	return i0, i1, true
}
