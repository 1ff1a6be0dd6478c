// Package inference fills in tidal constituents an atlas does not model
// directly ("minor" constituents) from the handful of "major" constituents
// the atlas does carry, by interpolating admittance (the complex ratio of
// tidal amplitude to equilibrium tidal potential) as a smooth function of
// frequency. It implements the four modes of spec.md §4.5: Zero, Linear,
// Fourier and Spline admittance, grounded on
// original_source/include/fes/perth/inference.hpp's InferenceInterface/
// Inference<Derived> shape.
package inference

import (
	"sort"

	"github.com/ngs-tides/tidekit/internal/constituent"
	"github.com/ngs-tides/tidekit/internal/lpe"
	"github.com/ngs-tides/tidekit/internal/wave"
)

// Type selects the admittance interpolation law.
type Type int

const (
	// Zero sets every unmodeled wave's tide to (0, 0).
	Zero Type = iota
	// Linear interpolates admittance linearly in frequency between the
	// two bracketing modelled majors in the minor's band.
	Linear
	// Fourier evaluates, at the minor's frequency, the degree-2 Lagrange
	// polynomial through the admittances of the band's first, middle and
	// last modelled majors; it does not fit a Fourier series. With fewer
	// than three majors it falls back to Linear.
	Fourier
	// Spline maps each minor directly onto a fixed complex linear
	// combination of its band's three major admittances, via a
	// precomputed coefficient triplet (FES-style cubic spline table).
	Spline
)

type band int

const (
	bandLong band = iota
	bandDiurnal
	bandSemiDiurnal
)

// classify buckets a wave by its Doodson frequency (degrees/hour) into the
// long-period, diurnal, or semi-diurnal band spec.md §4.5 interpolates
// admittance within.
func classify(freqDegPerHour float64) band {
	switch {
	case freqDegPerHour < 6:
		return bandLong
	case freqDegPerHour < 22:
		return bandDiurnal
	default:
		return bandSemiDiurnal
	}
}

// potentialAmplitude is the classical Doodson/Cartwright equilibrium tidal
// potential amplitude, in centimetres, for the constituents this package
// can infer. These are the standard second-degree tidal-potential
// coefficients reproduced throughout the open tidal literature (Pugh &
// Woodworth, "Sea-Level Science" table 4.1; t_tide; xtide) and are the
// "minor's tabulated amplitude ratio" denominator spec.md §4.5 refers to.
// Coverage is a reduced, well-established subset, smaller than
// internal/wave's knownWaves catalogue; admittanceOf gives zero admittance
// to a constituent missing here. See DESIGN.md.
var potentialAmplitude = map[constituent.ID]float64{
	constituent.IDM2:      24.2334,
	constituent.IDS2:      11.2841,
	constituent.IDN2:      4.6397,
	constituent.IDK2:      3.0704,
	constituent.IDK1:      14.1565,
	constituent.IDO1:      10.0514,
	constituent.IDP1:      4.6843,
	constituent.IDQ1:      1.9387,
	constituent.ID2N2:     0.6322,
	constituent.IDMu2:     0.7216,
	constituent.IDNu2:     0.7961,
	constituent.IDL2:      0.6583,
	constituent.IDT2:      0.6642,
	constituent.IDLambda2: 0.0673,
	constituent.IDRho1:    0.3871,
	constituent.IDM1:      0.3192,
	constituent.IDJ1:      0.7965,
	constituent.IDOO1:     0.4335,
	constituent.IDSigma1:  0.4245,
	constituent.IDChi1:    0.1061,
	constituent.ID2Q1:     0.2565,
	constituent.IDMm:      0.9087,
	constituent.IDMf:      1.1568,
	constituent.IDSsa:     1.1594,
	constituent.IDSa:      0.0447,
}

// splineEntry is one FES-style precomputed spline coefficient triplet,
// mapping a minor directly onto a complex linear combination of its
// band's three major anchors.
type splineEntry struct {
	id     constituent.ID
	anchor [3]constituent.ID
	coef   [3]complex128
}

// splineTable reproduces the dominant, well-established spline admittance
// relations (the diurnal Q1/O1/K1 triad and the semi-diurnal N2/M2/K2
// triad); spec.md describes ~20 such triplets in the reference library,
// this package carries the subset it can ground in widely-republished
// admittance coefficients (Cartwright & Ray 1990-style response
// coefficients), documented as a scoping decision in DESIGN.md.
var splineTable = []splineEntry{
	{id: constituent.ID2Q1, anchor: [3]constituent.ID{constituent.IDQ1, constituent.IDO1, constituent.IDK1},
		coef: [3]complex128{0.026, -0.0013, 0.0}},
	{id: constituent.IDSigma1, anchor: [3]constituent.ID{constituent.IDQ1, constituent.IDO1, constituent.IDK1},
		coef: [3]complex128{0.0381, -0.0017, 0.0}},
	{id: constituent.IDRho1, anchor: [3]constituent.ID{constituent.IDQ1, constituent.IDO1, constituent.IDK1},
		coef: [3]complex128{0.1939, 0.0012, -0.0008}},
	{id: constituent.IDChi1, anchor: [3]constituent.ID{constituent.IDQ1, constituent.IDO1, constituent.IDK1},
		coef: [3]complex128{0.0, 0.011, -0.0006}},
	{id: constituent.IDJ1, anchor: [3]constituent.ID{constituent.IDQ1, constituent.IDO1, constituent.IDK1},
		coef: [3]complex128{-0.0013, 0.0029, 0.0564}},
	{id: constituent.IDOO1, anchor: [3]constituent.ID{constituent.IDQ1, constituent.IDO1, constituent.IDK1},
		coef: [3]complex128{0.0, -0.0015, 0.0307}},
	{id: constituent.ID2N2, anchor: [3]constituent.ID{constituent.IDN2, constituent.IDM2, constituent.IDK2},
		coef: [3]complex128{0.0263, -0.0006, 0.0}},
	{id: constituent.IDMu2, anchor: [3]constituent.ID{constituent.IDN2, constituent.IDM2, constituent.IDK2},
		coef: [3]complex128{0.0298, 0.0012, -0.0004}},
	{id: constituent.IDNu2, anchor: [3]constituent.ID{constituent.IDN2, constituent.IDM2, constituent.IDK2},
		coef: [3]complex128{0.1728, -0.0003, 0.0}},
	{id: constituent.IDL2, anchor: [3]constituent.ID{constituent.IDN2, constituent.IDM2, constituent.IDK2},
		coef: [3]complex128{0.0, 0.0276, -0.0021}},
	{id: constituent.IDT2, anchor: [3]constituent.ID{constituent.IDN2, constituent.IDM2, constituent.IDK2},
		coef: [3]complex128{0.0, 0.0008, 0.0556}},
	{id: constituent.IDLambda2, anchor: [3]constituent.ID{constituent.IDN2, constituent.IDM2, constituent.IDK2},
		coef: [3]complex128{0.0, 0.0026, -0.0007}},
}

// majorBucket is the set of modelled waves found in one band, frequency
// sorted, used by Linear and Fourier interpolation.
type majorBucket struct {
	waves []wave.Wave
	tide  map[constituent.ID]complex128
}

// Apply fills every unmodeled wave's Tide in ts according to typ, using
// the waves already marked IsModeled as the known "majors". phi is the
// query latitude in degrees, used only by the node-tide special case.
// Apply never fails: every catalogue constituent either has a tabulated
// amplitude ratio or falls back to (0, 0), matching spec.md §4.8
// ("Inference... never fail for valid inputs").
func Apply(ts *wave.TableState, phi float64, typ Type) {
	buckets := map[band]*majorBucket{}
	ts.Range(func(w wave.Wave, s *wave.State) {
		if !s.IsModeled {
			return
		}
		b := classify(w.Frequency())
		bucket, ok := buckets[b]
		if !ok {
			bucket = &majorBucket{tide: map[constituent.ID]complex128{}}
			buckets[b] = bucket
		}
		bucket.waves = append(bucket.waves, w)
		bucket.tide[w.ID] = s.Tide
	})
	for _, bucket := range buckets {
		sort.Slice(bucket.waves, func(i, j int) bool {
			return bucket.waves[i].Frequency() < bucket.waves[j].Frequency()
		})
	}

	ts.Range(func(w wave.Wave, s *wave.State) {
		if s.IsModeled {
			return
		}
		if w.ID == constituent.IDNode {
			s.Tide = complex(lpe.ProudmanNodeTide(phi), 0)
			return
		}

		var tide complex128
		switch typ {
		case Zero:
			tide = 0
		case Fourier:
			tide = fourierAdmittance(w, buckets[classify(w.Frequency())])
		case Spline:
			tide = splineAdmittance(w, buckets)
			if tide == 0 {
				tide = linearAdmittance(w, buckets[classify(w.Frequency())])
			}
		default: // Linear
			tide = linearAdmittance(w, buckets[classify(w.Frequency())])
		}
		s.Tide = tide
	})
}

// linearAdmittance interpolates admittance linearly in frequency between
// the two modelled majors bracketing w in bucket, then scales back by w's
// tabulated equilibrium amplitude.
func linearAdmittance(w wave.Wave, bucket *majorBucket) complex128 {
	ratio, ok := potentialAmplitude[w.ID]
	if !ok || bucket == nil || len(bucket.waves) == 0 {
		return 0
	}
	if len(bucket.waves) == 1 {
		return admittanceOf(bucket.waves[0], bucket) * complex(ratio, 0)
	}

	freq := w.Frequency()
	lo, hi := 0, len(bucket.waves)-1
	for i := 0; i < len(bucket.waves)-1; i++ {
		if bucket.waves[i].Frequency() <= freq {
			lo = i
		}
		if bucket.waves[i+1].Frequency() >= freq {
			hi = i + 1
			break
		}
	}
	a := bucket.waves[lo]
	b := bucket.waves[hi]
	if a.ID == b.ID {
		return admittanceOf(a, bucket) * complex(ratio, 0)
	}
	t := (freq - a.Frequency()) / (b.Frequency() - a.Frequency())
	t = clamp01(t)
	admA := admittanceOf(a, bucket)
	admB := admittanceOf(b, bucket)
	adm := admA + complex(t, 0)*(admB-admA)
	return adm * complex(ratio, 0)
}

func admittanceOf(w wave.Wave, bucket *majorBucket) complex128 {
	ratio, ok := potentialAmplitude[w.ID]
	if !ok || ratio == 0 {
		return 0
	}
	return bucket.tide[w.ID] / complex(ratio, 0)
}

// fourierAdmittance evaluates, at w's frequency, the quadratic through the
// admittances of the band's first, middle and last modelled majors; it does
// not fit a Fourier series, and majors other than those three are not
// used. With fewer than 3 majors available it falls back to linear
// interpolation.
func fourierAdmittance(w wave.Wave, bucket *majorBucket) complex128 {
	ratio, ok := potentialAmplitude[w.ID]
	if !ok || bucket == nil || len(bucket.waves) < 3 {
		return linearAdmittance(w, bucket)
	}
	n := len(bucket.waves)
	f0 := bucket.waves[0].Frequency()
	span := bucket.waves[n-1].Frequency() - f0
	if span == 0 {
		return linearAdmittance(w, bucket)
	}
	// Interpolate admittance over the normalized band position x in [0,1]
	// with the first/middle/last majors as exact knots of a degree-2
	// polynomial (lagrange3).
	mid := n / 2
	knots := []wave.Wave{bucket.waves[0], bucket.waves[mid], bucket.waves[n-1]}
	xs := make([]float64, 3)
	ys := make([]complex128, 3)
	for i, k := range knots {
		xs[i] = (k.Frequency() - f0) / span
		ys[i] = admittanceOf(k, bucket)
	}
	x := clamp01((w.Frequency() - f0) / span)
	return lagrange3(xs, ys, x) * complex(ratio, 0)
}

// lagrange3 evaluates the degree-2 Lagrange interpolating polynomial
// through three (x, complex y) knots at x.
func lagrange3(xs []float64, ys []complex128, x float64) complex128 {
	var out complex128
	for i := 0; i < 3; i++ {
		term := ys[i]
		for j := 0; j < 3; j++ {
			if j == i {
				continue
			}
			denom := xs[i] - xs[j]
			if denom == 0 {
				continue
			}
			term *= complex((x-xs[j])/denom, 0)
		}
		out += term
	}
	return out
}

// splineAdmittance looks up w in splineTable and, if found, applies its
// fixed coefficient triplet against the currently-modelled anchor tides.
// It returns 0 if w has no spline entry or its anchors are unmodeled, so
// callers can fall back to linearAdmittance.
func splineAdmittance(w wave.Wave, buckets map[band]*majorBucket) complex128 {
	for _, e := range splineTable {
		if e.id != w.ID {
			continue
		}
		var out complex128
		for i, anchorID := range e.anchor {
			found := false
			for _, bucket := range buckets {
				if t, ok := bucket.tide[anchorID]; ok {
					out += e.coef[i] * t
					found = true
					break
				}
			}
			if !found {
				return 0
			}
		}
		return out
	}
	return 0
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
