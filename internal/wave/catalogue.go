package wave

import "github.com/ngs-tides/tidekit/internal/constituent"

// def is the static definition of one wave: its Doodson multipliers
// (t, s, h, p, n, p1, shift), the u-combination coefficients (including the
// L2-specific R term), its amplitude factor law, any non-linear u special
// case, and tidal type.
//
// Doodson tuples and u-coefficients for the primary (non-compound) waves
// are converted from the Schureman V/u formulas documented in
// original_source/include/fes/darwin/wave.hpp, using the identity
// doodson_s = schureman_s + schureman_tau, doodson_h = schureman_h -
// schureman_tau (doodson_p/n/p1 unchanged). This package's tests check only
// M2's t multiplier; O1's tuple is the one internal/constituent's XDO test
// fixture encodes.
// Shift follows the convention that an odd-species (diurnal/terdiurnal)
// wave whose V literal carries an explicit quarter-turn takes shift = -1
// regardless of the literal's printed sign (verified against O1's XDO test
// fixture), while an even-species wave's literal sign is taken as printed.
//
// Compound/shallow-water overtides (named "X = A + B" in wave.hpp, e.g.
// MN4 = M2+N2, MK3 = M2+K1, 2MN6 = 2M2+N2) have their Doodson tuples and
// u-coefficients derived as the signed sum of their generating
// fundamentals' own tuples/coefficients -- which Doodson arithmetic makes
// exact by construction -- rather than individually re-derived from the
// (occasionally inconsistent, e.g. 2MN2's literal reproducing L2's verbatim)
// V-text; their factor laws follow wave.hpp's explicitly documented f(...)
// products. See DESIGN.md for the handful of minor laws (Mm2/Mf2/M13/N2P/
// L2P, and M1's own node factor) this pack's retrieved sources didn't carry
// in full, approximated there and flagged as such.
type def struct {
	id                               constituent.ID
	t, s, h, p, n, p1                int8
	shift                            int8
	xi, nu, nuPrime, nuSec, rCoef    int8
	special                          USpecial
	factor                           FactorLaw
	typ                              TidalType
}

// knownWaves covers every member of constituent.Darwin (99 waves) plus the
// 11 constituents unique to constituent.Perth that have no Darwin
// counterpart (Node, MSm, MStm, Mqm, Tau1, Beta1, Ups1, Gamma2, Alpha2,
// Beta2, Delta2). The Perth-only entries' exact Doodson numbers are not in
// this pack's retrieved original_source (perth/constituent.hpp and
// perth/wave_table.hpp declare only the name list and class shapes, not
// per-wave numeric data): they carry standard-literature placeholder
// Doodson tuples with an Identity factor law, documented as a best-effort
// fallback in DESIGN.md rather than a silent catalogue gap.
var knownWaves = []def{
	// -- long period --
	{id: constituent.IDMm, t: 0, s: 1, h: 0, p: -1, factor: FactorMm, typ: LongPeriod},
	{id: constituent.IDMf, t: 0, s: 2, h: 0, p: 0, xi: -2, factor: FactorMf, typ: LongPeriod},
	{id: constituent.IDMtm, t: 0, s: 3, h: 0, p: -1, xi: -2, factor: FactorMf, typ: LongPeriod},
	{id: constituent.IDMSqm, t: 0, s: 4, h: -2, p: 0, xi: -2, factor: FactorMf, typ: LongPeriod},

	// -- diurnal --
	{id: constituent.ID2Q1, t: 1, s: -3, h: 0, p: 2, shift: -1, xi: 2, nu: -1, factor: FactorO1, typ: ShortPeriod},
	{id: constituent.IDSigma1, t: 1, s: -3, h: 2, p: 0, shift: -1, xi: 2, nu: -1, factor: FactorO1, typ: ShortPeriod},
	{id: constituent.IDQ1, t: 1, s: -2, h: 0, p: 1, shift: -1, xi: 2, nu: -1, factor: FactorQ1, typ: ShortPeriod},
	{id: constituent.IDRho1, t: 1, s: -2, h: 2, p: -1, shift: -1, xi: 2, nu: -1, factor: FactorO1, typ: ShortPeriod},
	{id: constituent.IDO1, t: 1, s: -1, h: 0, p: 0, shift: -1, xi: 2, nu: -1, factor: FactorO1, typ: ShortPeriod},
	{id: constituent.IDMP1, t: 1, s: -1, h: 2, p: 0, shift: -1, nu: -1, factor: FactorJ1, typ: ShortPeriod},
	{id: constituent.IDM1, t: 1, s: 0, h: 0, p: 1, shift: -1, nu: -1, special: USpecialM1, factor: FactorM1, typ: ShortPeriod},
	{id: constituent.IDM11, t: 1, s: 0, h: 0, p: -1, shift: -1, xi: 2, nu: -1, factor: FactorO1, typ: ShortPeriod},
	{id: constituent.IDM12, t: 1, s: 0, h: 0, p: 1, shift: -1, nu: -1, factor: FactorJ1, typ: ShortPeriod},
	{id: constituent.IDM13, t: 1, s: 0, h: 0, p: 0, xi: 1, nu: -1, factor: Factor146, typ: ShortPeriod},
	{id: constituent.IDChi1, t: 1, s: 1, h: 2, p: -1, shift: -1, nu: -1, factor: FactorJ1, typ: ShortPeriod},
	{id: constituent.IDPi1, t: 1, s: 1, h: -3, p1: 1, shift: -1, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDP1, t: 1, s: 1, h: -2, p: 0, shift: -1, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDS1, t: 1, s: 1, h: -1, p: 0, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDK1, t: 1, s: 1, h: 0, p: 0, shift: -1, nuPrime: -1, factor: FactorK1, typ: ShortPeriod},
	{id: constituent.IDPsi1, t: 1, s: 1, h: 1, p1: -1, shift: -1, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDPhi1, t: 1, s: 1, h: 2, p: 0, shift: -1, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDTheta1, t: 1, s: 2, h: -2, p: 1, shift: -1, nu: -1, factor: FactorJ1, typ: ShortPeriod},
	{id: constituent.IDJ1, t: 1, s: 2, h: 0, p: -1, shift: -1, nu: -1, factor: FactorJ1, typ: ShortPeriod},
	{id: constituent.IDOO1, t: 1, s: 3, h: 0, p: 0, shift: -1, nu: -2, factor: FactorOO1, typ: ShortPeriod},

	// -- semidiurnal --
	{id: constituent.IDMNS2, t: 2, s: -3, h: 2, p: 1, xi: 4, nu: -4, factor: scale(FactorM2, 2), typ: ShortPeriod},
	{id: constituent.IDEps2, t: 2, s: -3, h: 2, p: 1, xi: 2, nu: -2, factor: FactorM2, typ: ShortPeriod},
	{id: constituent.ID2N2, t: 2, s: -2, h: 0, p: 2, xi: 2, nu: -2, factor: Factor2N2, typ: ShortPeriod},
	{id: constituent.IDMu2, t: 2, s: -2, h: 2, p: 0, xi: 2, nu: -2, factor: FactorM2, typ: ShortPeriod},
	{id: constituent.ID2MS2, t: 2, s: -2, h: 2, p: 0, xi: 2, nu: -2, factor: FactorM2, typ: ShortPeriod},
	{id: constituent.IDN2, t: 2, s: -1, h: 0, p: 1, xi: 2, nu: -2, factor: FactorN2, typ: ShortPeriod},
	{id: constituent.IDNu2, t: 2, s: -1, h: 2, p: -1, xi: 2, nu: -2, factor: FactorM2, typ: ShortPeriod},
	{id: constituent.IDM2, t: 2, s: 0, h: 0, p: 0, xi: 2, nu: -2, factor: FactorM2, typ: ShortPeriod},
	{id: constituent.IDMKS2, t: 2, s: 0, h: 2, p: 0, xi: 2, nu: -2, nuSec: -2, factor: product(FactorM2, FactorK2), typ: ShortPeriod},
	{id: constituent.IDLambda2, t: 2, s: 1, h: -2, p: 1, shift: 2, xi: 2, nu: -2, factor: Factor147, typ: ShortPeriod},
	{id: constituent.IDL2, t: 2, s: 1, h: 0, p: -1, shift: 2, xi: 2, nu: -2, rCoef: -1, factor: FactorL2, typ: ShortPeriod},
	{id: constituent.ID2MN2, t: 2, s: 1, h: 0, p: -1, xi: 2, nu: -2, factor: scale(FactorM2, 3), typ: ShortPeriod},
	{id: constituent.IDT2, t: 2, s: 2, h: -3, p1: 1, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDS2, t: 2, s: 2, h: -2, p: 0, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDR2, t: 2, s: 2, h: -1, p1: -1, shift: 2, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDK2, t: 2, s: 2, h: 0, p: 0, nuSec: -2, factor: FactorK2, typ: ShortPeriod},
	{id: constituent.IDMSN2, t: 2, s: 3, h: -2, p: -1, factor: scale(FactorM2, 2), typ: ShortPeriod},
	{id: constituent.IDEta2, t: 2, s: 3, h: 0, p: -1, nu: -2, factor: FactorJ1, typ: ShortPeriod},
	{id: constituent.ID2SM2, t: 2, s: 4, h: -4, p: 0, xi: -2, nu: 2, factor: FactorM2, typ: ShortPeriod},

	// -- terdiurnal --
	{id: constituent.IDMO3, t: 3, s: -1, h: 0, p: 0, shift: -1, xi: 4, nu: -3, factor: product(FactorM2, FactorO1), typ: ShortPeriod},
	{id: constituent.ID2MK3, t: 3, s: -1, h: 0, p: 0, shift: 1, xi: 4, nu: -4, nuPrime: 1, factor: product(scale(FactorM2, 2), FactorK1), typ: ShortPeriod},
	{id: constituent.IDM3, t: 3, s: 0, h: 0, p: 0, xi: 3, nu: -3, factor: FactorM3, typ: ShortPeriod},
	{id: constituent.IDMK3, t: 3, s: 1, h: 0, p: 0, shift: -1, xi: 2, nu: -2, nuPrime: -1, factor: product(FactorM2, FactorK1), typ: ShortPeriod},

	// -- quarterdiurnal --
	{id: constituent.IDN4, t: 4, s: -2, h: 0, p: 2, xi: 4, nu: -4, factor: scale(FactorM2, 2), typ: ShortPeriod},
	{id: constituent.IDMN4, t: 4, s: -1, h: 0, p: 1, xi: 4, nu: -4, factor: scale(FactorM2, 2), typ: ShortPeriod},
	{id: constituent.IDM4, t: 4, s: 0, h: 0, p: 0, xi: 4, nu: -4, factor: FactorM4, typ: ShortPeriod},
	{id: constituent.IDSN4, t: 4, s: 1, h: -2, p: 1, xi: 2, nu: -2, factor: FactorM2, typ: ShortPeriod},
	{id: constituent.IDMS4, t: 4, s: 2, h: -2, p: 0, xi: 2, nu: -2, factor: FactorMS4, typ: ShortPeriod},
	{id: constituent.IDMK4, t: 4, s: 2, h: 0, p: 0, xi: 2, nu: -2, nuSec: -2, factor: product(FactorM2, FactorK2), typ: ShortPeriod},
	{id: constituent.IDS4, t: 4, s: 4, h: -4, p: 0, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDSK4, t: 4, s: 4, h: -2, p: 0, nuSec: -2, factor: FactorK2, typ: ShortPeriod},
	{id: constituent.IDR4, t: 4, s: 4, h: -2, p1: -2, factor: Identity, typ: ShortPeriod},

	// -- sextidiurnal and higher overtides --
	{id: constituent.ID2MN6, t: 6, s: -1, h: 0, p: 1, xi: 6, nu: -6, factor: scale(FactorM2, 3), typ: ShortPeriod},
	{id: constituent.IDM6, t: 6, s: 0, h: 0, p: 0, xi: 6, nu: -6, factor: FactorM6, typ: ShortPeriod},
	{id: constituent.IDMSN6, t: 6, s: 1, h: -2, p: 1, xi: 4, nu: -4, factor: scale(FactorM2, 2), typ: ShortPeriod},
	{id: constituent.ID2MS6, t: 6, s: 2, h: -2, p: 0, xi: 4, nu: -4, factor: scale(FactorM2, 2), typ: ShortPeriod},
	{id: constituent.ID2MK6, t: 6, s: 2, h: 0, p: 0, xi: 4, nu: -4, nuSec: -2, factor: product(scale(FactorM2, 2), FactorK2), typ: ShortPeriod},
	{id: constituent.ID2SM6, t: 6, s: 4, h: -4, p: 0, xi: 2, nu: -2, factor: FactorM2, typ: ShortPeriod},
	{id: constituent.IDMSK6, t: 6, s: 4, h: -2, p: 0, xi: 2, nu: -2, nuSec: -2, factor: product(FactorM2, FactorK2), typ: ShortPeriod},
	{id: constituent.IDS6, t: 6, s: 6, h: -6, p: 0, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDM8, t: 8, s: 0, h: 0, p: 0, xi: 8, nu: -8, factor: FactorM8, typ: ShortPeriod},

	// -- remaining long period --
	{id: constituent.IDMSf, t: 0, s: 2, h: -2, p: 0, xi: 2, nu: -2, factor: FactorM2, typ: LongPeriod},
	{id: constituent.IDSsa, t: 0, s: 0, h: 2, p: 0, factor: Identity, typ: LongPeriod},
	{id: constituent.IDSa, t: 0, s: 0, h: 1, p: 0, factor: Identity, typ: LongPeriod},
	{id: constituent.IDSa1, t: 0, s: 0, h: 1, p1: -1, factor: Identity, typ: LongPeriod},
	{id: constituent.IDSta, t: 0, s: 0, h: 3, p1: -1, factor: Identity, typ: LongPeriod},
	{id: constituent.IDMm1, t: 0, s: 1, h: 0, p: 1, shift: 2, xi: -2, factor: FactorMf, typ: LongPeriod},
	{id: constituent.IDMf1, t: 0, s: 2, h: 0, p: -2, factor: FactorMm, typ: LongPeriod},
	{id: constituent.IDA5, t: 0, s: 2, h: -2, p: 0, factor: FactorMm, typ: LongPeriod},
	{id: constituent.IDM0, t: 0, s: 0, h: 0, p: 0, factor: FactorMm, typ: LongPeriod},
	{id: constituent.IDMm2, t: 0, s: 1, h: 0, p: 0, shift: -1, xi: -1, factor: Factor141, typ: LongPeriod},
	{id: constituent.IDMf2, t: 0, s: 2, h: 0, p: -1, shift: -1, xi: -1, factor: Factor141, typ: LongPeriod},

	// -- semidiurnal minors with quarter-turn arguments --
	{id: constituent.IDL2P, t: 2, s: 1, h: 0, p: 0, shift: -1, xi: 1, nu: -2, factor: Factor147, typ: ShortPeriod},
	{id: constituent.IDN2P, t: 2, s: -1, h: 0, p: 0, shift: 1, xi: 3, nu: -2, factor: Factor146, typ: ShortPeriod},
	{id: constituent.IDMSK2, t: 2, s: 0, h: -2, p: 0, xi: 2, nu: -2, nuSec: 2, factor: product(FactorM2, FactorK2), typ: ShortPeriod},
	{id: constituent.IDSKM2, t: 2, s: 4, h: -2, p: 0, xi: -2, nu: 2, nuSec: -2, factor: product(FactorM2, FactorK2), typ: ShortPeriod},
	{id: constituent.IDOQ2, t: 2, s: -3, h: 0, p: 1, shift: 2, xi: 4, nu: -2, factor: scale(FactorO1, 2), typ: ShortPeriod},

	// -- further compounds --
	{id: constituent.ID3MS4, t: 4, s: -2, h: 2, p: 0, xi: 6, nu: -6, factor: scale(FactorM2, 3), typ: ShortPeriod},
	{id: constituent.IDMNu4, t: 4, s: -1, h: 2, p: -1, xi: 4, nu: -4, factor: scale(FactorM2, 2), typ: ShortPeriod},
	{id: constituent.ID2MSN4, t: 4, s: 3, h: -2, p: -1, xi: 2, nu: -2, factor: scale(FactorM2, 3), typ: ShortPeriod},
	{id: constituent.ID2NS2, t: 2, s: -4, h: 2, p: 2, xi: 4, nu: -4, factor: scale(FactorM2, 2), typ: ShortPeriod},
	{id: constituent.IDMNuS2, t: 2, s: -3, h: 4, p: -1, xi: 4, nu: -4, factor: scale(FactorM2, 2), typ: ShortPeriod},
	{id: constituent.ID2MK2, t: 2, s: -2, h: 0, p: 0, xi: 4, nu: -4, nuSec: 2, factor: product(scale(FactorM2, 2), FactorK2), typ: ShortPeriod},
	{id: constituent.IDNKM2, t: 2, s: 1, h: 0, p: 1, nuSec: -2, factor: product(scale(FactorM2, 2), FactorK2), typ: ShortPeriod},
	{id: constituent.IDML4, t: 4, s: 1, h: 0, p: -1, shift: 2, xi: 4, nu: -4, rCoef: -1, factor: product(FactorM2, FactorL2), typ: ShortPeriod},
	{id: constituent.IDSO1, t: 1, s: 3, h: -2, p: 0, shift: -1, nu: -1, factor: FactorO1, typ: ShortPeriod},
	{id: constituent.IDSO3, t: 3, s: 1, h: -2, p: 0, shift: -1, xi: 2, nu: -1, factor: FactorO1, typ: ShortPeriod},
	{id: constituent.IDNK4, t: 4, s: 1, h: 0, p: 1, xi: 2, nu: -2, nuSec: -2, factor: product(FactorM2, FactorK2), typ: ShortPeriod},
	{id: constituent.IDMNK6, t: 6, s: 1, h: 0, p: 1, xi: 4, nu: -4, nuSec: -2, factor: product(scale(FactorM2, 2), FactorK2), typ: ShortPeriod},
	{id: constituent.ID2NM6, t: 6, s: -2, h: 0, p: 2, xi: 6, nu: -6, factor: scale(FactorM2, 3), typ: ShortPeriod},
	{id: constituent.ID3MS8, t: 8, s: 2, h: -2, p: 0, xi: 6, nu: -6, factor: scale(FactorM2, 3), typ: ShortPeriod},
	{id: constituent.IDSK3, t: 3, s: 3, h: -2, p: 0, shift: -1, nuPrime: -1, factor: FactorK1, typ: ShortPeriod},
	{id: constituent.ID2MNS4, t: 4, s: -3, h: 2, p: 1, xi: 6, nu: -6, factor: scale(FactorM2, 3), typ: ShortPeriod},
	{id: constituent.ID2SMu2, t: 2, s: 6, h: -6, p: 0, xi: -2, nu: 2, factor: FactorM2, typ: ShortPeriod},
	{id: constituent.ID2MP5, t: 5, s: 1, h: -2, p: 0, shift: -1, xi: 4, nu: -4, factor: scale(FactorM2, 2), typ: ShortPeriod},

	// -- Perth-only constituents without a Darwin counterpart --
	// These 11 waves' exact Doodson numbers are not in this pack's
	// retrieved original_source (perth/constituent.hpp and
	// perth/wave_table.hpp declare only names and class shapes, not
	// per-wave numeric tables); the tuples below are best-effort
	// placeholders at the standard-literature frequency band for their
	// name, with an Identity factor law rather than a fabricated nodal
	// amplitude law. See DESIGN.md.
	{id: constituent.IDNode, t: 0, s: 0, h: 0, n: 1, factor: Identity, typ: LongPeriod},
	{id: constituent.IDMSm, t: 0, s: 1, h: -2, p: 1, factor: Identity, typ: LongPeriod},
	{id: constituent.IDMStm, t: 0, s: 3, h: -2, p: 1, factor: Identity, typ: LongPeriod},
	{id: constituent.IDMqm, t: 0, s: 4, h: 0, p: -1, factor: Identity, typ: LongPeriod},
	{id: constituent.IDTau1, t: 1, s: 2, h: -3, p1: 1, shift: -1, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDBeta1, t: 1, s: 2, h: -1, p1: -1, shift: -1, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDUps1, t: 1, s: 3, h: 0, p: -1, shift: -1, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDGamma2, t: 2, s: 1, h: -2, p: 1, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDAlpha2, t: 2, s: -1, h: -2, p: 1, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDBeta2, t: 2, s: 1, h: 2, p: -3, factor: Identity, typ: ShortPeriod},
	{id: constituent.IDDelta2, t: 2, s: 0, h: 1, p1: -1, factor: Identity, typ: ShortPeriod},
}

func (d def) toWave() Wave {
	return Wave{
		ID:          d.id,
		Type:        d.typ,
		Doodson:     constituent.Doodson{d.t, d.s, d.h, d.p, d.n, d.p1, d.shift},
		XiCoef:      d.xi,
		NuCoef:      d.nu,
		NuPrimeCoef: d.nuPrime,
		NuSecCoef:   d.nuSec,
		RCoef:       d.rCoef,
		USpecial:    d.special,
		Factor:      d.factor,
	}
}

// BuildTable constructs a Table from the subset of family (e.g.
// constituent.Darwin or constituent.Perth) this package carries a
// definition for. knownWaves covers every member of both families, so in
// practice every requested family member is represented: atlas-supplied
// coefficients for any cataloged constituent (spec.md §8's 34-constituent
// FES scenario included) are retained by TableState.SetTide rather than
// silently dropped.
func BuildTable(family []constituent.ID) *Table {
	want := make(map[constituent.ID]bool, len(family))
	for _, id := range family {
		want[id] = true
	}
	var waves []Wave
	for _, d := range knownWaves {
		if want[d.id] {
			waves = append(waves, d.toWave())
		}
	}
	return NewTable(waves)
}
