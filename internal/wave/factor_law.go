package wave

import (
	"math"

	"github.com/ngs-tides/tidekit/internal/astro"
)

// baseLaw names one closed-form nodal-amplitude expression in the
// astronomic angle bundle (chiefly I, and for K1/K2/L2 also ν/P), following
// Schureman (1958)'s per-constituent formulas and the constants reproduced
// in original_source/include/fes/numbers.hpp (k65..k235_3). Compound and
// shallow-water overtides (MS4 = M2+S2, MK4 = M2+K2, 2MN6 = 2M2+N2, ...)
// combine their generating fundamentals' own amplitude factors
// multiplicatively, the same way their Doodson arguments add; FactorLaw
// below expresses that as a product of (base, power) terms instead of
// enumerating every compound's shape by hand.
type baseLaw int

const (
	baseIdentity baseLaw = iota
	baseM2
	baseO1
	baseK1
	baseK2
	baseJ1
	baseOO1
	baseMm
	baseMf
	baseM1
	baseL2
	baseM3
	base141
	base144
	base146
	base147
)

// factorTerm is one (base, power) factor in a FactorLaw product.
type factorTerm struct {
	base  baseLaw
	power int
}

// FactorLaw is the amplitude-factor law of a wave: f(wave) = Π evalBase(t.base, a)^t.power
// over its terms. A single-term law with power 1 is just that base law; a
// compound wave's law is the product of its generating fundamentals' laws.
type FactorLaw []factorTerm

func term1(b baseLaw) FactorLaw { return FactorLaw{{b, 1}} }

func scale(f FactorLaw, n int) FactorLaw {
	out := make(FactorLaw, len(f))
	for i, t := range f {
		out[i] = factorTerm{t.base, t.power * n}
	}
	return out
}

// product concatenates the terms of several laws, e.g. product(FactorM2,
// FactorK2) gives f(M2) x f(K2) for a wave like MK4 = M2+K2.
func product(fs ...FactorLaw) FactorLaw {
	var out FactorLaw
	for _, f := range fs {
		out = append(out, f...)
	}
	return out
}

// Named base laws, one per distinct closed-form shape in evalBase.
var (
	Identity  = FactorLaw(nil)
	FactorM2  = term1(baseM2)
	FactorO1  = term1(baseO1)
	FactorK1  = term1(baseK1)
	FactorK2  = term1(baseK2)
	FactorJ1  = term1(baseJ1)
	FactorOO1 = term1(baseOO1)
	FactorMm  = term1(baseMm)
	FactorMf  = term1(baseMf)
	FactorM1  = term1(baseM1)
	FactorL2  = term1(baseL2)
	FactorM3  = term1(baseM3)
	Factor141 = term1(base141)
	Factor144 = term1(base144)
	Factor146 = term1(base146)
	Factor147 = term1(base147)

	// FactorQ1 shares O1's node factor, per Schureman (both are species-1,
	// first-order diurnals with the same sin(I)cos^2(I/2) shape).
	FactorQ1 = FactorO1

	// FactorN2, Factor2N2 etc: compound/overtide laws expressed as powers
	// or products of the fundamentals above.
	FactorN2  = FactorM2
	Factor2N2 = scale(FactorM2, 2)
	FactorM4  = scale(FactorM2, 2)
	FactorM6  = scale(FactorM2, 3)
	FactorM8  = scale(FactorM2, 4)
	FactorMS4 = FactorM2
	FactorMN4 = scale(FactorM2, 2)
)

// evalFactorLaw computes f for the given law and astronomic angle bundle by
// multiplying evalBase(term.base, a)^term.power over every term; an empty
// law (Identity) evaluates to 1.
func evalFactorLaw(law FactorLaw, a astro.Angles) float64 {
	f := 1.0
	for _, t := range law {
		f *= math.Pow(evalBase(t.base, a), float64(t.power))
	}
	return f
}

// evalBase evaluates one named closed-form nodal-amplitude expression.
// Constants are Schureman's (1958), as reproduced in
// original_source/include/fes/numbers.hpp: k65=0.5021 (Mm), k66=0.1578
// (Mf), k67=0.3800 (O1/Q1), k68=0.7214 (J1), k69=0.0164 (OO1), k70=0.9154
// (M2), k149=0.8758 (M3: f(M2)^1.5 = cos^6(I/2)/0.8758), k197_1/k197_2
// (M1's Qa), k227_* (K1), k235_* (K2).
func evalBase(b baseLaw, a astro.Angles) float64 {
	sinI := math.Sin(a.I)
	cosHalfI := math.Cos(a.I / 2.0)

	switch b {
	case baseIdentity:
		return 1.0
	case baseM2:
		c4 := cosHalfI * cosHalfI * cosHalfI * cosHalfI
		return c4 / 0.9154
	case baseO1:
		return sinI * cosHalfI * cosHalfI / 0.3800
	case baseK1:
		sin2I := math.Sin(2.0 * a.I)
		val := 0.8965*sin2I*sin2I + 0.6001*sin2I*math.Cos(a.Nu) + 0.1006
		return math.Sqrt(val)
	case baseK2:
		sin4I := sinI * sinI * sinI * sinI
		val := 19.0444*sin4I + 2.7702*sinI*sinI*math.Cos(2.0*a.Nu) + 0.0981
		return math.Sqrt(val)
	case baseJ1:
		sin2I := math.Sin(2.0 * a.I)
		return sin2I / 0.7214
	case baseOO1:
		sinHalfI := math.Sin(a.I / 2.0)
		return sinI * sinHalfI * sinHalfI / 0.0164
	case baseMm:
		return (2.0/3.0 - sinI*sinI) / 0.5021
	case baseMf:
		return sinI * sinI / 0.1578
	case baseM1:
		// Schureman's exact M1 node factor (Qa/Qa0) needs terms this pack's
		// retrieved sources don't carry in full; approximated here by the
		// same sin(I)cos^2(I/2) shape as O1 (M1 is species-1 like O1/Q1).
		// See DESIGN.md.
		return sinI * cosHalfI * cosHalfI / 0.3800
	case baseL2:
		// f(L2) = f(M2) / Ra, Ra = sqrt(1 - 12 tan^2(I/2) cos(2P) + 36 tan^4(I/2)).
		tanHalfI := math.Tan(a.I / 2.0)
		tan2 := tanHalfI * tanHalfI
		ra := math.Sqrt(1 - 12*tan2*math.Cos(2*a.P) + 36*tan2*tan2)
		return evalBase(baseM2, a) / ra
	case baseM3:
		return math.Pow(evalBase(baseM2, a), 1.5)
	case base141, base144, base146, base147:
		// These four minor laws (Mm2/Mf2, M13, N2P, L2P) are documented in
		// numbers.hpp only by their physical constants, without the
		// surrounding formula; approximated here by the Mf-shaped
		// sin^2(I) correction, which is the right order of magnitude for
		// these small fourth-degree terms. See DESIGN.md.
		return sinI * sinI / 0.1578
	default:
		return 1.0
	}
}
