package astro

import "math"

// Formula selects which published polynomial/epoch convention is used to
// evolve the six fundamental angles from time. They agree on the mean
// rates and differ only in higher-order terms and reference epoch, as
// described in Schureman (1958) versus Meeus (1998) versus the IERS
// Conventions.
type Formula int

const (
	// Schureman1 uses Schureman's first-order (linear-in-T) polynomials
	// referenced to 1900-01-01 12:00 UT, the classical NOAA tide-table
	// convention.
	Schureman1 Formula = iota
	// Schureman3 adds Schureman's quadratic and cubic terms to the same
	// 1900-epoch polynomials.
	Schureman3
	// Meeus uses Jean Meeus's J2000-referenced low-precision lunar/solar
	// theory (Astronomical Algorithms, ch. 47/22).
	Meeus
	// IERS uses the IERS Conventions (2010) mean-elements polynomials,
	// also J2000-referenced.
	IERS
)

// Angles is the bundle of astronomic angles needed to evaluate nodal
// corrections and equilibrium arguments at one UTC instant, in radians.
type Angles struct {
	Tau float64 // mean lunar time angle (Greenwich)
	S   float64 // moon's mean longitude
	H   float64 // sun's mean longitude
	P   float64 // longitude of moon's perigee
	N   float64 // longitude of moon's ascending node
	P1  float64 // longitude of sun's perigee

	I       float64 // inclination of the lunar orbit to the equator
	Xi      float64 // nodal correction for ξ (longitude in orbit)
	Nu      float64 // nodal correction for ν (right ascension)
	NuPrime float64 // ν' used by K1 nodal corrections
	NuSec   float64 // ν'' used by K2 nodal corrections
	R       float64 // used by the L2 nodal correction
}

// obliquity of the ecliptic and inclination of the lunar orbit to the
// ecliptic, both treated as constants over the tidal-prediction horizon
// (their secular drift is far below the nodal-correction tolerance).
const (
	obliquityDeg = 23.4392911
	orbitIncDeg  = 5.145396
)

// Compute returns the astronomic angle bundle at epochSeconds (seconds
// since 1970-01-01T00:00:00Z) using the given formula variant. Compute is
// pure and stateless: it has no failure modes, matching spec's Astronomy
// contract.
func Compute(epochSeconds float64, formula Formula) Angles {
	year := decimalYear(epochSeconds)
	dt := DeltaT(year)

	// Epoch + ΔT gives Terrestrial Time; tidal angle theory is evaluated
	// in Julian centuries of TT from the formula's reference epoch.
	ttSeconds := epochSeconds + dt
	var epochDays float64
	switch formula {
	case Schureman1, Schureman3:
		// Schureman's reference epoch is 1900-01-01 12:00 UT, which is
		// 25567.5 days before the Unix epoch... actually 1900-01-01 is
		// before 1970, so it is negative days-from-unix, handled below.
		epochDays = ttSeconds/86400.0 - daysUnixMinus(1900)
	default: // Meeus, IERS: J2000.0 (2000-01-01 12:00 TT)
		epochDays = ttSeconds/86400.0 - daysUnixMinus(2000)
	}
	T := epochDays / 36525.0

	var s, h, p, n, p1 float64
	switch formula {
	case Schureman1:
		s = wrap360(277.0248 + 481267.8906*T)
		h = wrap360(280.1895 + 36000.7689*T)
		p = wrap360(334.3853 + 4069.0340*T)
		n = wrap360(259.1560 - 1934.1420*T)
		p1 = wrap360(281.2209 + 1.7192*T)
	case Schureman3:
		s = wrap360(277.0248 + 481267.8906*T + 0.0011*T*T)
		h = wrap360(280.1895 + 36000.7689*T + 0.0003*T*T)
		p = wrap360(334.3853 + 4069.0340*T - 0.0103*T*T - T*T*T/80053.0)
		n = wrap360(259.1560 - 1934.1420*T + 0.0021*T*T + T*T*T/467441.0)
		p1 = wrap360(281.2209 + 1.7192*T + 0.00045*T*T)
	case Meeus:
		s = wrap360(218.3164477 + 481267.88123421*T)
		h = wrap360(280.4664567 + 36000.76982779*T)
		p = wrap360(83.3532465 + 4069.0137287*T)
		n = wrap360(125.04452 - 1934.136261*T)
		p1 = wrap360(282.94 + 1.7192*T)
	case IERS:
		s = wrap360(218.31664563 + 481267.88134236*T - 0.0013268*T*T)
		h = wrap360(280.46645016 + 36000.76982779*T + 0.0003032*T*T)
		p = wrap360(83.35324312 + 4069.01363525*T - 0.01032*T*T)
		n = wrap360(125.04455501 - 1934.13626197*T + 0.0020762*T*T)
		p1 = wrap360(282.93734808 + 1.71945766*T + 0.00045688*T*T)
	}

	// τ, the mean lunar time angle: Greenwich mean solar hour angle plus
	// h minus s (the classical Doodson T argument).
	ut := math.Mod(epochSeconds/3600.0, 24.0)
	if ut < 0 {
		ut += 24.0
	}
	tau := wrap360(ut*15.0 + 180.0 - s + h)

	aux := computeAuxiliaries(radians(n))

	return Angles{
		Tau: radians(tau),
		S:   radians(s),
		H:   radians(h),
		P:   radians(p),
		N:   radians(n),
		P1:  radians(p1),

		I:       aux.i,
		Xi:      aux.xi,
		Nu:      aux.nu,
		NuPrime: aux.nuPrime,
		NuSec:   aux.nuSec,
		R:       aux.r,
	}
}

type auxiliaries struct {
	i, xi, nu, nuPrime, nuSec, r float64
}

// computeAuxiliaries derives (I, ξ, ν, ν', ν'', R) from the lunar node N
// (radians) following Schureman (1958): I from the spherical triangle
// formed by the ecliptic pole, equator pole, and lunar-orbit pole; ξ and ν
// from the paired half-angle tangent formulas (Schureman eq. 69-70); ν'
// and ν'' from the K1/K2-specific closed forms (Schureman eq. 224, 235);
// R from the L2-specific closed form (Schureman eq. 213).
func computeAuxiliaries(n float64) auxiliaries {
	eps := radians(obliquityDeg)
	omega := radians(orbitIncDeg)

	cosI := math.Cos(omega)*math.Cos(eps) - math.Sin(omega)*math.Sin(eps)*math.Cos(n)
	cosI = clamp(cosI, -1, 1)
	i := math.Acos(cosI)

	halfN := n / 2.0
	xi := 2.0 * math.Atan(math.Tan(halfN)*math.Cos((eps-omega)/2.0)/math.Cos((eps+omega)/2.0))
	nu := 2.0 * math.Atan(math.Tan(halfN)*math.Sin((eps-omega)/2.0)/math.Sin((eps+omega)/2.0))

	sinI := math.Sin(i)
	sin2I := math.Sin(2.0 * i)
	nuPrime := math.Atan2(sin2I*math.Sin(nu), sin2I*math.Cos(nu)+0.3347)

	sin2Nu := math.Sin(2.0 * nu)
	cos2Nu := math.Cos(2.0 * nu)
	nuSec := 0.5 * math.Atan2(sinI*sinI*sin2Nu, sinI*sinI*cos2Nu+0.0727)

	cotHalfI := 1.0 / math.Tan(i/2.0)
	r := math.Atan2(sin2Nu, (1.0/6.0)*cotHalfI*cotHalfI-cos2Nu)

	return auxiliaries{i: i, xi: xi, nu: nu, nuPrime: nuPrime, nuSec: nuSec, r: r}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// daysUnixMinus returns the signed number of days from the Unix epoch
// (1970-01-01T00:00:00Z) to the given calendar year's reference instant
// (1900-01-01T12:00:00Z for 1900, 2000-01-01T12:00:00Z for 2000), so that
// epochDays = ttDaysSinceUnix - daysUnixMinus(year) is the day count since
// that reference instant.
func daysUnixMinus(year int) float64 {
	switch year {
	case 1900:
		return -25567.5
	case 2000:
		return 10957.5
	default:
		panic("astro: unsupported reference epoch")
	}
}
