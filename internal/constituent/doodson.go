package constituent

import "strings"

// Doodson is the seven-integer Doodson argument tuple (T, s, h, p, N', p1,
// shift) of a tidal wave: the multipliers of the six fundamental
// astronomical angles plus the quarter-turn phase shift described by
// Doodson & Warburg (1941). T ranges 0..6; the remaining six entries
// normally range -4..4.
type Doodson [7]int8

const (
	doodsonT = iota
	doodsonS
	doodsonH
	doodsonP
	doodsonN
	doodsonP1
	doodsonShift
)

// XDONumerical renders d as seven base-10 digits: the T argument verbatim,
// followed by the six remaining arguments each shifted by +5 so they fall
// in 0..9 (e.g. O1 -> "1455554").
func (d Doodson) XDONumerical() string {
	var b strings.Builder
	b.WriteByte(byte('0' + d[doodsonT]))
	for i := 1; i < 7; i++ {
		b.WriteByte(byte('0' + d[i] + 5))
	}
	return b.String()
}

// XDOAlphabetical renders d using the reference library's letter code: each
// of the seven raw argument values x is mapped to the letter
// 'A' + ((x+25) mod 26), which reduces to the digit mapping used by
// XDONumerical once T and the +5 centering are folded in (e.g.
// O1 -> "AYZZZZY", 2SM2 -> "BDVZZZZ").
func (d Doodson) XDOAlphabetical() string {
	var b strings.Builder
	for _, x := range d {
		idx := (int(x) + 25) % 26
		if idx < 0 {
			idx += 26
		}
		b.WriteByte(byte('A' + idx))
	}
	return b.String()
}

// T, S, H, P, N, P1 and Shift expose the individual Doodson argument
// multipliers by name.
func (d Doodson) T() int8     { return d[doodsonT] }
func (d Doodson) S() int8     { return d[doodsonS] }
func (d Doodson) H() int8     { return d[doodsonH] }
func (d Doodson) P() int8     { return d[doodsonP] }
func (d Doodson) N() int8     { return d[doodsonN] }
func (d Doodson) P1() int8    { return d[doodsonP1] }
func (d Doodson) Shift() int8 { return d[doodsonShift] }

// Frequency returns the wave's angular speed in degrees per hour, computed
// from the Doodson multipliers applied to the mean motions of the six
// fundamental astronomical angles (T: 14.492052, s: 0.549016532,
// h: 0.041068639, p: 0.004641834, N': 0.002206410, p1: 0.000001961
// degrees/hour), the same rates used by the reference library's
// frequency() helper.
func (d Doodson) Frequency() float64 {
	const (
		rateT  = 14.492052
		rateS  = 0.549016532
		rateH  = 0.041068639
		rateP  = 0.004641834
		rateN  = 0.002206410
		rateP1 = 0.000001961
	)
	return float64(d[doodsonT])*rateT +
		float64(d[doodsonS])*rateS +
		float64(d[doodsonH])*rateH +
		float64(d[doodsonP])*rateP +
		float64(d[doodsonN])*rateN +
		float64(d[doodsonP1])*rateP1
}
