// Package harmonic implements tidal harmonic analysis: the inverse of
// prediction, a linear least-squares fit of one complex amplitude per
// constituent from a sea-level time series, via the normal equations
// solved by Cholesky (LDL^T) decomposition. Grounded on
// original_source/include/fes/harmonic_analysis.hpp and built on
// gonum.org/v1/gonum/mat, the linear-algebra library the pack's
// observerly-skysolve already pulls in for exactly this kind of
// normal-equations solve.
package harmonic

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ngs-tides/tidekit/internal/errs"
)

// Analyze forms the design matrix H (numSamples x 2W) with columns
// [f_w*cos(vu_w)]_w=0..W-1 followed by [f_w*sin(vu_w)]_w=0..W-1, and
// solves (H^T H) x = H^T h for x via Cholesky factorization of the normal
// equations, per spec.md §4.4. f and vu must each be shaped W x
// len(h) (one row per constituent, one column per sample). The returned
// slice has one complex128 per constituent: complex(x[w], x[W+w]).
//
// Analyze returns an all-NaN result if h contains any NaN value (spec.md's
// "NaN propagates, is not an error" rule), a ShapeMismatch error if f/vu
// are not both W x len(h), and a NumericFailure error if the normal-equations
// matrix is not positive semi-definite (the Cholesky factorization fails),
// propagating rather than papering over the decomposition's failure.
func Analyze(h []float64, f, vu [][]float64) ([]complex128, error) {
	w := len(f)
	if w == 0 {
		return nil, errs.New(errs.ShapeMismatch, "harmonic: no constituents given")
	}
	n := len(h)
	if len(vu) != w {
		return nil, errs.New(errs.ShapeMismatch, "harmonic: f has %d constituent rows, vu has %d", w, len(vu))
	}
	for i := range f {
		if len(f[i]) != n {
			return nil, errs.New(errs.ShapeMismatch, "harmonic: f row %d has %d samples, want %d (len(h))", i, len(f[i]), n)
		}
		if len(vu[i]) != n {
			return nil, errs.New(errs.ShapeMismatch, "harmonic: vu row %d has %d samples, want %d (len(h))", i, len(vu[i]), n)
		}
	}

	for _, v := range h {
		if math.IsNaN(v) {
			return nanResult(w), nil
		}
	}

	design := mat.NewDense(n, 2*w, nil)
	for s := 0; s < n; s++ {
		for k := 0; k < w; k++ {
			design.Set(s, k, f[k][s]*math.Cos(vu[k][s]))
			design.Set(s, w+k, f[k][s]*math.Sin(vu[k][s]))
		}
	}
	hv := mat.NewVecDense(n, h)

	var normal mat.Dense
	normal.Mul(design.T(), design)
	sym := mat.NewSymDense(2*w, nil)
	for i := 0; i < 2*w; i++ {
		for j := i; j < 2*w; j++ {
			sym.SetSym(i, j, normal.At(i, j))
		}
	}

	var rhs mat.VecDense
	rhs.MulVec(design.T(), hv)

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, errs.New(errs.NumericFailure, "harmonic: normal-equations matrix is not positive semi-definite")
	}

	var x mat.VecDense
	if err := chol.SolveVecTo(&x, &rhs); err != nil {
		return nil, errs.Wrap(errs.NumericFailure, err, "harmonic: Cholesky solve failed")
	}

	out := make([]complex128, w)
	for k := 0; k < w; k++ {
		out[k] = complex(x.AtVec(k), x.AtVec(w+k))
	}
	return out, nil
}

func nanResult(w int) []complex128 {
	out := make([]complex128, w)
	for i := range out {
		out[i] = complex(math.NaN(), math.NaN())
	}
	return out
}
