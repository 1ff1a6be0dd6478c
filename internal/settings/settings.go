// Package settings bundles the evaluator's configuration: which engine
// family and astronomic-formula variant to use, how to infer unmodeled
// minors, whether to add the long-period equilibrium tide, and concurrency
// tuning, following spec.md §6. Matches the teacher's plain
// value-bundle-with-defaults style (internal/adapter/store/fes/netcdf.go's
// FileConfig/DefaultConfig).
package settings

import (
	"time"

	"github.com/ngs-tides/tidekit/internal/astro"
	"github.com/ngs-tides/tidekit/internal/inference"
)

// EngineType selects the wave catalogue family: Darwin (99 constituents,
// full nodal-correction coverage) or Doodson (80 constituents, the
// Perth/altimetry-response family).
type EngineType int

const (
	Darwin EngineType = iota
	Doodson
)

// Settings is the evaluator's configuration bundle, with defaults matching
// spec.md §6's table.
type Settings struct {
	EngineType                   EngineType
	AstronomicFormulae           astro.Formula
	TimeTolerance                time.Duration
	GroupModulations             bool
	ComputeLongPeriodEquilibrium bool
	InferenceType                inference.Type
	NumThreads                   int
}

// Default returns spec.md §6's baseline defaults: Darwin engine,
// Schureman1 formulae, zero time tolerance, no group modulations, LPE on,
// Spline inference, auto thread count.
func Default() Settings {
	return Settings{
		EngineType:                   Darwin,
		AstronomicFormulae:           astro.Schureman1,
		TimeTolerance:                0,
		GroupModulations:             false,
		ComputeLongPeriodEquilibrium: true,
		InferenceType:                inference.Spline,
		NumThreads:                   0,
	}
}

// Fes returns the FesSettings preset: Darwin + Schureman1 + Spline
// inference + long-period equilibrium on.
func Fes() Settings {
	return Default()
}

// Perth returns the PerthSettings preset: Doodson + IERS formulae +
// Linear inference + long-period equilibrium off + group modulations on.
func Perth() Settings {
	s := Default()
	s.EngineType = Doodson
	s.AstronomicFormulae = astro.IERS
	s.InferenceType = inference.Linear
	s.ComputeLongPeriodEquilibrium = false
	s.GroupModulations = true
	return s
}
