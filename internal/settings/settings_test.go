package settings

import (
	"testing"

	"github.com/ngs-tides/tidekit/internal/astro"
	"github.com/ngs-tides/tidekit/internal/inference"
)

func TestDefaultMatchesSpecTable(t *testing.T) {
	s := Default()
	if s.EngineType != Darwin {
		t.Errorf("EngineType = %v, want Darwin", s.EngineType)
	}
	if s.AstronomicFormulae != astro.Schureman1 {
		t.Errorf("AstronomicFormulae = %v, want Schureman1", s.AstronomicFormulae)
	}
	if s.TimeTolerance != 0 {
		t.Errorf("TimeTolerance = %v, want 0", s.TimeTolerance)
	}
	if s.GroupModulations {
		t.Error("GroupModulations = true, want false")
	}
	if !s.ComputeLongPeriodEquilibrium {
		t.Error("ComputeLongPeriodEquilibrium = false, want true")
	}
	if s.InferenceType != inference.Spline {
		t.Errorf("InferenceType = %v, want Spline", s.InferenceType)
	}
	if s.NumThreads != 0 {
		t.Errorf("NumThreads = %d, want 0", s.NumThreads)
	}
}

func TestFesPreset(t *testing.T) {
	s := Fes()
	if s.EngineType != Darwin || s.InferenceType != inference.Spline || !s.ComputeLongPeriodEquilibrium {
		t.Errorf("Fes() = %+v, want Darwin+Spline+LPE-on", s)
	}
}

func TestPerthPreset(t *testing.T) {
	s := Perth()
	if s.EngineType != Doodson {
		t.Errorf("EngineType = %v, want Doodson", s.EngineType)
	}
	if s.AstronomicFormulae != astro.IERS {
		t.Errorf("AstronomicFormulae = %v, want IERS", s.AstronomicFormulae)
	}
	if s.InferenceType != inference.Linear {
		t.Errorf("InferenceType = %v, want Linear", s.InferenceType)
	}
	if s.ComputeLongPeriodEquilibrium {
		t.Error("ComputeLongPeriodEquilibrium = true, want false")
	}
	if !s.GroupModulations {
		t.Error("GroupModulations = false, want true")
	}
}
