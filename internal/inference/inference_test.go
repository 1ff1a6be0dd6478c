package inference

import (
	"math"
	"testing"

	"github.com/ngs-tides/tidekit/internal/constituent"
	"github.com/ngs-tides/tidekit/internal/wave"
)

func newTableState(t *testing.T) *wave.TableState {
	t.Helper()
	table := wave.BuildTable(constituent.Darwin)
	return table.NewState()
}

func TestZeroInferenceSetsUnmodeledToZero(t *testing.T) {
	ts := newTableState(t)
	ts.SetTide(constituent.IDM2, complex(10, 0))
	Apply(ts, 45, Zero)

	_, s, ok := ts.Get(constituent.IDN2)
	if !ok {
		t.Fatal("N2 not present in table")
	}
	if s.Tide != 0 {
		t.Errorf("N2 tide = %v, want 0 under Zero inference", s.Tide)
	}
	_, sModeled, _ := ts.Get(constituent.IDM2)
	if sModeled.Tide != complex(10, 0) {
		t.Error("Zero inference must not touch already-modeled waves")
	}
}

func TestLinearInferenceInterpolatesBetweenMajors(t *testing.T) {
	ts := newTableState(t)
	ts.SetTide(constituent.IDQ1, complex(1.9387, 0))
	ts.SetTide(constituent.IDK1, complex(14.1565, 0))
	Apply(ts, 45, Linear)

	_, s, ok := ts.Get(constituent.IDO1)
	if !ok {
		t.Fatal("O1 not present in table")
	}
	if s.IsModeled {
		t.Error("inferred wave must not be marked IsModeled")
	}
	if real(s.Tide) == 0 {
		t.Error("expected a nonzero linearly-inferred admittance for O1 between Q1 and K1")
	}
	if math.IsNaN(real(s.Tide)) {
		t.Error("linear inference must not produce NaN when majors are present")
	}
}

func TestLinearInferenceWithSingleMajorUsesItsAdmittance(t *testing.T) {
	ts := newTableState(t)
	ts.SetTide(constituent.IDM2, complex(20, 0))
	Apply(ts, 45, Linear)

	_, s, ok := ts.Get(constituent.IDN2)
	if !ok {
		t.Fatal("N2 not present in table")
	}
	if real(s.Tide) == 0 {
		t.Error("expected a nonzero admittance-scaled value with a single major present")
	}
}

func TestSplineInferenceUsesCoefficientTable(t *testing.T) {
	ts := newTableState(t)
	ts.SetTide(constituent.IDN2, complex(4.6397, 0))
	ts.SetTide(constituent.IDM2, complex(24.2334, 0))
	ts.SetTide(constituent.IDK2, complex(3.0704, 0))
	Apply(ts, 45, Spline)

	_, s, ok := ts.Get(constituent.ID2N2)
	if !ok {
		t.Fatal("2N2 not present in table")
	}
	if s.Tide == 0 {
		t.Error("expected a nonzero spline-inferred tide for 2N2")
	}
}

func TestApplyNeverFailsForEveryWaveInTable(t *testing.T) {
	ts := newTableState(t)
	ts.SetTide(constituent.IDM2, complex(1, 1))
	for _, typ := range []Type{Zero, Linear, Fourier, Spline} {
		Apply(ts, 10, typ)
		ts.Range(func(w wave.Wave, s *wave.State) {
			if math.IsNaN(real(s.Tide)) || math.IsNaN(imag(s.Tide)) {
				t.Errorf("type %v: wave %v got NaN tide", typ, w.ID)
			}
		})
	}
}
