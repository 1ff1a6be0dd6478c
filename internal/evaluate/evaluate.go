// Package evaluate is the end-to-end tidal prediction evaluator: it
// interpolates an atlas, computes astronomic angles, applies nodal
// corrections, infers unmodeled minors, sums the harmonic series and adds
// the long-period equilibrium tide, in parallel over a worker pool,
// following spec.md §4.7. Grounded on the teacher's
// internal/domain.GeneratePredictions/CalculateTideHeight loop, generalized
// from its single-point, single-threaded walk into spec.md's multi-stage,
// concurrent pipeline; the static-chunk worker pool itself is new, since
// the teacher has no concurrency, grounded on the pack's general Go
// worker-pool idiom (fixed-size goroutine pool + sync.WaitGroup).
package evaluate

import (
	"math"
	"runtime"
	"sync"

	"github.com/ngs-tides/tidekit/internal/constituent"
	"github.com/ngs-tides/tidekit/internal/errs"
	"github.com/ngs-tides/tidekit/internal/inference"
	"github.com/ngs-tides/tidekit/internal/lpe"
	"github.com/ngs-tides/tidekit/internal/settings"
	"github.com/ngs-tides/tidekit/internal/wave"
)

// Result is the evaluator's per-query output, spec.md §4.7's
// (tide[], lp_tide[], quality[]) triple. Each slice has one entry per
// query point, in input order (spec.md §5: "output order matches input
// index").
type Result struct {
	Tide    []float64
	LPTide  []float64
	Quality []int8
}

func engineFamily(e settings.EngineType) []constituent.ID {
	if e == settings.Doodson {
		return constituent.Perth
	}
	return constituent.Darwin
}

// EvaluateTide implements spec.md §4.7: for each query point
// (epochs[i], lons[i], lats[i]), interpolate atlas, compute nodal
// corrections, infer unmodeled minors, and sum the short- and long-period
// harmonic series (optionally adding the long-period equilibrium tide).
// The three input slices must have equal length; a mismatch is a
// ShapeMismatch error.
func EvaluateTide(atlas Atlas, epochs, lons, lats []float64, cfg settings.Settings) (Result, error) {
	n := len(epochs)
	if len(lons) != n || len(lats) != n {
		return Result{}, errs.New(errs.ShapeMismatch,
			"evaluate: epochs/lons/lats have lengths %d/%d/%d, want equal", n, len(lons), len(lats))
	}

	table := wave.BuildTable(engineFamily(cfg.EngineType))
	result := Result{
		Tide:    make([]float64, n),
		LPTide:  make([]float64, n),
		Quality: make([]int8, n),
	}

	runChunked(n, cfg.NumThreads, func(acc *Accelerator, i int) {
		values, quality, err := atlas.Interpolate(lons[i], lats[i], acc)
		if err != nil || quality == 0 {
			result.Tide[i] = math.NaN()
			result.LPTide[i] = math.NaN()
			result.Quality[i] = 0
			return
		}

		ts := table.NewState()
		for _, v := range values {
			ts.SetTide(v.ID, v.Coef)
		}
		tide, lpTide := sumEvaluatedTable(ts, acc, lats[i], epochs[i], cfg)
		result.Tide[i] = tide
		result.LPTide[i] = lpTide
		result.Quality[i] = clampQuality(quality)
	})

	return result, nil
}

// FromConstituents implements spec.md §4.7's
// evaluate_tide_from_constituents: identical to EvaluateTide but skipping
// atlas interpolation and instead loading the same provided harmonic
// constants (amplitude in the atlas coefficient's units, phase in degrees)
// uniformly at every query time, at a single latitude.
func FromConstituents(constants map[constituent.ID]struct{ Amplitude, PhaseDeg float64 }, epochs []float64, lat float64, cfg settings.Settings) (Result, error) {
	table := wave.BuildTable(engineFamily(cfg.EngineType))
	n := len(epochs)
	result := Result{
		Tide:    make([]float64, n),
		LPTide:  make([]float64, n),
		Quality: make([]int8, n),
	}
	quality := int8(len(constants))
	if quality > 127 {
		quality = 127
	}

	runChunked(n, cfg.NumThreads, func(acc *Accelerator, i int) {
		ts := table.NewState()
		for id, c := range constants {
			phase := c.PhaseDeg * math.Pi / 180.0
			ts.SetTide(id, complex(c.Amplitude*math.Cos(phase), c.Amplitude*math.Sin(phase)))
		}
		tide, lpTide := sumEvaluatedTable(ts, acc, lat, epochs[i], cfg)
		result.Tide[i] = tide
		result.LPTide[i] = lpTide
		result.Quality[i] = quality
	})

	return result, nil
}

// sumEvaluatedTable runs steps 4-7 of spec.md §4.7 on an already-loaded
// TableState: infer minors, apply nodal corrections, sum the short- and
// long-period harmonic series, and optionally add the long-period
// equilibrium tide.
func sumEvaluatedTable(ts *wave.TableState, acc *Accelerator, lat, epochSeconds float64, cfg settings.Settings) (tide, lpTide float64) {
	inference.Apply(ts, lat, cfg.InferenceType)

	angles := acc.anglesAt(epochSeconds, cfg.AstronomicFormulae, cfg.TimeTolerance.Seconds())
	ts.ApplyNodalCorrections(angles, cfg.GroupModulations)

	var dynamic []constituent.Doodson
	ts.Range(func(w wave.Wave, s *wave.State) {
		phase := w.Doodson
		contribution := s.F * real(s.Tide*complexExp(s.V+s.U))
		if w.Type == wave.ShortPeriod {
			tide += contribution
		} else {
			lpTide += contribution
			dynamic = append(dynamic, phase)
		}
	})

	if cfg.ComputeLongPeriodEquilibrium {
		lpTide += lpe.Compute(lat, angles, dynamic)
	}
	return tide, lpTide
}

func complexExp(theta float64) complex128 {
	return complex(math.Cos(theta), math.Sin(theta))
}

func clampQuality(q int) int8 {
	if q > 127 {
		return 127
	}
	if q < -127 {
		return -127
	}
	return int8(q)
}

// runChunked partitions [0, n) across a fixed-size worker pool (static
// chunking, per spec.md §5) and calls fn(acc, i) for every index, blocking
// until all workers finish. Each chunk gets its own Accelerator, created
// once and reused across every index in that chunk, so its last-triangle
// cache and time-tolerance angle cache (spec.md §9) actually get a chance
// to hit across a worker's queries instead of being discarded per call.
// numThreads <= 0 uses runtime.GOMAXPROCS(0), matching spec.md §6's
// "0 => auto" convention.
func runChunked(n, numThreads int, fn func(acc *Accelerator, i int)) {
	if n == 0 {
		return
	}
	if numThreads <= 0 {
		numThreads = runtime.GOMAXPROCS(0)
	}
	if numThreads > n {
		numThreads = n
	}
	if numThreads <= 1 {
		acc := NewAccelerator()
		for i := 0; i < n; i++ {
			fn(acc, i)
		}
		return
	}

	chunk := (n + numThreads - 1) / numThreads
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			acc := NewAccelerator()
			for i := start; i < end; i++ {
				fn(acc, i)
			}
		}(start, end)
	}
	wg.Wait()
}
