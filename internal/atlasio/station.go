package atlasio

import (
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/ngs-tides/tidekit/internal/constituent"
	"github.com/ngs-tides/tidekit/internal/errs"
)

// StationConstituent is one named-station override entry: a constituent's
// amplitude (in the atlas's native units, typically centimetres) and phase
// (degrees), ready for evaluate.FromConstituents. Grounded on the teacher's
// internal/adapter/store/csv.ConstituentStore.LoadForStation CSV format.
type StationConstituent struct {
	ID        constituent.ID
	Amplitude float64
	PhaseDeg  float64
}

// LoadStationCSV reads a "constituent,amplitude_m,phase_deg" CSV file
// (the teacher's mock_{station}_constituents.csv layout) and returns its
// rows as StationConstituent values, amplitude scaled from metres to
// centimetres to match atlasio's NetCDF-derived atlases. Unknown
// constituent names are rejected with constituent.Parse's
// InvalidConstituent error, matching the teacher's
// "unknown constituent" rejection rather than silently skipping.
func LoadStationCSV(path string) ([]StationConstituent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.DomainError, err, "atlasio: cannot open station CSV %s", path)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, errs.Wrap(errs.DomainError, err, "atlasio: cannot read station CSV header")
	}
	want := []string{"constituent", "amplitude_m", "phase_deg"}
	if len(header) != len(want) {
		return nil, errs.New(errs.DomainError, "atlasio: station CSV header has %d columns, want %v", len(header), want)
	}
	for i, h := range header {
		if strings.TrimSpace(h) != want[i] {
			return nil, errs.New(errs.DomainError, "atlasio: station CSV column %d is %q, want %q", i, h, want[i])
		}
	}

	var out []StationConstituent
	for {
		record, err := r.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, errs.Wrap(errs.DomainError, err, "atlasio: cannot read station CSV record")
		}
		if len(record) != 3 {
			return nil, errs.New(errs.DomainError, "atlasio: station CSV record has %d columns, want 3", len(record))
		}
		name := strings.TrimSpace(record[0])
		id, err := constituent.Parse(name)
		if err != nil {
			return nil, err
		}
		amp, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, errs.Wrap(errs.DomainError, err, "atlasio: bad amplitude for %s", name)
		}
		phase, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, errs.Wrap(errs.DomainError, err, "atlasio: bad phase for %s", name)
		}
		out = append(out, StationConstituent{ID: id, Amplitude: amp * 100.0, PhaseDeg: wrapPhase(phase)})
	}
	if len(out) == 0 {
		return nil, errs.New(errs.DomainError, "atlasio: no constituents found in station CSV %s", path)
	}
	return out, nil
}

// datumOffsetEntry is one row of a nearest-station datum-offset table,
// following the teacher's usecase.datumOffsetEntry JSON shape.
type datumOffsetEntry struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	OffsetM float64 `json:"offset_m"`
}

// DatumOffsetTable is a nearest-neighbour datum-offset lookup, grounded on
// the teacher's usecase.getAutoDatumOffset (there a sync.Once-loaded
// package-global; here an explicit, independently loadable value so
// multiple atlases/tests can hold distinct tables concurrently).
type DatumOffsetTable struct {
	mu      sync.RWMutex
	entries []datumOffsetEntry
}

// LoadDatumOffsets reads a JSON array of {name, lat, lon, offset_m} entries.
func LoadDatumOffsets(path string) (*DatumOffsetTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.DomainError, err, "atlasio: cannot read datum offsets %s", path)
	}
	var entries []datumOffsetEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, errs.Wrap(errs.DomainError, err, "atlasio: cannot parse datum offsets %s", path)
	}
	return &DatumOffsetTable{entries: entries}, nil
}

// Lookup returns the nearest entry's offset in metres if it lies within
// maxDistanceKm of (lat, lon).
func (t *DatumOffsetTable) Lookup(lat, lon, maxDistanceKm float64) (offsetM float64, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	bestDist := math.MaxFloat64
	for _, e := range t.entries {
		d := haversineKm(lat, lon, e.Lat, e.Lon)
		if d < bestDist {
			bestDist = d
			offsetM = e.OffsetM
		}
	}
	if bestDist <= maxDistanceKm {
		return offsetM, true
	}
	return 0, false
}

// StationOverride is one named-area constituent override, following the
// teacher's usecase.stationOverrideEntry: within RadiusKm of (Lat, Lon),
// the listed constituents replace or extend whatever an atlas produced.
type StationOverride struct {
	Name         string
	Lat          float64
	Lon          float64
	RadiusKm     float64
	DatumOffsetM *float64
	Constituents []StationConstituent
}

type rawOverrideConstituent struct {
	Name       string  `json:"name"`
	AmplitudeM float64 `json:"amplitude_m"`
	PhaseDeg   float64 `json:"phase_deg"`
}

type rawStationOverride struct {
	Name         string                   `json:"name"`
	Lat          float64                  `json:"lat"`
	Lon          float64                  `json:"lon"`
	RadiusKm     float64                  `json:"radius_km"`
	DatumOffsetM *float64                 `json:"datum_offset_m,omitempty"`
	Constituents []rawOverrideConstituent `json:"constituents"`
}

// OverrideTable is a radius-based station-override lookup, adapted from
// the teacher's usecase.getStationOverride/applyStationOverride pair.
// Unknown constituent names in an override entry are skipped rather than
// rejected, since override files are hand-curated supplements, not the
// primary atlas.
type OverrideTable struct {
	entries []StationOverride
}

// LoadOverrides reads a JSON array of station-override entries.
func LoadOverrides(path string) (*OverrideTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.DomainError, err, "atlasio: cannot read station overrides %s", path)
	}
	var raw []rawStationOverride
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, errs.Wrap(errs.DomainError, err, "atlasio: cannot parse station overrides %s", path)
	}
	entries := make([]StationOverride, 0, len(raw))
	for _, r := range raw {
		entry := StationOverride{Name: r.Name, Lat: r.Lat, Lon: r.Lon, RadiusKm: r.RadiusKm, DatumOffsetM: r.DatumOffsetM}
		for _, c := range r.Constituents {
			id, err := constituent.Parse(c.Name)
			if err != nil {
				continue
			}
			entry.Constituents = append(entry.Constituents, StationConstituent{
				ID: id, Amplitude: c.AmplitudeM * 100.0, PhaseDeg: wrapPhase(c.PhaseDeg),
			})
		}
		entries = append(entries, entry)
	}
	return &OverrideTable{entries: entries}, nil
}

// Find returns the nearest enclosing override for (lat, lon), using a
// 40km default radius when an entry leaves RadiusKm unset, matching the
// teacher's getStationOverride default.
func (t *OverrideTable) Find(lat, lon float64) (StationOverride, bool) {
	bestDist := math.MaxFloat64
	var best StationOverride
	found := false
	for _, e := range t.entries {
		radius := e.RadiusKm
		if radius == 0 {
			radius = 40
		}
		d := haversineKm(lat, lon, e.Lat, e.Lon)
		if d <= radius && d < bestDist {
			bestDist = d
			best = e
			found = true
		}
	}
	return best, found
}

// Apply replaces or extends base (by constituent.ID) with o's overrides,
// following the teacher's applyStationOverride merge rule: an override
// entry for an already-present constituent replaces it in place; an
// override for a new constituent is appended.
func (o StationOverride) Apply(base []StationConstituent) []StationConstituent {
	index := make(map[constituent.ID]int, len(base))
	out := make([]StationConstituent, len(base))
	copy(out, base)
	for i, c := range out {
		index[c.ID] = i
	}
	for _, ov := range o.Constituents {
		if i, ok := index[ov.ID]; ok {
			out[i] = ov
			continue
		}
		out = append(out, ov)
	}
	return out
}

func wrapPhase(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0
	toRad := func(x float64) float64 { return x * math.Pi / 180.0 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
