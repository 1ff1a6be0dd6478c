package atlasio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ngs-tides/tidekit/internal/constituent"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadStationCSV(t *testing.T) {
	path := writeTempFile(t, "brest.csv", "constituent,amplitude_m,phase_deg\nM2,2.05113,109.006\nS2,0.74876,148.283\n")
	got, err := LoadStationCSV(path)
	if err != nil {
		t.Fatalf("LoadStationCSV: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	if got[0].ID != constituent.IDM2 {
		t.Errorf("got[0].ID = %v, want IDM2", got[0].ID)
	}
	if got[0].Amplitude != 205.113 {
		t.Errorf("got[0].Amplitude = %v, want 205.113 (metres scaled to cm)", got[0].Amplitude)
	}
}

func TestLoadStationCSVRejectsUnknownConstituent(t *testing.T) {
	path := writeTempFile(t, "bad.csv", "constituent,amplitude_m,phase_deg\nNOTAWAVE,1.0,0.0\n")
	if _, err := LoadStationCSV(path); err == nil {
		t.Fatal("expected an error for an unknown constituent name")
	}
}

func TestLoadStationCSVRejectsBadHeader(t *testing.T) {
	path := writeTempFile(t, "bad-header.csv", "name,amp,phase\nM2,1.0,0.0\n")
	if _, err := LoadStationCSV(path); err == nil {
		t.Fatal("expected an error for a malformed header")
	}
}

func TestDatumOffsetTableLookup(t *testing.T) {
	path := writeTempFile(t, "datum.json", `[{"name":"brest","lat":48.383,"lon":-4.495,"offset_m":0.12}]`)
	table, err := LoadDatumOffsets(path)
	if err != nil {
		t.Fatalf("LoadDatumOffsets: %v", err)
	}
	offset, ok := table.Lookup(48.4, -4.5, 50)
	if !ok {
		t.Fatal("expected a match within 50km")
	}
	if offset != 0.12 {
		t.Errorf("offset = %v, want 0.12", offset)
	}
	if _, ok := table.Lookup(0, 0, 50); ok {
		t.Error("expected no match far from any entry")
	}
}

func TestOverrideTableFindAndApply(t *testing.T) {
	path := writeTempFile(t, "overrides.json", `[{
		"name": "brest",
		"lat": 48.383,
		"lon": -4.495,
		"radius_km": 25,
		"constituents": [{"name": "M2", "amplitude_m": 2.05113, "phase_deg": 109.006}]
	}]`)
	table, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	override, ok := table.Find(48.4, -4.5)
	if !ok {
		t.Fatal("expected an override match within radius")
	}

	base := []StationConstituent{
		{ID: constituent.IDM2, Amplitude: 1, PhaseDeg: 0},
		{ID: constituent.IDS2, Amplitude: 2, PhaseDeg: 0},
	}
	merged := override.Apply(base)
	if len(merged) != 2 {
		t.Fatalf("len(merged) = %d, want 2 (M2 replaced in place)", len(merged))
	}
	for _, c := range merged {
		if c.ID == constituent.IDM2 && c.Amplitude != 205.113 {
			t.Errorf("M2 amplitude = %v, want 205.113 (override should replace, not append)", c.Amplitude)
		}
	}

	if _, ok := table.Find(0, 0); ok {
		t.Error("expected no override match far from the station")
	}
}

func TestDiscoverConstituentNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"m2_amplitude.nc", "m2_phase.nc", "s2_amp.nc", "s2_pha.nc", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte{}, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	names, err := discoverConstituentNames(dir)
	if err != nil {
		t.Fatalf("discoverConstituentNames: %v", err)
	}
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["M2"] || !found["S2"] {
		t.Errorf("discoverConstituentNames(%v) missing M2/S2", names)
	}
	if found["NOTES"] {
		t.Error("discoverConstituentNames should ignore non-.nc files")
	}
}
