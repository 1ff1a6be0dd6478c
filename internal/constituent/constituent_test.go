package constituent

import (
	"errors"
	"testing"

	"github.com/ngs-tides/tidekit/internal/errs"
)

func TestParseCaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		want ID
	}{
		{"M2", IDM2},
		{"m2", IDM2},
		{"Mm", IDMm},
		{"2MK2", ID2MK2},
		{"ups1", IDUps1},
	}
	for _, tt := range tests {
		got, err := Parse(tt.name)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("not-a-wave")
	if err == nil {
		t.Fatal("expected an error for an unknown constituent name")
	}
	if !errors.Is(err, errs.ErrInvalidConstituent) {
		t.Errorf("expected InvalidConstituent error kind, got %v", err)
	}
}

func TestParseInRejectsOutsideFamily(t *testing.T) {
	// Node is in Perth but not Darwin.
	if _, err := ParseIn("Node", Darwin); err == nil {
		t.Error("expected Node to be rejected from the Darwin family")
	}
	if _, err := ParseIn("Node", Perth); err != nil {
		t.Errorf("Node should parse within Perth: %v", err)
	}
}

func TestNameRoundTrip(t *testing.T) {
	for id := ID(0); id < numConstituents; id++ {
		name := Name(id)
		if name == "?" {
			t.Fatalf("id %d has no name", id)
		}
		got, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(Name(%d)=%q): %v", id, name, err)
		}
		if got != id {
			t.Errorf("round trip mismatch for %q: got %v, want %v", name, got, id)
		}
	}
}

func TestFamilySizes(t *testing.T) {
	if len(Darwin) != 99 {
		t.Errorf("Darwin family has %d members, want 99", len(Darwin))
	}
	if len(Perth) != 80 {
		t.Errorf("Perth family has %d members, want 80", len(Perth))
	}
}

func TestXDOEncoding(t *testing.T) {
	tests := []struct {
		name    string
		doodson Doodson
		numeric string
		alpha   string
	}{
		// O1: T=1 s=-1 h=0 p=0 N'=0 p1=0 shift=-1
		{"O1", Doodson{1, -1, 0, 0, 0, 0, -1}, "1455554", "AYZZZZY"},
		// 2SM2: T=2 s=4 h=-4 p=0 N'=0 p1=0 shift=0
		{"2SM2", Doodson{2, 4, -4, 0, 0, 0, 0}, "2915555", "BDVZZZZ"},
	}
	for _, tt := range tests {
		if got := tt.doodson.XDONumerical(); got != tt.numeric {
			t.Errorf("%s: XDONumerical() = %q, want %q", tt.name, got, tt.numeric)
		}
		if got := tt.doodson.XDOAlphabetical(); got != tt.alpha {
			t.Errorf("%s: XDOAlphabetical() = %q, want %q", tt.name, got, tt.alpha)
		}
	}
}
