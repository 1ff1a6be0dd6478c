// Package constituent defines the catalogue of tidal constituent
// identifiers, their Doodson numbers and the Darwin/Doodson-Perth engine
// family subsets used to select which waves an engine knows how to
// correct and analyze.
package constituent

import (
	"strings"

	"github.com/ngs-tides/tidekit/internal/errs"
)

// ID identifies a tidal constituent. The zero value is ID2MK2, the first
// entry of the catalogue; callers that need an explicit "none" value
// should use a pointer or a separate bool, the way the teacher's
// ConstituentParam does with its Correction field.
type ID uint8

// The full catalogue, in the same order as the reference C++ enum. Values
// are stable for the lifetime of a build: callers may persist them, e.g.
// as cache keys alongside a WaveTable revision.
const (
	ID2MK2 ID = iota
	ID2MK3
	ID2MK6
	ID2MN2
	ID2MN6
	ID2MNS4
	ID2MP5
	ID2MS2
	ID2MS6
	ID2MSN4
	ID2N2
	ID2NM6
	ID2NS2
	ID2Q1
	ID2SM2
	ID2SM6
	ID2SMu2
	ID3MS4
	ID3MS8
	IDA5
	IDAlpha2
	IDBeta1
	IDBeta2
	IDChi1
	IDDelta2
	IDEps2
	IDEta2
	IDGamma2
	IDJ1
	IDK1
	IDK2
	IDL2
	IDL2P
	IDLambda2
	IDM0
	IDM1
	IDM11
	IDM12
	IDM13
	IDM2
	IDM3
	IDM4
	IDM6
	IDM8
	IDMf
	IDMf1
	IDMf2
	IDMK3
	IDMK4
	IDMKS2
	IDML4
	IDMm
	IDMm1
	IDMm2
	IDMN4
	IDMNK6
	IDMNS2
	IDMNu4
	IDMNuS2
	IDMO3
	IDMP1
	IDMqm
	IDMS4
	IDMSf
	IDMSK2
	IDMSK6
	IDMSm
	IDMSN2
	IDMSN6
	IDMSqm
	IDMStm
	IDMtm
	IDMu2
	IDN2
	IDN2P
	IDN4
	IDNK4
	IDNKM2
	IDNode
	IDNu2
	IDO1
	IDOO1
	IDOQ2
	IDP1
	IDPhi1
	IDPi1
	IDPsi1
	IDQ1
	IDR2
	IDR4
	IDRho1
	IDS1
	IDS2
	IDS4
	IDS6
	IDSa
	IDSa1
	IDSigma1
	IDSK3
	IDSK4
	IDSKM2
	IDSN4
	IDSO1
	IDSO3
	IDSsa
	IDSta
	IDT2
	IDTau1
	IDTheta1
	IDUps1

	numConstituents
)

var names = [numConstituents]string{
	ID2MK2: "2MK2", ID2MK3: "2MK3", ID2MK6: "2MK6", ID2MN2: "2MN2",
	ID2MN6: "2MN6", ID2MNS4: "2MNS4", ID2MP5: "2MP5", ID2MS2: "2MS2",
	ID2MS6: "2MS6", ID2MSN4: "2MSN4", ID2N2: "2N2", ID2NM6: "2NM6",
	ID2NS2: "2NS2", ID2Q1: "2Q1", ID2SM2: "2SM2", ID2SM6: "2SM6",
	ID2SMu2: "2SMu2", ID3MS4: "3MS4", ID3MS8: "3MS8", IDA5: "A5",
	IDAlpha2: "Alpha2", IDBeta1: "Beta1", IDBeta2: "Beta2", IDChi1: "Chi1",
	IDDelta2: "Delta2", IDEps2: "Eps2", IDEta2: "Eta2", IDGamma2: "Gamma2",
	IDJ1: "J1", IDK1: "K1", IDK2: "K2", IDL2: "L2", IDL2P: "L2P",
	IDLambda2: "Lambda2", IDM0: "M0", IDM1: "M1", IDM11: "M11", IDM12: "M12",
	IDM13: "M13", IDM2: "M2", IDM3: "M3", IDM4: "M4", IDM6: "M6", IDM8: "M8",
	IDMf: "Mf", IDMf1: "Mf1", IDMf2: "Mf2", IDMK3: "MK3", IDMK4: "MK4",
	IDMKS2: "MKS2", IDML4: "ML4", IDMm: "Mm", IDMm1: "Mm1", IDMm2: "Mm2",
	IDMN4: "MN4", IDMNK6: "MNK6", IDMNS2: "MNS2", IDMNu4: "MNu4",
	IDMNuS2: "MNuS2", IDMO3: "MO3", IDMP1: "MP1", IDMqm: "Mqm", IDMS4: "MS4",
	IDMSf: "MSf", IDMSK2: "MSK2", IDMSK6: "MSK6", IDMSm: "MSm",
	IDMSN2: "MSN2", IDMSN6: "MSN6", IDMSqm: "MSqm", IDMStm: "MStm",
	IDMtm: "Mtm", IDMu2: "Mu2", IDN2: "N2", IDN2P: "N2P", IDN4: "N4",
	IDNK4: "NK4", IDNKM2: "NKM2", IDNode: "Node", IDNu2: "Nu2", IDO1: "O1",
	IDOO1: "OO1", IDOQ2: "OQ2", IDP1: "P1", IDPhi1: "Phi1", IDPi1: "Pi1",
	IDPsi1: "Psi1", IDQ1: "Q1", IDR2: "R2", IDR4: "R4", IDRho1: "Rho1",
	IDS1: "S1", IDS2: "S2", IDS4: "S4", IDS6: "S6", IDSa: "Sa", IDSa1: "Sa1",
	IDSigma1: "Sigma1", IDSK3: "SK3", IDSK4: "SK4", IDSKM2: "SKM2",
	IDSN4: "SN4", IDSO1: "SO1", IDSO3: "SO3", IDSsa: "Ssa", IDSta: "Sta",
	IDT2: "T2", IDTau1: "Tau1", IDTheta1: "Theta1", IDUps1: "Ups1",
}

var byLowerName map[string]ID

func init() {
	byLowerName = make(map[string]ID, len(names))
	for id, n := range names {
		byLowerName[strings.ToLower(n)] = ID(id)
	}
}

// Name returns the constituent's canonical spelling, e.g. "M2", "2MK2".
func Name(id ID) string {
	if int(id) >= len(names) {
		return "?"
	}
	return names[id]
}

// Parse resolves a constituent name case-insensitively ("mm" == "Mm").
// It returns an *errs.Error of kind InvalidConstituent if name does not
// match any catalogue entry.
func Parse(name string) (ID, error) {
	id, ok := byLowerName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errs.New(errs.InvalidConstituent, "unknown constituent name: %q", name)
	}
	return id, nil
}

// ParseIn resolves name the way Parse does, but additionally requires the
// result to belong to family (e.g. Darwin or Perth), mirroring the
// reference library's per-engine parse() overloads that reject names
// outside the engine's own table.
func ParseIn(name string, family []ID) (ID, error) {
	id, err := Parse(name)
	if err != nil {
		return 0, err
	}
	for _, f := range family {
		if f == id {
			return id, nil
		}
	}
	return 0, errs.New(errs.InvalidConstituent, "constituent %q is not a member of this engine family", name)
}

// Known returns the names of every constituent in family, in family order.
func Known(family []ID) []string {
	out := make([]string, len(family))
	for i, id := range family {
		out[i] = Name(id)
	}
	return out
}
