package constituent

// Darwin lists the 99 constituents handled by the Darwin-style engine
// family (full nodal-correction coverage including high-order compound
// waves), in the reference library's fixed order. Order matters: a
// WaveTable built from this slice sorts its own waves by frequency, but
// anything that indexes waves positionally (e.g. a persisted admittance
// coefficient table) must agree on this ordering.
var Darwin = []ID{
	IDMm, IDMf, IDMtm, IDMSqm, ID2Q1, IDSigma1, IDQ1, IDRho1, IDO1,
	IDMP1, IDM1, IDM11, IDM12, IDM13, IDChi1, IDPi1, IDP1, IDS1,
	IDK1, IDPsi1, IDPhi1, IDTheta1, IDJ1, IDOO1, IDMNS2, IDEps2, ID2N2,
	IDMu2, ID2MS2, IDN2, IDNu2, IDM2, IDMKS2, IDLambda2, IDL2, ID2MN2,
	IDT2, IDS2, IDR2, IDK2, IDMSN2, IDEta2, ID2SM2, IDMO3, ID2MK3,
	IDM3, IDMK3, IDN4, IDMN4, IDM4, IDSN4, IDMS4, IDMK4, IDS4,
	IDSK4, IDR4, ID2MN6, IDM6, IDMSN6, ID2MS6, ID2MK6, ID2SM6, IDMSK6,
	IDS6, IDM8, IDMSf, IDSsa, IDSa, IDSa1, IDSta, IDMm1, IDMf1,
	IDA5, IDM0, IDMm2, IDMf2, IDL2P, IDN2P, IDMSK2, IDSKM2, IDOQ2,
	ID3MS4, IDMNu4, ID2MSN4, ID2NS2, IDMNuS2, ID2MK2, IDNKM2, IDML4, IDSO1,
	IDSO3, IDNK4, IDMNK6, ID2NM6, ID3MS8, IDSK3, ID2MNS4, ID2SMu2, ID2MP5,
}

// Perth lists the 80 constituents handled by the Doodson/Perth-style
// engine family (the long-period-rich subset used by altimetry response
// analysis), in the reference library's fixed order.
var Perth = []ID{
	IDNode, IDSa1, IDSa, IDSsa, IDSta, IDMSm, IDMm, IDMSf, IDMf,
	IDMStm, IDMtm, IDMSqm, IDMqm, ID2Q1, IDSigma1, IDQ1, IDRho1, IDO1,
	IDTau1, IDBeta1, IDM13, IDM1, IDChi1, IDPi1, IDP1, IDS1, IDK1,
	IDPsi1, IDPhi1, IDTheta1, IDJ1, IDSO1, IDOO1, IDUps1, IDEps2, ID2N2,
	ID2MS2, IDMu2, IDN2, IDN2P, IDNu2, IDGamma2, IDAlpha2, IDM2, IDBeta2,
	IDDelta2, IDMKS2, IDLambda2, ID2MN2, IDL2, IDL2P, IDT2, IDS2, IDR2,
	IDK2, IDMSN2, IDEta2, ID2SM2, ID2MK3, IDMO3, IDM3, IDMK3, IDN4,
	IDMN4, IDM4, IDSN4, IDMS4, IDMK4, IDS4, IDR4, IDSK4, ID2MN6,
	IDM6, IDMSN6, ID2MS6, ID2MK6, ID2SM6, IDMSK6, IDS6, IDM8,
}
