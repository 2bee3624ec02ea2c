package bravebook

// GrandCompany — идентификатор Grand Company (фракции игрока).
// 0 means the levemete serves everyone.
type GrandCompany uint8

const (
	GrandCompanyNone GrandCompany = iota
	GrandCompanyMaelstrom
	GrandCompanyTwinAdder
	GrandCompanyImmortalFlames
)

var grandCompanyNames = map[GrandCompany]string{
	GrandCompanyMaelstrom:      "Maelstrom",
	GrandCompanyTwinAdder:      "Order of the Twin Adder",
	GrandCompanyImmortalFlames: "Immortal Flames",
}

// Label returns the display label of the grand company, or "" for GrandCompanyNone.
func (gc GrandCompany) Label() string {
	return grandCompanyNames[gc]
}

// leveIssuer — levemete, выдающий leve.
type leveIssuer struct {
	grandCompany GrandCompany
	name         string
}

// leveIssuers — Leve row ID → levemete.
var leveIssuers = map[uint32]leveIssuer{
	643: {GrandCompanyNone, "Rurubana"},
	644: {GrandCompanyNone, "Rurubana"},
	645: {GrandCompanyNone, "Rurubana"},
	646: {GrandCompanyNone, "Rurubana"},
	647: {GrandCompanyNone, "Rurubana"},
	649: {GrandCompanyNone, "Voilinaut"},
	650: {GrandCompanyNone, "Voilinaut"},
	652: {GrandCompanyNone, "Voilinaut"},
	657: {GrandCompanyNone, "K'leytai"},
	658: {GrandCompanyNone, "K'leytai"},
	659: {GrandCompanyNone, "K'leytai"},
	848: {GrandCompanyMaelstrom, "Lodile"},
	849: {GrandCompanyMaelstrom, "Lodile"},
	853: {GrandCompanyTwinAdder, "Lodile"},
	855: {GrandCompanyTwinAdder, "Lodile"},
	859: {GrandCompanyImmortalFlames, "Lodile"},
	860: {GrandCompanyImmortalFlames, "Lodile"},
	863: {GrandCompanyMaelstrom, "Eidhart"},
	865: {GrandCompanyMaelstrom, "Eidhart"},
	868: {GrandCompanyTwinAdder, "Eidhart"},
	870: {GrandCompanyTwinAdder, "Eidhart"},
	873: {GrandCompanyImmortalFlames, "Eidhart"},
	875: {GrandCompanyImmortalFlames, "Eidhart"},
}

// displayName returns the issuer name with the grand company label appended
// in parentheses when the levemete is faction-specific.
func (i leveIssuer) displayName() string {
	label := i.grandCompany.Label()
	if label == "" {
		return i.name
	}
	return i.name + " (" + label + ")"
}
