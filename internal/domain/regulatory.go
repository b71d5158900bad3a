package domain

// Jurisdiction is a regulatory region with its own additive rules.
type Jurisdiction string

const (
	JurisdictionEU        Jurisdiction = "EU"
	JurisdictionUSA       Jurisdiction = "USA"
	JurisdictionUK        Jurisdiction = "UK"
	JurisdictionCanada    Jurisdiction = "Canada"
	JurisdictionAustralia Jurisdiction = "Australia"
	JurisdictionJapan     Jurisdiction = "Japan"
)

// AllJurisdictions is the fixed comparison order used across the API.
var AllJurisdictions = []Jurisdiction{
	JurisdictionEU,
	JurisdictionUSA,
	JurisdictionUK,
	JurisdictionCanada,
	JurisdictionAustralia,
	JurisdictionJapan,
}

// RegulatoryStatus is an additive's legal standing within one jurisdiction.
type RegulatoryStatus string

const (
	StatusApproved        RegulatoryStatus = "approved"
	StatusRestricted      RegulatoryStatus = "restricted"
	StatusBanned          RegulatoryStatus = "banned"
	StatusWarningRequired RegulatoryStatus = "warning_required"
	StatusUnknown         RegulatoryStatus = "unknown"
)

// RegulatoryRecord holds the legal status of one additive in one
// jurisdiction, with optional dosage ceiling and labeling text.
type RegulatoryRecord struct {
	Status   RegulatoryStatus `json:"status"`
	MaxLevel string           `json:"maxLevel,omitempty"`
	Notes    string           `json:"notes,omitempty"`
	Warning  string           `json:"warning,omitempty"`
}

// JurisdictionStatus is one row of a cross-jurisdiction comparison.
type JurisdictionStatus struct {
	Jurisdiction Jurisdiction     `json:"jurisdiction"`
	Status       RegulatoryStatus `json:"status"`
	MaxLevel     string           `json:"maxLevel,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	Warning      string           `json:"warning,omitempty"`
}
