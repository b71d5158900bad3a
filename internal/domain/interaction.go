package domain

// InteractionType describes the mechanism behind a risky additive combination.
type InteractionType string

const (
	InteractionFormation     InteractionType = "formation"
	InteractionAmplification InteractionType = "amplification"
	InteractionSynergy       InteractionType = "synergy"
)

// Severity ranks a warning; lower rank is more severe.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityCaution  Severity = "caution"
	SeverityInfo     Severity = "info"
)

// SeverityRank returns the sort rank of a severity (critical=0 ... info=3).
// Unknown severities sort last.
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeverityCaution:
		return 2
	case SeverityInfo:
		return 3
	}
	return 4
}

// InteractionRule is a static record describing a known harmful or
// amplifying additive combination. Rules are loaded once and never mutated.
type InteractionRule struct {
	ID              string          `json:"id"`
	Additives       []string        `json:"additives"`
	Type            InteractionType `json:"type"`
	Severity        Severity        `json:"severity"`
	Description     string          `json:"description"`
	Compound        string          `json:"compound,omitempty"`
	ScientificBasis string          `json:"scientificBasis,omitempty"`
}

// InteractionWarning is a fired rule carrying only the subset of its
// additive set actually present in the analyzed product.
type InteractionWarning struct {
	RuleID          string          `json:"ruleId"`
	FoundAdditives  []string        `json:"foundAdditives"`
	Type            InteractionType `json:"type"`
	Severity        Severity        `json:"severity"`
	Description     string          `json:"description"`
	Compound        string          `json:"compound,omitempty"`
	ScientificBasis string          `json:"scientificBasis,omitempty"`
}

// InteractionSummary aggregates detected interactions per severity tier.
type InteractionSummary struct {
	Total           int              `json:"total"`
	BySeverity      map[Severity]int `json:"bySeverity,omitempty"`
	HighestSeverity Severity         `json:"highestSeverity,omitempty"`
	Message         string           `json:"message"`
}
