package usecase

import (
	"fmt"
	"sort"

	"github.com/nutrilens/backend/internal/domain"
)

// InteractionDetector matches a product's additive set against the table of
// known risky combinations.
type InteractionDetector struct {
	rules []domain.InteractionRule
}

// NewInteractionDetector creates a detector over the given rule table.
func NewInteractionDetector(rules []domain.InteractionRule) *InteractionDetector {
	return &InteractionDetector{rules: rules}
}

// Detect returns the fired rules, each carrying only the subset of its
// additives present in the input. A rule fires when at least
// min(2, len(rule.Additives)) of its members are present: pair rules need
// both, larger rules need any two. Results are sorted by severity,
// most severe first.
func (d *InteractionDetector) Detect(codes []string) ([]domain.InteractionWarning, error) {
	present := make(map[string]bool, len(codes))
	for _, code := range codes {
		normalized, err := domain.NormalizeAdditiveCode(code)
		if err != nil {
			return nil, err
		}
		present[normalized] = true
	}

	var warnings []domain.InteractionWarning
	for _, rule := range d.rules {
		var found []string
		for _, member := range rule.Additives {
			if present[member] {
				found = append(found, member)
			}
		}

		required := 2
		if len(rule.Additives) < required {
			required = len(rule.Additives)
		}
		if len(found) < required {
			continue
		}

		warnings = append(warnings, domain.InteractionWarning{
			RuleID:          rule.ID,
			FoundAdditives:  found,
			Type:            rule.Type,
			Severity:        rule.Severity,
			Description:     rule.Description,
			Compound:        rule.Compound,
			ScientificBasis: rule.ScientificBasis,
		})
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		return domain.SeverityRank(warnings[i].Severity) < domain.SeverityRank(warnings[j].Severity)
	})

	return warnings, nil
}

// Summarize aggregates warnings into per-severity counts and the single
// highest severity observed.
func (d *InteractionDetector) Summarize(warnings []domain.InteractionWarning) domain.InteractionSummary {
	if len(warnings) == 0 {
		return domain.InteractionSummary{
			Total:   0,
			Message: "No known additive interactions detected",
		}
	}

	bySeverity := make(map[domain.Severity]int)
	highest := warnings[0].Severity
	for _, w := range warnings {
		bySeverity[w.Severity]++
		if domain.SeverityRank(w.Severity) < domain.SeverityRank(highest) {
			highest = w.Severity
		}
	}

	return domain.InteractionSummary{
		Total:           len(warnings),
		BySeverity:      bySeverity,
		HighestSeverity: highest,
		Message:         fmt.Sprintf("%d additive interaction(s) detected, highest severity: %s", len(warnings), highest),
	}
}
