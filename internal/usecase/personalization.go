package usecase

import (
	"context"
	"fmt"

	"github.com/nutrilens/backend/internal/catalog"
	"github.com/nutrilens/backend/internal/domain"
)

// Standard per-100g thresholds used when a profile does not set a personal
// one, and as the comparison baseline in contextual explanations.
const (
	standardSaturatedFatLimit = 2.5
	standardFiberTarget       = 3.0
	omega3GoodLevel           = 0.3
	omega3SomeLevel           = 0.1
	ironGoodLevel             = 0.002
	lactoseTolerable          = 0.1
)

var nitriteCodes = []string{"E249", "E250", "E251", "E252"}

// PersonalizationService applies a user's health profile: rule-based
// additive warnings, nutrient badges, contextual threshold explanations and
// the overall profile summary. Everything here is a pure function of
// {nutrients, additives, profile}; it never consults the scorer's output.
type PersonalizationService struct {
	profiles domain.ProfileRepository
	rules    []domain.PersonalizedRule
}

// NewPersonalizationService creates the service over the static rule table.
func NewPersonalizationService(profiles domain.ProfileRepository, rules []domain.PersonalizedRule) *PersonalizationService {
	return &PersonalizationService{profiles: profiles, rules: rules}
}

// ProfileFor returns the user's profile or nil. Absence is the default path
// for most users and never an error.
func (s *PersonalizationService) ProfileFor(ctx context.Context, userID string) *domain.GeneticProfile {
	if userID == "" || s.profiles == nil {
		return nil
	}
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil
	}
	return p
}

// Warnings evaluates every rule whose condition is set in the profile
// against the product's additive list. When multiple matching rules target
// the same additive, only the highest-severity warning survives.
func (s *PersonalizationService) Warnings(profile *domain.GeneticProfile, codes []string) ([]domain.PersonalizedWarning, error) {
	if profile == nil {
		return nil, nil
	}

	present := make(map[string]bool, len(codes))
	order := make([]string, 0, len(codes))
	for _, code := range codes {
		normalized, err := domain.NormalizeAdditiveCode(code)
		if err != nil {
			return nil, err
		}
		if !present[normalized] {
			order = append(order, normalized)
		}
		present[normalized] = true
	}

	// Deduplicate by additive: keep the lowest severity rank seen
	best := make(map[string]domain.PersonalizedWarning)
	for _, rule := range s.rules {
		if !profile.Has(rule.Condition) {
			continue
		}
		for _, additive := range rule.Additives {
			if !present[additive] {
				continue
			}
			candidate := domain.PersonalizedWarning{
				RuleID:       rule.ID,
				Additive:     additive,
				Condition:    rule.Condition,
				Risk:         rule.Risk,
				Severity:     rule.Severity,
				Title:        rule.Title,
				Message:      rule.Message,
				GeneticBasis: rule.GeneticBasis,
			}
			existing, ok := best[additive]
			if !ok || domain.SeverityRank(candidate.Severity) < domain.SeverityRank(existing.Severity) {
				best[additive] = candidate
			}
		}
	}

	var warnings []domain.PersonalizedWarning
	for _, additive := range order {
		if w, ok := best[additive]; ok {
			warnings = append(warnings, w)
		}
	}
	return warnings, nil
}

// Badges classifies raw nutrient values against the profile's personal
// thresholds, producing a severity tier per nutrient the profile cares
// about.
func (s *PersonalizationService) Badges(nutrients domain.NutrientProfile, profile *domain.GeneticProfile) []domain.Badge {
	if profile == nil {
		return nil
	}

	var badges []domain.Badge

	if limit := s.saturatedFatLimit(profile); profile.SaturatedFatLimit != nil || profile.Has(domain.ConditionSaturatedFatLimited) {
		if value, ok := nutrients.Value(domain.KeySaturatedFat); ok {
			level := ratioLevel(value / limit)
			badges = append(badges, domain.Badge{
				Nutrient: "saturated_fat",
				Level:    level,
				Value:    value,
				Message:  fmt.Sprintf("Saturated fat %.1fg against your personal ceiling of %.1fg per 100g", value, limit),
			})
		}
	}

	if target := s.fiberTarget(profile); profile.FiberTarget != nil {
		if value, ok := nutrients.Value(domain.KeyFiber); ok {
			level := domain.BadgeHigh
			switch {
			case value >= target:
				level = domain.BadgeGood
			case value >= target/2:
				level = domain.BadgeModerate
			}
			badges = append(badges, domain.Badge{
				Nutrient: "fiber",
				Level:    level,
				Value:    value,
				Message:  fmt.Sprintf("Fiber %.1fg against your target of %.1fg per 100g", value, target),
			})
		}
	}

	if profile.Has(domain.ConditionOmega3Deficiency) {
		if value, ok := nutrients.Value(domain.KeyOmega3); ok {
			level := domain.BadgeHigh
			switch {
			case value >= omega3GoodLevel:
				level = domain.BadgeGood
			case value >= omega3SomeLevel:
				level = domain.BadgeModerate
			}
			badges = append(badges, domain.Badge{
				Nutrient: "omega3",
				Level:    level,
				Value:    value,
				Message:  fmt.Sprintf("Omega-3 content %.2fg per 100g", value),
			})
		}
	}

	return badges
}

// ContextualExplanations compares the standard threshold with the profile's
// personalized one for nutrients where they differ.
func (s *PersonalizationService) ContextualExplanations(nutrients domain.NutrientProfile, profile *domain.GeneticProfile) []domain.ContextualExplanation {
	if profile == nil {
		return nil
	}

	var explanations []domain.ContextualExplanation

	if profile.SaturatedFatLimit != nil {
		if value, ok := nutrients.Value(domain.KeySaturatedFat); ok {
			explanations = append(explanations, domain.ContextualExplanation{
				Nutrient:              "saturated_fat",
				Value:                 value,
				StandardThreshold:     standardSaturatedFatLimit,
				PersonalizedThreshold: *profile.SaturatedFatLimit,
				Explanation: fmt.Sprintf(
					"The general guideline flags saturated fat above %.1fg per 100g; your profile lowers that to %.1fg.",
					standardSaturatedFatLimit, *profile.SaturatedFatLimit),
			})
		}
	}

	if profile.FiberTarget != nil {
		if value, ok := nutrients.Value(domain.KeyFiber); ok {
			explanations = append(explanations, domain.ContextualExplanation{
				Nutrient:              "fiber",
				Value:                 value,
				StandardThreshold:     standardFiberTarget,
				PersonalizedThreshold: *profile.FiberTarget,
				Explanation: fmt.Sprintf(
					"The general fiber benchmark is %.1fg per 100g; your profile raises the target to %.1fg.",
					standardFiberTarget, *profile.FiberTarget),
			})
		}
	}

	return explanations
}

// Summary aggregates the fixed checklist (saturated fat, omega-3, nitrites,
// iron, lactose, fiber) into per-item statuses and an overall fit. Items
// appear only when the profile cares about them.
func (s *PersonalizationService) Summary(nutrients domain.NutrientProfile, codes []string, profile *domain.GeneticProfile) (*domain.ProfileSummary, error) {
	if profile == nil {
		return nil, nil
	}

	present := make(map[string]bool, len(codes))
	for _, code := range codes {
		normalized, err := domain.NormalizeAdditiveCode(code)
		if err != nil {
			return nil, err
		}
		present[normalized] = true
	}

	var items []domain.ChecklistItem

	if limit := s.saturatedFatLimit(profile); limit > 0 && (profile.SaturatedFatLimit != nil || profile.Has(domain.ConditionSaturatedFatLimited)) {
		items = append(items, checklistAgainstCeiling("saturated fat", nutrients, domain.KeySaturatedFat, limit))
	}

	if profile.Has(domain.ConditionOmega3Deficiency) {
		item := domain.ChecklistItem{Name: "omega-3", Status: domain.ChecklistUnknown}
		if value, ok := nutrients.Value(domain.KeyOmega3); ok {
			switch {
			case value >= omega3GoodLevel:
				item.Status = domain.ChecklistGood
				item.Message = "Meaningful omega-3 content"
			case value >= omega3SomeLevel:
				item.Status = domain.ChecklistCaution
				item.Message = "Some omega-3, below the useful level"
			default:
				item.Status = domain.ChecklistBad
				item.Message = "No meaningful omega-3"
			}
		}
		items = append(items, item)
	}

	if profile.Has(domain.ConditionNitriteSensitivity) {
		item := domain.ChecklistItem{Name: "nitrites", Status: domain.ChecklistGood, Message: "No curing nitrites listed"}
		for _, code := range nitriteCodes {
			if present[code] {
				item.Status = domain.ChecklistBad
				item.Message = "Contains curing nitrites"
				break
			}
		}
		items = append(items, item)
	}

	if profile.Has(domain.ConditionIronDeficiency) {
		item := domain.ChecklistItem{Name: "iron", Status: domain.ChecklistUnknown}
		if value, ok := nutrients.Value(domain.KeyIron); ok {
			if value >= ironGoodLevel {
				item.Status = domain.ChecklistGood
				item.Message = "Useful iron content"
			} else {
				item.Status = domain.ChecklistCaution
				item.Message = "Little iron"
			}
		}
		items = append(items, item)
	}

	if profile.Has(domain.ConditionLactoseIntolerance) {
		item := domain.ChecklistItem{Name: "lactose", Status: domain.ChecklistUnknown}
		value, hasLactose := nutrients.Value(domain.KeyLactose)
		switch {
		case present["E966"]:
			item.Status = domain.ChecklistBad
			item.Message = "Contains a lactose-derived sweetener"
		case hasLactose && value > lactoseTolerable:
			item.Status = domain.ChecklistBad
			item.Message = "Contains lactose"
		case hasLactose:
			item.Status = domain.ChecklistGood
			item.Message = "Lactose within tolerable range"
		}
		items = append(items, item)
	}

	if target := s.fiberTarget(profile); target > 0 && profile.FiberTarget != nil {
		item := domain.ChecklistItem{Name: "fiber", Status: domain.ChecklistUnknown}
		if value, ok := nutrients.Value(domain.KeyFiber); ok {
			switch {
			case value >= target:
				item.Status = domain.ChecklistGood
				item.Message = "Meets your fiber target"
			case value >= target/2:
				item.Status = domain.ChecklistCaution
				item.Message = "Below your fiber target"
			default:
				item.Status = domain.ChecklistBad
				item.Message = "Well below your fiber target"
			}
		}
		items = append(items, item)
	}

	return &domain.ProfileSummary{
		Items:   items,
		Overall: overallFit(items),
	}, nil
}

// overallFit: poor with 2+ bad items; caution with exactly 1 bad or 2+
// caution; excellent with 3+ good; good otherwise.
func overallFit(items []domain.ChecklistItem) domain.OverallFit {
	var good, caution, bad int
	for _, item := range items {
		switch item.Status {
		case domain.ChecklistGood:
			good++
		case domain.ChecklistCaution:
			caution++
		case domain.ChecklistBad:
			bad++
		}
	}

	switch {
	case bad >= 2:
		return domain.FitPoor
	case bad == 1 || caution >= 2:
		return domain.FitCaution
	case good >= 3:
		return domain.FitExcellent
	default:
		return domain.FitGood
	}
}

func checklistAgainstCeiling(name string, nutrients domain.NutrientProfile, key string, limit float64) domain.ChecklistItem {
	item := domain.ChecklistItem{Name: name, Status: domain.ChecklistUnknown}
	value, ok := nutrients.Value(key)
	if !ok {
		return item
	}
	switch {
	case value <= limit:
		item.Status = domain.ChecklistGood
		item.Message = fmt.Sprintf("%.1fg is within your %.1fg ceiling", value, limit)
	case value <= limit*1.5:
		item.Status = domain.ChecklistCaution
		item.Message = fmt.Sprintf("%.1fg slightly exceeds your %.1fg ceiling", value, limit)
	default:
		item.Status = domain.ChecklistBad
		item.Message = fmt.Sprintf("%.1fg is well above your %.1fg ceiling", value, limit)
	}
	return item
}

func (s *PersonalizationService) saturatedFatLimit(profile *domain.GeneticProfile) float64 {
	if profile.SaturatedFatLimit != nil {
		return *profile.SaturatedFatLimit
	}
	return standardSaturatedFatLimit
}

func (s *PersonalizationService) fiberTarget(profile *domain.GeneticProfile) float64 {
	if profile.FiberTarget != nil {
		return *profile.FiberTarget
	}
	return standardFiberTarget
}

// PersonalizedRulesTable exposes the static rule table for wiring.
func PersonalizedRulesTable() []domain.PersonalizedRule {
	return catalog.PersonalizedRules()
}

// ratioLevel grades a value/limit ratio onto badge levels.
func ratioLevel(ratio float64) domain.BadgeLevel {
	switch {
	case ratio < 0.5:
		return domain.BadgeGood
	case ratio < 1:
		return domain.BadgeModerate
	case ratio < 2:
		return domain.BadgeHigh
	default:
		return domain.BadgeCritical
	}
}
