package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/nutrilens/backend/internal/catalog"
	"github.com/nutrilens/backend/internal/domain"
)

// Empty-calorie penalties. These are flat, independent of configured
// weights: sugar or calories with negligible fiber and protein is penalized
// the same under every config.
const (
	emptyCalBeverageHighSugar = 30.0
	emptyCalBeverage          = 20.0
	emptyCalHighSugar         = 20.0
	emptyCalBase              = 15.0
)

// NOVA group penalty fractions of the processing weight.
var novaPenaltyFraction = map[int]float64{
	1: 0,
	2: 0.2,
	3: 0.5,
	4: 1.0,
}

// negativeFactors is the fixed evaluation order of penalized nutrients.
var negativeFactors = []domain.Factor{
	domain.FactorSugar,
	domain.FactorSaturatedFat,
	domain.FactorSodium,
	domain.FactorCalories,
}

// positiveFactors is the fixed evaluation order of rewarded nutrients.
// Omega-3 participates only when the active config gives it weight.
var positiveFactors = []domain.Factor{
	domain.FactorFiber,
	domain.FactorProtein,
	domain.FactorOmega3,
}

// HealthScorer computes the 0-100 health score with its itemized breakdown.
// All state is immutable configuration; Score is safe for concurrent use.
type HealthScorer struct {
	profiles domain.ProfileRepository
}

// NewHealthScorer creates a scorer. The profile repository may be nil, in
// which case every call takes the non-personalized path.
func NewHealthScorer(profiles domain.ProfileRepository) *HealthScorer {
	return &HealthScorer{profiles: profiles}
}

// Score evaluates a product. The design starts every product at 100,
// subtracts scaled negatives and lets positives earn back at most 15 points,
// so poor products land near zero instead of mid-range.
func (s *HealthScorer) Score(ctx context.Context, input domain.AnalysisInput) (*domain.ScoreResult, error) {
	isBeverage := s.isBeverage(input.Categories)
	config, isPersonalized := s.selectConfig(ctx, input.UserID, isBeverage)

	var details []domain.ScoreDetail

	// Negative nutrient factors
	for _, factor := range negativeFactors {
		value, ok := nutrientValue(input.Nutrients, factor)
		if !ok {
			continue // absent means no contribution, not zero
		}
		threshold, hasThreshold := config.Thresholds[factor]
		weight := config.Weight(factor)
		if !hasThreshold || weight == 0 {
			continue
		}
		fraction := segmentFraction(value, threshold)
		details = append(details, newDetail(factor, -weight*fraction,
			fmt.Sprintf("%s: %s (%.1f per 100g)", factorLabel(factor), bandLabel(fraction), value)))
	}

	// Positive nutrient factors
	for _, factor := range positiveFactors {
		weight := config.Weight(factor)
		if weight == 0 {
			continue
		}
		value, ok := nutrientValue(input.Nutrients, factor)
		if !ok {
			continue
		}
		threshold, hasThreshold := config.Thresholds[factor]
		if !hasThreshold {
			continue
		}
		fraction := segmentFraction(value, threshold)
		details = append(details, newDetail(factor, weight*fraction,
			fmt.Sprintf("%s: %s (%.1f per 100g)", factorLabel(factor), positiveBandLabel(fraction), value)))
	}

	// Additive penalty from registry classification
	if len(input.Additives) > 0 {
		detail, err := s.additiveDetail(input.Additives, config.Weight(domain.FactorAdditives))
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	// NOVA processing penalty
	if fraction, ok := novaPenaltyFraction[input.NovaGroup]; ok {
		weight := config.Weight(domain.FactorProcessing)
		details = append(details, newDetail(domain.FactorProcessing, -weight*fraction,
			fmt.Sprintf("Processing: NOVA group %d", input.NovaGroup)))
	}

	// Organic certification bonus
	if hasOrganicLabel(input.Labels) {
		details = append(details, newDetail(domain.FactorOrganic, config.Weight(domain.FactorOrganic),
			"Organic certification"))
	}

	// Empty-calorie penalty, flat and config-independent
	if penalty, ok := emptyCaloriePenalty(input.Nutrients, isBeverage); ok {
		details = append(details, newDetail(domain.FactorEmptyCalories, -penalty,
			"Empty calories: energy without fiber or protein"))
	}

	breakdown := buildBreakdown(details)

	maxPositive := config.Weight(domain.FactorFiber) + config.Weight(domain.FactorProtein) + config.Weight(domain.FactorOmega3)
	maxNegative := config.Weight(domain.FactorSugar) +
		config.Weight(domain.FactorSaturatedFat) +
		config.Weight(domain.FactorSodium) +
		config.Weight(domain.FactorCalories) +
		config.Weight(domain.FactorProcessing) +
		config.Weight(domain.FactorAdditives) +
		emptyCalorieCap(isBeverage)

	score := 100.0
	if maxPositive > 0 {
		score += 15 * breakdown.Positive / maxPositive
	}
	if maxNegative > 0 {
		score -= 100 * breakdown.Negative / maxNegative
	}

	return &domain.ScoreResult{
		Score:          clampScore(int(math.Round(score))),
		Breakdown:      breakdown,
		ConfigName:     config.Name,
		IsBeverage:     isBeverage,
		IsPersonalized: isPersonalized,
	}, nil
}

// selectConfig applies the strict priority: personalized when the caller has
// a profile, beverage for drink categories, default otherwise.
func (s *HealthScorer) selectConfig(ctx context.Context, userID string, isBeverage bool) (domain.ScoringConfig, bool) {
	if userID != "" && s.profiles != nil {
		if _, err := s.profiles.GetProfile(ctx, userID); err == nil {
			return catalog.PersonalizedConfig(), true
		}
	}
	if isBeverage {
		return catalog.BeverageConfig(), false
	}
	return catalog.DefaultConfig(), false
}

func (s *HealthScorer) isBeverage(categories []string) bool {
	for _, category := range categories {
		lower := strings.ToLower(category)
		for _, keyword := range catalog.BeverageKeywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

func (s *HealthScorer) additiveDetail(codes []string, weight float64) (domain.ScoreDetail, error) {
	breakdown, err := classifyAdditives(codes)
	if err != nil {
		return domain.ScoreDetail{}, err
	}

	penalty := weight*float64(breakdown.Avoid)/3 +
		weight*float64(breakdown.Moderate)/10 +
		weight*float64(breakdown.Unknown)/15
	penalty = math.Min(weight, penalty)

	description := fmt.Sprintf("Additives: %d total (%d avoid, %d moderate, %d unknown)",
		len(codes), breakdown.Avoid, breakdown.Moderate, breakdown.Unknown)
	return newDetail(domain.FactorAdditives, -penalty, description), nil
}

// nutrientValue reads the value backing a factor, honoring the fallback
// derivations (salt→sodium, kJ→kcal).
func nutrientValue(nutrients domain.NutrientProfile, factor domain.Factor) (float64, bool) {
	switch factor {
	case domain.FactorSugar:
		return nutrients.Value(domain.KeySugars)
	case domain.FactorSaturatedFat:
		return nutrients.Value(domain.KeySaturatedFat)
	case domain.FactorSodium:
		return nutrients.Sodium()
	case domain.FactorCalories:
		return nutrients.Calories()
	case domain.FactorFiber:
		return nutrients.Value(domain.KeyFiber)
	case domain.FactorProtein:
		return nutrients.Value(domain.KeyProteins)
	case domain.FactorOmega3:
		return nutrients.Value(domain.KeyOmega3)
	}
	return 0, false
}

// segmentFraction maps a value onto [0,1] across the three threshold
// segments: 0 at or below low, 0.5 at medium, 1 at or above high, linear
// in between.
func segmentFraction(value float64, t domain.Threshold) float64 {
	switch {
	case value <= t.Low:
		return 0
	case value <= t.Medium:
		return 0.5 * (value - t.Low) / (t.Medium - t.Low)
	case value <= t.High:
		return 0.5 + 0.5*(value-t.Medium)/(t.High-t.Medium)
	default:
		return 1
	}
}

func emptyCaloriePenalty(nutrients domain.NutrientProfile, isBeverage bool) (float64, bool) {
	sugar, hasSugar := nutrients.Value(domain.KeySugars)
	calories, hasCalories := nutrients.Calories()
	fiber, hasFiber := nutrients.Value(domain.KeyFiber)
	protein, hasProtein := nutrients.Value(domain.KeyProteins)

	// Unreported fiber or protein never triggers the penalty; only
	// reported-low values do.
	if !hasFiber || !hasProtein || fiber >= 0.5 || protein >= 1 {
		return 0, false
	}
	energyPresent := (hasSugar && sugar > 5) || (hasCalories && calories > 50)
	if !energyPresent {
		return 0, false
	}

	switch {
	case isBeverage && hasSugar && sugar > 8:
		return emptyCalBeverageHighSugar, true
	case isBeverage:
		return emptyCalBeverage, true
	case hasSugar && sugar > 15:
		return emptyCalHighSugar, true
	default:
		return emptyCalBase, true
	}
}

func emptyCalorieCap(isBeverage bool) float64 {
	if isBeverage {
		return emptyCalBeverageHighSugar
	}
	return emptyCalHighSugar
}

func hasOrganicLabel(labels []string) bool {
	for _, label := range labels {
		lower := strings.ToLower(label)
		for _, phrase := range catalog.OrganicPhrases {
			if strings.Contains(lower, phrase) {
				return true
			}
		}
	}
	return false
}

// newDetail tags the entry by the sign of its delta; zero deltas count as
// positive ("within recommended range").
func newDetail(factor domain.Factor, points float64, description string) domain.ScoreDetail {
	detailType := domain.DetailPositive
	if points < 0 {
		detailType = domain.DetailNegative
	}
	return domain.ScoreDetail{
		Factor:      factor,
		Points:      round1(points),
		Description: description,
		Type:        detailType,
	}
}

func buildBreakdown(details []domain.ScoreDetail) domain.ScoreBreakdown {
	breakdown := domain.ScoreBreakdown{Details: details}
	for _, d := range details {
		if d.Points >= 0 {
			breakdown.Positive += d.Points
		} else {
			breakdown.Negative += -d.Points
		}
	}
	return breakdown
}

func factorLabel(factor domain.Factor) string {
	switch factor {
	case domain.FactorSugar:
		return "Sugar"
	case domain.FactorSaturatedFat:
		return "Saturated fat"
	case domain.FactorSodium:
		return "Sodium"
	case domain.FactorCalories:
		return "Calories"
	case domain.FactorFiber:
		return "Fiber"
	case domain.FactorProtein:
		return "Protein"
	case domain.FactorOmega3:
		return "Omega-3"
	}
	return string(factor)
}

func bandLabel(fraction float64) string {
	switch {
	case fraction == 0:
		return "low"
	case fraction <= 0.5:
		return "moderate"
	case fraction < 1:
		return "high"
	default:
		return "very high"
	}
}

func positiveBandLabel(fraction float64) string {
	switch {
	case fraction == 0:
		return "negligible"
	case fraction <= 0.5:
		return "some"
	case fraction < 1:
		return "good"
	default:
		return "excellent"
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
