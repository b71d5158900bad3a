package catalog

import "github.com/nutrilens/backend/internal/domain"

// The three scoring configurations. Weights are max points per factor;
// thresholds bound the interpolation segments (per 100g values, kcal for
// calories). Configs are value objects; callers never mutate them.

// DefaultConfig is the scoring configuration for solid foods.
func DefaultConfig() domain.ScoringConfig {
	return domain.ScoringConfig{
		Name: "default",
		Weights: map[domain.Factor]float64{
			domain.FactorSugar:        35,
			domain.FactorSaturatedFat: 6,
			domain.FactorSodium:       6,
			domain.FactorCalories:     12,
			domain.FactorProcessing:   6,
			domain.FactorAdditives:    6,
			domain.FactorFiber:        10,
			domain.FactorProtein:      10,
			domain.FactorOmega3:       0,
			domain.FactorOrganic:      8,
		},
		Thresholds: map[domain.Factor]domain.Threshold{
			domain.FactorSugar:        {Low: 4.5, Medium: 13.5, High: 22.5},
			domain.FactorSaturatedFat: {Low: 0.8, Medium: 2.5, High: 4.5},
			domain.FactorSodium:       {Low: 0.08, Medium: 0.35, High: 0.7},
			domain.FactorCalories:     {Low: 45, Medium: 90, High: 160},
			domain.FactorFiber:        {Low: 1.5, Medium: 3.5, High: 6},
			domain.FactorProtein:      {Low: 3, Medium: 7, High: 12},
		},
	}
}

// BeverageConfig applies stricter thresholds for drink categories, where
// the same sugar level is consumed far faster.
func BeverageConfig() domain.ScoringConfig {
	return domain.ScoringConfig{
		Name: "beverage",
		Weights: map[domain.Factor]float64{
			domain.FactorSugar:        35,
			domain.FactorSaturatedFat: 6,
			domain.FactorSodium:       6,
			domain.FactorCalories:     12,
			domain.FactorProcessing:   6,
			domain.FactorAdditives:    6,
			domain.FactorFiber:        8,
			domain.FactorProtein:      8,
			domain.FactorOmega3:       0,
			domain.FactorOrganic:      8,
		},
		Thresholds: map[domain.Factor]domain.Threshold{
			domain.FactorSugar:        {Low: 2.5, Medium: 5, High: 8},
			domain.FactorSaturatedFat: {Low: 0.5, Medium: 1.5, High: 3},
			domain.FactorSodium:       {Low: 0.05, Medium: 0.25, High: 0.5},
			domain.FactorCalories:     {Low: 25, Medium: 50, High: 90},
			domain.FactorFiber:        {Low: 1, Medium: 2.5, High: 4.5},
			domain.FactorProtein:      {Low: 1.5, Medium: 3.5, High: 6},
		},
	}
}

// PersonalizedConfig replaces both other configs wholesale when the caller
// has a health profile. It activates omega-3 scoring and tightens the fat
// and sugar bands.
func PersonalizedConfig() domain.ScoringConfig {
	return domain.ScoringConfig{
		Name: "personalized",
		Weights: map[domain.Factor]float64{
			domain.FactorSugar:        30,
			domain.FactorSaturatedFat: 12,
			domain.FactorSodium:       10,
			domain.FactorCalories:     10,
			domain.FactorProcessing:   8,
			domain.FactorAdditives:    10,
			domain.FactorFiber:        10,
			domain.FactorProtein:      8,
			domain.FactorOmega3:       8,
			domain.FactorOrganic:      8,
		},
		Thresholds: map[domain.Factor]domain.Threshold{
			domain.FactorSugar:        {Low: 4, Medium: 10, High: 18},
			domain.FactorSaturatedFat: {Low: 0.6, Medium: 2, High: 3.5},
			domain.FactorSodium:       {Low: 0.08, Medium: 0.3, High: 0.6},
			domain.FactorCalories:     {Low: 45, Medium: 90, High: 160},
			domain.FactorFiber:        {Low: 1.5, Medium: 3.5, High: 6},
			domain.FactorProtein:      {Low: 3, Medium: 7, High: 12},
			domain.FactorOmega3:       {Low: 0.1, Medium: 0.3, High: 0.6},
		},
	}
}

// BeverageKeywords are category substrings that select the beverage config.
// Matching is case-insensitive.
var BeverageKeywords = []string{
	"soda", "soft drink", "juice", "nectar", "tea", "coffee",
	"milk drink", "energy drink", "sports drink", "lemonade",
	"smoothie", "cola", "flavored water", "beverage",
}

// OrganicPhrases are label substrings that earn the organic bonus.
// Matching is case-insensitive.
var OrganicPhrases = []string{
	"organic", "bio", "biologique", "usda organic", "eu organic",
	"ecocert", "demeter", "soil association",
}

// FunctionDisplayOrder is the fixed priority order used when grouping
// additives by primary function.
var FunctionDisplayOrder = []domain.FunctionCategory{
	domain.FunctionPreservative,
	domain.FunctionColoring,
	domain.FunctionSweetener,
	domain.FunctionFlavorEnhancer,
	domain.FunctionEmulsifier,
	domain.FunctionThickener,
	domain.FunctionStabilizer,
	domain.FunctionAntioxidant,
	domain.FunctionAcidityRegulator,
	domain.FunctionRaisingAgent,
	domain.FunctionGlazingAgent,
	domain.FunctionAntiCaking,
	domain.FunctionHumectant,
	domain.FunctionFoamingAgent,
	domain.FunctionOther,
}
