package domain

// Factor identifies a single contributor to the health score.
type Factor string

const (
	FactorSugar         Factor = "sugar"
	FactorSaturatedFat  Factor = "saturated_fat"
	FactorSodium        Factor = "sodium"
	FactorCalories      Factor = "calories"
	FactorFiber         Factor = "fiber"
	FactorProtein       Factor = "protein"
	FactorOmega3        Factor = "omega3"
	FactorAdditives     Factor = "additives"
	FactorProcessing    Factor = "processing"
	FactorOrganic       Factor = "organic"
	FactorEmptyCalories Factor = "empty_calories"
)

// Threshold is a (low, medium, high) triple bounding the three interpolation
// segments of a scored factor.
type Threshold struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// ScoringConfig is an immutable set of factor weights and thresholds.
// Exactly one config is active per scoring call: personalized when the
// caller has a profile, beverage for drink categories, default otherwise.
type ScoringConfig struct {
	Name       string               `json:"name"`
	Weights    map[Factor]float64   `json:"weights"`
	Thresholds map[Factor]Threshold `json:"thresholds"`
}

// Weight returns the configured weight for a factor, zero when unset.
func (c ScoringConfig) Weight(f Factor) float64 {
	return c.Weights[f]
}

// DetailType tags a breakdown entry; it always matches the sign of the
// entry's point delta (zero deltas are tagged positive).
type DetailType string

const (
	DetailPositive DetailType = "positive"
	DetailNegative DetailType = "negative"
)

// ScoreDetail is one itemized line of the score breakdown.
type ScoreDetail struct {
	Factor      Factor     `json:"factor"`
	Points      float64    `json:"points"`
	Description string     `json:"description"`
	Type        DetailType `json:"type"`
}

// ScoreBreakdown is the ordered list of score details plus aggregate totals.
// Positive and Negative are magnitudes (both >= 0).
type ScoreBreakdown struct {
	Details  []ScoreDetail `json:"details"`
	Positive float64       `json:"positive"`
	Negative float64       `json:"negative"`
}

// ScoreResult is the scorer's output: a 0-100 score with its breakdown.
type ScoreResult struct {
	Score          int            `json:"score"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
	ConfigName     string         `json:"configName"`
	IsBeverage     bool           `json:"isBeverage"`
	IsPersonalized bool           `json:"isPersonalized"`
}

// AnalysisInput is the caller-supplied product description the engine
// operates on. Nutrients and additive codes are the only required parts;
// everything else refines the result when present.
type AnalysisInput struct {
	Nutrients  NutrientProfile `json:"nutrients"`
	Additives  []string        `json:"additives"`
	NovaGroup  int             `json:"novaGroup,omitempty"`
	Labels     []string        `json:"labels,omitempty"`
	Categories []string        `json:"categories,omitempty"`
	UserID     string          `json:"userId,omitempty"`
}
