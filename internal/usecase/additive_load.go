package usecase

import (
	"math"

	"github.com/nutrilens/backend/internal/catalog"
	"github.com/nutrilens/backend/internal/domain"
)

// Risk bucket weights for the aggregate load score. Unknown codes carry
// their own weight, deliberately distinct from the moderate tier a synthetic
// fallback record reports: the load score tracks "we don't know", the
// fallback record tracks "assume middling risk".
const (
	loadWeightSafe     = 1
	loadWeightModerate = 3
	loadWeightAvoid    = 5
	loadWeightUnknown  = 2
)

// loadScaleMax is the weighted score that maps to a normalized value of 100.
const loadScaleMax = 60.0

// LoadAggregator converts an additive list into a single processing-level
// figure.
type LoadAggregator struct{}

// NewLoadAggregator creates a load aggregator.
func NewLoadAggregator() *LoadAggregator {
	return &LoadAggregator{}
}

// Load classifies every code through the local registry and aggregates the
// counts into a weighted score, a processing band, and a 0-100 display value.
func (a *LoadAggregator) Load(codes []string) (*domain.AdditiveLoad, error) {
	breakdown, err := classifyAdditives(codes)
	if err != nil {
		return nil, err
	}

	weighted := breakdown.Safe*loadWeightSafe +
		breakdown.Moderate*loadWeightModerate +
		breakdown.Avoid*loadWeightAvoid +
		breakdown.Unknown*loadWeightUnknown

	normalized := math.Min(float64(weighted)/loadScaleMax*100, 100)

	return &domain.AdditiveLoad{
		TotalCount:      len(codes),
		WeightedScore:   weighted,
		ProcessingLevel: processingLevel(weighted),
		Normalized:      int(math.Round(normalized)),
		Breakdown:       breakdown,
	}, nil
}

// processingLevel returns the first matching band in ascending order.
func processingLevel(weighted int) domain.ProcessingLevel {
	switch {
	case weighted <= 5:
		return domain.LoadMinimal
	case weighted <= 15:
		return domain.LoadLow
	case weighted <= 30:
		return domain.LoadModerate
	case weighted <= 50:
		return domain.LoadHigh
	default:
		return domain.LoadUltra
	}
}

// classifyAdditives buckets codes by risk tier using only the local
// registry. Codes the registry does not know land in the unknown bucket;
// malformed codes are a caller error.
func classifyAdditives(codes []string) (domain.LoadBreakdown, error) {
	var breakdown domain.LoadBreakdown
	for _, code := range codes {
		normalized, err := domain.NormalizeAdditiveCode(code)
		if err != nil {
			return domain.LoadBreakdown{}, err
		}
		entry, ok := catalog.LookupAdditive(normalized)
		if !ok {
			breakdown.Unknown++
			continue
		}
		switch entry.Risk {
		case domain.RiskSafe:
			breakdown.Safe++
		case domain.RiskModerate:
			breakdown.Moderate++
		case domain.RiskAvoid:
			breakdown.Avoid++
		}
	}
	return breakdown, nil
}
