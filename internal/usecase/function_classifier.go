package usecase

import (
	"github.com/nutrilens/backend/internal/catalog"
	"github.com/nutrilens/backend/internal/domain"
)

// FunctionClassifier maps additive codes to their technological functions.
type FunctionClassifier struct{}

// NewFunctionClassifier creates a function classifier.
func NewFunctionClassifier() *FunctionClassifier {
	return &FunctionClassifier{}
}

// FunctionsOf returns the ordered functional categories of a code; codes the
// registry does not map resolve to the single category "other".
func (c *FunctionClassifier) FunctionsOf(code string) ([]domain.FunctionCategory, error) {
	normalized, err := domain.NormalizeAdditiveCode(code)
	if err != nil {
		return nil, err
	}
	entry, ok := catalog.LookupAdditive(normalized)
	if !ok || len(entry.Functions) == 0 {
		return []domain.FunctionCategory{domain.FunctionOther}, nil
	}
	return entry.Functions, nil
}

// GroupByFunction buckets each code under its primary (first-listed)
// function only, emitting groups in the fixed display priority order and
// omitting empty categories.
func (c *FunctionClassifier) GroupByFunction(codes []string) ([]domain.FunctionGroup, error) {
	buckets := make(map[domain.FunctionCategory][]string)
	for _, code := range codes {
		normalized, err := domain.NormalizeAdditiveCode(code)
		if err != nil {
			return nil, err
		}
		functions, err := c.FunctionsOf(normalized)
		if err != nil {
			return nil, err
		}
		primary := functions[0]
		buckets[primary] = append(buckets[primary], normalized)
	}

	var groups []domain.FunctionGroup
	for _, category := range catalog.FunctionDisplayOrder {
		if codes, ok := buckets[category]; ok {
			groups = append(groups, domain.FunctionGroup{Category: category, Codes: codes})
		}
	}
	return groups, nil
}
