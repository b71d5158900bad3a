package taxonomy

import (
	"strings"

	"github.com/nutrilens/backend/internal/domain"
)

// functionClassMap maps remote additive class tags to internal categories.
var functionClassMap = map[string]domain.FunctionCategory{
	"en:preservative":      domain.FunctionPreservative,
	"en:colour":            domain.FunctionColoring,
	"en:color":             domain.FunctionColoring,
	"en:sweetener":         domain.FunctionSweetener,
	"en:flavour-enhancer":  domain.FunctionFlavorEnhancer,
	"en:emulsifier":        domain.FunctionEmulsifier,
	"en:thickener":         domain.FunctionThickener,
	"en:stabiliser":        domain.FunctionStabilizer,
	"en:stabilizer":        domain.FunctionStabilizer,
	"en:antioxidant":       domain.FunctionAntioxidant,
	"en:acidity-regulator": domain.FunctionAcidityRegulator,
	"en:raising-agent":     domain.FunctionRaisingAgent,
	"en:glazing-agent":     domain.FunctionGlazingAgent,
	"en:anti-caking-agent": domain.FunctionAntiCaking,
	"en:humectant":         domain.FunctionHumectant,
	"en:foaming-agent":     domain.FunctionFoamingAgent,
}

// mapToResolvedAdditive converts a remote taxonomy document into the uniform
// resolved record, tagged as a fresh remote result.
func mapToResolvedAdditive(code string, doc *additiveDocument) *domain.ResolvedAdditive {
	record := &domain.ResolvedAdditive{
		Code:        code,
		Name:        localized(doc.Name, code),
		Description: localized(doc.Description, ""),
		Risk:        mapOverexposureRisk(doc.OverexposureRisk),
		Functions:   mapFunctionClasses(doc.AdditiveClasses),
		Source:      domain.SourceFreshRemote,
	}

	switch strings.ToLower(doc.Vegan) {
	case "yes":
		v := true
		record.Vegan = &v
	case "no":
		v := false
		record.Vegan = &v
	}

	return record
}

// mapOverexposureRisk translates the remote risk vocabulary
// (high/moderate/low/none overexposure risk) onto the internal three-tier
// scale. Unknown values default to moderate.
func mapOverexposureRisk(risk string) domain.RiskTier {
	switch strings.TrimPrefix(strings.ToLower(risk), "en:") {
	case "high":
		return domain.RiskAvoid
	case "moderate":
		return domain.RiskModerate
	case "low", "none", "no":
		return domain.RiskSafe
	default:
		return domain.RiskModerate
	}
}

func mapFunctionClasses(classes []string) []domain.FunctionCategory {
	var functions []domain.FunctionCategory
	seen := make(map[domain.FunctionCategory]bool)
	for _, class := range classes {
		category, ok := functionClassMap[strings.ToLower(class)]
		if !ok {
			category = domain.FunctionOther
		}
		if !seen[category] {
			functions = append(functions, category)
			seen[category] = true
		}
	}
	return functions
}

// localized picks the English text from a localized map, falling back to any
// available language and finally to the given default.
func localized(texts map[string]string, fallback string) string {
	if text, ok := texts["en"]; ok && text != "" {
		return text
	}
	for _, text := range texts {
		if text != "" {
			return text
		}
	}
	return fallback
}
