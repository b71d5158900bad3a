package domain

import "strings"

// RiskTier is the internal three-tier risk classification for an additive.
type RiskTier string

const (
	RiskSafe     RiskTier = "safe"
	RiskModerate RiskTier = "moderate"
	RiskAvoid    RiskTier = "avoid"
)

// ResolutionSource records where a resolved additive record came from.
// It explains a result for trust/debugging purposes and never affects scoring.
type ResolutionSource string

const (
	SourceLocal        ResolutionSource = "local"
	SourceCachedRemote ResolutionSource = "cached_remote"
	SourceFreshRemote  ResolutionSource = "fresh_remote"
	SourceFallback     ResolutionSource = "fallback"
)

// FunctionCategory is a technological function an additive performs in food.
type FunctionCategory string

const (
	FunctionPreservative     FunctionCategory = "preservative"
	FunctionColoring         FunctionCategory = "coloring"
	FunctionSweetener        FunctionCategory = "sweetener"
	FunctionFlavorEnhancer   FunctionCategory = "flavor_enhancer"
	FunctionEmulsifier       FunctionCategory = "emulsifier"
	FunctionThickener        FunctionCategory = "thickener"
	FunctionStabilizer       FunctionCategory = "stabilizer"
	FunctionAntioxidant      FunctionCategory = "antioxidant"
	FunctionAcidityRegulator FunctionCategory = "acidity_regulator"
	FunctionRaisingAgent     FunctionCategory = "raising_agent"
	FunctionGlazingAgent     FunctionCategory = "glazing_agent"
	FunctionAntiCaking       FunctionCategory = "anti_caking"
	FunctionHumectant        FunctionCategory = "humectant"
	FunctionFoamingAgent     FunctionCategory = "foaming_agent"
	FunctionOther            FunctionCategory = "other"
)

// ResolvedAdditive is the uniform record produced by additive resolution,
// regardless of which tier of the lookup chain supplied it.
type ResolvedAdditive struct {
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	Risk        RiskTier           `json:"risk"`
	Functions   []FunctionCategory `json:"functions,omitempty"`
	Description string             `json:"description,omitempty"`
	Vegan       *bool              `json:"vegan,omitempty"`
	Source      ResolutionSource   `json:"source"`
}

// NormalizeAdditiveCode canonicalizes an additive identifier: separators and
// whitespace are stripped and the result is upper-cased, so "e 211", "E-211"
// and "E211" all compare equal. Returns ErrInvalidAdditiveCode for input that
// is empty after normalization.
func NormalizeAdditiveCode(code string) (string, error) {
	var b strings.Builder
	for _, r := range code {
		switch r {
		case ' ', '\t', '-', '_', '.':
			continue
		}
		b.WriteRune(r)
	}
	normalized := strings.ToUpper(b.String())
	if normalized == "" {
		return "", ErrInvalidAdditiveCode
	}
	return normalized, nil
}
