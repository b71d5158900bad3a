package domain

// ProcessingLevel bands the weighted additive load for display.
type ProcessingLevel string

const (
	LoadMinimal  ProcessingLevel = "minimal"
	LoadLow      ProcessingLevel = "low"
	LoadModerate ProcessingLevel = "moderate"
	LoadHigh     ProcessingLevel = "high"
	LoadUltra    ProcessingLevel = "ultra"
)

// LoadBreakdown counts additives per risk bucket. Unknown is a distinct
// bucket from moderate: it tracks codes the registry cannot classify.
type LoadBreakdown struct {
	Safe     int `json:"safe"`
	Moderate int `json:"moderate"`
	Avoid    int `json:"avoid"`
	Unknown  int `json:"unknown"`
}

// AdditiveLoad is the aggregate processing burden of a product's additive
// list.
type AdditiveLoad struct {
	TotalCount      int             `json:"totalCount"`
	WeightedScore   int             `json:"weightedScore"`
	ProcessingLevel ProcessingLevel `json:"processingLevel"`
	Normalized      int             `json:"normalized"`
	Breakdown       LoadBreakdown   `json:"breakdown"`
}

// FunctionGroup buckets additive codes under their primary functional
// category.
type FunctionGroup struct {
	Category FunctionCategory `json:"category"`
	Codes    []string         `json:"codes"`
}
