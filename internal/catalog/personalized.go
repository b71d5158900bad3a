package catalog

import "github.com/nutrilens/backend/internal/domain"

// personalizedRules maps health conditions to additive risk overrides.
// The table is static; a caller's profile selects which rules apply at
// evaluation time.
var personalizedRules = []domain.PersonalizedRule{
	{
		ID:           "pku-aspartame",
		Additives:    []string{"E951", "E962"},
		Condition:    domain.ConditionPhenylketonuria,
		Risk:         domain.RiskAvoid,
		Severity:     domain.SeverityCritical,
		Title:        "Contains a phenylalanine source",
		Message:      "Aspartame breaks down into phenylalanine, which people with phenylketonuria cannot metabolize.",
		GeneticBasis: "PAH gene variants impair phenylalanine hydroxylase activity.",
	},
	{
		ID:           "sulfite-sensitivity",
		Additives:    []string{"E220", "E221", "E222", "E223", "E224", "E226", "E228"},
		Condition:    domain.ConditionSulfiteSensitivity,
		Risk:         domain.RiskAvoid,
		Severity:     domain.SeverityCritical,
		Title:        "Sulfite preservative present",
		Message:      "Sulfites can trigger bronchospasm and skin reactions in sulfite-sensitive individuals.",
		GeneticBasis: "Reduced sulfite oxidase activity slows sulfite clearance.",
	},
	{
		ID:        "migraine-sulfite",
		Additives: []string{"E220"},
		Condition: domain.ConditionMigraineProne,
		Risk:      domain.RiskModerate,
		Severity:  domain.SeverityWarning,
		Title:     "Sulfites are a migraine trigger",
		Message:   "Sulfur dioxide is a commonly reported migraine trigger, particularly in wine and dried fruit.",
	},
	{
		ID:           "nitrite-sensitivity",
		Additives:    []string{"E249", "E250", "E251", "E252"},
		Condition:    domain.ConditionNitriteSensitivity,
		Risk:         domain.RiskAvoid,
		Severity:     domain.SeverityWarning,
		Title:        "Curing nitrites present",
		Message:      "Nitrite curing agents are associated with vascular headaches and methemoglobinemia risk in sensitive individuals.",
		GeneticBasis: "NADH-cytochrome b5 reductase variants reduce nitrite tolerance.",
	},
	{
		ID:        "migraine-glutamate",
		Additives: []string{"E621", "E627", "E631", "E635"},
		Condition: domain.ConditionMigraineProne,
		Risk:      domain.RiskAvoid,
		Severity:  domain.SeverityCaution,
		Title:     "Glutamate flavor enhancers",
		Message:   "Free glutamate is a reported migraine trigger for a subset of sufferers.",
	},
	{
		ID:           "gout-purines",
		Additives:    []string{"E627", "E631", "E635"},
		Condition:    domain.ConditionGoutRisk,
		Risk:         domain.RiskAvoid,
		Severity:     domain.SeverityWarning,
		Title:        "Purine-based additives",
		Message:      "Nucleotide flavor enhancers add to purine load and can raise uric acid.",
		GeneticBasis: "SLC2A9 and ABCG2 variants impair urate excretion.",
	},
	{
		ID:           "hyperactivity-colorings",
		Additives:    []string{"E102", "E104", "E110", "E122", "E124", "E129"},
		Condition:    domain.ConditionHyperactivityRisk,
		Risk:         domain.RiskAvoid,
		Severity:     domain.SeverityWarning,
		Title:        "Southampton Six coloring",
		Message:      "Synthetic colorings from the Southampton study are linked to attention effects in susceptible children.",
		GeneticBasis: "HNMT variants slow histamine clearance, one proposed mechanism.",
	},
	{
		ID:        "lactose-lactitol",
		Additives: []string{"E966"},
		Condition: domain.ConditionLactoseIntolerance,
		Risk:      domain.RiskAvoid,
		Severity:  domain.SeverityCaution,
		Title:     "Milk-sugar-derived sweetener",
		Message:   "Lactitol is produced from lactose and can cause digestive symptoms with lactose intolerance.",
	},
}

// PersonalizedRules returns the full personalized rule table.
func PersonalizedRules() []domain.PersonalizedRule {
	return personalizedRules
}
