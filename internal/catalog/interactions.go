package catalog

import "github.com/nutrilens/backend/internal/domain"

// interactionRules is the static table of known risky additive combinations.
// A rule fires when at least min(2, len(Additives)) of its members are
// present in a product; matching lives in usecase.
var interactionRules = []domain.InteractionRule{
	{
		ID:              "benzene-formation",
		Additives:       []string{"E211", "E300"},
		Type:            domain.InteractionFormation,
		Severity:        domain.SeverityWarning,
		Description:     "Sodium benzoate combined with ascorbic acid can form benzene, a known carcinogen, especially under heat and light.",
		Compound:        "benzene",
		ScientificBasis: "FDA beverage surveys detected benzene above the drinking-water limit in products combining both additives.",
	},
	{
		ID:              "benzoic-benzene-formation",
		Additives:       []string{"E210", "E300"},
		Type:            domain.InteractionFormation,
		Severity:        domain.SeverityWarning,
		Description:     "Benzoic acid with ascorbic acid carries the same benzene formation pathway as sodium benzoate.",
		Compound:        "benzene",
	},
	{
		ID:              "nitrosamine-formation",
		Additives:       []string{"E249", "E250", "E251", "E252"},
		Type:            domain.InteractionSynergy,
		Severity:        domain.SeverityCritical,
		Description:     "Multiple curing agents in one product raise the combined nitrite/nitrate load and the potential for nitrosamine formation.",
		Compound:        "nitrosamines",
		ScientificBasis: "IARC classifies ingested nitrate/nitrite under conditions of endogenous nitrosation as probably carcinogenic (2A).",
	},
	{
		ID:          "southampton-colorings",
		Additives:   []string{"E102", "E104", "E110", "E122", "E124", "E129"},
		Type:        domain.InteractionAmplification,
		Severity:    domain.SeverityWarning,
		Description: "Two or more Southampton Six colorings together were associated with increased hyperactivity in children.",
		ScientificBasis: "McCann et al., The Lancet 2007 (Southampton study).",
	},
	{
		ID:          "sulfite-load",
		Additives:   []string{"E220", "E221", "E222", "E223", "E224", "E226", "E228"},
		Type:        domain.InteractionSynergy,
		Severity:    domain.SeverityCaution,
		Description: "Several sulfite preservatives in one product add up toward the acceptable daily intake and can trigger sensitivity reactions.",
	},
	{
		ID:          "synthetic-antioxidant-pair",
		Additives:   []string{"E320", "E321"},
		Type:        domain.InteractionAmplification,
		Severity:    domain.SeverityWarning,
		Description: "BHA and BHT are frequently combined; animal studies suggest additive effects on liver enzymes.",
	},
	{
		ID:          "emulsifier-gut-pair",
		Additives:   []string{"E433", "E466"},
		Type:        domain.InteractionAmplification,
		Severity:    domain.SeverityCaution,
		Description: "Polysorbate 80 and carboxymethyl cellulose both alter gut mucus; combined exposure amplified inflammation markers in model studies.",
	},
	{
		ID:          "intense-sweetener-blend",
		Additives:   []string{"E950", "E951", "E955"},
		Type:        domain.InteractionSynergy,
		Severity:    domain.SeverityInfo,
		Description: "Blending intense sweeteners masks individual aftertastes and can push combined intake toward multiple ADIs at once.",
	},
	{
		ID:          "purine-enhancer-stack",
		Additives:   []string{"E621", "E627", "E631", "E635"},
		Type:        domain.InteractionAmplification,
		Severity:    domain.SeverityCaution,
		Description: "Glutamate with purine nucleotides multiplies umami potency; purine load is relevant for uric-acid-sensitive consumers.",
	},
	{
		ID:          "cola-acid-caramel",
		Additives:   []string{"E150D", "E338"},
		Type:        domain.InteractionSynergy,
		Severity:    domain.SeverityInfo,
		Description: "The classic cola pairing of sulphite ammonia caramel and phosphoric acid concentrates 4-MEI traces with a low-pH acidulant.",
	},
}

// InteractionRules returns the full interaction rule table.
func InteractionRules() []domain.InteractionRule {
	return interactionRules
}
