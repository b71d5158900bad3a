// Package catalog holds the static reference tables the engine evaluates:
// the additive registry, interaction rules, regulatory records, personalized
// rules and scoring configs. Tables are declarative data assembled once at
// process start and never mutated; evaluation logic lives in usecase.
package catalog

import "github.com/nutrilens/backend/internal/domain"

// AdditiveEntry is one row of the local additive registry.
type AdditiveEntry struct {
	Name        string
	Risk        domain.RiskTier
	Description string
	Functions   []domain.FunctionCategory
	Vegan       *bool
}

var (
	veganYes = boolPtr(true)
	veganNo  = boolPtr(false)
)

func boolPtr(b bool) *bool { return &b }

// additiveRegistry maps normalized additive codes to their local records.
// The first-listed function is the additive's primary function.
var additiveRegistry = map[string]AdditiveEntry{
	// Colorings
	"E100": {Name: "Curcumin", Risk: domain.RiskSafe, Description: "Natural yellow pigment extracted from turmeric.", Functions: []domain.FunctionCategory{domain.FunctionColoring}, Vegan: veganYes},
	"E102": {Name: "Tartrazine", Risk: domain.RiskAvoid, Description: "Synthetic azo dye linked to hyperactivity in children (Southampton study).", Functions: []domain.FunctionCategory{domain.FunctionColoring}, Vegan: veganYes},
	"E104": {Name: "Quinoline Yellow", Risk: domain.RiskAvoid, Description: "Synthetic dye in the Southampton Six group.", Functions: []domain.FunctionCategory{domain.FunctionColoring}, Vegan: veganYes},
	"E110": {Name: "Sunset Yellow FCF", Risk: domain.RiskAvoid, Description: "Synthetic azo dye in the Southampton Six group.", Functions: []domain.FunctionCategory{domain.FunctionColoring}, Vegan: veganYes},
	"E120": {Name: "Cochineal (Carmine)", Risk: domain.RiskModerate, Description: "Red pigment derived from scale insects; can trigger allergic reactions.", Functions: []domain.FunctionCategory{domain.FunctionColoring}, Vegan: veganNo},
	"E122": {Name: "Carmoisine", Risk: domain.RiskAvoid, Description: "Synthetic azo dye in the Southampton Six group.", Functions: []domain.FunctionCategory{domain.FunctionColoring}, Vegan: veganYes},
	"E124": {Name: "Ponceau 4R", Risk: domain.RiskAvoid, Description: "Synthetic azo dye in the Southampton Six group; delisted in the USA.", Functions: []domain.FunctionCategory{domain.FunctionColoring}, Vegan: veganYes},
	"E129": {Name: "Allura Red AC", Risk: domain.RiskAvoid, Description: "Synthetic azo dye in the Southampton Six group.", Functions: []domain.FunctionCategory{domain.FunctionColoring}, Vegan: veganYes},
	"E150D": {Name: "Sulphite Ammonia Caramel", Risk: domain.RiskModerate, Description: "Dark caramel coloring produced with sulphite and ammonia compounds; contains 4-MEI traces.", Functions: []domain.FunctionCategory{domain.FunctionColoring}, Vegan: veganYes},
	"E160A": {Name: "Carotenes", Risk: domain.RiskSafe, Description: "Natural orange pigments, provitamin A.", Functions: []domain.FunctionCategory{domain.FunctionColoring}, Vegan: veganYes},
	"E171": {Name: "Titanium Dioxide", Risk: domain.RiskAvoid, Description: "Whitening agent; genotoxicity concerns led to an EU ban.", Functions: []domain.FunctionCategory{domain.FunctionColoring}, Vegan: veganYes},

	// Preservatives
	"E200": {Name: "Sorbic Acid", Risk: domain.RiskSafe, Description: "Mold inhibitor occurring naturally in rowan berries.", Functions: []domain.FunctionCategory{domain.FunctionPreservative}, Vegan: veganYes},
	"E202": {Name: "Potassium Sorbate", Risk: domain.RiskSafe, Description: "Widely used mold and yeast inhibitor.", Functions: []domain.FunctionCategory{domain.FunctionPreservative}, Vegan: veganYes},
	"E210": {Name: "Benzoic Acid", Risk: domain.RiskModerate, Description: "Preservative that can form benzene in the presence of ascorbic acid.", Functions: []domain.FunctionCategory{domain.FunctionPreservative}, Vegan: veganYes},
	"E211": {Name: "Sodium Benzoate", Risk: domain.RiskModerate, Description: "Common beverage preservative; benzene formation risk with vitamin C.", Functions: []domain.FunctionCategory{domain.FunctionPreservative}, Vegan: veganYes},
	"E220": {Name: "Sulfur Dioxide", Risk: domain.RiskAvoid, Description: "Sulfite preservative; can trigger asthma and sulfite sensitivity reactions.", Functions: []domain.FunctionCategory{domain.FunctionPreservative, domain.FunctionAntioxidant}, Vegan: veganYes},
	"E223": {Name: "Sodium Metabisulfite", Risk: domain.RiskModerate, Description: "Sulfite preservative and antioxidant.", Functions: []domain.FunctionCategory{domain.FunctionPreservative, domain.FunctionAntioxidant}, Vegan: veganYes},
	"E249": {Name: "Potassium Nitrite", Risk: domain.RiskAvoid, Description: "Curing agent; nitrosamine formation potential in cured meats.", Functions: []domain.FunctionCategory{domain.FunctionPreservative}, Vegan: veganYes},
	"E250": {Name: "Sodium Nitrite", Risk: domain.RiskAvoid, Description: "Curing agent; nitrosamine formation potential in cured meats.", Functions: []domain.FunctionCategory{domain.FunctionPreservative}, Vegan: veganYes},
	"E251": {Name: "Sodium Nitrate", Risk: domain.RiskAvoid, Description: "Curing salt that converts to nitrite.", Functions: []domain.FunctionCategory{domain.FunctionPreservative}, Vegan: veganYes},
	"E252": {Name: "Potassium Nitrate", Risk: domain.RiskAvoid, Description: "Curing salt that converts to nitrite.", Functions: []domain.FunctionCategory{domain.FunctionPreservative}, Vegan: veganYes},
	"E282": {Name: "Calcium Propionate", Risk: domain.RiskModerate, Description: "Bread preservative against rope and mold.", Functions: []domain.FunctionCategory{domain.FunctionPreservative}, Vegan: veganYes},

	// Antioxidants, acids
	"E300": {Name: "Ascorbic Acid", Risk: domain.RiskSafe, Description: "Vitamin C used as an antioxidant.", Functions: []domain.FunctionCategory{domain.FunctionAntioxidant}, Vegan: veganYes},
	"E306": {Name: "Tocopherols", Risk: domain.RiskSafe, Description: "Vitamin E extracts used as antioxidants.", Functions: []domain.FunctionCategory{domain.FunctionAntioxidant}, Vegan: veganYes},
	"E320": {Name: "Butylated Hydroxyanisole (BHA)", Risk: domain.RiskAvoid, Description: "Synthetic antioxidant classified as possibly carcinogenic (IARC 2B).", Functions: []domain.FunctionCategory{domain.FunctionAntioxidant}, Vegan: veganYes},
	"E321": {Name: "Butylated Hydroxytoluene (BHT)", Risk: domain.RiskAvoid, Description: "Synthetic antioxidant with endocrine concerns.", Functions: []domain.FunctionCategory{domain.FunctionAntioxidant}, Vegan: veganYes},
	"E330": {Name: "Citric Acid", Risk: domain.RiskSafe, Description: "Ubiquitous acidity regulator and antioxidant synergist.", Functions: []domain.FunctionCategory{domain.FunctionAcidityRegulator, domain.FunctionAntioxidant}, Vegan: veganYes},
	"E331": {Name: "Sodium Citrates", Risk: domain.RiskSafe, Description: "Buffering salts of citric acid.", Functions: []domain.FunctionCategory{domain.FunctionAcidityRegulator}, Vegan: veganYes},
	"E338": {Name: "Phosphoric Acid", Risk: domain.RiskModerate, Description: "Cola acidulant; high intakes affect calcium balance.", Functions: []domain.FunctionCategory{domain.FunctionAcidityRegulator}, Vegan: veganYes},

	// Emulsifiers, thickeners, stabilizers
	"E322": {Name: "Lecithins", Risk: domain.RiskSafe, Description: "Natural emulsifiers from soy or sunflower.", Functions: []domain.FunctionCategory{domain.FunctionEmulsifier}, Vegan: veganYes},
	"E407": {Name: "Carrageenan", Risk: domain.RiskModerate, Description: "Seaweed-derived thickener; degraded forms raise intestinal concerns.", Functions: []domain.FunctionCategory{domain.FunctionThickener, domain.FunctionStabilizer}, Vegan: veganYes},
	"E412": {Name: "Guar Gum", Risk: domain.RiskSafe, Description: "Plant-derived thickener.", Functions: []domain.FunctionCategory{domain.FunctionThickener}, Vegan: veganYes},
	"E415": {Name: "Xanthan Gum", Risk: domain.RiskSafe, Description: "Fermentation-derived thickener and stabilizer.", Functions: []domain.FunctionCategory{domain.FunctionThickener, domain.FunctionStabilizer}, Vegan: veganYes},
	"E420": {Name: "Sorbitol", Risk: domain.RiskModerate, Description: "Sugar alcohol; laxative effect at high intakes.", Functions: []domain.FunctionCategory{domain.FunctionSweetener, domain.FunctionHumectant}, Vegan: veganYes},
	"E433": {Name: "Polysorbate 80", Risk: domain.RiskModerate, Description: "Synthetic emulsifier studied for gut microbiome effects.", Functions: []domain.FunctionCategory{domain.FunctionEmulsifier}, Vegan: veganYes},
	"E440": {Name: "Pectin", Risk: domain.RiskSafe, Description: "Fruit-derived gelling agent.", Functions: []domain.FunctionCategory{domain.FunctionThickener, domain.FunctionStabilizer}, Vegan: veganYes},
	"E466": {Name: "Carboxymethyl Cellulose", Risk: domain.RiskModerate, Description: "Cellulose gum studied for gut microbiome effects.", Functions: []domain.FunctionCategory{domain.FunctionThickener, domain.FunctionStabilizer}, Vegan: veganYes},
	"E471": {Name: "Mono- and Diglycerides", Risk: domain.RiskModerate, Description: "Fat-derived emulsifiers; source fat may be animal or plant.", Functions: []domain.FunctionCategory{domain.FunctionEmulsifier}},

	// Raising, anti-caking, glazing
	"E500": {Name: "Sodium Carbonates", Risk: domain.RiskSafe, Description: "Baking soda family of raising agents.", Functions: []domain.FunctionCategory{domain.FunctionRaisingAgent, domain.FunctionAcidityRegulator}, Vegan: veganYes},
	"E551": {Name: "Silicon Dioxide", Risk: domain.RiskModerate, Description: "Anti-caking agent; nanoparticle fraction under evaluation.", Functions: []domain.FunctionCategory{domain.FunctionAntiCaking}, Vegan: veganYes},
	"E903": {Name: "Carnauba Wax", Risk: domain.RiskSafe, Description: "Palm-derived glazing agent.", Functions: []domain.FunctionCategory{domain.FunctionGlazingAgent}, Vegan: veganYes},

	// Flavor enhancers
	"E621": {Name: "Monosodium Glutamate", Risk: domain.RiskModerate, Description: "Umami flavor enhancer; sensitivity reactions reported.", Functions: []domain.FunctionCategory{domain.FunctionFlavorEnhancer}, Vegan: veganYes},
	"E627": {Name: "Disodium Guanylate", Risk: domain.RiskModerate, Description: "Purine-based flavor enhancer; relevant for gout.", Functions: []domain.FunctionCategory{domain.FunctionFlavorEnhancer}},
	"E631": {Name: "Disodium Inosinate", Risk: domain.RiskModerate, Description: "Purine-based flavor enhancer; relevant for gout.", Functions: []domain.FunctionCategory{domain.FunctionFlavorEnhancer}},
	"E635": {Name: "Disodium 5'-Ribonucleotides", Risk: domain.RiskModerate, Description: "Combined purine flavor enhancer.", Functions: []domain.FunctionCategory{domain.FunctionFlavorEnhancer}},

	// Sweeteners
	"E950": {Name: "Acesulfame K", Risk: domain.RiskModerate, Description: "Intense synthetic sweetener.", Functions: []domain.FunctionCategory{domain.FunctionSweetener}, Vegan: veganYes},
	"E951": {Name: "Aspartame", Risk: domain.RiskAvoid, Description: "Intense sweetener; source of phenylalanine, hazardous for PKU carriers.", Functions: []domain.FunctionCategory{domain.FunctionSweetener}, Vegan: veganYes},
	"E952": {Name: "Cyclamate", Risk: domain.RiskAvoid, Description: "Intense sweetener banned in the USA since 1969.", Functions: []domain.FunctionCategory{domain.FunctionSweetener}, Vegan: veganYes},
	"E954": {Name: "Saccharin", Risk: domain.RiskModerate, Description: "Oldest intense sweetener; earlier carcinogenicity findings not upheld.", Functions: []domain.FunctionCategory{domain.FunctionSweetener}, Vegan: veganYes},
	"E955": {Name: "Sucralose", Risk: domain.RiskModerate, Description: "Chlorinated sucrose sweetener; heat-degradation concerns.", Functions: []domain.FunctionCategory{domain.FunctionSweetener}, Vegan: veganYes},
	"E960": {Name: "Steviol Glycosides", Risk: domain.RiskSafe, Description: "Sweetener extracted from stevia leaves.", Functions: []domain.FunctionCategory{domain.FunctionSweetener}, Vegan: veganYes},
	"E966": {Name: "Lactitol", Risk: domain.RiskModerate, Description: "Milk-sugar-derived sweetener; relevant for lactose intolerance.", Functions: []domain.FunctionCategory{domain.FunctionSweetener}, Vegan: veganNo},
}

// LookupAdditive returns the registry entry for a normalized code.
func LookupAdditive(code string) (AdditiveEntry, bool) {
	entry, ok := additiveRegistry[code]
	return entry, ok
}

// RegisteredCodes returns every code present in the local registry.
// Primarily useful for tests and diagnostics.
func RegisteredCodes() []string {
	codes := make([]string, 0, len(additiveRegistry))
	for code := range additiveRegistry {
		codes = append(codes, code)
	}
	return codes
}
