package domain

// Nutrient map keys follow the normalized per-100g naming used by the
// product-ingestion side (Open Food Facts style).
const (
	KeyEnergyKJ     = "energy_100g"
	KeyEnergyKcal   = "energy-kcal_100g"
	KeyFat          = "fat_100g"
	KeySaturatedFat = "saturated-fat_100g"
	KeyCarbohydrate = "carbohydrates_100g"
	KeySugars       = "sugars_100g"
	KeyFiber        = "fiber_100g"
	KeyProteins     = "proteins_100g"
	KeySalt         = "salt_100g"
	KeySodium       = "sodium_100g"
	KeyOmega3       = "omega-3-fat_100g"
	KeyIron         = "iron_100g"
	KeyLactose      = "lactose_100g"
)

// NutrientProfile holds per-100g nutrient values. An absent key means the
// value was not reported, which is distinct from zero: absent fields make no
// contribution to scoring at all.
type NutrientProfile map[string]float64

// Value returns the first present value among the given keys. The boolean
// reports presence so callers can skip absent nutrients instead of treating
// them as zero.
func (p NutrientProfile) Value(keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := p[k]; ok {
			return v, true
		}
	}
	return 0, false
}

// Sodium returns grams of sodium per 100g, deriving it from salt when sodium
// is not reported directly (salt ≈ 2.5 × sodium).
func (p NutrientProfile) Sodium() (float64, bool) {
	if v, ok := p[KeySodium]; ok {
		return v, true
	}
	if v, ok := p[KeySalt]; ok {
		return v / 2.5, true
	}
	return 0, false
}

// Calories returns kcal per 100g, deriving it from kJ when kcal is not
// reported directly.
func (p NutrientProfile) Calories() (float64, bool) {
	if v, ok := p[KeyEnergyKcal]; ok {
		return v, true
	}
	if v, ok := p[KeyEnergyKJ]; ok {
		return v / 4.184, true
	}
	return 0, false
}
