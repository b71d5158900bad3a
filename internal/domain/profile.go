package domain

// Condition is a health-condition flag a personalized rule can key on.
type Condition string

const (
	ConditionSulfiteSensitivity  Condition = "sulfite_sensitivity"
	ConditionPhenylketonuria     Condition = "phenylketonuria"
	ConditionGoutRisk            Condition = "gout_risk"
	ConditionMigraineProne       Condition = "migraine_prone"
	ConditionHyperactivityRisk   Condition = "hyperactivity_risk"
	ConditionNitriteSensitivity  Condition = "nitrite_sensitivity"
	ConditionLactoseIntolerance  Condition = "lactose_intolerance"
	ConditionIronDeficiency      Condition = "iron_deficiency"
	ConditionOmega3Deficiency    Condition = "omega3_deficiency"
	ConditionSaturatedFatLimited Condition = "saturated_fat_limited"
)

// GeneticProfile describes a user's health conditions and personal nutrient
// thresholds. Most users have none; absence of a profile is the default path,
// not an error. Profiles are looked up through ProfileRepository by an opaque
// user identity.
type GeneticProfile struct {
	UserID     string             `json:"userId"`
	Conditions map[Condition]bool `json:"conditions"`

	// Personal per-100g ceilings/targets. Nil means "use the standard
	// threshold" for that nutrient.
	SaturatedFatLimit *float64 `json:"saturatedFatLimit,omitempty"`
	FiberTarget       *float64 `json:"fiberTarget,omitempty"`
}

// Has reports whether a condition flag is set in the profile.
func (p *GeneticProfile) Has(c Condition) bool {
	if p == nil {
		return false
	}
	return p.Conditions[c]
}

// PersonalizedRule maps a health condition to a risk override for specific
// additives. Rules are static; the caller's profile selects which apply.
type PersonalizedRule struct {
	ID           string    `json:"id"`
	Additives    []string  `json:"additives"`
	Condition    Condition `json:"condition"`
	Risk         RiskTier  `json:"risk"`
	Severity     Severity  `json:"severity"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	GeneticBasis string    `json:"geneticBasis,omitempty"`
}

// PersonalizedWarning is a fired personalized rule for one present additive.
type PersonalizedWarning struct {
	RuleID       string    `json:"ruleId"`
	Additive     string    `json:"additive"`
	Condition    Condition `json:"condition"`
	Risk         RiskTier  `json:"risk"`
	Severity     Severity  `json:"severity"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	GeneticBasis string    `json:"geneticBasis,omitempty"`
}

// BadgeLevel grades a nutrient against a profile's personal threshold.
type BadgeLevel string

const (
	BadgeGood     BadgeLevel = "good"
	BadgeModerate BadgeLevel = "moderate"
	BadgeHigh     BadgeLevel = "high"
	BadgeCritical BadgeLevel = "critical"
)

// Badge is a per-nutrient classification of the product against the
// profile's personal thresholds, independent of the health score.
type Badge struct {
	Nutrient string     `json:"nutrient"`
	Level    BadgeLevel `json:"level"`
	Value    float64    `json:"value"`
	Message  string     `json:"message"`
}

// ContextualExplanation compares a standard threshold with the profile's
// personalized one for a single nutrient.
type ContextualExplanation struct {
	Nutrient              string  `json:"nutrient"`
	Value                 float64 `json:"value"`
	StandardThreshold     float64 `json:"standardThreshold"`
	PersonalizedThreshold float64 `json:"personalizedThreshold"`
	Explanation           string  `json:"explanation"`
}

// ChecklistStatus grades one item of the profile summary checklist.
type ChecklistStatus string

const (
	ChecklistGood    ChecklistStatus = "good"
	ChecklistCaution ChecklistStatus = "caution"
	ChecklistBad     ChecklistStatus = "bad"
	ChecklistUnknown ChecklistStatus = "unknown"
)

// OverallFit is the aggregate verdict of the profile summary.
type OverallFit string

const (
	FitExcellent OverallFit = "excellent"
	FitGood      OverallFit = "good"
	FitCaution   OverallFit = "caution"
	FitPoor      OverallFit = "poor"
)

// ChecklistItem is one entry of the profile summary checklist. Items appear
// only when the profile cares about the underlying nutrient or additive.
type ChecklistItem struct {
	Name    string          `json:"name"`
	Status  ChecklistStatus `json:"status"`
	Message string          `json:"message,omitempty"`
}

// ProfileSummary aggregates the checklist into an overall product fit for
// the profile.
type ProfileSummary struct {
	Items   []ChecklistItem `json:"items"`
	Overall OverallFit      `json:"overall"`
}
