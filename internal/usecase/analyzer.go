package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/nutrilens/backend/internal/catalog"
	"github.com/nutrilens/backend/internal/domain"
)

// AnalysisResult is the full analysis of one product: the health score plus
// every additive-level finding.
type AnalysisResult struct {
	Score          *domain.ScoreResult                    `json:"score"`
	Additives      []domain.ResolvedAdditive              `json:"additives"`
	FunctionGroups []domain.FunctionGroup                 `json:"functionGroups,omitempty"`
	Load           *domain.AdditiveLoad                   `json:"load,omitempty"`
	Interactions   *domain.InteractionSummary             `json:"interactions"`
	Regulatory     map[string][]domain.JurisdictionStatus `json:"regulatory,omitempty"`
	Personalized   *PersonalizedInsights                  `json:"personalized,omitempty"`
}

// PersonalizedInsights groups the profile-dependent findings. Present only
// when the request carried a user with a registered profile.
type PersonalizedInsights struct {
	Warnings     []domain.PersonalizedWarning   `json:"warnings,omitempty"`
	Badges       []domain.Badge                 `json:"badges,omitempty"`
	Explanations []domain.ContextualExplanation `json:"explanations,omitempty"`
	Summary      *domain.ProfileSummary         `json:"summary,omitempty"`
}

// Analyzer composes the individual analyses into one product report.
type Analyzer struct {
	resolver        *AdditiveResolver
	scorer          *HealthScorer
	classifier      *FunctionClassifier
	loads           *LoadAggregator
	interactions    *InteractionDetector
	regulatory      *RegulatoryComparator
	personalization *PersonalizationService
	allowNetwork    bool
}

// NewAnalyzer wires the analysis pipeline. allowNetwork controls whether
// additive resolution may reach the remote taxonomy on a cold cache.
func NewAnalyzer(
	resolver *AdditiveResolver,
	scorer *HealthScorer,
	personalization *PersonalizationService,
	allowNetwork bool,
) *Analyzer {
	return &Analyzer{
		resolver:        resolver,
		scorer:          scorer,
		classifier:      NewFunctionClassifier(),
		loads:           NewLoadAggregator(),
		interactions:    NewInteractionDetector(catalog.InteractionRules()),
		regulatory:      NewRegulatoryComparator(),
		personalization: personalization,
		allowNetwork:    allowNetwork,
	}
}

// Analyze runs the full pipeline over one product. Every section is computed
// from the same normalized additive list; a failure in any section aborts the
// whole analysis so partial reports are never returned.
func (a *Analyzer) Analyze(ctx context.Context, input domain.AnalysisInput) (*AnalysisResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	resolved, err := a.resolver.ResolveAll(ctx, input.Additives, ResolvePolicy{AllowNetwork: a.allowNetwork})
	if err != nil {
		return nil, fmt.Errorf("resolving additives: %w", err)
	}

	codes := make([]string, len(resolved))
	for i, r := range resolved {
		codes[i] = r.Code
	}
	input.Additives = codes

	score, err := a.scorer.Score(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("scoring: %w", err)
	}

	result := &AnalysisResult{
		Score:     score,
		Additives: resolved,
	}

	warnings, err := a.interactions.Detect(codes)
	if err != nil {
		return nil, fmt.Errorf("detecting interactions: %w", err)
	}
	summary := a.interactions.Summarize(warnings)
	result.Interactions = &summary

	if len(codes) > 0 {
		groups, err := a.classifier.GroupByFunction(codes)
		if err != nil {
			return nil, fmt.Errorf("classifying functions: %w", err)
		}
		result.FunctionGroups = groups

		load, err := a.loads.Load(codes)
		if err != nil {
			return nil, fmt.Errorf("computing additive load: %w", err)
		}
		result.Load = load

		regulatory := make(map[string][]domain.JurisdictionStatus)
		for _, code := range codes {
			statuses, err := a.regulatory.CompareAcrossJurisdictions(code)
			if err != nil {
				return nil, fmt.Errorf("comparing regulatory status: %w", err)
			}
			regulatory[code] = statuses
		}
		result.Regulatory = regulatory
	}

	if profile := a.personalization.ProfileFor(ctx, input.UserID); profile != nil {
		insights, err := a.personalInsights(input, codes, profile)
		if err != nil {
			return nil, err
		}
		result.Personalized = insights
	}

	return result, nil
}

func (a *Analyzer) personalInsights(input domain.AnalysisInput, codes []string, profile *domain.GeneticProfile) (*PersonalizedInsights, error) {
	warnings, err := a.personalization.Warnings(profile, codes)
	if err != nil {
		return nil, fmt.Errorf("personalized warnings: %w", err)
	}
	summary, err := a.personalization.Summary(input.Nutrients, codes, profile)
	if err != nil {
		return nil, fmt.Errorf("profile summary: %w", err)
	}
	if len(warnings) > 0 {
		log.Printf("[analyzer] %d personalized warning(s) for user %s", len(warnings), input.UserID)
	}
	return &PersonalizedInsights{
		Warnings:     warnings,
		Badges:       a.personalization.Badges(input.Nutrients, profile),
		Explanations: a.personalization.ContextualExplanations(input.Nutrients, profile),
		Summary:      summary,
	}, nil
}

func validateInput(input domain.AnalysisInput) error {
	if len(input.Nutrients) == 0 && len(input.Additives) == 0 {
		return fmt.Errorf("%w: product has neither nutrients nor additives", domain.ErrInvalidInput)
	}
	return nil
}
