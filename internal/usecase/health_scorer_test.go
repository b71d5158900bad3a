package usecase

import (
	"context"
	"testing"

	"github.com/nutrilens/backend/internal/domain"
)

// MockProfileRepository is a mock implementation of domain.ProfileRepository
type MockProfileRepository struct {
	profiles map[string]*domain.GeneticProfile
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{profiles: make(map[string]*domain.GeneticProfile)}
}

func (m *MockProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.GeneticProfile, error) {
	if p, ok := m.profiles[userID]; ok {
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}

func TestScore(t *testing.T) {
	ctx := context.Background()

	t.Run("score stays within bounds", func(t *testing.T) {
		scorer := NewHealthScorer(nil)

		inputs := []domain.AnalysisInput{
			{Nutrients: domain.NutrientProfile{}},
			{Nutrients: domain.NutrientProfile{domain.KeySugars: 100, domain.KeyEnergyKcal: 600, domain.KeyFiber: 0, domain.KeyProteins: 0}, NovaGroup: 4},
			{Nutrients: domain.NutrientProfile{domain.KeyFiber: 12, domain.KeyProteins: 20}, Labels: []string{"EU Organic"}},
			{Nutrients: domain.NutrientProfile{domain.KeySugars: 40}, Additives: []string{"E102", "E211", "E250"}},
		}
		for _, input := range inputs {
			result, err := scorer.Score(ctx, input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Score < 0 || result.Score > 100 {
				t.Errorf("Score = %d, want within [0,100]", result.Score)
			}
		}
	})

	t.Run("sugary snack scores below 35", func(t *testing.T) {
		scorer := NewHealthScorer(nil)

		result, err := scorer.Score(ctx, domain.AnalysisInput{
			Nutrients: domain.NutrientProfile{
				domain.KeySugars:       25,
				domain.KeySaturatedFat: 1,
				domain.KeySodium:       0.1,
				domain.KeyEnergyKcal:   90,
				domain.KeyFiber:        0,
				domain.KeyProteins:     0,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Score >= 35 {
			t.Errorf("Score = %d, want below 35", result.Score)
		}
		if result.ConfigName != "default" {
			t.Errorf("ConfigName = %s, want default", result.ConfigName)
		}
	})

	t.Run("wholesome product scores above 80", func(t *testing.T) {
		scorer := NewHealthScorer(nil)

		result, err := scorer.Score(ctx, domain.AnalysisInput{
			Nutrients: domain.NutrientProfile{
				domain.KeySugars:       2,
				domain.KeySaturatedFat: 0.5,
				domain.KeySodium:       0.04,
				domain.KeyEnergyKcal:   60,
				domain.KeyFiber:        10,
				domain.KeyProteins:     13,
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Score <= 80 {
			t.Errorf("Score = %d, want above 80", result.Score)
		}
	})

	t.Run("absent nutrients make no contribution", func(t *testing.T) {
		scorer := NewHealthScorer(nil)

		result, err := scorer.Score(ctx, domain.AnalysisInput{
			Nutrients: domain.NutrientProfile{},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Score != 100 {
			t.Errorf("Score = %d, want 100 for a product reporting nothing", result.Score)
		}
		if len(result.Breakdown.Details) != 0 {
			t.Errorf("Details = %d entries, want 0", len(result.Breakdown.Details))
		}
	})

	t.Run("reported zero differs from absent", func(t *testing.T) {
		scorer := NewHealthScorer(nil)

		result, err := scorer.Score(ctx, domain.AnalysisInput{
			Nutrients: domain.NutrientProfile{domain.KeySugars: 0},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Breakdown.Details) != 1 {
			t.Fatalf("Details = %d entries, want 1", len(result.Breakdown.Details))
		}
		detail := result.Breakdown.Details[0]
		if detail.Factor != domain.FactorSugar {
			t.Errorf("Factor = %s, want %s", detail.Factor, domain.FactorSugar)
		}
		if detail.Points != 0 || detail.Type != domain.DetailPositive {
			t.Errorf("zero-point detail = %+v, want 0 points tagged positive", detail)
		}
	})

	t.Run("detail sign matches its type", func(t *testing.T) {
		scorer := NewHealthScorer(nil)

		result, err := scorer.Score(ctx, domain.AnalysisInput{
			Nutrients: domain.NutrientProfile{
				domain.KeySugars:     30,
				domain.KeyFiber:      8,
				domain.KeyProteins:   2,
				domain.KeyEnergyKcal: 400,
			},
			Additives: []string{"E102", "E211"},
			NovaGroup: 4,
			Labels:    []string{"organic"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, d := range result.Breakdown.Details {
			if d.Points < 0 && d.Type != domain.DetailNegative {
				t.Errorf("detail %s: %.1f points tagged %s", d.Factor, d.Points, d.Type)
			}
			if d.Points >= 0 && d.Type != domain.DetailPositive {
				t.Errorf("detail %s: %.1f points tagged %s", d.Factor, d.Points, d.Type)
			}
		}
	})

	t.Run("malformed additive code fails the score", func(t *testing.T) {
		scorer := NewHealthScorer(nil)

		_, err := scorer.Score(ctx, domain.AnalysisInput{
			Nutrients: domain.NutrientProfile{domain.KeySugars: 10},
			Additives: []string{"   "},
		})
		if err == nil {
			t.Fatal("expected error for malformed additive code")
		}
	})

	t.Run("organic label earns a bonus", func(t *testing.T) {
		scorer := NewHealthScorer(nil)
		base := domain.AnalysisInput{
			Nutrients: domain.NutrientProfile{domain.KeySugars: 10, domain.KeyFiber: 2, domain.KeyProteins: 4},
		}

		plain, err := scorer.Score(ctx, base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		organic := base
		organic.Labels = []string{"Certified ORGANIC product"}
		labeled, err := scorer.Score(ctx, organic)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if labeled.Score <= plain.Score {
			t.Errorf("organic score = %d, plain score = %d, want organic higher", labeled.Score, plain.Score)
		}
	})

	t.Run("nova group 4 penalizes more than group 1", func(t *testing.T) {
		scorer := NewHealthScorer(nil)
		nutrients := domain.NutrientProfile{domain.KeySugars: 10}

		raw, err := scorer.Score(ctx, domain.AnalysisInput{Nutrients: nutrients, NovaGroup: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ultra, err := scorer.Score(ctx, domain.AnalysisInput{Nutrients: nutrients, NovaGroup: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ultra.Score >= raw.Score {
			t.Errorf("ultra-processed score = %d, unprocessed score = %d, want ultra lower", ultra.Score, raw.Score)
		}
	})
}

func TestScoreConfigSelection(t *testing.T) {
	ctx := context.Background()

	t.Run("beverage category selects beverage config", func(t *testing.T) {
		scorer := NewHealthScorer(nil)

		result, err := scorer.Score(ctx, domain.AnalysisInput{
			Nutrients:  domain.NutrientProfile{domain.KeySugars: 6},
			Categories: []string{"Sparkling Soda"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsBeverage {
			t.Error("IsBeverage = false, want true")
		}
		if result.ConfigName != "beverage" {
			t.Errorf("ConfigName = %s, want beverage", result.ConfigName)
		}
	})

	t.Run("beverage thresholds are stricter on sugar", func(t *testing.T) {
		scorer := NewHealthScorer(nil)
		nutrients := domain.NutrientProfile{domain.KeySugars: 9, domain.KeyFiber: 0.2, domain.KeyProteins: 0.1}

		solid, err := scorer.Score(ctx, domain.AnalysisInput{Nutrients: nutrients})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		drink, err := scorer.Score(ctx, domain.AnalysisInput{Nutrients: nutrients, Categories: []string{"fruit juice"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if drink.Score >= solid.Score {
			t.Errorf("beverage score = %d, solid score = %d, want beverage lower", drink.Score, solid.Score)
		}
	})

	t.Run("profile overrides beverage config", func(t *testing.T) {
		profiles := NewMockProfileRepository()
		profiles.profiles["user-1"] = &domain.GeneticProfile{UserID: "user-1"}
		scorer := NewHealthScorer(profiles)

		result, err := scorer.Score(ctx, domain.AnalysisInput{
			Nutrients:  domain.NutrientProfile{domain.KeySugars: 6},
			Categories: []string{"iced tea"},
			UserID:     "user-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsPersonalized {
			t.Error("IsPersonalized = false, want true")
		}
		if result.ConfigName != "personalized" {
			t.Errorf("ConfigName = %s, want personalized", result.ConfigName)
		}
		if !result.IsBeverage {
			t.Error("IsBeverage should still report the category detection")
		}
	})

	t.Run("unknown user falls back to default", func(t *testing.T) {
		scorer := NewHealthScorer(NewMockProfileRepository())

		result, err := scorer.Score(ctx, domain.AnalysisInput{
			Nutrients: domain.NutrientProfile{domain.KeySugars: 6},
			UserID:    "nobody",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsPersonalized {
			t.Error("IsPersonalized = true, want false")
		}
		if result.ConfigName != "default" {
			t.Errorf("ConfigName = %s, want default", result.ConfigName)
		}
	})
}

func TestSegmentFraction(t *testing.T) {
	threshold := domain.Threshold{Low: 5, Medium: 15, High: 25}

	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"below low", 2, 0},
		{"at low", 5, 0},
		{"midway to medium", 10, 0.25},
		{"at medium", 15, 0.5},
		{"midway to high", 20, 0.75},
		{"at high", 25, 1},
		{"above high", 80, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segmentFraction(tt.value, threshold)
			if got != tt.want {
				t.Errorf("segmentFraction(%.1f) = %.3f, want %.3f", tt.value, got, tt.want)
			}
		})
	}
}

func TestEmptyCaloriePenalty(t *testing.T) {
	tests := []struct {
		name       string
		nutrients  domain.NutrientProfile
		isBeverage bool
		want       float64
		applies    bool
	}{
		{
			name:      "unreported fiber never triggers",
			nutrients: domain.NutrientProfile{domain.KeySugars: 30, domain.KeyProteins: 0},
			applies:   false,
		},
		{
			name:      "unreported protein never triggers",
			nutrients: domain.NutrientProfile{domain.KeySugars: 30, domain.KeyFiber: 0},
			applies:   false,
		},
		{
			name:      "meaningful fiber blocks the penalty",
			nutrients: domain.NutrientProfile{domain.KeySugars: 30, domain.KeyFiber: 2, domain.KeyProteins: 0},
			applies:   false,
		},
		{
			name:      "solid food with very high sugar",
			nutrients: domain.NutrientProfile{domain.KeySugars: 30, domain.KeyFiber: 0, domain.KeyProteins: 0},
			want:      20,
			applies:   true,
		},
		{
			name:      "solid food with moderate sugar",
			nutrients: domain.NutrientProfile{domain.KeySugars: 8, domain.KeyFiber: 0, domain.KeyProteins: 0},
			want:      15,
			applies:   true,
		},
		{
			name:       "sugary beverage",
			nutrients:  domain.NutrientProfile{domain.KeySugars: 11, domain.KeyFiber: 0, domain.KeyProteins: 0},
			isBeverage: true,
			want:       30,
			applies:    true,
		},
		{
			name:       "low sugar beverage with calories",
			nutrients:  domain.NutrientProfile{domain.KeySugars: 2, domain.KeyEnergyKcal: 60, domain.KeyFiber: 0, domain.KeyProteins: 0},
			isBeverage: true,
			want:       20,
			applies:    true,
		},
		{
			name:      "no meaningful energy",
			nutrients: domain.NutrientProfile{domain.KeySugars: 2, domain.KeyEnergyKcal: 20, domain.KeyFiber: 0, domain.KeyProteins: 0},
			applies:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applies := emptyCaloriePenalty(tt.nutrients, tt.isBeverage)
			if applies != tt.applies {
				t.Fatalf("applies = %v, want %v", applies, tt.applies)
			}
			if applies && got != tt.want {
				t.Errorf("penalty = %.1f, want %.1f", got, tt.want)
			}
		})
	}
}
