package usecase

import (
	"errors"
	"testing"

	"github.com/nutrilens/backend/internal/domain"
)

func TestLoad(t *testing.T) {
	aggregator := NewLoadAggregator()

	t.Run("empty list is minimal", func(t *testing.T) {
		load, err := aggregator.Load(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if load.TotalCount != 0 || load.WeightedScore != 0 {
			t.Errorf("load = %+v, want zero counts", load)
		}
		if load.ProcessingLevel != domain.LoadMinimal {
			t.Errorf("ProcessingLevel = %s, want %s", load.ProcessingLevel, domain.LoadMinimal)
		}
		if load.Normalized != 0 {
			t.Errorf("Normalized = %d, want 0", load.Normalized)
		}
	})

	t.Run("weights risk tiers differently", func(t *testing.T) {
		// E300 safe (1), E211 moderate (3), E102 avoid (5), E9999 unknown (2)
		load, err := aggregator.Load([]string{"E300", "E211", "E102", "E9999"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if load.WeightedScore != 11 {
			t.Errorf("WeightedScore = %d, want 11", load.WeightedScore)
		}
		if load.TotalCount != 4 {
			t.Errorf("TotalCount = %d, want 4", load.TotalCount)
		}
		if load.Breakdown.Safe != 1 || load.Breakdown.Moderate != 1 || load.Breakdown.Avoid != 1 || load.Breakdown.Unknown != 1 {
			t.Errorf("Breakdown = %+v, want one of each", load.Breakdown)
		}
		if load.ProcessingLevel != domain.LoadLow {
			t.Errorf("ProcessingLevel = %s, want %s", load.ProcessingLevel, domain.LoadLow)
		}
	})

	t.Run("unregistered codes land in the unknown bucket", func(t *testing.T) {
		load, err := aggregator.Load([]string{"E9998", "E9999"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if load.Breakdown.Unknown != 2 {
			t.Errorf("Unknown = %d, want 2", load.Breakdown.Unknown)
		}
	})

	t.Run("normalized caps at 100", func(t *testing.T) {
		codes := make([]string, 0, 20)
		for i := 0; i < 20; i++ {
			codes = append(codes, "E102") // avoid, weight 5
		}
		load, err := aggregator.Load(codes)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if load.Normalized != 100 {
			t.Errorf("Normalized = %d, want 100", load.Normalized)
		}
		if load.ProcessingLevel != domain.LoadUltra {
			t.Errorf("ProcessingLevel = %s, want %s", load.ProcessingLevel, domain.LoadUltra)
		}
	})

	t.Run("adding an avoid additive never lowers the weighted score", func(t *testing.T) {
		baseSets := [][]string{
			nil,
			{"E300"},
			{"E300", "E211"},
			{"E300", "E211", "E102", "E9999"},
			{"E102", "E102", "E102", "E102", "E102", "E102", "E102", "E102", "E102", "E102", "E102", "E102"},
		}
		for _, base := range baseSets {
			before, err := aggregator.Load(base)
			if err != nil {
				t.Fatalf("Load(%v) error: %v", base, err)
			}
			after, err := aggregator.Load(append(append([]string{}, base...), "E102"))
			if err != nil {
				t.Fatalf("Load(%v + E102) error: %v", base, err)
			}
			if after.WeightedScore < before.WeightedScore {
				t.Errorf("WeightedScore dropped from %d to %d after adding E102 to %v",
					before.WeightedScore, after.WeightedScore, base)
			}
		}
	})

	t.Run("rejects malformed code", func(t *testing.T) {
		_, err := aggregator.Load([]string{"E300", ""})
		if !errors.Is(err, domain.ErrInvalidAdditiveCode) {
			t.Errorf("error = %v, want ErrInvalidAdditiveCode", err)
		}
	})
}

func TestProcessingLevel(t *testing.T) {
	tests := []struct {
		weighted int
		want     domain.ProcessingLevel
	}{
		{0, domain.LoadMinimal},
		{5, domain.LoadMinimal},
		{6, domain.LoadLow},
		{15, domain.LoadLow},
		{16, domain.LoadModerate},
		{30, domain.LoadModerate},
		{31, domain.LoadHigh},
		{50, domain.LoadHigh},
		{51, domain.LoadUltra},
	}

	for _, tt := range tests {
		if got := processingLevel(tt.weighted); got != tt.want {
			t.Errorf("processingLevel(%d) = %s, want %s", tt.weighted, got, tt.want)
		}
	}
}
