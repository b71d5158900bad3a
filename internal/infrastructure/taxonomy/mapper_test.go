package taxonomy

import (
	"testing"

	"github.com/nutrilens/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapOverexposureRisk(t *testing.T) {
	tests := []struct {
		input string
		want  domain.RiskTier
	}{
		{"en:high", domain.RiskAvoid},
		{"high", domain.RiskAvoid},
		{"en:moderate", domain.RiskModerate},
		{"en:low", domain.RiskSafe},
		{"en:none", domain.RiskSafe},
		{"en:no", domain.RiskSafe},
		{"EN:HIGH", domain.RiskAvoid},
		{"", domain.RiskModerate},
		{"en:something-new", domain.RiskModerate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, mapOverexposureRisk(tt.input))
		})
	}
}

func TestMapFunctionClasses(t *testing.T) {
	t.Run("maps known classes in order", func(t *testing.T) {
		functions := mapFunctionClasses([]string{"en:preservative", "en:antioxidant"})
		assert.Equal(t, []domain.FunctionCategory{domain.FunctionPreservative, domain.FunctionAntioxidant}, functions)
	})

	t.Run("unknown class maps to other", func(t *testing.T) {
		functions := mapFunctionClasses([]string{"en:mystery-agent"})
		assert.Equal(t, []domain.FunctionCategory{domain.FunctionOther}, functions)
	})

	t.Run("deduplicates categories", func(t *testing.T) {
		functions := mapFunctionClasses([]string{"en:stabiliser", "en:stabilizer"})
		assert.Equal(t, []domain.FunctionCategory{domain.FunctionStabilizer}, functions)
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, mapFunctionClasses(nil))
	})
}

func TestLocalized(t *testing.T) {
	t.Run("prefers english", func(t *testing.T) {
		got := localized(map[string]string{"fr": "Tartrazine FR", "en": "Tartrazine"}, "fallback")
		assert.Equal(t, "Tartrazine", got)
	})

	t.Run("falls back to any language", func(t *testing.T) {
		got := localized(map[string]string{"fr": "Tartrazine FR"}, "fallback")
		assert.Equal(t, "Tartrazine FR", got)
	})

	t.Run("falls back to default when empty", func(t *testing.T) {
		assert.Equal(t, "fallback", localized(nil, "fallback"))
		assert.Equal(t, "fallback", localized(map[string]string{"en": ""}, "fallback"))
	})
}

func TestMapToResolvedAdditive(t *testing.T) {
	doc := &additiveDocument{
		Code:             "E951",
		Name:             map[string]string{"en": "Aspartame"},
		Description:      map[string]string{"en": "Intense sweetener."},
		OverexposureRisk: "en:high",
		AdditiveClasses:  []string{"en:sweetener"},
		Vegan:            "yes",
	}

	record := mapToResolvedAdditive("E951", doc)
	require.NotNil(t, record)

	assert.Equal(t, "E951", record.Code)
	assert.Equal(t, "Aspartame", record.Name)
	assert.Equal(t, domain.RiskAvoid, record.Risk)
	assert.Equal(t, domain.SourceFreshRemote, record.Source)
	require.NotNil(t, record.Vegan)
	assert.True(t, *record.Vegan)

	t.Run("unknown vegan value stays nil", func(t *testing.T) {
		doc := &additiveDocument{Vegan: "maybe"}
		record := mapToResolvedAdditive("E100", doc)
		assert.Nil(t, record.Vegan)
	})

	t.Run("missing name falls back to the code", func(t *testing.T) {
		record := mapToResolvedAdditive("E100", &additiveDocument{})
		assert.Equal(t, "E100", record.Name)
	})
}
