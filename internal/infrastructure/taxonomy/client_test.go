package taxonomy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nutrilens/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://taxonomy.example.com/", "test-agent/1.0")

	assert.NotNil(t, client)
	assert.Equal(t, "https://taxonomy.example.com", client.baseURL)
	assert.Equal(t, "test-agent/1.0", client.userAgent)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
}

func TestGetAdditive_Success(t *testing.T) {
	// Create mock server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/additive/e407.json", r.URL.Path)
		assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": "E407",
			"name": {"en": "Carrageenan", "fr": "Carraghénanes"},
			"description": {"en": "Seaweed-derived thickener."},
			"efsa_evaluation_overexposure_risk": "en:moderate",
			"additives_classes": ["en:thickener", "en:stabiliser"],
			"vegan": "yes"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent/1.0")
	ctx := context.Background()

	record, err := client.GetAdditive(ctx, "E407")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "E407", record.Code)
	assert.Equal(t, "Carrageenan", record.Name)
	assert.Equal(t, "Seaweed-derived thickener.", record.Description)
	assert.Equal(t, domain.RiskModerate, record.Risk)
	assert.Equal(t, []domain.FunctionCategory{domain.FunctionThickener, domain.FunctionStabilizer}, record.Functions)
	assert.Equal(t, domain.SourceFreshRemote, record.Source)
	require.NotNil(t, record.Vegan)
	assert.True(t, *record.Vegan)
}

func TestGetAdditive_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent/1.0")

	record, err := client.GetAdditive(context.Background(), "E9999")
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domain.ErrAdditiveNotFound)
}

func TestGetAdditive_RetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"code": "E330", "name": {"en": "Citric Acid"}, "efsa_evaluation_overexposure_risk": "en:none"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent/1.0")

	record, err := client.GetAdditive(context.Background(), "E330")
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, "Citric Acid", record.Name)
	assert.Equal(t, domain.RiskSafe, record.Risk)
}

func TestGetAdditive_UnavailableAfterRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent/1.0")

	start := time.Now()
	record, err := client.GetAdditive(context.Background(), "E330")
	elapsed := time.Since(start)

	assert.Nil(t, record)
	assert.ErrorIs(t, err, domain.ErrTaxonomyUnavailable)
	// Backs off after the first two attempts only (0.5s + 1s); a sleep
	// after the final attempt would push this past 3s.
	assert.Less(t, elapsed, 2500*time.Millisecond)
}

func TestGetAdditive_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent/1.0")

	record, err := client.GetAdditive(context.Background(), "E330")
	assert.Nil(t, record)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTaxonomyUnavailable)
}

func TestGetAdditive_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-agent/1.0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetAdditive(ctx, "E330")
	assert.Error(t, err)
}
