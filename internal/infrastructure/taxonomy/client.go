// Package taxonomy talks to the remote additive taxonomy service: a JSON
// document per additive with localized name/description and an EFSA-style
// overexposure risk vocabulary that gets mapped onto the internal three-tier
// scale.
package taxonomy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nutrilens/backend/internal/domain"
)

// Client fetches additive metadata over HTTP.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
}

// NewClient creates a taxonomy client. The public taxonomy asks for at most
// ~100 requests per minute, so the limiter allows 1.5 req/s with a small burst.
func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		userAgent:   userAgent,
		rateLimiter: rate.NewLimiter(rate.Limit(1.5), 5),
	}
}

// additiveDocument is the remote wire format.
type additiveDocument struct {
	Code             string            `json:"code"`
	Name             map[string]string `json:"name"`
	Description      map[string]string `json:"description"`
	OverexposureRisk string            `json:"efsa_evaluation_overexposure_risk"`
	AdditiveClasses  []string          `json:"additives_classes"`
	Vegan            string            `json:"vegan"`
}

// GetAdditive fetches one additive by normalized code. Returns
// domain.ErrAdditiveNotFound for unknown codes and
// domain.ErrTaxonomyUnavailable for transport failures.
func (c *Client) GetAdditive(ctx context.Context, code string) (*domain.ResolvedAdditive, error) {
	reqURL := fmt.Sprintf("%s/additive/%s.json", c.baseURL, strings.ToLower(code))

	// Retry transient failures up to 3 times
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Printf("[taxonomy] request error (attempt %d): %v", attempt, err)
			lastErr = err
			if attempt < 3 && !sleepBackoff(ctx, attempt) {
				return nil, ctx.Err()
			}
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrAdditiveNotFound
		}
		if resp.StatusCode != http.StatusOK {
			log.Printf("[taxonomy] status %d (attempt %d) for %s", resp.StatusCode, attempt, code)
			lastErr = fmt.Errorf("%w: status %d", domain.ErrTaxonomyUnavailable, resp.StatusCode)
			if attempt < 3 && !sleepBackoff(ctx, attempt) {
				return nil, ctx.Err()
			}
			continue
		}

		var doc additiveDocument
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode taxonomy response: %w", err)
		}

		return mapToResolvedAdditive(code, &doc), nil
	}

	return nil, lastErr
}

func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTaxonomyUnavailable, err)
	}

	return resp, nil
}

// sleepBackoff waits attempt*500ms, honoring context cancellation.
// Returns false when the context was cancelled.
func sleepBackoff(ctx context.Context, attempt int) bool {
	timer := time.NewTimer(time.Duration(attempt*500) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
