package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrilens/backend/internal/domain"
	"github.com/nutrilens/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analyzer   *usecase.Analyzer
	additives  *usecase.AdditiveResolver
	classifier *usecase.FunctionClassifier
	regulatory *usecase.RegulatoryComparator
}

// NewHandler creates a new HTTP handler
func NewHandler(analyzer *usecase.Analyzer, additives *usecase.AdditiveResolver) *Handler {
	return &Handler{
		analyzer:   analyzer,
		additives:  additives,
		classifier: usecase.NewFunctionClassifier(),
		regulatory: usecase.NewRegulatoryComparator(),
	}
}

// AnalyzeRequest is the product payload for a full analysis.
type AnalyzeRequest struct {
	Nutrients  map[string]float64 `json:"nutrients"`
	Additives  []string           `json:"additives"`
	NovaGroup  int                `json:"novaGroup"`
	Labels     []string           `json:"labels"`
	Categories []string           `json:"categories"`
	UserID     string             `json:"userId"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutrilens-backend",
		"version": "1.0.0",
	})
}

// Analyze runs the full product analysis pipeline
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	input := domain.AnalysisInput{
		Nutrients:  domain.NutrientProfile(req.Nutrients),
		Additives:  req.Additives,
		NovaGroup:  req.NovaGroup,
		Labels:     req.Labels,
		Categories: req.Categories,
		UserID:     req.UserID,
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidAdditiveCode):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// AdditiveDetailResponse is the full read surface for one additive: the
// resolved record plus its functional categories and regulatory picture.
type AdditiveDetailResponse struct {
	Additive   domain.ResolvedAdditive     `json:"additive"`
	Functions  []domain.FunctionCategory   `json:"functions"`
	Regulatory []domain.JurisdictionStatus `json:"regulatory"`
}

// AdditiveDetail resolves one additive code and returns its record together
// with its functions and per-jurisdiction regulatory status
func (h *Handler) AdditiveDetail(c *gin.Context) {
	code := c.Param("code")

	record, err := h.additives.Resolve(c.Request.Context(), code, usecase.ResolvePolicy{})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAdditiveCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "additive lookup failed"})
		return
	}

	functions, err := h.classifier.FunctionsOf(record.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "additive lookup failed"})
		return
	}

	regulatory, err := h.regulatory.CompareAcrossJurisdictions(record.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "additive lookup failed"})
		return
	}

	c.JSON(http.StatusOK, AdditiveDetailResponse{
		Additive:   *record,
		Functions:  functions,
		Regulatory: regulatory,
	})
}
