package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/projectsentry/narrative-analyzer/internal/analysis"
	"github.com/projectsentry/narrative-analyzer/internal/domain"
	"github.com/projectsentry/narrative-analyzer/internal/logger"
)

// maxRecordsPerRun bounds one detection run; the engine is an in-memory
// single-pass batch over at most a few hundred records.
const maxRecordsPerRun = 1000

// Handler handles HTTP requests for the analyzer API.
type Handler struct {
	analyzer     *analysis.Analyzer
	limiter      *RateLimiter
	defaultTerms domain.KeywordSet
	logger       logger.Logger
}

// NewHandler creates a new API handler. defaultTerms is used when a request
// does not carry its own keyword lists.
func NewHandler(analyzer *analysis.Analyzer, limiter *RateLimiter, defaultTerms domain.KeywordSet, log logger.Logger) *Handler {
	return &Handler{
		analyzer:     analyzer,
		limiter:      limiter,
		defaultTerms: defaultTerms,
		logger:       log,
	}
}

// DetectRequest is one detection run request. Term lists default to the
// configured keyword lists when absent. Keywords is the raw comma-separated
// search-term string from the caller's UI; parsing it is this layer's job,
// not the engine's.
type DetectRequest struct {
	Records   []domain.Record `json:"records"`
	ProTerms  []string        `json:"pro_terms"`
	AntiTerms []string        `json:"anti_terms"`
	Keywords  string          `json:"keywords"`
}

// DetectResponse wraps the run report.
type DetectResponse struct {
	Report *analysis.Report `json:"report,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// TermsResponse exposes the effective default keyword lists.
type TermsResponse struct {
	Pro  []string `json:"pro_terms"`
	Anti []string `json:"anti_terms"`
}

// Detect handles POST /api/v1/detect.
func (h *Handler) Detect(c *gin.Context) {
	if !h.limiter.Allow() {
		c.JSON(http.StatusTooManyRequests, DetectResponse{Error: "rate limit exceeded"})
		return
	}

	var req DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid detection request", logger.Error(err))
		c.JSON(http.StatusBadRequest, DetectResponse{Error: err.Error()})
		return
	}

	if len(req.Records) > maxRecordsPerRun {
		c.JSON(http.StatusRequestEntityTooLarge, DetectResponse{
			Error: "too many records in one run",
		})
		return
	}

	keywords := domain.KeywordSet{Pro: req.ProTerms, Anti: req.AntiTerms}
	if len(keywords.Pro) == 0 {
		keywords.Pro = h.defaultTerms.Pro
	}
	if len(keywords.Anti) == 0 {
		keywords.Anti = h.defaultTerms.Anti
	}
	searchTerms := ParseTermList(req.Keywords)

	report, err := h.analyzer.Run(c.Request.Context(), req.Records, keywords, searchTerms)
	if err != nil {
		h.logger.Error("detection run failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, DetectResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, DetectResponse{Report: report})
}

// Terms handles GET /api/v1/terms.
func (h *Handler) Terms(c *gin.Context) {
	c.JSON(http.StatusOK, TermsResponse{
		Pro:  h.defaultTerms.Pro,
		Anti: h.defaultTerms.Anti,
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ReadyCheck handles GET /ready. The engine is stateless, so readiness
// equals liveness.
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// ParseTermList splits a comma-separated term string into a trimmed,
// lowercase list, dropping empties.
func ParseTermList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			terms = append(terms, p)
		}
	}
	return terms
}
