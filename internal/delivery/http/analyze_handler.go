package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minijudge/minijudge/internal/analyzer"
)

// AnalyzeHandler serves the pre-compile static analysis endpoints.
type AnalyzeHandler struct{}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler() *AnalyzeHandler {
	return &AnalyzeHandler{}
}

// AnalyzeRequest is the payload of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Code string `json:"code" binding:"required"`

	// Rules selects which rules run; empty means all.
	Rules []string `json:"rules"`

	// Formatted additionally renders the report as display text.
	Formatted bool `json:"formatted"`
}

// Analyze handles POST /api/v1/analyze.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	report := analyzer.Analyze(req.Code, req.Rules)

	resp := gin.H{
		"success": true,
		"data":    report,
	}
	if req.Formatted {
		resp["formatted_output"] = analyzer.Format(report)
	}

	c.JSON(http.StatusOK, resp)
}

// Rules handles GET /api/v1/rules.
func (h *AnalyzeHandler) Rules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rules": analyzer.Rules(),
	})
}
