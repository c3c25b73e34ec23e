package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/minijudge/minijudge/internal/domain"
	"github.com/minijudge/minijudge/internal/judge"
)

// JudgeHandler handles synchronous single-run and batch judge requests.
type JudgeHandler struct {
	judge  *judge.Judge
	logger *zap.Logger
}

// NewJudgeHandler creates a new JudgeHandler.
func NewJudgeHandler(j *judge.Judge, logger *zap.Logger) *JudgeHandler {
	return &JudgeHandler{judge: j, logger: logger}
}

// RunRequest is the payload of POST /api/v1/run.
type RunRequest struct {
	Code           string  `json:"code" binding:"required"`
	Language       string  `json:"language" binding:"required"`
	TestInput      string  `json:"test_input"`
	ExpectedOutput *string `json:"expected_output"`
}

// TestRequest is the payload of POST /api/v1/test.
type TestRequest struct {
	Code      string            `json:"code" binding:"required"`
	Language  string            `json:"language" binding:"required"`
	TestCases []domain.TestCase `json:"test_cases" binding:"required"`
}

// Run handles POST /api/v1/run. One execution, optionally compared against
// an expected output.
func (h *JudgeHandler) Run(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if strings.TrimSpace(req.Code) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrEmptySourceCode.Error()})
		return
	}

	sub := domain.Submission{SourceCode: req.Code, Language: req.Language}
	res := h.judge.RunOne(c.Request.Context(), sub, req.TestInput, req.ExpectedOutput)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"outcome":    res.Outcome,
			"comparison": res.Comparison,
		},
	})
}

// Test handles POST /api/v1/test, a batch of test cases judged in order.
func (h *JudgeHandler) Test(c *gin.Context) {
	var req TestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrEmptySourceCode.Error()})
		return
	}
	if len(req.TestCases) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrNoTestCases.Error()})
		return
	}

	sub := domain.Submission{SourceCode: req.Code, Language: req.Language}
	batch := h.judge.RunMany(c.Request.Context(), sub, req.TestCases)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    batch,
	})
}
