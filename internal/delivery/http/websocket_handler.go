package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/minijudge/minijudge/internal/domain"
	"github.com/minijudge/minijudge/internal/judge"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development; restrict in production
	},
}

// WebSocketHandler streams batch verdicts per test case as they complete.
type WebSocketHandler struct {
	judge  *judge.Judge
	logger *zap.Logger
}

// NewWebSocketHandler creates a new WebSocketHandler.
func NewWebSocketHandler(j *judge.Judge, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{judge: j, logger: logger}
}

// streamEvent is one message sent over the socket. Exactly one of the
// optional fields is set, discriminated by Type.
type streamEvent struct {
	Type    string              `json:"type"` // "test_result" | "summary" | "error"
	Result  *domain.TestResult  `json:"result,omitempty"`
	Summary *domain.BatchResult `json:"summary,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// Stream handles GET /api/v1/judge/stream (WebSocket upgrade). The client
// sends one TestRequest; the server judges each test case in order and
// pushes its verdict as soon as it is known, followed by a batch summary.
func (h *WebSocketHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	var req TestRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(streamEvent{Type: "error", Error: "Invalid request: " + err.Error()})
		return
	}
	if req.Code == "" || req.Language == "" || len(req.TestCases) == 0 {
		_ = conn.WriteJSON(streamEvent{Type: "error", Error: "code, language and test_cases are required"})
		return
	}

	h.logger.Debug("WebSocket judge stream started",
		zap.String("language", req.Language),
		zap.Int("test_cases", len(req.TestCases)),
	)

	sub := domain.Submission{SourceCode: req.Code, Language: req.Language}
	batch := domain.BatchResult{Total: len(req.TestCases)}

	for i, tc := range req.TestCases {
		expected := tc.ExpectedOutput
		res := h.judge.RunOne(c.Request.Context(), sub, tc.Input, &expected)

		tr := domain.TestResult{
			Index:      i + 1,
			Outcome:    res.Outcome,
			Comparison: res.Comparison,
		}
		if tr.Passed() {
			batch.Passed++
		} else {
			batch.Failed++
		}
		batch.Results = append(batch.Results, tr)

		if err := conn.WriteJSON(streamEvent{Type: "test_result", Result: &tr}); err != nil {
			h.logger.Debug("WebSocket write failed (client disconnected)", zap.Error(err))
			return
		}
	}

	_ = conn.WriteJSON(streamEvent{Type: "summary", Summary: &batch})
}
