package handlers

import (
	"github.com/consultdesk/backend/internal/services"
	"github.com/consultdesk/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type AnalyzeHandler struct {
	analyzeService *services.AnalyzeService
}

func NewAnalyzeHandler(analyzeService *services.AnalyzeService) *AnalyzeHandler {
	return &AnalyzeHandler{analyzeService: analyzeService}
}

// AnalyzeMeeting extracts an action-item table from a transcript
// POST /api/analyze-meeting
func (h *AnalyzeHandler) AnalyzeMeeting(c *gin.Context) {
	var req services.AnalyzeMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	analysis, err := h.analyzeService.Analyze(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, analysis)
}
