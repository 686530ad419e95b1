package handlers

import (
	"github.com/consultdesk/backend/internal/services"
	"github.com/consultdesk/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HistoryHandler serves a project's stored analysis runs, newest first.
type HistoryHandler struct {
	historyService *services.HistoryService
}

func NewHistoryHandler(db *gorm.DB) *HistoryHandler {
	return &HistoryHandler{
		historyService: services.NewHistoryService(db),
	}
}

// MeetingAnalyses lists a project's meeting analysis history
// GET /api/projects/:id/meeting-analyses
func (h *HistoryHandler) MeetingAnalyses(c *gin.Context) {
	entries, err := h.historyService.MeetingAnalyses(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, entries)
}

// ResearchResults lists a project's general research history
// GET /api/projects/:id/research-results
func (h *HistoryHandler) ResearchResults(c *gin.Context) {
	entries, err := h.historyService.ResearchResults(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, entries)
}

// MarketAnalyses lists a project's market analysis history
// GET /api/projects/:id/market-analyses
func (h *HistoryHandler) MarketAnalyses(c *gin.Context) {
	entries, err := h.historyService.MarketAnalyses(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, entries)
}

// SwotAnalyses lists a project's SWOT history with parsed sections attached
// GET /api/projects/:id/swot-analyses
func (h *HistoryHandler) SwotAnalyses(c *gin.Context) {
	entries, err := h.historyService.SwotAnalyses(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, entries)
}
