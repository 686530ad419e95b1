package handlers

import (
	"github.com/consultdesk/backend/internal/middleware"
	"github.com/consultdesk/backend/internal/services"
	"github.com/consultdesk/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type ResearchHandler struct {
	researchService *services.ResearchService
}

func NewResearchHandler(researchService *services.ResearchService) *ResearchHandler {
	return &ResearchHandler{researchService: researchService}
}

// Run executes a research, market or SWOT analysis for a project
// POST /api/research
func (h *ResearchHandler) Run(c *gin.Context) {
	var req services.ResearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := middleware.GetUserID(c)
	result, err := h.researchService.Run(c.Request.Context(), &req, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
