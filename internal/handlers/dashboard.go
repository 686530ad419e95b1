package handlers

import (
	"github.com/consultdesk/backend/internal/services"
	"github.com/consultdesk/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: services.NewDashboardService(db),
	}
}

// GetStats returns record counts and recent analysis activity
// GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	overview, err := h.dashboardService.GetOverview()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, overview)
}
