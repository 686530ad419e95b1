package handlers

import (
	"github.com/consultdesk/backend/internal/services"
	"github.com/consultdesk/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MeetingHandler struct {
	meetingService *services.MeetingService
}

func NewMeetingHandler(db *gorm.DB) *MeetingHandler {
	return &MeetingHandler{
		meetingService: services.NewMeetingService(db),
	}
}

// ListByProject returns a project's meetings, newest first
// GET /api/projects/:id/meetings
func (h *MeetingHandler) ListByProject(c *gin.Context) {
	meetings, err := h.meetingService.ListByProject(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, meetings)
}

// GetByID returns a meeting with its files
// GET /api/meetings/:id
func (h *MeetingHandler) GetByID(c *gin.Context) {
	meeting, err := h.meetingService.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, meeting)
}

// Create records a meeting for a project
// POST /api/projects/:id/meetings
func (h *MeetingHandler) Create(c *gin.Context) {
	var req services.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	meeting, err := h.meetingService.Create(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, meeting)
}

// Update updates a meeting
// PUT /api/meetings/:id
func (h *MeetingHandler) Update(c *gin.Context) {
	var req services.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	meeting, err := h.meetingService.Update(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, meeting)
}
