package handlers

import (
	"github.com/consultdesk/backend/internal/services"
	"github.com/consultdesk/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TeamMemberHandler struct {
	teamService *services.TeamMemberService
}

func NewTeamMemberHandler(db *gorm.DB) *TeamMemberHandler {
	return &TeamMemberHandler{
		teamService: services.NewTeamMemberService(db),
	}
}

// ListByProject returns a project's team members
// GET /api/projects/:id/members
func (h *TeamMemberHandler) ListByProject(c *gin.Context) {
	members, err := h.teamService.ListByProject(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, members)
}

// Create adds a team member to a project
// POST /api/projects/:id/members
func (h *TeamMemberHandler) Create(c *gin.Context) {
	var req services.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.teamService.Create(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, member)
}

// Update updates a team member
// PUT /api/members/:id
func (h *TeamMemberHandler) Update(c *gin.Context) {
	var req services.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	member, err := h.teamService.Update(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, member)
}
