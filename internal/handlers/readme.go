package handlers

import (
	"errors"
	"net/http"

	"github.com/consultdesk/backend/internal/middleware"
	"github.com/consultdesk/backend/internal/services"
	"github.com/consultdesk/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReadmeHandler struct {
	readmeService *services.ReadmeService
}

func NewReadmeHandler(db *gorm.DB) *ReadmeHandler {
	return &ReadmeHandler{
		readmeService: services.NewReadmeService(db),
	}
}

// Get returns the project's readme. Absence is a valid state: it renders
// as 404 with exists:false so the client can show the empty editor
// GET /api/projects/:id/readme
func (h *ReadmeHandler) Get(c *gin.Context) {
	readme, err := h.readmeService.GetByProject(c.Param("id"))
	if err != nil {
		var appErr *response.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": appErr.Message, "exists": false})
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, readme)
}

// Upsert creates or replaces the project's readme
// POST /api/projects/:id/readme
func (h *ReadmeHandler) Upsert(c *gin.Context) {
	var req services.UpsertReadmeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := middleware.GetUserID(c)
	readme, err := h.readmeService.UpsertByProject(c.Param("id"), &req, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, readme)
}
