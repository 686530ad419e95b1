package handlers

import (
	"errors"
	"net/http"

	"github.com/consultdesk/backend/internal/services"
	"github.com/consultdesk/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PersonaHandler struct {
	personaService *services.PersonaService
}

func NewPersonaHandler(db *gorm.DB) *PersonaHandler {
	return &PersonaHandler{
		personaService: services.NewPersonaService(db),
	}
}

// Get returns the client's communication persona. Like the readme, absence
// is a valid state and renders as 404 with exists:false
// GET /api/clients/:id/persona
func (h *PersonaHandler) Get(c *gin.Context) {
	persona, err := h.personaService.GetByClient(c.Param("id"))
	if err != nil {
		var appErr *response.AppError
		if errors.As(err, &appErr) && appErr.HTTPStatus == http.StatusNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": appErr.Message, "exists": false})
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, persona)
}

// Upsert creates or replaces the client's persona
// POST /api/clients/:id/persona
func (h *PersonaHandler) Upsert(c *gin.Context) {
	var req services.UpsertPersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	persona, err := h.personaService.UpsertByClient(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, persona)
}
