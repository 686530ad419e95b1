package handlers

import (
	"github.com/consultdesk/backend/internal/services"
	"github.com/consultdesk/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{
		clientService: services.NewClientService(db),
	}
}

// List returns all clients
// GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, clients)
}

// GetByID returns a client by id
// GET /api/clients/:id
func (h *ClientHandler) GetByID(c *gin.Context) {
	client, err := h.clientService.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, client)
}

// Create creates a new client
// POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req services.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, client)
}

// Update updates a client
// PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	var req services.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	client, err := h.clientService.Update(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, client)
}
