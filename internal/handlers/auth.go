package handlers

import (
	"github.com/consultdesk/backend/internal/config"
	"github.com/consultdesk/backend/internal/middleware"
	"github.com/consultdesk/backend/internal/services"
	"github.com/consultdesk/backend/pkg/logger"
	"github.com/consultdesk/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(db, jwtCfg),
	}
}

// Login authenticates a user and issues a token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, resp)
}

// GetCurrentUser returns the authenticated user
// GET /api/auth/me
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c)
	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

// Logout acknowledges the logout; tokens are stateless so the client
// simply discards its copy
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	logger.Info().Str("username", middleware.GetUsername(c)).Msg("user logged out")
	response.Success(c, gin.H{"message": "logged out"})
}

// ChangePassword updates the authenticated user's password
// POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := middleware.GetUserID(c)
	if err := h.authService.ChangePassword(userID, &req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "password updated"})
}
