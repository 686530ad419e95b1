package main

import (
	"github.com/consultdesk/backend/internal/handlers"
	"github.com/consultdesk/backend/internal/middleware"
	"github.com/consultdesk/backend/internal/models"
	"github.com/consultdesk/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.Use(middleware.CORS())

	db := models.GetDB()

	// Rate limiter for the gateway-backed analysis routes
	aiLimiter := middleware.NewRateLimiter(svc.cfg.RateLimit.RPS, svc.cfg.RateLimit.Burst)

	// Health check
	healthHandler := handlers.NewHealthHandler()
	r.GET("/health", healthHandler.CheckHealth)

	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/auth/login", svc.authHandler.Login)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/auth/me", svc.authHandler.GetCurrentUser)
			protected.POST("/auth/logout", svc.authHandler.Logout)
			protected.POST("/auth/change-password", svc.authHandler.ChangePassword)

			// Dashboard
			dashboardHandler := handlers.NewDashboardHandler(db)
			protected.GET("/dashboard/stats", dashboardHandler.GetStats)

			// Clients. Record writes are admin-only; reads are open to any
			// authenticated consultant.
			clientHandler := handlers.NewClientHandler(db)
			protected.GET("/clients", clientHandler.List)
			protected.GET("/clients/:id", clientHandler.GetByID)

			// Client communication persona
			personaHandler := handlers.NewPersonaHandler(db)
			protected.GET("/clients/:id/persona", personaHandler.Get)
			protected.POST("/clients/:id/persona", personaHandler.Upsert)

			admin := protected.Group("", middleware.AdminRequired())
			{
				admin.POST("/clients", clientHandler.Create)
				admin.PUT("/clients/:id", clientHandler.Update)
			}

			// Projects
			projectHandler := handlers.NewProjectHandler(db)
			protected.GET("/projects", projectHandler.List)
			protected.GET("/projects/:id", projectHandler.GetByID)
			protected.POST("/projects", projectHandler.Create)
			protected.PUT("/projects/:id", projectHandler.Update)

			// Team members
			teamHandler := handlers.NewTeamMemberHandler(db)
			protected.GET("/projects/:id/members", teamHandler.ListByProject)
			protected.POST("/projects/:id/members", teamHandler.Create)
			protected.PUT("/members/:id", teamHandler.Update)

			// Meetings
			meetingHandler := handlers.NewMeetingHandler(db)
			protected.GET("/projects/:id/meetings", meetingHandler.ListByProject)
			protected.POST("/projects/:id/meetings", meetingHandler.Create)
			protected.GET("/meetings/:id", meetingHandler.GetByID)
			protected.PUT("/meetings/:id", meetingHandler.Update)

			// Analysis history
			historyHandler := handlers.NewHistoryHandler(db)
			protected.GET("/projects/:id/meeting-analyses", historyHandler.MeetingAnalyses)
			protected.GET("/projects/:id/research-results", historyHandler.ResearchResults)
			protected.GET("/projects/:id/market-analyses", historyHandler.MarketAnalyses)
			protected.GET("/projects/:id/swot-analyses", historyHandler.SwotAnalyses)

			// Project readme
			readmeHandler := handlers.NewReadmeHandler(db)
			protected.GET("/projects/:id/readme", readmeHandler.Get)
			protected.POST("/projects/:id/readme", readmeHandler.Upsert)

			// Gateway-backed analysis routes, rate limited
			ai := protected.Group("", aiLimiter.Middleware())
			{
				ai.POST("/research", svc.researchHandler.Run)
				ai.POST("/analyze-meeting", svc.analyzeHandler.AnalyzeMeeting)
			}
		}
	}
}
