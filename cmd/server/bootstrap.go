package main

import (
	"github.com/consultdesk/backend/internal/config"
	"github.com/consultdesk/backend/internal/handlers"
	"github.com/consultdesk/backend/internal/models"
	"github.com/consultdesk/backend/internal/services"
	"github.com/consultdesk/backend/internal/utils"
	"github.com/consultdesk/backend/pkg/logger"
)

// appServices holds the shared services and handlers wired at startup.
type appServices struct {
	cfg             *config.Config
	authHandler     *handlers.AuthHandler
	researchHandler *handlers.ResearchHandler
	analyzeHandler  *handlers.AnalyzeHandler
}

// bootstrap initializes the database and the services that hold state
// beyond a single request.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.SeedDefaultData(); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	db := models.GetDB()

	aiService := services.NewAIService(&cfg.AI)
	knowledgeService := services.NewKnowledgeService(db)
	researchService := services.NewResearchService(db, aiService, knowledgeService)
	analyzeService := services.NewAnalyzeService(db, aiService)

	return &appServices{
		cfg:             cfg,
		authHandler:     handlers.NewAuthHandler(db, &cfg.JWT),
		researchHandler: handlers.NewResearchHandler(researchService),
		analyzeHandler:  handlers.NewAnalyzeHandler(analyzeService),
	}
}
