package services

import (
	"context"
	"strings"

	"github.com/consultdesk/backend/internal/models"
	"github.com/consultdesk/backend/pkg/logger"
	"github.com/consultdesk/backend/pkg/response"
	"gorm.io/gorm"
)

const researchFallback = "No research results generated."

// ResearchService runs the full research pipeline for a project: aggregate
// stored knowledge, pick the system prompt for the requested analysis type,
// dispatch to the gateway and append the result to the matching history.
type ResearchService struct {
	db        *gorm.DB
	ai        *AIService
	knowledge *KnowledgeService
}

func NewResearchService(db *gorm.DB, ai *AIService, knowledge *KnowledgeService) *ResearchService {
	return &ResearchService{db: db, ai: ai, knowledge: knowledge}
}

type ResearchRequest struct {
	ProjectID    string   `json:"project_id" binding:"required"`
	Query        string   `json:"query"`
	AnalysisType string   `json:"analysis_type"` // general, market, swot
	AnalysisMode string   `json:"analysis_mode"` // swot only: auto, manual
	Competitors  []string `json:"competitors"`   // swot manual mode
}

type ResearchResponse struct {
	ID           string `json:"id"`
	ProjectID    string `json:"project_id"`
	Query        string `json:"query"`
	AnalysisType string `json:"analysis_type"`
	Result       string `json:"result"`
}

// Run executes one research request against a project. The project's
// aggregated knowledge is prepended to the user query so the model can
// ground its answer in prior meetings and analyses.
func (s *ResearchService) Run(ctx context.Context, req *ResearchRequest, userID uint) (*ResearchResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, response.NewValidationError("query is required")
	}

	projectID := req.ProjectID
	var projectCount int64
	s.db.Model(&models.Project{}).Where("id = ?", projectID).Count(&projectCount)
	if projectCount == 0 {
		return nil, response.NewNotFound("project not found")
	}

	analysisType := req.AnalysisType
	if analysisType == "" {
		analysisType = AnalysisTypeGeneral
	}

	knowledgeContext := s.knowledge.Aggregate(projectID)
	userPrompt := buildResearchPrompt(knowledgeContext, req.Query)

	result, err := s.ai.Complete(ctx, SelectPrompt(analysisType), userPrompt, researchFallback)
	if err != nil {
		return nil, err
	}

	id, err := s.persist(projectID, analysisType, req, result, userID)
	if err != nil {
		logger.Error().Err(err).
			Str("project_id", projectID).
			Str("analysis_type", analysisType).
			Msg("failed to store research result")
		return nil, err
	}

	return &ResearchResponse{
		ID:           id,
		ProjectID:    projectID,
		Query:        req.Query,
		AnalysisType: analysisType,
		Result:       result,
	}, nil
}

// buildResearchPrompt joins the aggregated project knowledge and the user's
// question into the single user message sent to the gateway.
func buildResearchPrompt(knowledgeContext, query string) string {
	if knowledgeContext == "" {
		return "USER QUERY: " + query
	}
	return knowledgeContext + "\n---\n" + "USER QUERY: " + query
}

// persist appends the run to the history table matching its analysis type
// and returns the new row's id.
func (s *ResearchService) persist(projectID, analysisType string, req *ResearchRequest, result string, userID uint) (string, error) {
	switch analysisType {
	case AnalysisTypeMarket:
		row := models.MarketAnalysis{
			ProjectID: projectID,
			Query:     req.Query,
			Result:    result,
			CreatedBy: userID,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return "", err
		}
		return row.ID, nil
	case AnalysisTypeSwot:
		mode := req.AnalysisMode
		if mode != "manual" {
			mode = "auto"
		}
		row := models.SwotAnalysis{
			ProjectID:    projectID,
			Query:        req.Query,
			AnalysisMode: mode,
			Competitors:  strings.Join(req.Competitors, ","),
			Result:       result,
			CreatedBy:    userID,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return "", err
		}
		return row.ID, nil
	default:
		row := models.ResearchResult{
			ProjectID: projectID,
			Query:     req.Query,
			Result:    result,
			CreatedBy: userID,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return "", err
		}
		return row.ID, nil
	}
}
