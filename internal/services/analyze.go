package services

import (
	"context"
	"strings"

	"github.com/consultdesk/backend/internal/models"
	"github.com/consultdesk/backend/pkg/logger"
	"github.com/consultdesk/backend/pkg/response"
	"gorm.io/gorm"
)

const analysisFallback = "No analysis generated."

// AnalyzeService turns a meeting transcript into an action-item table via
// the gateway and records the run when it belongs to a stored meeting.
type AnalyzeService struct {
	db *gorm.DB
	ai *AIService
}

func NewAnalyzeService(db *gorm.DB, ai *AIService) *AnalyzeService {
	return &AnalyzeService{db: db, ai: ai}
}

type AnalyzeMeetingRequest struct {
	Transcript string `json:"transcript"`
	MeetingID  string `json:"meeting_id"`
}

// Analyze dispatches the transcript with the meeting-analyst prompt. When
// the request names a stored meeting the result is appended to that
// meeting's analysis history; ad-hoc transcripts are analyzed without
// persistence.
func (s *AnalyzeService) Analyze(ctx context.Context, req *AnalyzeMeetingRequest) (*models.MeetingAnalysis, error) {
	if strings.TrimSpace(req.Transcript) == "" {
		return nil, response.NewValidationError("transcript is required")
	}

	var meeting *models.Meeting
	if req.MeetingID != "" {
		var m models.Meeting
		if err := s.db.First(&m, "id = ?", req.MeetingID).Error; err != nil {
			return nil, response.NewNotFound("meeting not found")
		}
		meeting = &m
	}

	result, err := s.ai.Complete(ctx, meetingAnalystPrompt, req.Transcript, analysisFallback)
	if err != nil {
		return nil, err
	}

	analysis := models.MeetingAnalysis{
		Transcript: req.Transcript,
		Analysis:   result,
	}
	if meeting == nil {
		// Nothing to attach the run to; return it without storing.
		return &analysis, nil
	}

	analysis.MeetingID = meeting.ID
	analysis.ProjectID = meeting.ProjectID
	if err := s.db.Create(&analysis).Error; err != nil {
		logger.Error().Err(err).Str("meeting_id", meeting.ID).Msg("failed to store meeting analysis")
		return nil, err
	}
	return &analysis, nil
}
