package services

import (
	"errors"
	"strings"
	"time"

	"github.com/consultdesk/backend/internal/models"
	"github.com/consultdesk/backend/pkg/response"
	"gorm.io/gorm"
)

// Allowed attachment kinds.
var meetingFileTypes = map[string]bool{"audio": true, "text": true}

type MeetingService struct {
	db *gorm.DB
}

func NewMeetingService(db *gorm.DB) *MeetingService {
	return &MeetingService{db: db}
}

type MeetingFileDescriptor struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
	Size int64  `json:"size" binding:"required,min=0"`
}

type CreateMeetingRequest struct {
	Date       string                  `json:"date" binding:"required"`
	Topic      string                  `json:"topic" binding:"required"`
	Attendees  []string                `json:"attendees"`
	Transcript string                  `json:"transcript"`
	Files      []MeetingFileDescriptor `json:"files"`
}

type UpdateMeetingRequest struct {
	Date       string   `json:"date"`
	Topic      string   `json:"topic"`
	Attendees  []string `json:"attendees"`
	Transcript string   `json:"transcript"`
}

// MeetingResponse exposes attendees as a list rather than the stored string.
type MeetingResponse struct {
	models.Meeting
	Attendees []string `json:"attendees"`
}

func toMeetingResponse(m models.Meeting) MeetingResponse {
	return MeetingResponse{
		Meeting:   m,
		Attendees: splitAndTrim(m.Attendees, ","),
	}
}

// ListByProject returns a project's meetings with files, newest first.
func (s *MeetingService) ListByProject(projectID string) ([]MeetingResponse, error) {
	var meetings []models.Meeting
	if err := s.db.Preload("Files").Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&meetings).Error; err != nil {
		return nil, err
	}

	resp := make([]MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		resp = append(resp, toMeetingResponse(m))
	}
	return resp, nil
}

func (s *MeetingService) GetByID(id string) (*MeetingResponse, error) {
	var meeting models.Meeting
	if err := s.db.Preload("Files").First(&meeting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("meeting not found")
		}
		return nil, err
	}
	resp := toMeetingResponse(meeting)
	return &resp, nil
}

func (s *MeetingService) Create(projectID string, req *CreateMeetingRequest) (*MeetingResponse, error) {
	var count int64
	s.db.Model(&models.Project{}).Where("id = ?", projectID).Count(&count)
	if count == 0 {
		return nil, response.NewValidationError("project does not exist")
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, response.NewValidationError("date must be in YYYY-MM-DD format")
	}
	for _, f := range req.Files {
		if !meetingFileTypes[f.Type] {
			return nil, response.NewValidationError("file type must be audio or text")
		}
	}

	meeting := models.Meeting{
		ProjectID:  projectID,
		Date:       req.Date,
		Topic:      req.Topic,
		Attendees:  strings.Join(req.Attendees, ","),
		Transcript: req.Transcript,
	}
	for _, f := range req.Files {
		meeting.Files = append(meeting.Files, models.MeetingFile{
			Name: f.Name,
			Type: f.Type,
			Size: f.Size,
		})
	}

	if err := s.db.Create(&meeting).Error; err != nil {
		return nil, err
	}
	resp := toMeetingResponse(meeting)
	return &resp, nil
}

func (s *MeetingService) Update(id string, req *UpdateMeetingRequest) (*MeetingResponse, error) {
	var meeting models.Meeting
	if err := s.db.First(&meeting, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("meeting not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			return nil, response.NewValidationError("date must be in YYYY-MM-DD format")
		}
		updates["date"] = req.Date
	}
	if req.Topic != "" {
		updates["topic"] = req.Topic
	}
	if req.Attendees != nil {
		updates["attendees"] = strings.Join(req.Attendees, ",")
	}
	if req.Transcript != "" {
		updates["transcript"] = req.Transcript
	}

	if err := s.db.Model(&meeting).Updates(updates).Error; err != nil {
		return nil, err
	}

	resp := toMeetingResponse(meeting)
	return &resp, nil
}

// splitAndTrim splits s by sep, trims whitespace and drops empty parts.
func splitAndTrim(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
