package services

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/consultdesk/backend/internal/models"
	"github.com/consultdesk/backend/pkg/response"
	"gorm.io/gorm"
)

const (
	readmeTitleMaxLen       = 80
	readmeDescriptionMaxLen = 2000
)

var readmeStatuses = map[string]bool{
	models.StatusProposed:   true,
	models.StatusInProgress: true,
	models.StatusOnHold:     true,
	models.StatusCompleted:  true,
}

type ReadmeService struct {
	db *gorm.DB
}

func NewReadmeService(db *gorm.DB) *ReadmeService {
	return &ReadmeService{db: db}
}

type UpsertReadmeRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Purpose     string  `json:"purpose"`
	Scope       string  `json:"scope"`
	Status      string  `json:"status"`
	OwnerID     *string `json:"owner_id"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

// validateReadmeInput checks the field-level invariants: required title,
// length limits, known status, date format and ordering. Owner-team
// membership needs the database and is checked separately.
func validateReadmeInput(req *UpsertReadmeRequest) *response.AppError {
	if req.Title == "" {
		return response.NewValidationError("title is required")
	}
	// Limits count characters, not bytes, so non-ASCII titles are not
	// penalized by their encoding.
	if utf8.RuneCountInString(req.Title) > readmeTitleMaxLen {
		return response.NewValidationError("title must be 80 characters or less")
	}
	if utf8.RuneCountInString(req.Description) > readmeDescriptionMaxLen {
		return response.NewValidationError("description must be 2000 characters or less")
	}
	if req.Status != "" && !readmeStatuses[req.Status] {
		return response.NewValidationError("status must be one of: Proposed, In Progress, On Hold, Completed")
	}

	var start, end time.Time
	if req.StartDate != nil && *req.StartDate != "" {
		t, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return response.NewValidationError("start_date must be in YYYY-MM-DD format")
		}
		start = t
	}
	if req.EndDate != nil && *req.EndDate != "" {
		t, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return response.NewValidationError("end_date must be in YYYY-MM-DD format")
		}
		end = t
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return response.NewValidationError("start date must be before or equal to end date")
	}

	return nil
}

// GetByProject returns the project's readme with owner and last editor
// joined, or NotFound when no readme exists yet (a valid "absent" state).
func (s *ReadmeService) GetByProject(projectID string) (*models.ProjectReadme, error) {
	var readme models.ProjectReadme
	err := s.db.Preload("Owner").Preload("Editor").
		First(&readme, "project_id = ?", projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("readme not found")
		}
		return nil, err
	}
	return &readme, nil
}

// UpsertByProject creates the project's readme if absent, otherwise updates
// it in place preserving its id. The lookup and write run inside one
// transaction so concurrent upserts cannot create duplicate rows.
func (s *ReadmeService) UpsertByProject(projectID string, req *UpsertReadmeRequest, userID uint) (*models.ProjectReadme, error) {
	if appErr := validateReadmeInput(req); appErr != nil {
		return nil, appErr
	}

	var projectCount int64
	s.db.Model(&models.Project{}).Where("id = ?", projectID).Count(&projectCount)
	if projectCount == 0 {
		return nil, response.NewNotFound("project not found")
	}

	if req.OwnerID != nil && *req.OwnerID != "" {
		var memberCount int64
		s.db.Model(&models.TeamMember{}).
			Where("id = ? AND project_id = ?", *req.OwnerID, projectID).
			Count(&memberCount)
		if memberCount == 0 {
			return nil, response.NewValidationError("owner must be a member of the project team")
		}
	}

	status := req.Status
	if status == "" {
		status = models.StatusProposed
	}

	var readmeID string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.ProjectReadme
		err := tx.First(&existing, "project_id = ?", projectID).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{
				"title":       req.Title,
				"description": req.Description,
				"purpose":     req.Purpose,
				"scope":       req.Scope,
				"status":      status,
				"owner_id":    req.OwnerID,
				"start_date":  req.StartDate,
				"end_date":    req.EndDate,
				"updated_by":  userID,
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			readmeID = existing.ID
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			readme := models.ProjectReadme{
				ProjectID:   projectID,
				Title:       req.Title,
				Description: req.Description,
				Purpose:     req.Purpose,
				Scope:       req.Scope,
				Status:      status,
				OwnerID:     req.OwnerID,
				StartDate:   req.StartDate,
				EndDate:     req.EndDate,
				UpdatedBy:   userID,
			}
			if err := tx.Create(&readme).Error; err != nil {
				return err
			}
			readmeID = readme.ID
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	var result models.ProjectReadme
	if err := s.db.Preload("Owner").Preload("Editor").
		First(&result, "id = ?", readmeID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
