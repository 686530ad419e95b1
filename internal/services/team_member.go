package services

import (
	"errors"

	"github.com/consultdesk/backend/internal/models"
	"github.com/consultdesk/backend/pkg/response"
	"gorm.io/gorm"
)

type TeamMemberService struct {
	db *gorm.DB
}

func NewTeamMemberService(db *gorm.DB) *TeamMemberService {
	return &TeamMemberService{db: db}
}

type CreateTeamMemberRequest struct {
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	UserID *uint  `json:"user_id"`
}

type UpdateTeamMemberRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email" binding:"omitempty,email"`
	UserID *uint  `json:"user_id"`
}

// ListByProject returns the members of a project's team.
func (s *TeamMemberService) ListByProject(projectID string) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (s *TeamMemberService) Create(projectID string, req *CreateTeamMemberRequest) (*models.TeamMember, error) {
	var count int64
	s.db.Model(&models.Project{}).Where("id = ?", projectID).Count(&count)
	if count == 0 {
		return nil, response.NewValidationError("project does not exist")
	}

	member := models.TeamMember{
		ProjectID: projectID,
		Name:      req.Name,
		Role:      req.Role,
		Email:     req.Email,
		UserID:    req.UserID,
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *TeamMemberService) Update(id string, req *UpdateTeamMemberRequest) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := s.db.First(&member, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("team member not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.UserID != nil {
		updates["user_id"] = req.UserID
	}

	if err := s.db.Model(&member).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &member, nil
}
