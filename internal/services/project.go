package services

import (
	"errors"

	"github.com/consultdesk/backend/internal/models"
	"github.com/consultdesk/backend/pkg/response"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Name     string `form:"name"`
}

type ProjectListResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []models.Project `json:"items"`
}

type CreateProjectRequest struct {
	Name     string  `json:"name" binding:"required"`
	ClientID *string `json:"client_id"`
}

type UpdateProjectRequest struct {
	Name     string  `json:"name"`
	ClientID *string `json:"client_id"`
}

// List returns paginated projects with client references preloaded.
func (s *ProjectService) List(req *ProjectListRequest) (*ProjectListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 10
	}

	var projects []models.Project
	var total int64

	query := s.db.Model(&models.Project{})
	if req.Name != "" {
		query = query.Where("name LIKE ?", "%"+req.Name+"%")
	}
	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Preload("Client").Offset(offset).Limit(req.PageSize).
		Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return &ProjectListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    projects,
	}, nil
}

// GetByID returns a project with its client and team preloaded.
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	var project models.Project
	if err := s.db.Preload("Client").Preload("Team").
		First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Exists reports whether a project with the given id exists.
func (s *ProjectService) Exists(id string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *ProjectService) Create(req *CreateProjectRequest, userID uint) (*models.Project, error) {
	if req.ClientID != nil {
		var count int64
		s.db.Model(&models.Client{}).Where("id = ?", *req.ClientID).Count(&count)
		if count == 0 {
			return nil, response.NewValidationError("client does not exist")
		}
	}

	project := models.Project{
		Name:      req.Name,
		ClientID:  req.ClientID,
		CreatedBy: userID,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Update(id string, req *UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.ClientID != nil {
		var count int64
		s.db.Model(&models.Client{}).Where("id = ?", *req.ClientID).Count(&count)
		if count == 0 {
			return nil, response.NewValidationError("client does not exist")
		}
		updates["client_id"] = *req.ClientID
	}

	if err := s.db.Model(&project).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &project, nil
}
