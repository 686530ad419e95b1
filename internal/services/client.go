package services

import (
	"errors"

	"github.com/consultdesk/backend/internal/models"
	"github.com/consultdesk/backend/pkg/response"
	"gorm.io/gorm"
)

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

type CreateClientRequest struct {
	Company       string `json:"company" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
}

type UpdateClientRequest struct {
	Company       string `json:"company"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
}

// List returns all clients, newest first.
func (s *ClientService) List() ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *ClientService) GetByID(id string) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("client not found")
		}
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Create(req *CreateClientRequest) (*models.Client, error) {
	client := models.Client{
		Company:       req.Company,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
	}
	if err := s.db.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Update(id string, req *UpdateClientRequest) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, "id = ?", id).Error; err != nil {
		return nil, response.NewNotFound("client not found")
	}

	updates := make(map[string]interface{})
	if req.Company != "" {
		updates["company"] = req.Company
	}
	if req.ContactPerson != "" {
		updates["contact_person"] = req.ContactPerson
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}

	if err := s.db.Model(&client).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &client, nil
}
