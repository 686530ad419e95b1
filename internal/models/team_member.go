package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMember represents a consultant assigned to a project.
// Role is free text (e.g. "Project Lead", "Analyst").
type TeamMember struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ProjectID string    `gorm:"size:36;index;not null" json:"project_id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Role      string    `gorm:"size:200;not null" json:"role"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	UserID    *uint     `json:"user_id"` // optional link to a login account
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TeamMember) TableName() string { return "project_team_members" }

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
