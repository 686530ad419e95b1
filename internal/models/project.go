package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a consulting engagement.
type Project struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	Name      string       `gorm:"size:200;not null" json:"name"`
	ClientID  *string      `gorm:"size:36;index" json:"client_id"`
	Client    *Client      `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Team      []TeamMember `gorm:"foreignKey:ProjectID" json:"team,omitempty"`
	CreatedBy uint         `json:"created_by"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
