package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents the customer company a project is run for.
type Client struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Company       string    `gorm:"size:200;not null" json:"company"`
	ContactPerson string    `gorm:"size:200;not null" json:"contact_person"`
	Email         string    `gorm:"size:255;not null" json:"email"`
	Phone         string    `gorm:"size:50" json:"phone"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clients" }

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
