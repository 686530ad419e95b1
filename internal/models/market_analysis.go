package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarketAnalysis is one stored market analysis run for a project.
type MarketAnalysis struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ProjectID string    `gorm:"size:36;index;not null" json:"project_id"`
	Query     string    `gorm:"type:text;not null" json:"query"`
	Result    string    `gorm:"type:text;not null" json:"result"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (MarketAnalysis) TableName() string { return "market_analyses" }

func (m *MarketAnalysis) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
