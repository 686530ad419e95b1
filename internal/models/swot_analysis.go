package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SwotAnalysis is one stored SWOT run for a project. AnalysisMode records
// whether competitors were auto-generated from an industry or entered
// manually; Competitors holds the comma-separated list that was used.
type SwotAnalysis struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	ProjectID    string    `gorm:"size:36;index;not null" json:"project_id"`
	Query        string    `gorm:"type:text;not null" json:"query"`
	AnalysisMode string    `gorm:"size:20;default:auto" json:"analysis_mode"` // auto, manual
	Competitors  string    `gorm:"size:2000" json:"-"`
	Result       string    `gorm:"type:text;not null" json:"result"`
	CreatedBy    uint      `json:"created_by"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

func (SwotAnalysis) TableName() string { return "swot_analyses" }

func (s *SwotAnalysis) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
