package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResearchResult is one stored general research run for a project.
// Append-only history ordered by creation time.
type ResearchResult struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ProjectID string    `gorm:"size:36;index;not null" json:"project_id"`
	Query     string    `gorm:"type:text;not null" json:"query"`
	Result    string    `gorm:"type:text;not null" json:"result"`
	CreatedBy uint      `json:"created_by"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (ResearchResult) TableName() string { return "research_results" }

func (r *ResearchResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
