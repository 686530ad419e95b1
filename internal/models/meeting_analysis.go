package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingAnalysis is one extracted action-item table for a meeting.
// Append-only history: every analysis run inserts a new row.
type MeetingAnalysis struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	MeetingID  string    `gorm:"size:36;index;not null" json:"meeting_id"`
	ProjectID  string    `gorm:"size:36;index;not null" json:"project_id"`
	Transcript string    `gorm:"type:text" json:"transcript"` // snapshot at analysis time
	Analysis   string    `gorm:"type:text;not null" json:"analysis"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

func (MeetingAnalysis) TableName() string { return "meeting_analyses" }

func (a *MeetingAnalysis) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
