package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meeting represents a recorded project meeting with its transcript.
// Attendees are stored as a comma-separated list of names, not references.
type Meeting struct {
	ID         string        `gorm:"primaryKey;size:36" json:"id"`
	ProjectID  string        `gorm:"size:36;index;not null" json:"project_id"`
	Date       string        `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Topic      string        `gorm:"size:500;not null" json:"topic"`
	Attendees  string        `gorm:"size:2000" json:"-"`
	Transcript string        `gorm:"type:text" json:"transcript"`
	Files      []MeetingFile `gorm:"foreignKey:MeetingID" json:"files,omitempty"`
	CreatedAt  time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

func (Meeting) TableName() string { return "meetings" }

func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MeetingFile describes an uploaded attachment (descriptor only, no blob).
type MeetingFile struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	MeetingID string    `gorm:"size:36;index;not null" json:"meeting_id"`
	Name      string    `gorm:"size:500;not null" json:"name"`
	Type      string    `gorm:"size:20;not null" json:"type"` // audio, text
	Size      int64     `gorm:"not null" json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

func (MeetingFile) TableName() string { return "meeting_files" }

func (f *MeetingFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
