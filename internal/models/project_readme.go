package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Readme status values.
const (
	StatusProposed   = "Proposed"
	StatusInProgress = "In Progress"
	StatusOnHold     = "On Hold"
	StatusCompleted  = "Completed"
)

// ProjectReadme is the single structured summary document per project.
// Upsert-by-project semantics: one row per project_id, updated in place.
type ProjectReadme struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	ProjectID   string      `gorm:"size:36;uniqueIndex;not null" json:"project_id"`
	Title       string      `gorm:"size:80;not null" json:"title"`
	Description string      `gorm:"size:2000" json:"description"` // Markdown
	Purpose     string      `gorm:"type:text" json:"purpose"`
	Scope       string      `gorm:"type:text" json:"scope"`
	Status      string      `gorm:"size:20;default:Proposed" json:"status"`
	OwnerID     *string     `gorm:"size:36" json:"owner_id"`
	Owner       *TeamMember `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	StartDate   *string     `gorm:"size:10" json:"start_date"` // YYYY-MM-DD
	EndDate     *string     `gorm:"size:10" json:"end_date"`
	UpdatedBy   uint        `json:"-"`
	Editor      *User       `gorm:"foreignKey:UpdatedBy" json:"updated_by,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (ProjectReadme) TableName() string { return "project_readmes" }

func (r *ProjectReadme) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
