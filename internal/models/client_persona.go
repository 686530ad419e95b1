package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientPersona captures how a client prefers to communicate, used to tune
// the tone of generated summaries and outreach. One row per client,
// upserted in place.
type ClientPersona struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ClientID    string    `gorm:"size:36;uniqueIndex;not null" json:"client_id"`
	Formality   string    `gorm:"size:10;default:medium" json:"formality"`    // low | medium | high
	DataDensity string    `gorm:"size:10;default:medium" json:"data_density"` // low | medium | high
	Urgency     string    `gorm:"size:10;default:normal" json:"urgency"`      // normal | high
	Length      string    `gorm:"size:10;default:medium" json:"length"`       // short | medium | long
	CtaStyle    string    `gorm:"size:10;default:meeting" json:"cta_style"`   // meeting | proposal | feedback | decision
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ClientPersona) TableName() string { return "client_personas" }

func (p *ClientPersona) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
