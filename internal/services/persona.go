package services

import (
	"errors"

	"github.com/consultdesk/backend/internal/models"
	"github.com/consultdesk/backend/pkg/response"
	"gorm.io/gorm"
)

var (
	personaLevels    = map[string]bool{"low": true, "medium": true, "high": true}
	personaUrgencies = map[string]bool{"normal": true, "high": true}
	personaLengths   = map[string]bool{"short": true, "medium": true, "long": true}
	personaCtaStyles = map[string]bool{"meeting": true, "proposal": true, "feedback": true, "decision": true}
)

type PersonaService struct {
	db *gorm.DB
}

func NewPersonaService(db *gorm.DB) *PersonaService {
	return &PersonaService{db: db}
}

type UpsertPersonaRequest struct {
	Formality   string `json:"formality"`
	DataDensity string `json:"data_density"`
	Urgency     string `json:"urgency"`
	Length      string `json:"length"`
	CtaStyle    string `json:"cta_style"`
	Notes       string `json:"notes"`
}

// validatePersonaInput checks each trait against its allowed values. Empty
// fields are allowed; they fall back to the column defaults on create.
func validatePersonaInput(req *UpsertPersonaRequest) *response.AppError {
	if req.Formality != "" && !personaLevels[req.Formality] {
		return response.NewValidationError("formality must be one of: low, medium, high")
	}
	if req.DataDensity != "" && !personaLevels[req.DataDensity] {
		return response.NewValidationError("data_density must be one of: low, medium, high")
	}
	if req.Urgency != "" && !personaUrgencies[req.Urgency] {
		return response.NewValidationError("urgency must be one of: normal, high")
	}
	if req.Length != "" && !personaLengths[req.Length] {
		return response.NewValidationError("length must be one of: short, medium, long")
	}
	if req.CtaStyle != "" && !personaCtaStyles[req.CtaStyle] {
		return response.NewValidationError("cta_style must be one of: meeting, proposal, feedback, decision")
	}
	return nil
}

// GetByClient returns the client's persona, or NotFound when none has been
// saved yet.
func (s *PersonaService) GetByClient(clientID string) (*models.ClientPersona, error) {
	var persona models.ClientPersona
	err := s.db.First(&persona, "client_id = ?", clientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("persona not found")
		}
		return nil, err
	}
	return &persona, nil
}

// UpsertByClient creates the client's persona if absent, otherwise updates
// it in place preserving its id. One row per client is the invariant; the
// lookup and write run inside one transaction to hold it under concurrency.
func (s *PersonaService) UpsertByClient(clientID string, req *UpsertPersonaRequest) (*models.ClientPersona, error) {
	if appErr := validatePersonaInput(req); appErr != nil {
		return nil, appErr
	}

	var clientCount int64
	s.db.Model(&models.Client{}).Where("id = ?", clientID).Count(&clientCount)
	if clientCount == 0 {
		return nil, response.NewNotFound("client not found")
	}

	var personaID string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.ClientPersona
		err := tx.First(&existing, "client_id = ?", clientID).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{
				"formality":    orDefault(req.Formality, "medium"),
				"data_density": orDefault(req.DataDensity, "medium"),
				"urgency":      orDefault(req.Urgency, "normal"),
				"length":       orDefault(req.Length, "medium"),
				"cta_style":    orDefault(req.CtaStyle, "meeting"),
				"notes":        req.Notes,
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
			personaID = existing.ID
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			persona := models.ClientPersona{
				ClientID:    clientID,
				Formality:   orDefault(req.Formality, "medium"),
				DataDensity: orDefault(req.DataDensity, "medium"),
				Urgency:     orDefault(req.Urgency, "normal"),
				Length:      orDefault(req.Length, "medium"),
				CtaStyle:    orDefault(req.CtaStyle, "meeting"),
				Notes:       req.Notes,
			}
			if err := tx.Create(&persona).Error; err != nil {
				return err
			}
			personaID = persona.ID
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	var result models.ClientPersona
	if err := s.db.First(&result, "id = ?", personaID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
