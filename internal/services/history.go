package services

import (
	"github.com/consultdesk/backend/internal/models"
	"gorm.io/gorm"
)

// HistoryService reads the append-only analysis history tables.
// All listings are project-scoped and ordered newest first for display.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

func (s *HistoryService) MeetingAnalyses(projectID string) ([]models.MeetingAnalysis, error) {
	var items []models.MeetingAnalysis
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *HistoryService) ResearchResults(projectID string) ([]models.ResearchResult, error) {
	var items []models.ResearchResult
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *HistoryService) MarketAnalyses(projectID string) ([]models.MarketAnalysis, error) {
	var items []models.MarketAnalysis
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SwotHistoryEntry pairs a stored SWOT run with its best-effort parsed
// sections. Parsed is nil when the result had no recognizable structure;
// the caller then renders the raw Markdown instead.
type SwotHistoryEntry struct {
	models.SwotAnalysis
	Competitors []string      `json:"competitors"`
	Parsed      *SwotSections `json:"parsed,omitempty"`
}

func (s *HistoryService) SwotAnalyses(projectID string) ([]SwotHistoryEntry, error) {
	var items []models.SwotAnalysis
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	entries := make([]SwotHistoryEntry, 0, len(items))
	for _, item := range items {
		entry := SwotHistoryEntry{
			SwotAnalysis: item,
			Competitors:  splitAndTrim(item.Competitors, ","),
		}
		if parsed, ok := ParseSwot(item.Result); ok {
			entry.Parsed = parsed
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
