package services

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/consultdesk/backend/internal/models"
	"github.com/consultdesk/backend/pkg/logger"
	"gorm.io/gorm"
)

// Character budgets bounding the prompt size. Long fields are cut at the
// budget and suffixed with the truncation marker.
const (
	transcriptCharBudget  = 2000
	priorResultCharBudget = 1000
	truncationMarker      = " ... [truncated]"
)

// projectKnowledge holds the raw per-category records fetched for a project.
type projectKnowledge struct {
	Meetings        []models.Meeting
	MeetingAnalyses []models.MeetingAnalysis
	Research        []models.ResearchResult
	Market          []models.MarketAnalysis
	Swot            []models.SwotAnalysis
}

// KnowledgeService aggregates a project's stored knowledge into a single
// bounded text block used as grounding context for the completion gateway.
type KnowledgeService struct {
	db *gorm.DB
}

func NewKnowledgeService(db *gorm.DB) *KnowledgeService {
	return &KnowledgeService{db: db}
}

// Aggregate fetches all knowledge categories for a project and renders them
// into one context block. A failed sub-fetch is logged and contributes an
// empty section; aggregation never aborts because one category failed.
func (s *KnowledgeService) Aggregate(projectID string) string {
	k := s.fetch(projectID)
	return renderKnowledgeContext(k)
}

// fetch issues the five category reads concurrently. They are read-only and
// independent; ordering is imposed by the renderer, not the fetches.
func (s *KnowledgeService) fetch(projectID string) *projectKnowledge {
	k := &projectKnowledge{}
	var wg sync.WaitGroup

	run := func(name string, query func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := query(); err != nil {
				logger.Warn().Err(err).Str("category", name).Str("project_id", projectID).
					Msg("knowledge sub-fetch failed, treating category as empty")
			}
		}()
	}

	run("meetings", func() error {
		return s.db.Where("project_id = ?", projectID).
			Order("created_at DESC").Find(&k.Meetings).Error
	})
	run("meeting_analyses", func() error {
		return s.db.Where("project_id = ?", projectID).
			Order("created_at DESC").Find(&k.MeetingAnalyses).Error
	})
	run("research_results", func() error {
		return s.db.Where("project_id = ?", projectID).
			Order("created_at DESC").Find(&k.Research).Error
	})
	run("market_analyses", func() error {
		return s.db.Where("project_id = ?", projectID).
			Order("created_at DESC").Find(&k.Market).Error
	})
	run("swot_analyses", func() error {
		return s.db.Where("project_id = ?", projectID).
			Order("created_at DESC").Find(&k.Swot).Error
	})

	wg.Wait()
	return k
}

// renderKnowledgeContext serializes fetched records into the context block.
// Section order is fixed: Meetings → Meeting Analyses → Previous Research →
// Market Analyses → SWOT Analyses. Empty categories omit their section
// entirely rather than emitting an empty header.
func renderKnowledgeContext(k *projectKnowledge) string {
	var b strings.Builder

	if len(k.Meetings) > 0 {
		b.WriteString("## Meetings\n")
		for _, m := range k.Meetings {
			fmt.Fprintf(&b, "- %s | %s", m.Date, m.Topic)
			if m.Attendees != "" {
				fmt.Fprintf(&b, " | Attendees: %s", m.Attendees)
			}
			b.WriteString("\n")
			if m.Transcript != "" {
				fmt.Fprintf(&b, "  Transcript: %s\n", truncate(m.Transcript, transcriptCharBudget))
			}
		}
		b.WriteString("\n")
	}

	if len(k.MeetingAnalyses) > 0 {
		b.WriteString("## Meeting Analyses\n")
		for _, a := range k.MeetingAnalyses {
			fmt.Fprintf(&b, "- %s\n%s\n", a.CreatedAt.Format("2006-01-02"),
				truncate(a.Analysis, priorResultCharBudget))
		}
		b.WriteString("\n")
	}

	if len(k.Research) > 0 {
		b.WriteString("## Previous Research\n")
		for _, r := range k.Research {
			fmt.Fprintf(&b, "- Query: %s\n  Result: %s\n", r.Query,
				truncate(r.Result, priorResultCharBudget))
		}
		b.WriteString("\n")
	}

	if len(k.Market) > 0 {
		b.WriteString("## Market Analyses\n")
		for _, m := range k.Market {
			fmt.Fprintf(&b, "- Query: %s\n  Result: %s\n", m.Query,
				truncate(m.Result, priorResultCharBudget))
		}
		b.WriteString("\n")
	}

	if len(k.Swot) > 0 {
		b.WriteString("## SWOT Analyses\n")
		for _, s := range k.Swot {
			fmt.Fprintf(&b, "- Query: %s", s.Query)
			if s.Competitors != "" {
				fmt.Fprintf(&b, " | Competitors: %s", s.Competitors)
			}
			fmt.Fprintf(&b, "\n  Result: %s\n", truncate(s.Result, priorResultCharBudget))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// truncate cuts s at limit characters, appending the truncation marker.
// Limits count runes, not bytes, so umlauts in German transcripts are
// never split mid-sequence.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + truncationMarker
}
