package services

import (
	"sort"
	"time"

	"github.com/consultdesk/backend/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardStats struct {
	Projects       int64 `json:"projects"`
	Clients        int64 `json:"clients"`
	Meetings       int64 `json:"meetings"`
	ResearchRuns   int64 `json:"research_runs"`
	MarketRuns     int64 `json:"market_runs"`
	SwotRuns       int64 `json:"swot_runs"`
	MeetingReports int64 `json:"meeting_reports"`
}

type ActivityEntry struct {
	Type      string    `json:"type"` // research, market, swot, meeting_analysis
	ProjectID string    `json:"project_id"`
	Query     string    `json:"query,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardResponse struct {
	Stats          DashboardStats  `json:"stats"`
	RecentActivity []ActivityEntry `json:"recent_activity"`
}

const recentActivityLimit = 10

// GetOverview counts the main record types and lists the most recent
// analysis runs across all projects.
func (s *DashboardService) GetOverview() (*DashboardResponse, error) {
	var stats DashboardStats
	s.db.Model(&models.Project{}).Count(&stats.Projects)
	s.db.Model(&models.Client{}).Count(&stats.Clients)
	s.db.Model(&models.Meeting{}).Count(&stats.Meetings)
	s.db.Model(&models.ResearchResult{}).Count(&stats.ResearchRuns)
	s.db.Model(&models.MarketAnalysis{}).Count(&stats.MarketRuns)
	s.db.Model(&models.SwotAnalysis{}).Count(&stats.SwotRuns)
	s.db.Model(&models.MeetingAnalysis{}).Count(&stats.MeetingReports)

	activity := make([]ActivityEntry, 0, recentActivityLimit*4)

	var research []models.ResearchResult
	s.db.Order("created_at DESC").Limit(recentActivityLimit).Find(&research)
	for _, r := range research {
		activity = append(activity, ActivityEntry{Type: "research", ProjectID: r.ProjectID, Query: r.Query, CreatedAt: r.CreatedAt})
	}

	var market []models.MarketAnalysis
	s.db.Order("created_at DESC").Limit(recentActivityLimit).Find(&market)
	for _, m := range market {
		activity = append(activity, ActivityEntry{Type: "market", ProjectID: m.ProjectID, Query: m.Query, CreatedAt: m.CreatedAt})
	}

	var swot []models.SwotAnalysis
	s.db.Order("created_at DESC").Limit(recentActivityLimit).Find(&swot)
	for _, sw := range swot {
		activity = append(activity, ActivityEntry{Type: "swot", ProjectID: sw.ProjectID, Query: sw.Query, CreatedAt: sw.CreatedAt})
	}

	var meetings []models.MeetingAnalysis
	s.db.Order("created_at DESC").Limit(recentActivityLimit).Find(&meetings)
	for _, m := range meetings {
		activity = append(activity, ActivityEntry{Type: "meeting_analysis", ProjectID: m.ProjectID, CreatedAt: m.CreatedAt})
	}

	sort.Slice(activity, func(i, j int) bool {
		return activity[i].CreatedAt.After(activity[j].CreatedAt)
	})
	if len(activity) > recentActivityLimit {
		activity = activity[:recentActivityLimit]
	}

	return &DashboardResponse{Stats: stats, RecentActivity: activity}, nil
}
