package models

import "time"

// MaxAnalyticsEvents caps the event log; the oldest events are dropped first.
const MaxAnalyticsEvents = 100

type AnalyticsEvent struct {
	Action    string    `json:"action"`
	Category  string    `json:"category"`
	Label     string    `json:"label"`
	Timestamp time.Time `json:"timestamp"`
}

// AnalyticsLog is the document under portfolioAnalytics.
type AnalyticsLog struct {
	Events []AnalyticsEvent `json:"events"`
}

// AdminStats is the dashboard summary.
type AdminStats struct {
	TotalEducation int              `json:"total_education"`
	TotalSkills    int              `json:"total_skills"`
	TotalProjects  int              `json:"total_projects"`
	TotalMessages  int              `json:"total_messages"`
	TotalEvents    int              `json:"total_events"`
	PageViews      int              `json:"page_views"`
	UniqueVisitors int              `json:"unique_visitors"`
	LastUpdated    time.Time        `json:"last_updated"`
	RecentEvents   []AnalyticsEvent `json:"recent_events"`
}
