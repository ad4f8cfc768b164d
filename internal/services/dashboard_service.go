package services

import (
	"context"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/repositories"
)

const recentEventLimit = 10

// DashboardService gathers the counts shown on the admin dashboard.
type DashboardService struct {
	analytics *AnalyticsService
	portfolio repositories.PortfolioRepository
	education repositories.EducationRepository
	skills    repositories.SkillRepository
	projects  repositories.ProjectRepository
	messages  repositories.MessageRepository
}

func NewDashboardService(
	analytics *AnalyticsService,
	portfolio repositories.PortfolioRepository,
	education repositories.EducationRepository,
	skills repositories.SkillRepository,
	projects repositories.ProjectRepository,
	messages repositories.MessageRepository,
) *DashboardService {
	return &DashboardService{
		analytics: analytics,
		portfolio: portfolio,
		education: education,
		skills:    skills,
		projects:  projects,
		messages:  messages,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*models.AdminStats, error) {
	stats := &models.AdminStats{}

	education, err := s.education.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalEducation = len(education)

	skills, err := s.skills.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalSkills = len(skills)

	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalProjects = len(projects)

	messages, err := s.messages.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalMessages = len(messages)

	data, _, err := s.portfolio.Get(ctx)
	if err != nil {
		return nil, err
	}
	stats.LastUpdated = data.LastUpdated

	events, err := s.analytics.Events(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalEvents = len(events)

	visitors := make(map[string]struct{})
	for _, e := range events {
		if e.Action == actionPageView {
			stats.PageViews++
			visitors[e.Label] = struct{}{}
		}
	}
	stats.UniqueVisitors = len(visitors)

	stats.RecentEvents = make([]models.AnalyticsEvent, 0, recentEventLimit)
	for i := len(events) - 1; i >= 0 && len(stats.RecentEvents) < recentEventLimit; i-- {
		stats.RecentEvents = append(stats.RecentEvents, events[i])
	}

	return stats, nil
}
