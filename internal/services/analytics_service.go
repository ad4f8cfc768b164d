package services

import (
	"context"
	"time"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/repositories"

	"go.uber.org/zap"
)

// Analytics categories.
const (
	CategoryAdmin   = "admin"
	CategoryPublic  = "public"
	CategoryVisitor = "visitor"
)

const actionPageView = "page_view"

type AnalyticsService struct {
	events repositories.AnalyticsRepository
	log    *zap.SugaredLogger
	now    func() time.Time
}

func NewAnalyticsService(events repositories.AnalyticsRepository, log *zap.SugaredLogger) *AnalyticsService {
	return &AnalyticsService{events: events, log: log, now: time.Now}
}

// Track appends an event. Analytics never fails the action being tracked,
// so errors are only logged.
func (s *AnalyticsService) Track(ctx context.Context, action, category, label string) {
	err := s.events.Append(ctx, models.AnalyticsEvent{
		Action:    action,
		Category:  category,
		Label:     label,
		Timestamp: s.now().UTC(),
	})
	if err != nil {
		s.log.Warnw("failed to track event", "action", action, "error", err)
	}
}

// TrackPageView records a public page view by an anonymised visitor.
func (s *AnalyticsService) TrackPageView(ctx context.Context, visitor string) {
	s.Track(ctx, actionPageView, CategoryVisitor, visitor)
}

func (s *AnalyticsService) Events(ctx context.Context) ([]models.AnalyticsEvent, error) {
	return s.events.Events(ctx)
}
