package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/storage"
)

// AnalyticsRepository is the capped event log under portfolioAnalytics.
type AnalyticsRepository interface {
	Append(ctx context.Context, event models.AnalyticsEvent) error
	// Events returns the log oldest first.
	Events(ctx context.Context) ([]models.AnalyticsEvent, error)
}

type KVAnalyticsRepository struct {
	gw *storage.Gateway
	mu sync.Mutex
}

func NewAnalyticsRepository(gw *storage.Gateway) *KVAnalyticsRepository {
	return &KVAnalyticsRepository{gw: gw}
}

func (r *KVAnalyticsRepository) Append(ctx context.Context, event models.AnalyticsEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var log models.AnalyticsLog
	if _, err := r.gw.Read(ctx, storage.KeyAnalytics, &log); err != nil {
		return fmt.Errorf("failed to load analytics: %w", err)
	}

	log.Events = append(log.Events, event)
	if n := len(log.Events); n > models.MaxAnalyticsEvents {
		log.Events = log.Events[n-models.MaxAnalyticsEvents:]
	}

	if err := r.gw.Write(ctx, storage.KeyAnalytics, log); err != nil {
		return fmt.Errorf("failed to save analytics: %w", err)
	}
	return nil
}

func (r *KVAnalyticsRepository) Events(ctx context.Context) ([]models.AnalyticsEvent, error) {
	var log models.AnalyticsLog
	if _, err := r.gw.Read(ctx, storage.KeyAnalytics, &log); err != nil {
		return nil, fmt.Errorf("failed to load analytics: %w", err)
	}
	if log.Events == nil {
		log.Events = []models.AnalyticsEvent{}
	}
	return log.Events, nil
}
