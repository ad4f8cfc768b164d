package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/storage"
)

// PortfolioRepository owns the portfolioData singleton.
type PortfolioRepository interface {
	// Get reports false when nothing has been saved yet.
	Get(ctx context.Context) (*models.PortfolioData, bool, error)
	// Merge overlays the JSON fields of patch onto the stored document and
	// stamps lastUpdated. Fields not in patch are kept.
	Merge(ctx context.Context, patch any, now time.Time) error
}

type KVPortfolioRepository struct {
	gw *storage.Gateway
	mu sync.Mutex
}

func NewPortfolioRepository(gw *storage.Gateway) *KVPortfolioRepository {
	return &KVPortfolioRepository{gw: gw}
}

func (r *KVPortfolioRepository) Get(ctx context.Context) (*models.PortfolioData, bool, error) {
	var data models.PortfolioData
	found, err := r.gw.Read(ctx, storage.KeyPortfolio, &data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load portfolio data: %w", err)
	}
	return &data, found, nil
}

func (r *KVPortfolioRepository) Merge(ctx context.Context, patch any, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := map[string]json.RawMessage{}
	if _, err := r.gw.Read(ctx, storage.KeyPortfolio, &doc); err != nil {
		return fmt.Errorf("failed to load portfolio data: %w", err)
	}

	fields, err := toFields(patch)
	if err != nil {
		return err
	}
	for k, v := range fields {
		doc[k] = v
	}

	stamp, err := json.Marshal(now.UTC())
	if err != nil {
		return err
	}
	doc["lastUpdated"] = stamp

	if err := r.gw.Write(ctx, storage.KeyPortfolio, doc); err != nil {
		return fmt.Errorf("failed to save portfolio data: %w", err)
	}
	return nil
}

func toFields(patch any) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode portfolio patch: %w", err)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("portfolio patch must be an object: %w", err)
	}
	return fields, nil
}
