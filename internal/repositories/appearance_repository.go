package repositories

import (
	"context"
	"fmt"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/storage"
)

type AppearanceRepository interface {
	Get(ctx context.Context) (models.AppearanceSettings, error)
	Save(ctx context.Context, settings models.AppearanceSettings) error
}

type KVAppearanceRepository struct {
	gw *storage.Gateway
}

func NewAppearanceRepository(gw *storage.Gateway) *KVAppearanceRepository {
	return &KVAppearanceRepository{gw: gw}
}

// Get returns models.DefaultAppearance until settings are saved.
func (r *KVAppearanceRepository) Get(ctx context.Context) (models.AppearanceSettings, error) {
	settings := models.DefaultAppearance
	if _, err := r.gw.Read(ctx, storage.KeyAppearance, &settings); err != nil {
		return models.DefaultAppearance, fmt.Errorf("failed to load appearance settings: %w", err)
	}
	return settings, nil
}

func (r *KVAppearanceRepository) Save(ctx context.Context, settings models.AppearanceSettings) error {
	if err := r.gw.Write(ctx, storage.KeyAppearance, settings); err != nil {
		return fmt.Errorf("failed to save appearance settings: %w", err)
	}
	return nil
}
