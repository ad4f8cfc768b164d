package services

import (
	"context"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/repositories"
)

// Themes lists the selectable colour themes.
var Themes = []string{"default", "dark", "ocean", "sunset"}

type AppearanceInput struct {
	Theme      string `form:"theme" validate:"required,oneof=default dark ocean sunset"`
	Animations bool   `form:"enableAnimations"`
	Speed      string `form:"animationSpeed" validate:"required,oneof=slow normal fast"`
}

type AppearanceService struct {
	repo      repositories.AppearanceRepository
	analytics *AnalyticsService
}

func NewAppearanceService(repo repositories.AppearanceRepository, analytics *AnalyticsService) *AppearanceService {
	return &AppearanceService{repo: repo, analytics: analytics}
}

func (s *AppearanceService) Get(ctx context.Context) (models.AppearanceSettings, error) {
	return s.repo.Get(ctx)
}

func (s *AppearanceService) Apply(ctx context.Context, in AppearanceInput) (notify.Notification, error) {
	trim(&in.Theme, &in.Speed)
	if err := validate.Struct(in); err != nil {
		return validationNotice(err, "Please choose a theme and animation speed"), nil
	}
	settings := models.AppearanceSettings{
		Theme:      in.Theme,
		Animations: in.Animations,
		Speed:      in.Speed,
	}
	if err := s.repo.Save(ctx, settings); err != nil {
		return notify.Notification{}, err
	}
	s.analytics.Track(ctx, "appearance_updated", CategoryAdmin, in.Theme)
	return notify.New(notify.Success, "Appearance settings applied!"), nil
}
