package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/repositories"
)

// SkillCategories lists the accepted categories in display order.
var SkillCategories = []string{
	"programming", "web-development", "data-science", "ai-ml",
	"databases", "tools", "soft-skills", "other",
}

type SkillInput struct {
	ID          int64  `form:"id"`
	Name        string `form:"skillName" validate:"required"`
	Category    string `form:"skillCategory" validate:"required,oneof=programming web-development data-science ai-ml databases tools soft-skills other"`
	Level       int    `form:"skillLevel" validate:"min=0,max=100"`
	Status      string `form:"skillStatus" validate:"required,oneof=completed learning planned"`
	Description string `form:"skillDescription"`
}

// NewSkillInput is an empty form with the default level.
func NewSkillInput() SkillInput {
	return SkillInput{Level: models.DefaultSkillLevel}
}

var errDuplicateSkill = errors.New("duplicate skill")

type SkillService struct {
	repo      repositories.SkillRepository
	analytics *AnalyticsService
	now       func() time.Time
}

func NewSkillService(repo repositories.SkillRepository, analytics *AnalyticsService) *SkillService {
	return &SkillService{repo: repo, analytics: analytics, now: time.Now}
}

func (s *SkillService) List(ctx context.Context) ([]models.Skill, error) {
	return s.repo.List(ctx)
}

// Submit adds or edits a skill. Names are unique per category, ignoring case.
func (s *SkillService) Submit(ctx context.Context, in SkillInput) (notify.Notification, error) {
	trim(&in.Name, &in.Category, &in.Status, &in.Description)
	if err := validate.Struct(in); err != nil {
		return validationNotice(err, "Please fill in all required fields"), nil
	}

	now := s.now()
	skill := models.Skill{
		ID:          in.ID,
		Name:        in.Name,
		Category:    in.Category,
		Level:       in.Level,
		Status:      in.Status,
		Description: in.Description,
	}

	err := s.repo.Mutate(ctx, func(items []models.Skill) ([]models.Skill, error) {
		for _, existing := range items {
			if existing.ID != in.ID && existing.Category == skill.Category &&
				strings.EqualFold(existing.Name, skill.Name) {
				return nil, errDuplicateSkill
			}
		}

		if in.ID == 0 {
			skill.ID = recordIDs.next(now)
			skill.DateAdded = now.UTC()
			return append(items, skill), nil
		}
		for i := range items {
			if items[i].ID == in.ID {
				skill.DateAdded = items[i].DateAdded
				items[i] = skill
				return items, nil
			}
		}
		return nil, fmt.Errorf("skill with ID %d: %w", in.ID, repositories.ErrNotFound)
	})

	switch {
	case errors.Is(err, errDuplicateSkill):
		return notify.New(notify.Warning, "This skill already exists in the same category"), nil
	case isNotFound(err):
		return notify.New(notify.Warning, "Skill no longer exists"), nil
	case err != nil:
		return notify.Notification{}, err
	}

	if in.ID != 0 {
		s.analytics.Track(ctx, "skill_updated", CategoryAdmin, skill.Category)
		return notify.New(notify.Success, "Skill updated successfully!"), nil
	}
	s.analytics.Track(ctx, "skill_added", CategoryAdmin, skill.Category)
	return notify.New(notify.Success, "Skill added successfully!"), nil
}

func (s *SkillService) Edit(ctx context.Context, id int64) (SkillInput, notify.Notification, error) {
	sk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return SkillInput{}, notify.Notification{}, err
	}
	in := SkillInput{
		ID:          sk.ID,
		Name:        sk.Name,
		Category:    sk.Category,
		Level:       sk.Level,
		Status:      sk.Status,
		Description: sk.Description,
	}
	return in, notify.New(notify.Info, "Skill loaded for editing. Update the form and submit."), nil
}

func (s *SkillService) Delete(ctx context.Context, id int64) (notify.Notification, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return notify.New(notify.Warning, "Skill no longer exists"), nil
		}
		return notify.Notification{}, err
	}
	s.analytics.Track(ctx, "skill_deleted", CategoryAdmin, "")
	return notify.New(notify.Success, "Skill deleted successfully!"), nil
}
