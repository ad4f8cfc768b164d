package services

import (
	"context"
	"time"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/repositories"
)

// EducationInput is the education form. A non-zero ID edits that record.
type EducationInput struct {
	ID             int64  `form:"id"`
	Degree         string `form:"degree" validate:"required"`
	Institution    string `form:"institution"`
	Percentage     string `form:"percentage"`
	Year           string `form:"year"`
	Status         string `form:"status" validate:"required,oneof=completed pursuing planned"`
	Specialization string `form:"specialization"`
}

type EducationService struct {
	repo      repositories.EducationRepository
	analytics *AnalyticsService
	now       func() time.Time
}

func NewEducationService(repo repositories.EducationRepository, analytics *AnalyticsService) *EducationService {
	return &EducationService{repo: repo, analytics: analytics, now: time.Now}
}

func (s *EducationService) List(ctx context.Context) ([]models.Education, error) {
	return s.repo.List(ctx)
}

// Submit adds a record, or replaces the one named by in.ID in place.
// Identical submissions are not deduplicated.
func (s *EducationService) Submit(ctx context.Context, in EducationInput) (notify.Notification, error) {
	trim(&in.Degree, &in.Institution, &in.Percentage, &in.Year, &in.Status, &in.Specialization)
	if err := validate.Struct(in); err != nil {
		return validationNotice(err, "Please fill in degree and status fields"), nil
	}

	record := models.Education{
		Degree:         in.Degree,
		Institution:    in.Institution,
		Percentage:     in.Percentage,
		Year:           in.Year,
		Status:         in.Status,
		Specialization: in.Specialization,
		IsCustom:       true,
	}

	if in.ID != 0 {
		existing, err := s.repo.GetByID(ctx, in.ID)
		if err == nil {
			record.ID = existing.ID
			record.ImageURL = existing.ImageURL
			record.DateAdded = existing.DateAdded
			err = s.repo.Update(ctx, record)
		}
		if isNotFound(err) {
			return notify.New(notify.Warning, "Education record no longer exists"), nil
		}
		if err != nil {
			return notify.Notification{}, err
		}
		s.analytics.Track(ctx, "education_updated", CategoryAdmin, "")
		return notify.New(notify.Success, "Education record updated successfully!"), nil
	}

	now := s.now()
	record.ID = recordIDs.next(now)
	record.DateAdded = now.UTC()
	if err := s.repo.Create(ctx, record); err != nil {
		return notify.Notification{}, err
	}
	s.analytics.Track(ctx, "education_added", CategoryAdmin, "")
	return notify.New(notify.Success, "Education record added successfully!"), nil
}

// Edit loads a record into the form. The record stays stored until the
// form is resubmitted.
func (s *EducationService) Edit(ctx context.Context, id int64) (EducationInput, notify.Notification, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return EducationInput{}, notify.Notification{}, err
	}
	in := EducationInput{
		ID:             e.ID,
		Degree:         e.Degree,
		Institution:    e.Institution,
		Percentage:     e.Percentage,
		Year:           e.Year,
		Status:         e.Status,
		Specialization: e.Specialization,
	}
	return in, notify.New(notify.Info, "Education loaded for editing. Update the form and submit."), nil
}

func (s *EducationService) Delete(ctx context.Context, id int64) (notify.Notification, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return notify.New(notify.Warning, "Education record no longer exists"), nil
		}
		return notify.Notification{}, err
	}
	s.analytics.Track(ctx, "education_deleted", CategoryAdmin, "")
	return notify.New(notify.Success, "Education record deleted successfully!"), nil
}
