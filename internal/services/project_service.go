package services

import (
	"context"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/repositories"
)

// ProjectCategories lists the accepted categories in display order.
var ProjectCategories = []string{"web", "ai-ml", "data-science", "mobile", "desktop", "other"}

type ProjectInput struct {
	ID           int64  `form:"id"`
	Title        string `form:"projectTitle" validate:"required"`
	Description  string `form:"projectDescription" validate:"required"`
	Technologies string `form:"projectTech"`
	Category     string `form:"projectCategory" validate:"required,oneof=web ai-ml data-science mobile desktop other"`
	Status       string `form:"projectStatus" validate:"required,oneof=completed in-progress planned"`
	Date         string `form:"projectDate"`
	GitHub       string `form:"projectGithub"`
	Demo         string `form:"projectDemo"`
	ImageURL     string `form:"projectImage"`
}

// ParseTechnologies splits a comma separated list, dropping blank entries.
func ParseTechnologies(raw string) []string {
	var techs []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			techs = append(techs, t)
		}
	}
	return techs
}

type ProjectService struct {
	repo      repositories.ProjectRepository
	analytics *AnalyticsService
	now       func() time.Time
}

func NewProjectService(repo repositories.ProjectRepository, analytics *AnalyticsService) *ProjectService {
	return &ProjectService{repo: repo, analytics: analytics, now: time.Now}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Submit(ctx context.Context, in ProjectInput) (notify.Notification, error) {
	trim(&in.Title, &in.Description, &in.Category, &in.Status, &in.Date, &in.GitHub, &in.Demo, &in.ImageURL)
	if err := validate.Struct(in); err != nil {
		return validationNotice(err, "Please fill in all required fields"), nil
	}
	techs := ParseTechnologies(in.Technologies)
	if len(techs) == 0 {
		return notify.New(notify.Error, "Please add at least one technology"), nil
	}

	project := models.Project{
		Title:        in.Title,
		Description:  in.Description,
		Technologies: techs,
		Category:     in.Category,
		Status:       in.Status,
		Date:         in.Date,
		GitHub:       in.GitHub,
		Demo:         in.Demo,
		ImageURL:     in.ImageURL,
		IsCustom:     true,
	}

	if in.ID != 0 {
		existing, err := s.repo.GetByID(ctx, in.ID)
		if err == nil {
			project.ID = existing.ID
			project.DateAdded = existing.DateAdded
			err = s.repo.Update(ctx, project)
		}
		if isNotFound(err) {
			return notify.New(notify.Warning, "Project no longer exists"), nil
		}
		if err != nil {
			return notify.Notification{}, err
		}
		s.analytics.Track(ctx, "project_updated", CategoryAdmin, project.Category)
		return notify.New(notify.Success, "Project updated successfully!"), nil
	}

	now := s.now()
	project.ID = recordIDs.next(now)
	project.DateAdded = now.UTC()
	if err := s.repo.Create(ctx, project); err != nil {
		return notify.Notification{}, err
	}
	s.analytics.Track(ctx, "project_added", CategoryAdmin, project.Category)
	return notify.New(notify.Success, "Project added successfully!"), nil
}

func (s *ProjectService) Edit(ctx context.Context, id int64) (ProjectInput, notify.Notification, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ProjectInput{}, notify.Notification{}, err
	}
	in := ProjectInput{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: strings.Join(p.Technologies, ", "),
		Category:     p.Category,
		Status:       p.Status,
		Date:         p.Date,
		GitHub:       p.GitHub,
		Demo:         p.Demo,
		ImageURL:     p.ImageURL,
	}
	return in, notify.New(notify.Info, "Project loaded for editing. Update the form and submit."), nil
}

func (s *ProjectService) Delete(ctx context.Context, id int64) (notify.Notification, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return notify.New(notify.Warning, "Project no longer exists"), nil
		}
		return notify.Notification{}, err
	}
	s.analytics.Track(ctx, "project_deleted", CategoryAdmin, "")
	return notify.New(notify.Success, "Project deleted successfully!"), nil
}
