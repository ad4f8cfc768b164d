package views

import (
	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/services"
)

// Admin sections, in navigation order.
const (
	SectionDashboard  = "dashboard"
	SectionProfile    = "profile"
	SectionContact    = "contact"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
	SectionMessages   = "messages"
	SectionAppearance = "appearance"
	SectionData       = "data"
)

// AdminPage is the data for admin.html. Section picks the panel and Body
// is that panel's model.
type AdminPage struct {
	Section      string
	Notice       *notify.Notification
	DismissAfter int
	Body         any
}

func NewAdminPage(section string, notice *notify.Notification, body any) AdminPage {
	return AdminPage{
		Section:      section,
		Notice:       notice,
		DismissAfter: int(notify.DismissAfter.Milliseconds()),
		Body:         body,
	}
}

type ProfilePanel struct {
	Form  services.ProfileInput
	Image string
}

func NewProfilePanel(data *models.PortfolioData) ProfilePanel {
	image := data.ProfileImage
	if image == "" {
		image = models.DefaultProfileImage
	}
	return ProfilePanel{Form: services.ProfileForm(data), Image: image}
}

type EducationPanel struct {
	Form     services.EducationInput
	List     List[models.Education]
	Statuses []string
}

func NewEducationPanel(form services.EducationInput, records []models.Education) EducationPanel {
	return EducationPanel{
		Form:     form,
		List:     EducationList(records),
		Statuses: []string{models.EducationCompleted, models.EducationPursuing, models.EducationPlanned},
	}
}

type SkillPanel struct {
	Form     services.SkillInput
	List     SkillList
	Statuses []string
}

func NewSkillPanel(form services.SkillInput, records []models.Skill, filter string) SkillPanel {
	return SkillPanel{
		Form:     form,
		List:     SkillsList(records, filter, services.SkillCategories),
		Statuses: []string{models.SkillCompleted, models.SkillLearning, models.SkillPlanned},
	}
}

type ProjectPanel struct {
	Form       services.ProjectInput
	List       ProjectList
	Categories []string
	Statuses   []string
}

func NewProjectPanel(form services.ProjectInput, records []models.Project) ProjectPanel {
	return ProjectPanel{
		Form:       form,
		List:       ProjectsList(records),
		Categories: services.ProjectCategories,
		Statuses:   []string{models.ProjectCompleted, models.ProjectInProgress, models.ProjectPlanned},
	}
}

type AppearancePanel struct {
	Settings models.AppearanceSettings
	Themes   []string
	Speeds   []string
}

func NewAppearancePanel(settings models.AppearanceSettings) AppearancePanel {
	return AppearancePanel{
		Settings: settings,
		Themes:   services.Themes,
		Speeds:   []string{"slow", "normal", "fast"},
	}
}

// DataPanel lists the scopes that can be exported or cleared one by one.
type DataPanel struct {
	Scopes []string
}

func NewDataPanel() DataPanel {
	return DataPanel{Scopes: []string{services.ScopeEducation, services.ScopeSkills, services.ScopeProjects, services.ScopePortfolio}}
}
