package views

import (
	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/notify"
)

// PublicView is the data for index.html.
type PublicView struct {
	Page         PublicPage
	Notice       *notify.Notification
	DismissAfter int
}

func NewPublicView(page PublicPage, notice *notify.Notification) PublicView {
	return PublicView{Page: page, Notice: notice, DismissAfter: int(notify.DismissAfter.Milliseconds())}
}

// ErrorView is the data for error.html.
type ErrorView struct {
	Status  int
	Message string
	Back    string
}

// ContactLink is a non-empty contact channel shown on the public page.
type ContactLink struct {
	Name string
	Icon string
	URL  string
}

// SkillGroup is one category of skills on the public page.
type SkillGroup struct {
	Category string
	Title    string
	Skills   []PublicSkill
}

type PublicSkill struct {
	models.Skill
	Icon string
}

type PublicPage struct {
	Profile     models.Profile
	Contact     models.ContactInfo
	Links       []ContactLink
	Education   []models.Education
	SkillGroups []SkillGroup
	Projects    []models.Project
	Appearance  models.AppearanceSettings
}

// PublicContent is everything the public page is built from.
type PublicContent struct {
	Data       *models.PortfolioData
	Education  []models.Education
	Skills     []models.Skill
	Projects   []models.Project
	Appearance models.AppearanceSettings
}

// NewPublicPage builds the public page. Empty profile and contact fields
// fall back to defaults; only admin-added education is listed.
func NewPublicPage(c PublicContent, defaults models.PortfolioData) PublicPage {
	data := defaults
	if c.Data != nil {
		overlay(&data.Name, c.Data.Name)
		overlay(&data.Title, c.Data.Title)
		overlay(&data.Location, c.Data.Location)
		overlay(&data.About, c.Data.About)
		overlay(&data.ProfileImage, c.Data.ProfileImage)
		overlay(&data.Email, c.Data.Email)
		overlay(&data.Phone, c.Data.Phone)
		overlay(&data.Address, c.Data.Address)
		overlay(&data.LinkedIn, c.Data.LinkedIn)
		overlay(&data.GitHub, c.Data.GitHub)
		overlay(&data.Twitter, c.Data.Twitter)
		overlay(&data.Instagram, c.Data.Instagram)
		overlay(&data.Website, c.Data.Website)
		overlay(&data.ResumeURL, c.Data.ResumeURL)
	}
	if data.ProfileImage == "" {
		data.ProfileImage = models.DefaultProfileImage
	}

	page := PublicPage{
		Profile:     data.Profile,
		Contact:     data.ContactInfo,
		Links:       contactLinks(data.ContactInfo),
		SkillGroups: groupSkills(c.Skills),
		Projects:    c.Projects,
		Appearance:  c.Appearance,
	}
	for _, e := range c.Education {
		if e.IsCustom {
			page.Education = append(page.Education, e)
		}
	}
	return page
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func usableLink(url string) bool {
	return url != "" && url != "#"
}

func contactLinks(c models.ContactInfo) []ContactLink {
	candidates := []ContactLink{
		{"LinkedIn", "fab fa-linkedin", c.LinkedIn},
		{"GitHub", "fab fa-github", c.GitHub},
		{"Twitter", "fab fa-twitter", c.Twitter},
		{"Instagram", "fab fa-instagram", c.Instagram},
		{"Website", "fas fa-globe", c.Website},
	}
	if c.Email != "" {
		candidates = append(candidates, ContactLink{"Email", "fas fa-envelope", "mailto:" + c.Email})
	}
	var links []ContactLink
	for _, l := range candidates {
		if usableLink(l.URL) {
			links = append(links, l)
		}
	}
	return links
}

// SkillIcon marks a skill's status.
func SkillIcon(status string) string {
	switch status {
	case models.SkillCompleted:
		return "✅"
	case models.SkillLearning:
		return "🔄"
	default:
		return "📋"
	}
}

// groupSkills groups by category, ordering groups by first appearance.
func groupSkills(skills []models.Skill) []SkillGroup {
	var groups []SkillGroup
	index := map[string]int{}
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category, Title: CategoryTitle(s.Category)})
		}
		groups[i].Skills = append(groups[i].Skills, PublicSkill{Skill: s, Icon: SkillIcon(s.Status)})
	}
	return groups
}
