package views

import (
	"fmt"

	"github.com/Zachkp/portfolio/internal/models"
)

// Item links a record to its admin actions.
type Item[T any] struct {
	Record    T
	EditURL   string
	DeleteURL string
}

// List is a rendered collection. Empty holds the placeholder text when
// there are no items.
type List[T any] struct {
	Items []Item[T]
	Empty string
}

func newList[T models.Record](section string, records []T, empty string) List[T] {
	if len(records) == 0 {
		return List[T]{Empty: empty}
	}
	items := make([]Item[T], 0, len(records))
	for _, r := range records {
		items = append(items, Item[T]{
			Record:    r,
			EditURL:   fmt.Sprintf("/admin/%s/%d/edit", section, r.RecordID()),
			DeleteURL: fmt.Sprintf("/admin/%s/%d/delete", section, r.RecordID()),
		})
	}
	return List[T]{Items: items}
}

func EducationList(records []models.Education) List[models.Education] {
	return newList("education", records, "No education records added yet.")
}

// SkillList is the skills list narrowed to one category.
type SkillList struct {
	List[models.Skill]
	Filter     string
	Categories []string
}

// SkillsList keeps only skills in category filter; "" or "all" keeps all.
func SkillsList(records []models.Skill, filter string, categories []string) SkillList {
	if filter == "all" {
		filter = ""
	}
	shown := records
	if filter != "" {
		shown = make([]models.Skill, 0, len(records))
		for _, s := range records {
			if s.Category == filter {
				shown = append(shown, s)
			}
		}
	}
	return SkillList{
		List:       newList("skills", shown, "No skills added yet."),
		Filter:     filter,
		Categories: categories,
	}
}

type ProjectStats struct {
	Total      int
	Completed  int
	InProgress int
}

type ProjectList struct {
	List[models.Project]
	Stats ProjectStats
}

func ProjectsList(records []models.Project) ProjectList {
	stats := ProjectStats{Total: len(records)}
	for _, p := range records {
		switch p.Status {
		case models.ProjectCompleted:
			stats.Completed++
		case models.ProjectInProgress:
			stats.InProgress++
		}
	}
	return ProjectList{
		List:  newList("projects", records, "No projects added yet."),
		Stats: stats,
	}
}

// MessageItem is an inbox entry with its delete action.
type MessageItem struct {
	models.ContactMessage
	DeleteURL string
	Received  string
}

type MessageList struct {
	Items []MessageItem
	Empty string
}

func MessagesList(msgs []models.ContactMessage) MessageList {
	if len(msgs) == 0 {
		return MessageList{Empty: "No messages yet."}
	}
	items := make([]MessageItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, MessageItem{
			ContactMessage: m,
			DeleteURL:      "/admin/messages/" + m.ID + "/delete",
			Received:       m.Timestamp.Format("Jan 2, 2006 15:04"),
		})
	}
	return MessageList{Items: items}
}
