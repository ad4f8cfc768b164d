package models

import "time"

// Project statuses.
const (
	ProjectCompleted  = "completed"
	ProjectInProgress = "in-progress"
	ProjectPlanned    = "planned"
)

type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	Date         string    `json:"date"`
	GitHub       string    `json:"github"`
	Demo         string    `json:"demo"`
	ImageURL     string    `json:"imageUrl"`
	IsCustom     bool      `json:"isCustom"`
	DateAdded    time.Time `json:"dateAdded"`
}

func (p Project) RecordID() int64 { return p.ID }
