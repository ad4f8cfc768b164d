package models

import "time"

// Education statuses.
const (
	EducationCompleted = "completed"
	EducationPursuing  = "pursuing"
	EducationPlanned   = "planned"
)

type Education struct {
	ID             int64     `json:"id"`
	Degree         string    `json:"degree"`
	Institution    string    `json:"institution"`
	Percentage     string    `json:"percentage"`
	Year           string    `json:"year"`
	Status         string    `json:"status"`
	Specialization string    `json:"specialization"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	IsCustom       bool      `json:"isCustom"`
	DateAdded      time.Time `json:"dateAdded"`
}

func (e Education) RecordID() int64 { return e.ID }
