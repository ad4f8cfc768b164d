package models

import "time"

// Skill statuses.
const (
	SkillCompleted = "completed"
	SkillLearning  = "learning"
	SkillPlanned   = "planned"
)

// DefaultSkillLevel is the level a fresh skill form starts at.
const DefaultSkillLevel = 50

type Skill struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Level       int       `json:"level"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	DateAdded   time.Time `json:"dateAdded"`
}

func (s Skill) RecordID() int64 { return s.ID }
