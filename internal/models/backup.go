package models

import "encoding/json"

// Backup is the full export document. Fields hold raw JSON so an import
// restores exactly what was exported, without reshaping records.
type Backup struct {
	Portfolio  json.RawMessage `json:"portfolio,omitempty"`
	Education  json.RawMessage `json:"education,omitempty"`
	Skills     json.RawMessage `json:"skills,omitempty"`
	Projects   json.RawMessage `json:"projects,omitempty"`
	ExportDate string          `json:"exportDate,omitempty"`
}
