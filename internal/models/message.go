package models

import "time"

// MaxContactMessages caps the stored inbox; newest messages are kept.
const MaxContactMessages = 50

// ContactMessage is a public contact-form submission.
type ContactMessage struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
