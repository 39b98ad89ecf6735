package domain

import "time"

// Submission represents one validated contact-form entry.
type Submission struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
