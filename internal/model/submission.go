package model

import "time"

// Submission is one contact-form entry.
type Submission struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ContactNumber string    `json:"contact_number"`
	Service       string    `json:"service"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}
