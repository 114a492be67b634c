package model

import "time"

// Image represents a gallery image owned by a user.
// Orientation is a single-character code ("l", "p", ...).
type Image struct {
	ID          int64     `json:"id"`
	ImageURL    string    `json:"image_url"`
	Orientation *string   `json:"orientation"`
	UserID      *int64    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
