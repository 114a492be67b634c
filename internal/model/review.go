package model

import "time"

// Review is a customer review. Rating is 1-5.
type Review struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Image     *string   `json:"image"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
