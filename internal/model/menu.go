package model

import "time"

// MenuCategory groups menu items under a unique slug.
type MenuCategory struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MenuItem is a single dish on the menu. Rating is 0-5 when present.
type MenuItem struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	Currency   string    `json:"currency"`
	Rating     *int      `json:"rating"`
	Text       *string   `json:"text"`
	ImageURL   *string   `json:"image_url"`
	Badge      *string   `json:"badge"`
	CategoryID *int64    `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
