// Package model defines the catalog entities served by the API.
// Field names mirror the persisted column names exactly; the write
// path that owns this schema lives outside this service.
package model

import "time"

// User represents a stored user account. The password column is
// opaque stored data and is serialized like every other column.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
