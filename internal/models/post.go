package models

import "time"

// Post is a blog entry. Timestamps are set by the application in UTC;
// UpdatedAt equals CreatedAt until the first update.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
