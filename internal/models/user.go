package models

import "time"

// User represents a registered account. The password is stored exactly as
// given at signup and compared as a plain string on login. This is
// demo-grade auth, not a pattern to copy into anything real.
// The field is excluded from JSON so it never appears in API responses.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
