package domain

import "time"

// User models a registered account. PasswordHash never leaves the service
// layer: it is excluded from JSON and stripped from profile reads.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Public returns a copy safe to expose to any caller.
func (u *User) Public() *User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
