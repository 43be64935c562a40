package entities

import "time"

// Credential is the auth view of a user row. PasswordHash never leaves the
// application layer.
type Credential struct {
	UserID       uint
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
