package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password.
type User struct {
	ID        string
	Email     string
	Password  string
	Name      string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
