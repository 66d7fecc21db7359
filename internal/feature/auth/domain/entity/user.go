// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and profile metadata.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Firstname is the user's given name.
	Firstname string `gorm:"size:50;not null" json:"firstname"`

	// Lastname is the user's family name.
	Lastname string `gorm:"size:50;not null" json:"lastname"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:100;not null" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// This never stores the plaintext.
	Password string `gorm:"size:100;not null" json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}
