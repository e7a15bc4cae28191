package models

import "time"

// User represents an account that can own lists and collaborate on others.
type User struct {
	// UserID is the stable identifier of the user (UUID string).
	// It is the "actor id" stamped on every list and item the user authors.
	UserID string `json:"user_id"`

	// Email is the unique sign-in identifier.
	// Invitees are looked up by it case-insensitively.
	Email string `json:"email"`

	// Password is the plaintext password received from the client.
	// It is only populated on register/login requests and never stored.
	Password string `json:"password,omitempty"`

	// PasswordHash stores the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
