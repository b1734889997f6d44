package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	UserID    int64     `json:"userId" db:"user_id"`        // Primary key
	Username  string    `json:"username" db:"username"`     // Unique username
	Password  string    `json:"-" db:"password"`            // Hashed password, never serialized
	CreatedAt time.Time `json:"createdAt" db:"created_at"`  // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`  // Last update timestamp
}
