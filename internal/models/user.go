package models

import "time"

// User is a single row of the credential store.
type User struct {
	ID               int        `json:"id"`
	FullName         string     `json:"fullname"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"` // don’t expose hash
	ResetToken       *string    `json:"-"` // set only while a reset request is outstanding
	ResetTokenExpiry *time.Time `json:"-"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
}
