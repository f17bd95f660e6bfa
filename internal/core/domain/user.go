package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound             = errors.New("user not found")
	ErrUserExists               = errors.New("user already exists")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrCurrentPasswordRequired  = errors.New("current password is required to change password")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
	ErrAlreadyVerified          = errors.New("email is already verified")
	ErrInvalidVerificationLink  = errors.New("invalid verification link")
)

// User models an account holder. Email is unique and doubles as the login
// identifier; EmailVerified only ever transitions false→true.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	PasswordHash     string    `json:"-"`
	EmailVerified    bool      `json:"isEmailVerified"`
	TwoFactorEnabled bool      `json:"isTwoFactorEnabled"`
	ProfilePicture   string    `json:"profilePicture,omitempty"`
	Active           bool      `json:"-"`
	Staff            bool      `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
