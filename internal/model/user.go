package model

import "time"

// User represents a row in the users table.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterForm holds the registration form fields as submitted.
type RegisterForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginForm holds the login form fields as submitted.
type LoginForm struct {
	Email    string
	Password string
}

// SessionUser is the authenticated principal reconstructed from the
// session cookie on each request. It carries only what the dashboard
// greeting and the user lookup need.
type SessionUser struct {
	ID   int64
	Name string
}
