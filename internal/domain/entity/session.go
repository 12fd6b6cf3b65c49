package entity

import "time"

// Session is the client-side state that survives between runs
type Session struct {
	ActiveBoardID string
	UserEmail     string
	UpdatedAt     time.Time
}

// Credentials identify a user against the backend
type Credentials struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is the backend's answer to a login or signup attempt
type AuthResult struct {
	Success bool
	Message string
}
