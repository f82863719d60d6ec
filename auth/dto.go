// Package auth provides registration, login and session management.
// This file, `dto.go` (Data Transfer Object), defines structures used for
// carrying input into the service operations. The form layer validates
// shape before calling; the service trusts its callers for that.
package auth

// RegisterRequest represents the registration input.
// The password is carried to mirror the real flow but is never stored nor
// verified anywhere in the system.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login input.
// Lookup is by exact, case-sensitive email match; the password is ignored.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
