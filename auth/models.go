// Package auth is responsible for the user registry and the active session.
// This file, `models.go`, defines the data structures representing entities
// within the authentication domain.
package auth

// User represents a registered user.
// Identity is the generated `ID`; `Email` is the lookup key for login.
// A user record is immutable after registration: there are no edit or
// delete flows in this system. Note there is deliberately no password
// field anywhere: credentials are accepted at the boundary and discarded,
// which is a known non-goal of this application, not an oversight.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	// Name is optional display information; `omitempty` drops it from the
	// persisted form when empty.
	Name string `json:"name,omitempty"`
}
