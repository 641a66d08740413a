// Package models defines the client-side data types exchanged with the
// SecureNote backend: users, sessions, note drafts and revealed notes.
package models

// User is the authenticated account as returned by the backend.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the current authentication state. An empty Token means no
// session. User may be nil for a short while after a restore that only
// found a token; the dashboard fetches the profile to complete it.
type Session struct {
	Token string
	User  *User
}

// Authenticated reports whether a bearer token is present.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
