// Package models holds the client-side data types: the User identity
// returned by the auth API and the Session built around it.
package models

// User is the identity returned by the auth API. Apart from requiring an ID
// in auth responses, the client treats it as opaque.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is the body of a successful login or register call.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Session is the client-held proof of authentication. The zero value is the
// empty session.
type Session struct {
	Token string
	User  User
}

// IsEmpty reports whether s carries no credential.
func (s Session) IsEmpty() bool {
	return s.Token == ""
}
