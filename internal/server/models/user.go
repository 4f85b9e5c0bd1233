package models

import "time"

// User is an account as stored by the server. PasswordHash never leaves the
// server; PublicUser is what goes over the wire.
type User struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// PublicUser is the {id, name, email} shape clients receive.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// AuthResult is the body of successful register and login responses.
type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
