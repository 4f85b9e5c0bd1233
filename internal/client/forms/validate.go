package forms

import (
	"errors"
	"strings"
)

// Validation errors; their text is shown to the user as is.
var (
	ErrMissingFields    = errors.New("Please fill in all fields")
	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrPasswordTooWeak  = errors.New("Password is too weak")
	ErrTermsNotAccepted = errors.New("You must agree to the terms and conditions")
)

// Messages shown when the remote call itself fails.
const (
	LoginFailedMessage  = "Invalid email or password"
	SignupFailedMessage = "Failed to create account"
)

type LoginForm struct {
	Email    string
	Password string
}

// Validate only checks presence; credentials are judged by the server.
func (f LoginForm) Validate() error {
	if blank(f.Email) || f.Password == "" {
		return ErrMissingFields
	}
	return nil
}

type SignupForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	AcceptTerms     bool
}

// Validate runs the signup checks in order and returns the first failure:
// missing fields, confirmation mismatch, weak password, terms not accepted.
func (f SignupForm) Validate() error {
	if blank(f.Name) || blank(f.Email) || f.Password == "" || f.ConfirmPassword == "" {
		return ErrMissingFields
	}
	if f.Password != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if !Acceptable(Strength(f.Password).Score()) {
		return ErrPasswordTooWeak
	}
	if !f.AcceptTerms {
		return ErrTermsNotAccepted
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
