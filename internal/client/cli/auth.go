package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/client/forms"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// Login prompts for email and password, validates them locally and, only if
// both are present, asks the AuthService to sign in.
//
// A failed sign-in prints the generic "Invalid email or password" and returns
// the service error; the session is left as it was.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}

	form := forms.LoginForm{Email: email, Password: string(password)}
	if err := form.Validate(); err != nil {
		printlnFn(err.Error())
		return err
	}

	user, err := a.auth.Login(ctx, strings.TrimSpace(form.Email), form.Password)
	if err != nil {
		a.log.Debug(ctx, "login command failed", "error", err)
		printlnFn(forms.LoginFailedMessage)
		return err
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", displayName(user.Name, user.Email)))
	return nil
}

// Signup collects name, email, password (showing the strength meter),
// confirmation and terms consent. The whole form is validated before the
// AuthService is called, so a weak or mismatched password never leaves the
// machine.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}

	printlnFn(renderStrength(string(password)))

	confirm, err := getPassword(a.out, "Confirm password: ")
	if err != nil {
		return err
	}

	accepted, err := getConfirmation(a.reader, "Do you agree to the terms and conditions?", a.out)
	if err != nil {
		return err
	}

	form := forms.SignupForm{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		AcceptTerms:     accepted,
	}
	if err := form.Validate(); err != nil {
		printlnFn(err.Error())
		return err
	}

	user, err := a.auth.Signup(ctx, strings.TrimSpace(form.Name), strings.TrimSpace(form.Email), form.Password)
	if err != nil {
		a.log.Debug(ctx, "signup command failed", "error", err)
		printlnFn(forms.SignupFailedMessage)
		return err
	}

	printlnFn(fmt.Sprintf("Account created. Welcome, %s!", displayName(user.Name, user.Email)))
	return nil
}

// Strength rates a password without sending it anywhere.
func (a *App) Strength(ctx context.Context) error {
	password, err := getPassword(a.out, "Enter password to rate: ")
	if err != nil {
		return err
	}

	printlnFn(renderStrength(string(password)))
	return nil
}

// Logout drops the session locally. Calling it while logged out is fine.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}

func displayName(name, email string) string {
	if name != "" {
		return name
	}
	return email
}
