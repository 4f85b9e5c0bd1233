// Package services contains the application services of the gophauth
// client. AuthService ties the API transport to the session store: it logs
// users in and out, creates accounts and attaches the live session's token to
// every authenticated call.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// SessionStore is what AuthService needs from the session package.
type SessionStore interface {
	Current() models.Session
	Restore(ctx context.Context) (models.Session, error)
	Set(ctx context.Context, sess models.Session) error
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Restore: load the persisted session at startup (never fails on bad data).
//   - Login / Signup: call the API; on success store and persist the session;
//     on failure return *AuthError and leave the session untouched.
//   - Logout: drop the session; idempotent.
//   - Do: call the API carrying the current token, or no token when logged out.
type AuthService interface {
	Restore(ctx context.Context) (models.Session, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	Signup(ctx context.Context, name, email, password string) (models.User, error)
	Logout(ctx context.Context) error
	Current() models.Session
	Do(ctx context.Context, method, path string, body, out any) error
}

var errNoResponse = errors.New("nil response")

type authService struct {
	client   client.Client
	sessions SessionStore
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(c client.Client, sessions SessionStore, log logging.Logger) AuthService {
	return &authService{client: c, sessions: sessions, log: log.With("component", "auth")}
}

func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	return a.sessions.Restore(ctx)
}

func (a *authService) Current() models.Session {
	return a.sessions.Current()
}

func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	resp, err := a.client.Login(ctx, email, password)
	if err != nil {
		authErr := newAuthError(OpLogin, err)
		a.log.Warn(ctx, "login failed", "email", email, "kind", authErr.Kind.String(), "error", err)
		return models.User{}, authErr
	}
	if err := a.start(ctx, OpLogin, resp); err != nil {
		return models.User{}, err
	}
	a.log.Info(ctx, "logged in", "user_id", resp.User.ID)
	return resp.User, nil
}

func (a *authService) Signup(ctx context.Context, name, email, password string) (models.User, error) {
	resp, err := a.client.Register(ctx, name, email, password)
	if err != nil {
		authErr := newAuthError(OpSignup, err)
		a.log.Warn(ctx, "signup failed", "email", email, "kind", authErr.Kind.String(), "error", err)
		return models.User{}, authErr
	}
	if err := a.start(ctx, OpSignup, resp); err != nil {
		return models.User{}, err
	}
	a.log.Info(ctx, "account created", "user_id", resp.User.ID)
	return resp.User, nil
}

// start makes resp the live session.
func (a *authService) start(ctx context.Context, op Op, resp *models.AuthResponse) error {
	if resp == nil {
		return &AuthError{Op: op, Kind: KindMalformed, Err: errNoResponse}
	}
	sess := models.Session{Token: resp.Token, User: resp.User}
	if err := a.sessions.Set(ctx, sess); err != nil {
		a.log.Error(ctx, "saving session failed", "op", string(op), "error", err)
		return &AuthError{Op: op, Kind: KindStorage, Err: err}
	}
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) Do(ctx context.Context, method, path string, body, out any) error {
	token := a.sessions.Current().Token
	return a.client.Do(ctx, method, path, body, out, client.WithBearer(token))
}
