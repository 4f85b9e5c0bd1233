package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
)

// Generic outcomes of the two auth operations. AuthError.Error returns one
// of these messages and nothing else.
var (
	ErrLoginFailed  = errors.New("invalid credentials")
	ErrSignupFailed = errors.New("failed to create account")
)

// Op names the operation that failed.
type Op string

const (
	OpLogin  Op = "login"
	OpSignup Op = "signup"
)

// Kind tells why an auth operation failed.
type Kind int

const (
	// KindNetwork: the server could not be reached or timed out.
	KindNetwork Kind = iota + 1
	// KindRejected: the server answered with a non-2xx status.
	KindRejected
	// KindMalformed: the server answered 2xx with an unusable body.
	KindMalformed
	// KindStorage: the call succeeded but the session could not be saved.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindRejected:
		return "rejected"
	case KindMalformed:
		return "malformed"
	case KindStorage:
		return "storage"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// AuthError is returned by Login and Signup. Its message is the generic
// ErrLoginFailed/ErrSignupFailed text; Kind and the wrapped cause are there
// for callers that need to tell failures apart.
type AuthError struct {
	Op   Op
	Kind Kind
	Err  error
}

func (e *AuthError) sentinel() error {
	if e.Op == OpSignup {
		return ErrSignupFailed
	}
	return ErrLoginFailed
}

func (e *AuthError) Error() string {
	return e.sentinel().Error()
}

// Unwrap exposes both the generic sentinel and the underlying cause, so
// errors.Is(err, ErrLoginFailed) and errors.Is(err, client.ErrUnavailable)
// both work.
func (e *AuthError) Unwrap() []error {
	return []error{e.sentinel(), e.Err}
}

func newAuthError(op Op, err error) *AuthError {
	return &AuthError{Op: op, Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	var httpErr *client.HTTPError
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return KindNetwork
	case errors.As(err, &httpErr):
		return KindRejected
	default:
		return KindMalformed
	}
}
