// Package forms holds the pure, side-effect-free checks that run before any
// request leaves the client: password strength scoring and login/signup
// field validation. Validation errors carry the exact message shown to the
// user and never reach the auth service.
package forms
