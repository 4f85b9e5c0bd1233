// Package cli provides the interactive gophauth command-line client.
//
// It wires configuration, the local session database, the auth API client and
// an interactive REPL. On start the persisted session is restored, so a user
// who logged in earlier lands straight at an authenticated prompt.
//
// Key features:
//   - Login / Signup with local form validation before any network call
//   - Live password strength meter and checklist
//   - whoami / get <path> for authenticated calls
//   - Logout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
