// Package client is the transport layer of the gophauth CLI.
//
// # Overview
//
// The package provides:
//  1. The Client interface: Login, Register and a generic Do for any further
//     API call.
//  2. HTTPClient, a JSON-over-HTTP implementation. It never stores a
//     credential; each authenticated call receives the token explicitly via
//     WithBearer.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the SQLite file and applies the embedded goose migrations.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors for errors.Is: ErrUnavailable
// (transport failure), ErrUnauthorized (401/403), ErrMalformedResponse
// (undecodable body). Any other non-2xx response is an *HTTPError.
package client
