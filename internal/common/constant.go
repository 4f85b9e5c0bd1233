// Package common contains constants, sentinel errors and small helpers shared
// by the gophauth client and the reference auth server.
package common

const (
	// AuthorizationHeader carries the bearer credential on API requests.
	AuthorizationHeader = "Authorization"
	// BearerPrefix precedes the token inside AuthorizationHeader.
	BearerPrefix = "Bearer "

	// DefaultAPIURL is the base URL of the auth API both sides agree on.
	DefaultAPIURL = "http://localhost:5000/api/auth"
)

// BearerValue formats token as an Authorization header value.
func BearerValue(token string) string {
	return BearerPrefix + token
}
