package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
)

// WhoAmI prints the user of the live session.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.auth.Current().User
	printlnFn(fmt.Sprintf("%s <%s>", displayName(u.Name, u.Email), u.Email))
	if u.ID != "" {
		printlnFn("id: " + u.ID)
	}
	return nil
}

// Get performs an authenticated GET of path relative to the API URL and
// prints the JSON response indented.
func (a *App) Get(ctx context.Context, path string) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var raw json.RawMessage
	if err := a.auth.Do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		var httpErr *client.HTTPError
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			printlnFn("Server rejected the session, try logging in again")
		case client.IsStatus(err, http.StatusNotFound):
			printlnFn("Not found: " + path)
		case errors.As(err, &httpErr):
			printlnFn(fmt.Sprintf("Request failed: %d %s", httpErr.StatusCode, httpErr.Message))
		case errors.Is(err, client.ErrUnavailable):
			printlnFn("Server unavailable")
		default:
			printlnFn("Request failed:", err.Error())
		}
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		printlnFn(string(raw))
		return nil
	}
	printlnFn(buf.String())
	return nil
}
