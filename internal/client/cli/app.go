package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/client/session"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	db     *sql.DB
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the session database, builds the API client and the auth
// service. The caller must call Close when done.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	api := client.NewHTTPClient(c.APIURL, c.RequestTimeout)
	store := session.NewStore(db, log)
	as := services.NewAuthService(api, store, log)

	return &App{
		config: c,
		auth:   as,
		db:     db,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run restores the persisted session and serves the REPL until the user
// quits or stdin is closed.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.auth.Restore(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	printlnFn("Welcome to gophauth (type 'help' for commands)")
	if a.isLoggedIn() {
		printlnFn("Signed in as " + a.auth.Current().User.Email)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return !a.auth.Current().IsEmpty()
}

// getStatus is the part of the prompt that shows who is signed in.
func (a *App) getStatus() string {
	sess := a.auth.Current()
	if sess.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("(%s)", sess.User.Email)
}
