// Package cli implements the terminal view layer: a small REPL over the
// session and event stores, with public commands (list, search, show, login,
// register) and identity-gated ones (create, edit, delete).
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/campusevents/internal/config"
	"github.com/dmitrijs2005/campusevents/internal/events"
	"github.com/dmitrijs2005/campusevents/internal/imagex"
	"github.com/dmitrijs2005/campusevents/internal/keyval"
	"github.com/dmitrijs2005/campusevents/internal/logging"
	"github.com/dmitrijs2005/campusevents/internal/models"
	"github.com/dmitrijs2005/campusevents/internal/notify"
	"github.com/dmitrijs2005/campusevents/internal/session"
)

type App struct {
	config  *config.Config
	session session.Service
	events  *events.Store
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the stores together: a file-backed key-value slot for the
// session, the seeded in-memory event collection, and a toast notifier
// printing to stdout.
func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	notifier := notify.NewWriterNotifier(os.Stdout)

	slot := keyval.NewFileStore(cfg.StorageFilePath)
	sessionService := session.New(slot, notifier, logger)

	seed := events.DefaultSeed()
	if cfg.SeedFilePath != "" {
		var err error
		seed, err = events.LoadSeedFile(cfg.SeedFilePath)
		if err != nil {
			return nil, err
		}
	}
	eventStore := events.New(notifier, seed)

	return &App{
		config:  cfg,
		session: sessionService,
		events:  eventStore,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores the persisted session and starts the REPL. The view must not
// consult the session before Restore finishes.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "session restore cleanup failed", "error", err)
	}

	if u := a.session.CurrentUser(); u != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Username)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.session.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

// requireLogin is the route gate: commands that mutate events redirect
// unauthenticated users to login.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Please login first (try 'login' or 'register').")
	return false
}

// imageURL resolves the stored image for display, falling back to the fixed
// placeholder when empty.
func imageURL(e models.Event) string {
	if e.ImageURL == "" {
		return imagex.FallbackURL
	}
	return e.ImageURL
}
