package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/securenote/internal/client/api"
	"github.com/dmitrijs2005/securenote/internal/client/config"
	"github.com/dmitrijs2005/securenote/internal/client/notes"
	"github.com/dmitrijs2005/securenote/internal/client/services"
	"github.com/dmitrijs2005/securenote/internal/client/session"
	"github.com/dmitrijs2005/securenote/internal/client/storage"
	"github.com/dmitrijs2005/securenote/internal/client/view"
	"github.com/dmitrijs2005/securenote/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
	// ttyFD is the terminal passwords are read from, -1 when input is piped.
	ttyFD int
	db    *sql.DB

	store    *session.Store
	auth     services.AuthService
	ctrl     *view.Controller
	composer *notes.Composer
	verifier *notes.Verifier

	// wait pauses before the logout that follows a failed profile fetch.
	wait func(ctx context.Context, d time.Duration)
}

// NewApp opens the session database, restores a saved session and builds
// the client for the given start target (a share link or "").
func NewApp(ctx context.Context, c *config.Config, target string, in io.Reader, out io.Writer, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := session.NewStore(session.NewSQLitePersister(db))
	if err := store.Restore(ctx); err != nil {
		log.Warn(ctx, "saved session could not be restored", "error", err)
	}

	a, err := newApp(c, store, target, in, out, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.db = db
	return a, nil
}

func newApp(c *config.Config, store *session.Store, target string, in io.Reader, out io.Writer, log logging.Logger) (*App, error) {
	gw, err := api.New(c.APIBaseURL, api.WithTimeout(c.RequestTimeout), api.WithLogger(log))
	if err != nil {
		return nil, err
	}

	a := &App{
		config:   c,
		log:      log,
		reader:   bufio.NewReader(in),
		ttyFD:    passwordFD(in),
		out:      out,
		store:    store,
		auth:     services.NewAuthService(gw),
		ctrl:     view.New(store, target),
		composer: notes.NewComposer(gw, store, c.Origin),
		verifier: notes.NewVerifier(gw, ""),
		wait:     sleep,
	}
	if a.ctrl.View() == view.Unlock {
		a.verifier = notes.NewVerifier(gw, a.ctrl.NoteID())
	}
	return a, nil
}

// Run shows the start view and serves the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.say("Welcome to SecureNote CLI (type 'help' for commands)")
	switch a.ctrl.View() {
	case view.Dashboard:
		_ = a.enterDashboard(ctx)
	case view.Unlock:
		a.say(fmt.Sprintf("Shared note %s is locked. Type 'unlock' to enter its password.", a.ctrl.NoteID()))
	default:
		a.say("Please login or register.")
	}

	runREPL(ctx, a, a.reader, a.out)
	return nil
}

// Close releases the session database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func (a *App) currentView() view.View {
	return a.ctrl.View()
}

func (a *App) status() string {
	switch a.ctrl.View() {
	case view.Dashboard:
		if u := a.store.User(); u != nil {
			return fmt.Sprintf("(%s)", u.Name)
		}
	case view.Unlock:
		return fmt.Sprintf("(note %s)", a.ctrl.NoteID())
	}
	return fmt.Sprintf("(%s)", a.ctrl.View())
}

func (a *App) say(args ...any) {
	printlnFn(a.out, args...)
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
