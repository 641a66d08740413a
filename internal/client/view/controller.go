// Package view keeps track of which screen the client shows and moves
// between screens when authentication or the unlock flow changes.
//
// The Controller owns no business logic. It holds the active view, the
// session store, the note id of the unlock flow and the visible location,
// and each callback updates them together.
package view

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/securenote/internal/client/deeplink"
	"github.com/dmitrijs2005/securenote/internal/client/models"
	"github.com/dmitrijs2005/securenote/internal/client/session"
)

type View string

const (
	Register  View = "register"
	Login     View = "login"
	Dashboard View = "dashboard"
	Unlock    View = "unlock"
)

// RootLocation is the neutral location shown outside of a note link.
const RootLocation = "/"

type Controller struct {
	mu       sync.Mutex
	store    *session.Store
	view     View
	noteID   string
	location string
}

// New builds a controller for the given start target. The store should
// already be restored. A deep link opens the unlock view only when there is
// no session; otherwise an existing session goes straight to the dashboard.
func New(store *session.Store, target string) *Controller {
	hasToken := store.Token() != ""
	start := deeplink.Resolve(target, hasToken)

	c := &Controller{store: store, location: RootLocation}
	switch {
	case start.View == deeplink.ViewUnlock:
		c.view = Unlock
		c.noteID = start.NoteID
		c.location = "/note/" + start.NoteID
	case hasToken:
		c.view = Dashboard
	default:
		c.view = Login
	}
	return c
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// NoteID is the note of the unlock view, "" elsewhere.
func (c *Controller) NoteID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.noteID
}

// Location is the path the client would show in an address bar.
func (c *Controller) Location() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.location
}

func (c *Controller) Session() models.Session {
	return c.store.Snapshot()
}

func (c *Controller) ShowRegister() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = Register
}

func (c *Controller) ShowLogin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = Login
}

// OnAuthSuccess stores the session and opens the dashboard. The view
// changes even if persisting the session failed; that error is returned.
func (c *Controller) OnAuthSuccess(ctx context.Context, token string, user *models.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.store.SetSession(ctx, token, user)
	if token == "" || user == nil {
		return err
	}
	c.view = Dashboard
	c.noteID = ""
	c.location = RootLocation
	return err
}

// OnLogout clears the session and returns to login.
func (c *Controller) OnLogout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.store.Clear(ctx)
	c.view = Login
	c.noteID = ""
	c.location = RootLocation
	return err
}

// OnBack leaves the unlock view for login and resets the location.
func (c *Controller) OnBack() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = Login
	c.noteID = ""
	c.location = RootLocation
}
