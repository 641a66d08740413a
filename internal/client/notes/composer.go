package notes

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/securenote/internal/client/models"
)

type NoteCreator interface {
	CreateNote(ctx context.Context, token string, draft models.NoteDraft) (*models.Note, error)
}

// TokenSource yields the current bearer token, "" when logged out.
type TokenSource interface {
	Token() string
}

// Composer owns the create-note form: the draft, the notes created in this
// session and the share link of the most recent one.
type Composer struct {
	mu      sync.Mutex
	api     NoteCreator
	tokens  TokenSource
	origin  string
	draft   models.NoteDraft
	created []models.Note
	link    string
	pending bool
	gen     uint64
}

func NewComposer(api NoteCreator, tokens TokenSource, origin string) *Composer {
	return &Composer{api: api, tokens: tokens, origin: origin}
}

func (c *Composer) SetDraft(d models.NoteDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = d
}

func (c *Composer) Draft() models.NoteDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Create submits the current draft. On success the note is appended to the
// list, the share link is updated and the draft is emptied. On any failure
// the draft, the list and the link are left as they were.
func (c *Composer) Create(ctx context.Context) (*models.Note, string, error) {
	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return nil, "", ErrCreatePending
	}
	token := c.tokens.Token()
	if token == "" {
		c.mu.Unlock()
		return nil, "", ErrNotAuthenticated
	}
	if c.draft.Password == "" {
		c.mu.Unlock()
		return nil, "", ErrEmptyPassword
	}
	draft := c.draft
	gen := c.gen
	c.pending = true
	c.mu.Unlock()

	note, err := c.api.CreateNote(ctx, token, draft)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil, "", ErrStale
	}
	c.pending = false
	if err != nil {
		return nil, "", fmt.Errorf("create note: %w", err)
	}

	c.link = ShareLink(c.origin, note.ID)
	c.created = append(c.created, *note)
	c.draft = models.NoteDraft{}
	return note, c.link, nil
}

// Pending reports whether a create request is in flight.
func (c *Composer) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Notes returns the notes created since the last Reset, oldest first.
func (c *Composer) Notes() []models.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Note, len(c.created))
	copy(out, c.created)
	return out
}

// ShareLink returns the link of the most recently created note, or "".
func (c *Composer) ShareLink() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.link
}

// Reset forgets everything, including the outcome of a request still in
// flight.
func (c *Composer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.pending = false
	c.draft = models.NoteDraft{}
	c.created = nil
	c.link = ""
}
