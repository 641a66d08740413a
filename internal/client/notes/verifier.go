package notes

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/securenote/internal/client/api"
	"github.com/dmitrijs2005/securenote/internal/client/models"
)

// VerificationFailedMessage is shown when the server gave no reason.
const VerificationFailedMessage = "Verification failed"

type State int

const (
	Locked State = iota
	Verifying
	Unlocked
)

func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case Verifying:
		return "verifying"
	case Unlocked:
		return "unlocked"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type NoteVerifier interface {
	VerifyNote(ctx context.Context, id, password string) (*models.NoteContent, error)
}

// Verifier drives the unlock flow of one shared note.
//
//	Locked --Submit--> Verifying --ok--> Unlocked
//	                             --err-> Locked (with Message)
//
// Unlocked stays until Back.
type Verifier struct {
	mu      sync.Mutex
	api     NoteVerifier
	noteID  string
	state   State
	content *models.NoteContent
	message string
	gen     uint64
}

func NewVerifier(api NoteVerifier, noteID string) *Verifier {
	return &Verifier{api: api, noteID: noteID}
}

// Submit exchanges password for the note content. It returns nil once the
// note is unlocked. A failed attempt leaves the verifier Locked with Message
// set and may be retried.
func (v *Verifier) Submit(ctx context.Context, password string) error {
	v.mu.Lock()
	switch {
	case v.state == Verifying:
		v.mu.Unlock()
		return ErrVerificationPending
	case v.state == Unlocked:
		v.mu.Unlock()
		return ErrAlreadyUnlocked
	case v.noteID == "":
		v.mu.Unlock()
		return ErrNoNote
	case password == "":
		v.mu.Unlock()
		return ErrEmptyPassword
	}
	id := v.noteID
	gen := v.gen
	v.state = Verifying
	v.message = ""
	v.mu.Unlock()

	content, err := v.api.VerifyNote(ctx, id, password)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return ErrStale
	}
	if err != nil {
		v.state = Locked
		v.content = nil
		v.message = failureMessage(err)
		return fmt.Errorf("verify note: %w", err)
	}
	v.state = Unlocked
	v.content = content
	v.message = ""
	return nil
}

// failureMessage forwards the server's wording unchanged. The client never
// adds detail of its own.
func failureMessage(err error) string {
	if msg, ok := api.ServerMessage(err); ok {
		return msg
	}
	return VerificationFailedMessage
}

// Back leaves the flow. The note id, content and message are dropped and
// any response still in flight is discarded.
func (v *Verifier) Back() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	v.noteID = ""
	v.state = Locked
	v.content = nil
	v.message = ""
}

func (v *Verifier) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *Verifier) NoteID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.noteID
}

// Content returns a copy of the revealed note, nil unless Unlocked.
func (v *Verifier) Content() *models.NoteContent {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.content == nil {
		return nil
	}
	c := *v.content
	return &c
}

// Message is the diagnostic of the last failed attempt.
func (v *Verifier) Message() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.message
}
