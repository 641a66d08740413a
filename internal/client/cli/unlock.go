package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/securenote/internal/client/notes"
	"github.com/dmitrijs2005/securenote/internal/common"
)

// Unlock asks for the note password and reveals the note on success. A
// failed attempt shows the server's message and may be repeated.
func (a *App) Unlock(ctx context.Context) error {
	if a.verifier.State() == notes.Unlocked {
		a.showNote()
		return nil
	}

	password, err := getPassword(a.reader, a.ttyFD, "Note password", a.out)
	if err != nil {
		return err
	}
	pw := string(password)
	common.WipeByteArray(password)

	err = a.verifier.Submit(ctx, pw)
	switch {
	case err == nil:
		a.showNote()
	case errors.Is(err, notes.ErrEmptyPassword):
		a.say("Password is required.")
	case errors.Is(err, notes.ErrVerificationPending):
		a.say("Verification already in progress.")
	case errors.Is(err, notes.ErrStale):
	default:
		a.log.Info(ctx, "note verification failed", "note_id", a.verifier.NoteID(), "error", err)
		msg := a.verifier.Message()
		if msg == "" {
			msg = userMessage(err)
		}
		a.say(msg)
	}
	return err
}

// Back leaves the shared note and returns to the login view.
func (a *App) Back(ctx context.Context) error {
	a.verifier.Back()
	a.ctrl.OnBack()
	a.say("Please login or register.")
	return nil
}

func (a *App) showNote() {
	c := a.verifier.Content()
	if c == nil {
		return
	}
	a.say("Title:", c.Title)
	a.say(c.Content)
}
