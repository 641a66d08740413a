package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/securenote/internal/client/api"
	"github.com/dmitrijs2005/securenote/internal/client/models"
	"github.com/dmitrijs2005/securenote/internal/client/notes"
	"github.com/dmitrijs2005/securenote/internal/common"
)

const (
	profileFailureMessage = "Failed to load profile. Please login again."
	sessionExpiredMessage = "Your session has expired. Please login again."
)

// enterDashboard greets the logged-in user. The profile is fetched only when
// the session holds a token without a user.
func (a *App) enterDashboard(ctx context.Context) error {
	if u := a.store.User(); u != nil {
		a.showUser(u)
		return nil
	}
	return a.Profile(ctx)
}

// Profile fetches and shows the logged-in user. A failure ends the session:
// the user is told, and after ProfileFailureDelay the client logs out.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.auth.Profile(ctx, a.store.Token())
	if err != nil {
		a.log.Warn(ctx, "profile fetch failed", "error", err)
		a.say(profileFailureMessage)
		a.wait(ctx, a.config.ProfileFailureDelay)
		_ = a.Logout(ctx)
		return err
	}
	if err := a.store.SetUser(ctx, user); err != nil {
		a.log.Warn(ctx, "profile not saved", "error", err)
	}
	a.showUser(user)
	return nil
}

func (a *App) showUser(u *models.User) {
	a.say(fmt.Sprintf("Logged in as %s <%s>", u.Name, u.Email))
}

// CreateNote prompts for a note and submits it. After a failed attempt the
// previous answers are offered again: an empty answer keeps them.
func (a *App) CreateNote(ctx context.Context) error {
	prev := a.composer.Draft()

	title, err := getSimpleText(a.reader, withPrevious("Title", prev.Title), a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, withPrevious("Content", prev.Content), a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.ttyFD, "Note password", a.out)
	if err != nil {
		return err
	}
	pw := string(password)
	common.WipeByteArray(password)

	a.composer.SetDraft(models.NoteDraft{
		Title:    orPrevious(title, prev.Title),
		Content:  orPrevious(content, prev.Content),
		Password: orPrevious(pw, prev.Password),
	})

	_, link, err := a.composer.Create(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.say(sessionExpiredMessage)
			_ = a.Logout(ctx)
			return err
		}
		a.log.Info(ctx, "note creation failed", "error", err)
		a.say("Could not create note:", userMessage(err))
		return err
	}

	a.say("Note created. Share this link together with the password:")
	a.say(link)
	return nil
}

// ShowLink prints the share link of the most recently created note.
func (a *App) ShowLink(ctx context.Context) error {
	link := a.composer.ShareLink()
	if link == "" {
		a.say("No note created yet.")
		return nil
	}
	a.say(link)
	return nil
}

// ListNotes prints the notes created in this session.
func (a *App) ListNotes(ctx context.Context) error {
	created := a.composer.Notes()
	if len(created) == 0 {
		a.say("No note created yet.")
		return nil
	}
	for i, n := range created {
		a.say(fmt.Sprintf("%d. %s  %s", i+1, n.Title, notes.ShareLink(a.config.Origin, n.ID)))
	}
	return nil
}

func withPrevious(prompt, prev string) string {
	if prev == "" {
		return prompt
	}
	return fmt.Sprintf("%s (empty keeps %q)", prompt, prev)
}

func orPrevious(v, prev string) string {
	if v == "" {
		return prev
	}
	return v
}
