// Package deeplink decides which view the client opens with, based on the
// navigation target it was started with.
package deeplink

import (
	"net/url"
	"regexp"
)

type View string

const (
	ViewLogin  View = "login"
	ViewUnlock View = "unlock"
)

// Start is the initial view and, for ViewUnlock, the note to open.
type Start struct {
	View   View
	NoteID string
}

var notePath = regexp.MustCompile(`^/note/([A-Za-z0-9]+)$`)

// Resolve maps target to a Start. target may be a bare path ("/note/abc") or
// a full share link. A note link is honored only when no session token is
// present; everything else starts at login.
func Resolve(target string, hasToken bool) Start {
	if id, ok := NoteID(target); ok && !hasToken {
		return Start{View: ViewUnlock, NoteID: id}
	}
	return Start{View: ViewLogin}
}

// NoteID extracts the note identifier from a share link or path. Query and
// fragment are ignored.
func NoteID(target string) (string, bool) {
	p := target
	if u, err := url.Parse(target); err == nil {
		p = u.Path
	}
	m := notePath.FindStringSubmatch(p)
	if m == nil {
		return "", false
	}
	return m[1], true
}
