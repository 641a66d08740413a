package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/securenote/internal/client/view"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Fprintln

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	currentView() view.View
	status() string

	ShowRegister(ctx context.Context) error
	ShowLogin(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error

	Profile(ctx context.Context) error
	CreateNote(ctx context.Context) error
	ShowLink(ctx context.Context) error
	ListNotes(ctx context.Context) error
	Logout(ctx context.Context) error

	Unlock(ctx context.Context) error
	Back(ctx context.Context) error
}

var helpText = map[view.View]string{
	view.Login:     "Available commands: login, register, exit",
	view.Register:  "Available commands: register, login, exit",
	view.Dashboard: "Available commands: profile, create, link, notes, logout, exit",
	view.Unlock:    "Available commands: unlock, back, exit",
}

// runREPL starts a read–eval–print loop over reader.
//
// It parses the first token of each line as the command and dispatches it
// according to the active view; a command that does not belong to the view
// is reported as unknown. The loop exits on EOF, when the user types "exit"
// or "quit", or when ctx is done.
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "securenote %s> ", a.status())
		line, err := readLine(reader)
		if err != nil {
			printlnFn(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn(w, helpText[a.currentView()])
			continue
		case "exit", "quit":
			printlnFn(w, "Bye!")
			return
		}

		if !dispatch(ctx, a, cmd) {
			printlnFn(w, "Unknown command:", cmd)
		}
	}
}

// dispatch runs cmd if the active view offers it.
func dispatch(ctx context.Context, a execIface, cmd string) bool {
	switch a.currentView() {
	case view.Login:
		switch cmd {
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.ShowRegister(ctx)
		default:
			return false
		}

	case view.Register:
		switch cmd {
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.ShowLogin(ctx)
		default:
			return false
		}

	case view.Dashboard:
		switch cmd {
		case "profile":
			_ = a.Profile(ctx)
		case "create":
			_ = a.CreateNote(ctx)
		case "link":
			_ = a.ShowLink(ctx)
		case "notes":
			_ = a.ListNotes(ctx)
		case "logout":
			_ = a.Logout(ctx)
		default:
			return false
		}

	case view.Unlock:
		switch cmd {
		case "unlock":
			_ = a.Unlock(ctx)
		case "back":
			_ = a.Back(ctx)
		default:
			return false
		}

	default:
		return false
	}
	return true
}
