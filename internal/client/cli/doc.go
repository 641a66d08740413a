// Package cli provides the interactive SecureNote command-line client.
//
// It wires configuration, the local session database, the API client and an
// interactive REPL. The REPL shows one view at a time and accepts the
// commands of that view:
//
//	login:     login, register, help, exit
//	register:  register, login, help, exit
//	dashboard: profile, create, link, notes, logout, help, exit
//	unlock:    unlock, back, help, exit
//
// The client starts at the login view, at the dashboard when a saved
// session is still valid, or at the unlock view when it was started with a
// share link and nobody is logged in.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends. NewRootCommand exposes it as a cobra command.
package cli
