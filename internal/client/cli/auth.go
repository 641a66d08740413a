package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/securenote/internal/client/models"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

func (a *App) ShowRegister(ctx context.Context) error {
	a.ctrl.ShowRegister()
	a.say("Create an account: type 'register' to enter your details, 'login' if you already have one.")
	return nil
}

func (a *App) ShowLogin(ctx context.Context) error {
	a.ctrl.ShowLogin()
	a.say("Sign in: type 'login' to enter your credentials, 'register' to create an account.")
	return nil
}

// Register prompts for name, email and password and creates an account.
// On success the session is stored and the dashboard opens.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.ttyFD, "Enter password", a.out)
	if err != nil {
		return err
	}

	token, user, err := a.auth.Register(ctx, name, email, password)
	if err != nil {
		a.log.Info(ctx, "registration failed", "error", err)
		a.say(userMessage(err))
		return err
	}
	return a.onAuthSuccess(ctx, token, user, fmt.Sprintf("Welcome %s!", user.Name))
}

// Login prompts for credentials and authenticates. On success the session
// is stored and the dashboard opens.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.ttyFD, "Enter password", a.out)
	if err != nil {
		return err
	}

	token, user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		a.log.Info(ctx, "login failed", "error", err)
		a.say(userMessage(err))
		return err
	}
	return a.onAuthSuccess(ctx, token, user, fmt.Sprintf("Welcome back, %s!", user.Name))
}

func (a *App) onAuthSuccess(ctx context.Context, token string, user *models.User, greeting string) error {
	if err := a.ctrl.OnAuthSuccess(ctx, token, user); err != nil {
		a.log.Warn(ctx, "session not saved", "error", err)
	}
	a.log.Info(ctx, "logged in", "user_id", user.ID)
	a.say(greeting)
	return a.enterDashboard(ctx)
}

// Logout forgets the session and everything created under it, then returns
// to the login view.
func (a *App) Logout(ctx context.Context) error {
	a.composer.Reset()
	err := a.ctrl.OnLogout(ctx)
	if err != nil {
		a.log.Warn(ctx, "saved session not removed", "error", err)
	}
	a.say("Logged out.")
	return err
}
