package notes

import "errors"

var (
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrEmptyPassword       = errors.New("password is required")
	ErrCreatePending       = errors.New("note creation already in progress")
	ErrVerificationPending = errors.New("verification already in progress")
	ErrAlreadyUnlocked     = errors.New("note is already unlocked")
	ErrNoNote              = errors.New("no note selected")
	ErrStale               = errors.New("result discarded: view was left")
)
