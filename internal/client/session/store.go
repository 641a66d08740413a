// Package session holds the authenticated session of the client: the bearer
// token and the user it belongs to.
//
// The token and the user are set and cleared together. The only exception is
// the window right after Restore found a persisted token without a profile;
// SetUser closes it once the profile has been fetched.
//
// A Store may be backed by a Persister so that a session survives restarts.
// Without one it lives in memory only.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/securenote/internal/client/models"
)

var (
	ErrIncompleteSession = errors.New("session requires both token and user")
	ErrNoSession         = errors.New("no active session")
	ErrPersist           = errors.New("session persistence failed")
)

// Persister stores a session durably.
type Persister interface {
	Save(ctx context.Context, token string, user *models.User) error
	Load(ctx context.Context) (string, *models.User, error)
	Delete(ctx context.Context) error
}

type Store struct {
	mu        sync.RWMutex
	session   models.Session
	persister Persister
	now       func() time.Time
}

// NewStore returns an empty store. p may be nil.
func NewStore(p Persister) *Store {
	return &Store{persister: p, now: time.Now}
}

// SetSession installs a new session. The in-memory state always changes;
// a persistence failure is reported wrapped in ErrPersist.
func (s *Store) SetSession(ctx context.Context, token string, user *models.User) error {
	if token == "" || user == nil {
		return ErrIncompleteSession
	}
	u := *user

	s.mu.Lock()
	s.session = models.Session{Token: token, User: &u}
	s.mu.Unlock()

	if s.persister == nil {
		return nil
	}
	if err := s.persister.Save(ctx, token, &u); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// SetUser attaches the profile to a token-only session.
func (s *Store) SetUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return ErrIncompleteSession
	}
	s.mu.RLock()
	token := s.session.Token
	s.mu.RUnlock()
	if token == "" {
		return ErrNoSession
	}
	return s.SetSession(ctx, token, user)
}

// Clear drops the session from memory and from durable storage.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	if s.persister == nil {
		return nil
	}
	if err := s.persister.Delete(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// Restore loads a persisted session. An expired JWT is discarded and the
// persisted copy deleted, which is an implicit logout.
func (s *Store) Restore(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	token, user, err := s.persister.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if token == "" {
		return nil
	}
	if Expired(token, s.now()) {
		return s.Clear(ctx)
	}

	s.mu.Lock()
	s.session = models.Session{Token: token, User: user}
	s.mu.Unlock()
	return nil
}

// Token returns the bearer token or "" when there is no session.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// User returns a copy of the session user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session.User == nil {
		return nil
	}
	u := *s.session.User
	return &u
}

// Snapshot returns a copy of the whole session.
func (s *Store) Snapshot() models.Session {
	return models.Session{Token: s.Token(), User: s.User()}
}
