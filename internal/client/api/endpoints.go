package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/securenote/internal/client/models"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type verifyRequest struct {
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, in RegisterRequest) (*AuthResponse, error) {
	return c.authenticate(ctx, "/auth/register", in)
}

func (c *Client) Login(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	return c.authenticate(ctx, "/auth/login", in)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (*AuthResponse, error) {
	raw, err := c.Do(ctx, path, Request{Method: http.MethodPost, Body: body})
	if err != nil {
		return nil, err
	}
	var out AuthResponse
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	if out.Token == "" || out.User == nil || out.User.ID == "" {
		return nil, fmt.Errorf("%w: auth response lacks token or user", ErrMalformedResponse)
	}
	return &out, nil
}

// Profile fetches the user the token belongs to.
func (c *Client) Profile(ctx context.Context, token string) (*models.User, error) {
	raw, err := c.Do(ctx, "/profile/me", Request{Method: http.MethodGet, Token: token})
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := decode(raw, &u); err != nil {
		return nil, err
	}
	if u.ID == "" {
		return nil, fmt.Errorf("%w: profile lacks _id", ErrMalformedResponse)
	}
	return &u, nil
}

// CreateNote submits the draft, password included, under the given token.
// A response without an identifier is ErrMalformedResponse.
func (c *Client) CreateNote(ctx context.Context, token string, draft models.NoteDraft) (*models.Note, error) {
	raw, err := c.Do(ctx, "/notes/create", Request{Method: http.MethodPost, Token: token, Body: draft})
	if err != nil {
		return nil, err
	}
	var n models.Note
	if err := decode(raw, &n); err != nil {
		return nil, err
	}
	if n.ID == "" {
		return nil, fmt.Errorf("%w: created note lacks _id", ErrMalformedResponse)
	}
	return &n, nil
}

// VerifyNote exchanges a password guess for the note content. It is an
// unauthenticated call: possession of the id and password is the credential.
func (c *Client) VerifyNote(ctx context.Context, id, password string) (*models.NoteContent, error) {
	path := "/notes/" + url.PathEscape(id) + "/verify"
	raw, err := c.Do(ctx, path, Request{Method: http.MethodPost, Body: verifyRequest{Password: password}})
	if err != nil {
		return nil, err
	}
	var content models.NoteContent
	if err := decode(raw, &content); err != nil {
		return nil, err
	}
	return &content, nil
}
