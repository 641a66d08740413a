// Package services contains application services for the SecureNote client.
// This file defines the authentication service shared by the login and
// register forms: input validation, the remote calls and password wiping.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/securenote/internal/client/api"
	"github.com/dmitrijs2005/securenote/internal/client/models"
	"github.com/dmitrijs2005/securenote/internal/common"
)

// ErrValidation marks input rejected before any request is made.
var ErrValidation = errors.New("validation failed")

// Gateway is the part of the API client the auth service needs.
type Gateway interface {
	Register(ctx context.Context, in api.RegisterRequest) (*api.AuthResponse, error)
	Login(ctx context.Context, in api.LoginRequest) (*api.AuthResponse, error)
	Profile(ctx context.Context, token string) (*models.User, error)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account and return its session token and user.
//   - Login: authenticate and return the session token and user.
//   - Profile: fetch the user a token belongs to.
//
// Passwords are wiped once the request has been sent. All methods honor
// context cancellation.
type AuthService interface {
	Register(ctx context.Context, name, email string, password []byte) (string, *models.User, error)
	Login(ctx context.Context, email string, password []byte) (string, *models.User, error)
	Profile(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	gw Gateway
}

// NewAuthService constructs an AuthService bound to the given gateway.
func NewAuthService(gw Gateway) AuthService {
	return &authService{gw: gw}
}

func (a *authService) Register(ctx context.Context, name, email string, password []byte) (string, *models.User, error) {
	defer common.WipeByteArray(password)

	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if err := validate(map[string]string{"name": name, "email": email, "password": string(password)}); err != nil {
		return "", nil, err
	}
	if err := validateEmail(email); err != nil {
		return "", nil, err
	}

	resp, err := a.gw.Register(ctx, api.RegisterRequest{Name: name, Email: email, Password: string(password)})
	if err != nil {
		return "", nil, fmt.Errorf("register error: %w", err)
	}
	return resp.Token, resp.User, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (string, *models.User, error) {
	defer common.WipeByteArray(password)

	email = strings.TrimSpace(email)
	if err := validate(map[string]string{"email": email, "password": string(password)}); err != nil {
		return "", nil, err
	}
	if err := validateEmail(email); err != nil {
		return "", nil, err
	}

	resp, err := a.gw.Login(ctx, api.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return "", nil, fmt.Errorf("login error: %w", err)
	}
	return resp.Token, resp.User, nil
}

func (a *authService) Profile(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", ErrValidation)
	}
	u, err := a.gw.Profile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("profile error: %w", err)
	}
	return u, nil
}

// fieldOrder keeps validation messages deterministic.
var fieldOrder = []string{"name", "email", "password"}

func validate(fields map[string]string) error {
	for _, k := range fieldOrder {
		if v, ok := fields[k]; ok && v == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, k)
		}
	}
	return nil
}

func validateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email must contain @", ErrValidation)
	}
	return nil
}
