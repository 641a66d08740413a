package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/securenote/internal/client/api"
	"github.com/dmitrijs2005/securenote/internal/client/apitest"
	"github.com/dmitrijs2005/securenote/internal/client/models"
	"github.com/stretchr/testify/require"
)

// ---- fake gateway ----

type fakeGateway struct {
	RegisterRet *api.AuthResponse
	RegisterErr error
	LoginRet    *api.AuthResponse
	LoginErr    error
	ProfileRet  *models.User
	ProfileErr  error

	LastRegister     api.RegisterRequest
	LastLogin        api.LoginRequest
	LastProfileToken string
	Calls            int
}

func (f *fakeGateway) Register(ctx context.Context, in api.RegisterRequest) (*api.AuthResponse, error) {
	f.Calls++
	f.LastRegister = in
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeGateway) Login(ctx context.Context, in api.LoginRequest) (*api.AuthResponse, error) {
	f.Calls++
	f.LastLogin = in
	return f.LoginRet, f.LoginErr
}

func (f *fakeGateway) Profile(ctx context.Context, token string) (*models.User, error) {
	f.Calls++
	f.LastProfileToken = token
	return f.ProfileRet, f.ProfileErr
}

var ann = &models.User{ID: "u1", Name: "Ann", Email: "ann@example.org"}

// ---- TESTS ----

func TestLogin_Success_WipesPassword(t *testing.T) {
	fg := &fakeGateway{LoginRet: &api.AuthResponse{Token: "tok", User: ann}}
	svc := NewAuthService(fg)

	pw := []byte("secret")
	token, user, err := svc.Login(context.Background(), "  ann@example.org ", pw)
	require.NoError(t, err)
	require.Equal(t, "tok", token)
	require.Equal(t, ann, user)

	require.Equal(t, api.LoginRequest{Email: "ann@example.org", Password: "secret"}, fg.LastLogin)
	require.Equal(t, make([]byte, len(pw)), pw)
}

func TestLogin_Validation(t *testing.T) {
	cases := []struct {
		name, email, pw, want string
	}{
		{"empty email", "", "p", "email is required"},
		{"empty password", "a@b", "", "password is required"},
		{"email without at", "ann.example.org", "p", "email must contain @"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fg := &fakeGateway{}
			svc := NewAuthService(fg)

			_, _, err := svc.Login(context.Background(), tc.email, []byte(tc.pw))
			require.ErrorIs(t, err, ErrValidation)
			require.Contains(t, err.Error(), tc.want)
			require.Zero(t, fg.Calls)
		})
	}
}

func TestLogin_ErrorFromGateway_Wrapped(t *testing.T) {
	remote := &api.RequestError{Message: "Invalid credentials", Status: 400}
	fg := &fakeGateway{LoginErr: remote}
	svc := NewAuthService(fg)

	_, _, err := svc.Login(context.Background(), "a@b", []byte("p"))
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "login error:"))

	msg, ok := api.ServerMessage(err)
	require.True(t, ok)
	require.Equal(t, "Invalid credentials", msg)
}

func TestRegister_DelegatesToGateway(t *testing.T) {
	fg := &fakeGateway{RegisterRet: &api.AuthResponse{Token: "tok", User: ann}}
	svc := NewAuthService(fg)

	pw := []byte("pw")
	token, user, err := svc.Register(context.Background(), " Ann ", "ann@example.org", pw)
	require.NoError(t, err)
	require.Equal(t, "tok", token)
	require.Equal(t, ann, user)
	require.Equal(t, api.RegisterRequest{Name: "Ann", Email: "ann@example.org", Password: "pw"}, fg.LastRegister)
	require.Equal(t, []byte{0, 0}, pw)
}

func TestRegister_Validation(t *testing.T) {
	fg := &fakeGateway{}
	svc := NewAuthService(fg)

	_, _, err := svc.Register(context.Background(), "", "a@b", []byte("p"))
	require.ErrorIs(t, err, ErrValidation)
	require.Contains(t, err.Error(), "name is required")

	_, _, err = svc.Register(context.Background(), "n", "ab", []byte("p"))
	require.ErrorIs(t, err, ErrValidation)
	require.Zero(t, fg.Calls)
}

func TestRegister_ErrorFromGateway(t *testing.T) {
	fg := &fakeGateway{RegisterErr: errors.New("dup")}
	svc := NewAuthService(fg)

	_, _, err := svc.Register(context.Background(), "n", "a@b", []byte("p"))
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "register error:"))
}

func TestProfile(t *testing.T) {
	fg := &fakeGateway{ProfileRet: ann}
	svc := NewAuthService(fg)

	u, err := svc.Profile(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, ann, u)
	require.Equal(t, "tok", fg.LastProfileToken)

	_, err = svc.Profile(context.Background(), "")
	require.ErrorIs(t, err, ErrValidation)
	require.Equal(t, 1, fg.Calls)
}

func TestProfile_UnauthorizedPropagates(t *testing.T) {
	fg := &fakeGateway{ProfileErr: &api.RequestError{Status: 401, Err: api.ErrUnauthorized}}
	svc := NewAuthService(fg)

	_, err := svc.Profile(context.Background(), "tok")
	require.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestAuthService_AgainstBackend(t *testing.T) {
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	c, err := api.New(srv.BaseURL())
	require.NoError(t, err)
	svc := NewAuthService(c)
	ctx := context.Background()

	token, user, err := svc.Register(ctx, "Ann", "ann@example.org", []byte("pw"))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "ann@example.org", []byte("wrong"))
	msg, ok := api.ServerMessage(err)
	require.True(t, ok)
	require.Equal(t, apitest.MsgInvalidCredentials, msg)

	token, _, err = svc.Login(ctx, "ann@example.org", []byte("pw"))
	require.NoError(t, err)

	me, err := svc.Profile(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user, me)
}
