package notes

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/securenote/internal/client/api"
	"github.com/dmitrijs2005/securenote/internal/client/apitest"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newBackend(t *testing.T) (*apitest.Server, *api.Client) {
	t.Helper()
	srv := apitest.NewServer()
	t.Cleanup(srv.Close)
	c, err := api.New(srv.BaseURL())
	require.NoError(t, err)
	return srv, c
}

var ctx = context.Background()
