package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "future exp", token: signedToken(t, now.Add(time.Minute)), want: false},
		{name: "past exp", token: signedToken(t, now.Add(-time.Minute)), want: true},
		{name: "exp equals now", token: signedToken(t, now), want: true},
		{name: "opaque token", token: "not-a-jwt", want: false},
		{name: "empty", token: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expired(tt.token, now))
		})
	}
}
