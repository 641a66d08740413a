package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Authenticated(t *testing.T) {
	assert.False(t, Session{}.Authenticated())
	assert.True(t, Session{Token: "t"}.Authenticated())
	assert.True(t, Session{Token: "t", User: &User{ID: "1"}}.Authenticated())
}

func TestNoteDraft_IsEmpty(t *testing.T) {
	assert.True(t, NoteDraft{}.IsEmpty())
	assert.False(t, NoteDraft{Title: "x"}.IsEmpty())
	assert.False(t, NoteDraft{Password: "x"}.IsEmpty())
}

func TestUser_DecodesMongoStyleID(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"abc","name":"Ann","email":"a@b.c"}`), &u))
	assert.Equal(t, User{ID: "abc", Name: "Ann", Email: "a@b.c"}, u)
}

func TestNote_HasNoPasswordOnTheWire(t *testing.T) {
	b, err := json.Marshal(Note{ID: "1", Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
}
