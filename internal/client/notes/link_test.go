package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShareLink(t *testing.T) {
	tests := []struct {
		origin string
		want   string
	}{
		{"http://localhost:5173", "http://localhost:5173/note/abc123"},
		{"http://localhost:5173/", "http://localhost:5173/note/abc123"},
		{"https://notes.example.org//", "https://notes.example.org/note/abc123"},
		{"", "/note/abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			assert.Equal(t, tt.want, ShareLink(tt.origin, "abc123"))
		})
	}
}
