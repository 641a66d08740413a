package cli

import (
	"errors"

	"github.com/dmitrijs2005/securenote/internal/client/api"
	"github.com/dmitrijs2005/securenote/internal/client/notes"
	"github.com/dmitrijs2005/securenote/internal/client/services"
)

var localErrors = []error{
	notes.ErrEmptyPassword,
	notes.ErrNotAuthenticated,
	notes.ErrCreatePending,
	notes.ErrNoNote,
}

// userMessage turns err into the text shown to the user: the server's own
// message when it sent one, the reason for input rejected locally, or the
// generic failure text.
func userMessage(err error) string {
	if msg, ok := api.ServerMessage(err); ok {
		return msg
	}
	if errors.Is(err, services.ErrValidation) {
		return err.Error()
	}
	for _, le := range localErrors {
		if errors.Is(err, le) {
			return le.Error()
		}
	}
	return api.GenericFailureMessage
}
