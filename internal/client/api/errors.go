package api

import (
	"errors"
	"net/http"
)

// GenericFailureMessage is used when the server did not supply a message.
const GenericFailureMessage = "Request failed"

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrMalformedResponse = errors.New("malformed response")
)

// RequestError is returned for every failed request. Status is 0 when no
// response was received.
type RequestError struct {
	// Message is the server's "msg" field, empty if it sent none.
	Message string
	Status  int
	Err     error
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return GenericFailureMessage
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ServerMessage returns the message the server supplied for err, if any.
func ServerMessage(err error) (string, bool) {
	var re *RequestError
	if errors.As(err, &re) && re.Message != "" {
		return re.Message, true
	}
	return "", false
}

func statusError(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return nil
	}
}
