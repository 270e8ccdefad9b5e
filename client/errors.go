package client

import "errors"

type ErrorKind string

const (
	// KindNetwork covers transport failures where no response arrived.
	KindNetwork ErrorKind = "network"
	// KindHTTP covers non-2xx responses.
	KindHTTP ErrorKind = "http"
	// KindValidation covers failures raised before any network call.
	KindValidation ErrorKind = "validation"
)

// Error is the single error type returned by every client method.
// Callers branch on Kind; Message carries the server's text when the
// body had an error or message field, otherwise a status fallback.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// AsError unwraps err into *Error when possible.
func AsError(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

func networkErr(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error()}
}

func validationErr(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}
