// Package apperr defines the error taxonomy surfaced by domain services.
// Handlers map each kind to an HTTP status code.
package apperr

import "errors"

type Kind int

const (
	// Unexpected covers storage or identity-provider failures.
	Unexpected Kind = iota
	// Unauthenticated means the request carried no valid token.
	Unauthenticated
	// Forbidden means the token was valid but the role or ownership check failed.
	Forbidden
	// NotFound means the referenced entity does not exist.
	NotFound
	// Conflict means a uniqueness rule was violated (duplicate email).
	Conflict
	// Invalid means the input was malformed.
	Invalid
)

// Error carries a kind plus a user-facing message. An optional cause is
// preserved for logging and errors.Is/As chains.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Unauthenticatedf(message string) *Error { return New(Unauthenticated, message) }
func Forbiddenf(message string) *Error       { return New(Forbidden, message) }
func NotFoundf(message string) *Error        { return New(NotFound, message) }
func Conflictf(message string) *Error        { return New(Conflict, message) }
func Invalidf(message string) *Error         { return New(Invalid, message) }

// KindOf extracts the kind from err, defaulting to Unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unexpected
}

// MessageOf extracts the user-facing message from err. Unexpected errors
// deliberately get a generic message so internals never leak to clients.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Unexpected {
		return e.Message
	}
	return "Internal server error"
}
