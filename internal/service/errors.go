package service

import "errors"

// Kind classifies a workflow failure for HTTP mapping
type Kind int

const (
	KindInvalidRequest Kind = iota // malformed, missing or illegal input
	KindNotFound                   // referenced entity absent or not owned by caller
	KindConflict                   // uniqueness or duplicate-state violation
)

// Error is a workflow failure with a user-facing message. Anything else
// escaping a service is treated as a server error by the handlers.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func InvalidRequest(message string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// AsError unwraps a workflow error from an error chain
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
