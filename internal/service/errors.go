package service

import "errors"

// Error kinds. Every failure returned by the services either wraps one of
// these or is an internal fault.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Error is a classified failure with a message that is safe to show callers.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

var (
	ErrBadPassword        error = &Error{Kind: ErrUnauthorized, Message: "bad password"}
	ErrFolderNotFound     error = &Error{Kind: ErrNotFound, Message: "folder not found or expired"}
	ErrMessageNotFound    error = &Error{Kind: ErrNotFound, Message: "message not found"}
	ErrShareTokenNotFound error = &Error{Kind: ErrNotFound, Message: "share token not found or expired"}
)

func validationError(err error) error {
	return &Error{Kind: ErrValidation, Message: err.Error()}
}
