package domain

import "errors"

type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindUnauthorized      ErrorKind = "unauthorized"
	KindForbidden         ErrorKind = "forbidden"
	KindValidation        ErrorKind = "validation"
	KindConflict          ErrorKind = "conflict"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindInternal          ErrorKind = "internal"
)

// Error is a typed failure carrying enough information for the HTTP layer
// to pick a status code without inspecting message text.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrVehicleNotFound = &Error{Kind: KindNotFound, Message: "vehicle not found"}
	ErrBookingNotFound = &Error{Kind: KindNotFound, Message: "booking not found"}
	ErrUserNotFound    = &Error{Kind: KindNotFound, Message: "user not found"}

	ErrUnauthorized       = &Error{Kind: KindUnauthorized, Message: "authentication required"}
	ErrInvalidCredentials = &Error{Kind: KindUnauthorized, Message: "invalid email or password"}
	ErrForbidden          = &Error{Kind: KindForbidden, Message: "you do not have permission to perform this action"}

	ErrVehicleUnavailable = &Error{Kind: KindConflict, Message: "vehicle is not available"}
	ErrDateOverlap        = &Error{Kind: KindConflict, Message: "vehicle already has an active booking for the requested dates"}
	ErrEmailTaken         = &Error{Kind: KindConflict, Message: "email is already registered"}

	ErrBookingNotActive = &Error{Kind: KindInvalidTransition, Message: "booking is no longer active"}
)

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func InvalidTransition(msg string) *Error {
	return &Error{Kind: KindInvalidTransition, Message: msg}
}

// KindOf extracts the error kind, defaulting to KindInternal for errors
// that did not originate in this package.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
