package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so the HTTP layer can map it to a status code and
// a stable wire errorType without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindReference
	KindNotFound
	KindConflict
	KindState
	KindNoTemplate
)

// Error is the tagged error returned by all domain operations. Callers branch
// on Kind, never on the message.
type Error struct {
	Kind    Kind
	Message string
	wrapped error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.wrapped
}

// New creates a tagged error with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags an underlying error, keeping it reachable via errors.Is/As.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), wrapped: err}
}

func Validation(format string, args ...any) *Error { return New(KindValidation, format, args...) }
func Reference(format string, args ...any) *Error  { return New(KindReference, format, args...) }
func NotFound(format string, args ...any) *Error   { return New(KindNotFound, format, args...) }
func Conflict(format string, args ...any) *Error   { return New(KindConflict, format, args...) }
func State(format string, args ...any) *Error      { return New(KindState, format, args...) }
func NoTemplate(format string, args ...any) *Error { return New(KindNoTemplate, format, args...) }

// KindOf extracts the Kind from an error chain. Anything untagged is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether the error chain carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ErrorType returns the wire errorType string for the error envelope.
func ErrorType(err error) string {
	switch KindOf(err) {
	case KindValidation:
		return "ValidationError"
	case KindReference:
		return "ReferenceError"
	case KindNotFound:
		return "NotFoundError"
	case KindConflict:
		return "ConflictError"
	case KindState:
		return "StateError"
	case KindNoTemplate:
		return "NoTemplateError"
	default:
		return "InternalError"
	}
}

// HTTPStatus maps the error chain to a response status code. Reference errors
// are dependency failures surfaced to the caller as a bad request, not a 404.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindReference, KindState:
		return http.StatusBadRequest
	case KindNotFound, KindNoTemplate:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
