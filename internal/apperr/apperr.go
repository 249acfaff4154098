// Package apperr carries the API error taxonomy. Handlers translate these
// into HTTP responses; nothing in here knows about Fiber.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

type Kind int

const (
	KindValidation Kind = iota + 1 // malformed or policy-violating input
	KindAuth                       // invalid credentials or inactive account
	KindConflict                   // uniqueness violation
	KindNotFound                   // missing user/profile/skill
)

type Error struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Validation(message string) *Error { return New(KindValidation, message) }
func Auth(message string) *Error       { return New(KindAuth, message) }
func Conflict(message string) *Error   { return New(KindConflict, message) }
func NotFound(message string) *Error   { return New(KindNotFound, message) }

// ValidationFields wraps accumulated field errors into a single error value.
func ValidationFields(fields FieldErrors) *Error {
	return &Error{Kind: KindValidation, Message: "validation error", Fields: fields}
}

// ConflictField reports a uniqueness violation attributed to one field.
func ConflictField(field, message string) *Error {
	return &Error{Kind: KindConflict, Message: message, Fields: FieldErrors{field: {message}}}
}

func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// StatusCode maps an error to the HTTP status handlers respond with.
func StatusCode(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// FieldErrors accumulates per-field validation messages.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// Err returns nil when no field failed, otherwise a validation Error.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return ValidationFields(f)
}

// IsUniqueViolation reports whether err is a postgres duplicate-key error.
// The unique indexes are the backstop against concurrent duplicate inserts;
// this turns the race loser into a Conflict instead of a 500.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "unique constraint")
}
