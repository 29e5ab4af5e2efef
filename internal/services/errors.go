package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/monocle-dev/rentals/internal/store"
)

var (
	ErrValidation      = errors.New("invalid input")
	ErrUserNotFound    = errors.New("User not found")
	ErrProductNotFound = errors.New("Product not found")
)

// Kind is the error category surfaced to clients.
type Kind string

const (
	KindValidation  Kind = "VALIDATION"
	KindNotFound    Kind = "NOT_FOUND"
	KindConstraint  Kind = "CONSTRAINT_VIOLATION"
	KindUnavailable Kind = "STORE_UNAVAILABLE"
	KindInternal    Kind = "INTERNAL"
)

// ValidationError lists the rejected input fields. It matches ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, e.Fields[name])
	}

	return "Invalid input: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// OperationError carries the generic, human-readable message for a failed
// operation while keeping the cause reachable through errors.Is.
type OperationError struct {
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func failure(message string, err error) error {
	return &OperationError{Message: message, Err: err}
}

// Describe maps err onto a Kind and the message that is safe to return to
// a client. Internal causes are never part of the message.
func Describe(err error) (Kind, string) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return KindValidation, validationErr.Error()
	}

	switch {
	case errors.Is(err, ErrUserNotFound):
		return KindNotFound, ErrUserNotFound.Error()
	case errors.Is(err, ErrProductNotFound):
		return KindNotFound, ErrProductNotFound.Error()
	}

	kind := KindInternal
	message := "Internal server error"

	switch {
	case errors.Is(err, store.ErrNotFound):
		kind, message = KindNotFound, "Not found"
	case errors.Is(err, store.ErrConstraintViolation):
		kind, message = KindConstraint, "Request conflicts with existing data"
	case errors.Is(err, store.ErrStoreUnavailable):
		kind, message = KindUnavailable, "Service temporarily unavailable"
	}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		message = opErr.Message
	}

	return kind, message
}

// Outcome is the metrics label for err.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	kind, _ := Describe(err)
	return string(kind)
}
