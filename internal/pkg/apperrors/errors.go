package apperrors

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable failure category. Callers branch on Kind
// instead of matching message strings.
type Kind string

const (
	KindFormat           Kind = "format_error"
	KindInconsistentData Kind = "inconsistent_data"
	KindValidation       Kind = "validation_error"
	KindNotFound         Kind = "not_found"
	KindStorage          Kind = "storage_error"
	KindGeneration       Kind = "generation_error"
	KindInternal         Kind = "internal_error"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, optional
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Format(message string, err error) *Error {
	return &Error{Kind: KindFormat, Message: message, Err: err}
}

func InconsistentData(message string, err error) *Error {
	return &Error{Kind: KindInconsistentData, Message: message, Err: err}
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

func Generation(message string, err error) *Error {
	return &Error{Kind: KindGeneration, Message: message, Err: err}
}

// KindOf extracts the Kind from any error in the chain, defaulting to
// KindInternal for untagged errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
