package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP layer. Everything that crosses a
// service boundary is one of these; anything else is treated as a store
// failure.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindDenied
	KindConfiguration
	KindStore
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NewValidationf(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

// NewDenied carries a fixed message so a denial never reveals whether
// the target record exists.
func NewDenied() *AppError {
	return &AppError{Kind: KindDenied, Message: "access denied"}
}

func NewConfiguration(msg string) *AppError {
	return &AppError{Kind: KindConfiguration, Message: msg}
}

func NewStore(err error) *AppError {
	return &AppError{Kind: KindStore, Message: "store failure", Err: err}
}

// KindOf reports the kind of err, or KindStore when err is not an AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsDenied(err error) bool {
	return KindOf(err) == KindDenied
}
