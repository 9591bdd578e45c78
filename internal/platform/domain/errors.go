package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies application errors so transports can map them to status codes.
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindNotFound    ErrorKind = "not_found"
	KindUnavailable ErrorKind = "unavailable"
	KindUpstream    ErrorKind = "upstream"
)

// AppError is the error type returned by application services.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewValidationError reports malformed client input.
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewNotFoundError reports a missing entity identified by id.
func NewNotFoundError(entity, id string) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found: %s", entity, id)}
}

// NewNotFoundMessage reports a not-found condition with a free-form message.
func NewNotFoundMessage(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// NewUnavailableError reports a dependency that was never configured or is down.
func NewUnavailableError(dependency string) *AppError {
	return &AppError{Kind: KindUnavailable, Message: fmt.Sprintf("%s is not available", dependency)}
}

// NewUpstreamError wraps a failure from an external collaborator.
func NewUpstreamError(message string, err error) *AppError {
	return &AppError{Kind: KindUpstream, Message: message, Err: err}
}

// KindOf returns the kind of the first AppError in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsNotFound reports whether err is a not-found AppError.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
