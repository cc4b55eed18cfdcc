package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that the requested resource does not exist.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that the request is malformed or a parameter does not match its schema.
	ErrBadParameter = "bad_parameter"
)

// APIError represents an error within the context of the master server.
type APIError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewAPIError creates a new APIError.
func NewAPIError(code string, message string, inner error) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// NewInternalServerError returns inner unchanged if it already is an APIError.
func NewInternalServerError(message string, inner error) *APIError {
	if apiInner := ToAPIError(inner); apiInner != nil {
		return apiInner
	}

	return NewAPIError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *APIError {
	if apiInner := ToAPIError(inner); apiInner != nil {
		return apiInner
	}

	return NewAPIError(ErrEntityNotFound, message, inner)
}

// NewBadParameterError is the MalformedRequest error of the announce operation.
func NewBadParameterError(message string, inner error) *APIError {
	if apiInner := ToAPIError(inner); apiInner != nil {
		return apiInner
	}

	return NewAPIError(ErrBadParameter, message, inner)
}

func (e APIError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e APIError) Unwrap() error {
	return e.Inner
}

// ToAPIError returns a pointer to an APIError, or nil if err does not wrap one.
func ToAPIError(err error) *APIError {
	var e *APIError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToAPIErrorCode returns the code of the error, if available.
func ToAPIErrorCode(err error) string {
	if apiErr := ToAPIError(err); apiErr != nil {
		return apiErr.Code
	}
	return ""
}

func IsAPIError(err error, code string) bool {
	return ToAPIErrorCode(err) == code && code != ""
}

func IsInternalServerError(err error) bool {
	return IsAPIError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsAPIError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsAPIError(err, ErrBadParameter)
}
