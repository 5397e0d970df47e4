// Package bind structured error types for the binding surface
package bind

import (
	"fmt"
)

// ErrorType represents categories of binding errors
type ErrorType int

const (
	// A name was looked up that has not been registered
	ErrTypeNotRegistered ErrorType = iota
	// A name was registered twice
	ErrTypeDuplicate
	// A function was invoked with the wrong number of arguments
	ErrTypeArity
	// A registration carried a malformed or unsupported signature
	ErrTypeSignature
)

// Error represents a structured binding error with context
type Error struct {
	Type    ErrorType
	Op      string // Operation or function name involved
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bind %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("bind %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeNotRegistered:
		return "NotRegistered"
	case ErrTypeDuplicate:
		return "Duplicate"
	case ErrTypeArity:
		return "Arity"
	case ErrTypeSignature:
		return "Signature"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewNotRegisteredError reports a lookup of an unknown function name
func NewNotRegisteredError(name string) error {
	return &Error{
		Type:    ErrTypeNotRegistered,
		Op:      name,
		Message: "no function registered under this name",
	}
}

// NewDuplicateError reports a second registration of a name
func NewDuplicateError(name string) error {
	return &Error{
		Type:    ErrTypeDuplicate,
		Op:      name,
		Message: "name already registered",
	}
}

// NewSignatureError reports a registration with an unsupported descriptor
func NewSignatureError(name, sig string) error {
	return &Error{
		Type:    ErrTypeSignature,
		Op:      name,
		Message: fmt.Sprintf("unsupported signature %q", sig),
	}
}

// NewArityError reports an invocation with the wrong argument count
func NewArityError(name string, want, got int) error {
	return &Error{
		Type:    ErrTypeArity,
		Op:      name,
		Message: fmt.Sprintf("expected %d arguments, got %d", want, got),
	}
}

// IsNotRegistered checks if an error is an unknown-name error
func IsNotRegistered(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeNotRegistered
	}
	return false
}

// IsDuplicate checks if an error is a duplicate-registration error
func IsDuplicate(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeDuplicate
	}
	return false
}

// IsArityError checks if an error is an argument-count error
func IsArityError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeArity
	}
	return false
}

// IsSignatureError checks if an error is an unsupported-descriptor error
func IsSignatureError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrTypeSignature
	}
	return false
}
