package utils

import (
	"context"
	"errors"
	"fmt"
)

// ErrorType is the category a command failure is reported under.
type ErrorType int

const (
	// SystemError covers store failures and anything unclassified.
	SystemError ErrorType = iota
	// UserError - validation failures, bad parameters
	UserError
	// NotFoundError - requested entity does not exist
	NotFoundError
	// PreconditionError - guild configuration missing or role lacking
	PreconditionError
	// PermissionError - caller lacks a guild permission
	PermissionError
	// CooldownError - per-member rate limit hit
	CooldownError
	// PlatformError - a Discord call failed
	PlatformError
	// ExternalServiceError - a third-party HTTP call failed or timed out
	ExternalServiceError
)

func (t ErrorType) String() string {
	switch t {
	case UserError:
		return "user"
	case NotFoundError:
		return "not_found"
	case PreconditionError:
		return "precondition"
	case PermissionError:
		return "permission"
	case CooldownError:
		return "cooldown"
	case PlatformError:
		return "platform"
	case ExternalServiceError:
		return "external"
	default:
		return "system"
	}
}

// Expected reports whether the failure is the caller's to fix. Expected
// errors are logged without the error chain.
func (t ErrorType) Expected() bool {
	switch t {
	case UserError, NotFoundError, PreconditionError, PermissionError, CooldownError:
		return true
	}
	return false
}

const GenericErrorMessage = "Something went wrong while handling your request."

// CommandError is a failure with a message that is safe to show the caller.
type CommandError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func NewUserError(format string, args ...any) error {
	return &CommandError{Type: UserError, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...any) error {
	return &CommandError{Type: NotFoundError, Message: fmt.Sprintf(format, args...)}
}

func NewPreconditionError(format string, args ...any) error {
	return &CommandError{Type: PreconditionError, Message: fmt.Sprintf(format, args...)}
}

func NewPermissionError(format string, args ...any) error {
	return &CommandError{Type: PermissionError, Message: fmt.Sprintf(format, args...)}
}

func NewCooldownError(format string, args ...any) error {
	return &CommandError{Type: CooldownError, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags err with a category and a caller-facing message.
func Wrap(t ErrorType, err error, message string) error {
	if err == nil {
		return nil
	}
	return &CommandError{Type: t, Message: message, Err: err}
}

// Classify returns the category and caller-facing message for err.
// Errors that were never classified render the generic message.
func Classify(err error) (ErrorType, string) {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Type, ce.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ExternalServiceError, "That took too long. Please try again."
	}
	return SystemError, GenericErrorMessage
}
