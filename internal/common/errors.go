package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")

	// ErrExtraction marks a document that could not be parsed. Jobs hitting
	// it go straight to FAILED; the content is wrong, retrying won't help.
	ErrExtraction = errors.New("extraction failed")

	// ErrTransientInfra marks queue/worker I/O failures that are retried
	// with backoff up to the configured attempt limit.
	ErrTransientInfra = errors.New("transient infrastructure failure")

	// ErrInvariantViolation marks a rejected state-machine transition, e.g.
	// resolving an already-resolved alert. State is never partially applied.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrActionBlocked is not a fault: a caller attempted a business action
	// a workflow lock currently blocks.
	ErrActionBlocked = errors.New("action blocked by workflow lock")

	// ErrDuplicatePending reports the unique constraint on pending alert
	// signatures firing: another writer created the signature's pending
	// alert first. Callers fold the violation into the winner's alert.
	ErrDuplicatePending = errors.New("pending alert already exists for signature")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewExtractionError wraps a document-content failure so the worker pool can
// distinguish it from transient infrastructure errors.
func NewExtractionError(message string, cause error) error {
	return &AppError{Code: "EXTRACTION_FAILED", Message: message, Cause: errors.Join(ErrExtraction, cause)}
}

// NewTransientError wraps an infrastructure failure eligible for retry.
func NewTransientError(message string, cause error) error {
	return &AppError{Code: "TRANSIENT_INFRA", Message: message, Cause: errors.Join(ErrTransientInfra, cause)}
}

// NewInvariantViolation reports a rejected transition. The message names the
// transition so audit logs are useful.
func NewInvariantViolation(message string) error {
	return &AppError{Code: "INVARIANT_VIOLATION", Message: message, Cause: ErrInvariantViolation}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func FailedPreconditionError(message string) error {
	return status.Error(codes.FailedPrecondition, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
