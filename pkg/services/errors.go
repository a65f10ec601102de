package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrStateConflict is returned when a lifecycle transition's precondition
	// does not hold (e.g. starting a task that is not assigned)
	ErrStateConflict = errors.New("state conflict")

	// ErrForbidden is returned when the actor is not the task's current
	// assignee on a holder-only operation
	ErrForbidden = errors.New("forbidden")

	// ErrClaimUnavailable is returned when the atomic claim found no eligible
	// row: the task vanished, was already claimed, or its dependencies are
	// not all completed
	ErrClaimUnavailable = errors.New("claim unavailable")

	// ErrCapExceeded is returned when the per-agent concurrency cap is reached
	ErrCapExceeded = errors.New("agent concurrency cap exceeded")

	// ErrRetriesExhausted is returned when a retry is requested for a task
	// whose retry budget is spent
	ErrRetriesExhausted = errors.New("retries exhausted")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DependencyError reports an invalid dependency set: a self-reference, a
// duplicate, a reference to a missing or foreign task, or a cycle.
type DependencyError struct {
	Reason string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("invalid dependencies: %s", e.Reason)
}

// NewDependencyError creates a new dependency error
func NewDependencyError(format string, args ...any) error {
	return &DependencyError{Reason: fmt.Sprintf(format, args...)}
}

// IsDependencyError checks if an error is a dependency error
func IsDependencyError(err error) bool {
	var de *DependencyError
	return errors.As(err, &de)
}
