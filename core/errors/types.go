// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error raised before any network
// call; no state is mutated when one is returned
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// RemoteServiceError represents a non-success result from one of the external
// analysis collaborators; the operation aborts with no partial mutation
type RemoteServiceError struct {
	StatusCode int
	Message    string
	Service    string
}

// Error implements the error interface
func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("remote service error from %s: %d - %s", e.Service, e.StatusCode, e.Message)
}

// PartialDataWarning signals that a provider reported success but no rows
// survived normalization while row-level errors were returned. It is a soft
// warning: the working set is left unchanged.
type PartialDataWarning struct {
	Service string
	Errors  []string
}

// Error implements the error interface
func (e *PartialDataWarning) Error() string {
	return fmt.Sprintf("partial data from %s: no usable rows (%d provider errors)", e.Service, len(e.Errors))
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsRemoteService checks if an error is a RemoteServiceError
func IsRemoteService(err error) bool {
	var remoteErr *RemoteServiceError
	return errors.As(err, &remoteErr)
}

// IsPartialData checks if an error is a PartialDataWarning
func IsPartialData(err error) bool {
	var warn *PartialDataWarning
	return errors.As(err, &warn)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
