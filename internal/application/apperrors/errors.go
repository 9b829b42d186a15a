// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
	"strings"
)

// ValidationError indicates descriptor validation failed.
type ValidationError struct {
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s\n  - %s", e.Field, e.Message, strings.Join(e.Details, "\n  - "))
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// ConfigurationError indicates a descriptor file or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}

// DecisionError indicates an authorization request could not be evaluated
// (as opposed to being evaluated and denied).
type DecisionError struct {
	Cause       error
	Application string
	Resource    string
}

func (e *DecisionError) Error() string {
	return fmt.Sprintf("authorization check failed for %s on %s: %v", e.Application, e.Resource, e.Cause)
}

func (e *DecisionError) Unwrap() error {
	return e.Cause
}

// NewDecisionError creates a new decision error.
func NewDecisionError(application, resource string, cause error) *DecisionError {
	return &DecisionError{
		Application: application,
		Resource:    resource,
		Cause:       cause,
	}
}
