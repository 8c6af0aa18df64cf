// Package errors provides structured error types and exit codes for cgoconf.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess          = 0 // Success
	ExitRuntimeError     = 1 // Runtime error (unreadable file, etc.)
	ExitConfigError      = 2 // Configuration error (invalid request, unknown dependency shape, etc.)
	ExitEnvironmentError = 3 // Environment error (toolchain cannot compile native code, etc.)
)

// The two conditions that abort a resolution. Both describe a
// misconfiguration, so retrying with the same inputs fails the same way.
var (
	ErrToolchainUnsupported   = stderrors.New("toolchain does not support native compilation")
	ErrUnknownDependencyShape = stderrors.New("dependency has neither C/C++ nor Objective-C information")
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindEnvironment
)

// CgoconfError is the base error type for cgoconf.
type CgoconfError struct {
	Kind    ErrorKind
	Message string
	Target  string // Dependency label or toolchain name if applicable
	Cause   error  // Underlying error
}

func (e *CgoconfError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("[%s] %s", e.Target, e.Message)
	}
	return e.Message
}

func (e *CgoconfError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *CgoconfError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *CgoconfError {
	return &CgoconfError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *CgoconfError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *CgoconfError {
	return &CgoconfError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *CgoconfError {
	return Config(fmt.Sprintf(format, args...))
}

// Validation wraps a schema or field validation failure.
func Validation(err error) *CgoconfError {
	return &CgoconfError{
		Kind:    KindValidation,
		Message: err.Error(),
		Cause:   err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *CgoconfError {
	return &CgoconfError{
		Kind:    KindRuntime,
		Message: fmt.Sprintf("%s: %v", message, err),
		Cause:   err,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *CgoconfError {
	return &CgoconfError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// ToolchainUnsupported reports a toolchain without native compilation support.
func ToolchainUnsupported(toolchain string) *CgoconfError {
	return &CgoconfError{
		Kind:    KindEnvironment,
		Message: ErrToolchainUnsupported.Error(),
		Target:  toolchain,
		Cause:   ErrToolchainUnsupported,
	}
}

// UnknownDependencyShape reports a dependency matching no known capability.
func UnknownDependencyShape(label string) *CgoconfError {
	return &CgoconfError{
		Kind:    KindConfig,
		Message: ErrUnknownDependencyShape.Error(),
		Target:  label,
		Cause:   ErrUnknownDependencyShape,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ce *CgoconfError
	if stderrors.As(err, &ce) {
		return ce.ExitCode()
	}
	return ExitRuntimeError
}
