// Package errors provides categorized CLI errors with remediation guidance.
// Every user-facing failure is a CLIError so commands can print a consistent
// "what went wrong / how to fix it" block and map to a stable exit code.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies a CLI error for exit-code mapping and display.
type ErrorCategory int

const (
	// Argument indicates invalid or missing command arguments/flags.
	Argument ErrorCategory = iota
	// Configuration indicates a problem with the project configuration.
	Configuration
	// Prerequisite indicates a missing file, directory, or tool.
	Prerequisite
	// Runtime indicates a failure during command execution.
	Runtime
)

// String returns the display name for the category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a user-facing error with remediation steps.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Remediation []string
	Usage       string
	Err         error // wrapped cause, if any
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause for errors.Is/As chains.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentError creates an Argument-category error.
func NewArgumentError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Remediation: remediation}
}

// NewArgumentErrorWithUsage creates an Argument-category error with a usage line.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// NewConfigError creates a Configuration-category error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewPrerequisiteError creates a Prerequisite-category error.
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Prerequisite, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a Runtime-category error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}

// Wrap converts err into a CLIError with the given category.
// Returns nil when err is nil so call sites can wrap unconditionally.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	if cli := AsCLIError(err); cli != nil {
		wrapped := *cli
		wrapped.Category = category
		wrapped.Remediation = append(wrapped.Remediation, remediation...)
		return &wrapped
	}
	return &CLIError{Category: category, Message: err.Error(), Remediation: remediation, Err: err}
}

// WrapWithMessage wraps err with a contextual message prefix.
// Returns nil when err is nil.
func WrapWithMessage(err error, category ErrorCategory, message string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category: category,
		Message:  fmt.Sprintf("%s: %s", message, err.Error()),
		Err:      err,
	}
}

// IsCLIError reports whether err is (or wraps) a CLIError.
func IsCLIError(err error) bool {
	var cli *CLIError
	return errors.As(err, &cli)
}

// AsCLIError returns the CLIError in err's chain, or nil.
func AsCLIError(err error) *CLIError {
	var cli *CLIError
	if errors.As(err, &cli) {
		return cli
	}
	return nil
}
