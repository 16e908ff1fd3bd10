// Package shared provides constants and types used across CLI subpackages.
// This package has no dependencies on other CLI packages to avoid circular imports.
package shared

import (
	stderrors "errors"
	"fmt"

	"github.com/lord007tn/BlogForge-sub000/internal/errors"
)

// Command group IDs for organizing help output
const (
	GroupGettingStarted = "getting-started"
	GroupContent        = "content"
	GroupMedia          = "media"
	GroupInsights       = "insights"
)

// Exit codes for CLI commands
const (
	ExitSuccess          = 0
	ExitRuntime          = 1
	ExitArguments        = 2
	ExitConfiguration    = 3
	ExitValidationFailed = 4
	ExitPrerequisite     = 5
)

// exitError is an error that carries an exit code.
// Commands print their own diagnostics before returning one, so Execute
// must not print it again.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates an error that signals a specific exit code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// IsExitError reports whether err is a bare exit-code signal whose
// diagnostics were already written.
func IsExitError(err error) bool {
	var exitErr *exitError
	return stderrors.As(err, &exitErr)
}

// ExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitRuntime for unrecognized errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *exitError
	if stderrors.As(err, &exitErr) {
		return exitErr.code
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		return CategoryExitCode(cliErr.Category)
	}
	return ExitRuntime
}

// CategoryExitCode maps an error category to its exit code.
func CategoryExitCode(category errors.ErrorCategory) int {
	switch category {
	case errors.Argument:
		return ExitArguments
	case errors.Configuration:
		return ExitConfiguration
	case errors.Prerequisite:
		return ExitPrerequisite
	default:
		return ExitRuntime
	}
}
