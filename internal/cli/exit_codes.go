package cli

import (
	"github.com/lord007tn/BlogForge-sub000/internal/cli/shared"
)

// Exit codes for the blogforge CLI (re-exported from shared)
// These codes support scripting and CI integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = shared.ExitSuccess

	// ExitRuntime indicates an I/O or other runtime failure
	ExitRuntime = shared.ExitRuntime

	// ExitArguments indicates invalid command arguments
	ExitArguments = shared.ExitArguments

	// ExitConfiguration indicates an unusable project configuration
	ExitConfiguration = shared.ExitConfiguration

	// ExitValidationFailed indicates content failed schema validation
	ExitValidationFailed = shared.ExitValidationFailed

	// ExitPrerequisite indicates no project was found to operate on
	ExitPrerequisite = shared.ExitPrerequisite
)

// NewExitError creates a new exit error with the given code (re-exported from shared).
func NewExitError(code int) error {
	return shared.NewExitError(code)
}

// ExitCode returns the exit code from an error (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}

// IsExitError reports whether err is a bare exit-code signal whose
// diagnostics were already written (re-exported from shared).
func IsExitError(err error) bool {
	return shared.IsExitError(err)
}
