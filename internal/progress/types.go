// Package progress provides terminal capability detection, a spinner for
// long-running operations, and the color-aware printer shared by every
// command.
package progress

// TerminalCapabilities encapsulates detected terminal features.
type TerminalCapabilities struct {
	// IsTTY indicates whether stdout is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether ANSI color codes should be emitted
	SupportsColor bool
	// SupportsUnicode indicates whether Unicode symbols should be emitted
	SupportsUnicode bool
	// Width is the terminal width in columns (0 if unknown/pipe)
	Width int
}

// Symbols defines the character set for visual indicators.
type Symbols struct {
	// Checkmark is the success indicator ("✓" or "[OK]")
	Checkmark string
	// Failure is the failure indicator ("✗" or "[FAIL]")
	Failure string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
