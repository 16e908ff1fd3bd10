package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows activity during long operations such as bulk validation or
// image optimization. On non-interactive outputs it degrades to plain
// single-line messages.
type Spinner struct {
	caps    TerminalCapabilities
	symbols Symbols
	spin    *spinner.Spinner

	// Writer receives all spinner output; defaults to stderr so command
	// results on stdout stay clean.
	Writer io.Writer
}

// NewSpinner creates a spinner sized to the terminal capabilities.
func NewSpinner(caps TerminalCapabilities) *Spinner {
	return &Spinner{
		caps:    caps,
		symbols: SelectSymbols(caps),
		Writer:  os.Stderr,
	}
}

// Start begins the spinner with a message. Non-TTY outputs get the message
// printed once instead of an animation.
func (s *Spinner) Start(message string) {
	if !s.caps.IsTTY {
		fmt.Fprintln(s.Writer, message)
		return
	}
	s.spin = spinner.New(
		spinner.CharSets[s.symbols.SpinnerSet],
		100*time.Millisecond,
	)
	s.spin.Writer = s.Writer
	s.spin.Suffix = " " + message
	s.spin.Start()
}

// Stop halts the animation without printing an outcome.
func (s *Spinner) Stop() {
	if s.spin != nil {
		s.spin.Stop()
		s.spin = nil
	}
}

// Success stops the spinner and prints a checkmarked message.
func (s *Spinner) Success(message string) {
	s.Stop()
	fmt.Fprintf(s.Writer, "%s %s\n", s.symbols.Checkmark, message)
}

// Fail stops the spinner and prints a failure-marked message.
func (s *Spinner) Fail(message string) {
	s.Stop()
	fmt.Fprintf(s.Writer, "%s %s\n", s.symbols.Failure, message)
}
