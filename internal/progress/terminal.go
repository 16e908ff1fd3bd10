package progress

import (
	"os"

	"golang.org/x/term"
)

// Detect inspects the terminal and environment. noColorFlag mirrors the
// --no-color command-line flag; NO_COLOR in the environment has the same
// effect.
func Detect(noColorFlag bool) TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	noColor := noColorFlag || os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("BLOGFORGE_ASCII") == "1"

	width := 0
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: !forceASCII,
		Width:           width,
	}
}

// SelectSymbols returns the symbol set matching the terminal capabilities.
func SelectSymbols(caps TerminalCapabilities) Symbols {
	if caps.SupportsUnicode {
		return Symbols{
			Checkmark:  "✓",
			Failure:    "✗",
			SpinnerSet: 14, // Unicode dots: ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏
		}
	}

	return Symbols{
		Checkmark:  "[OK]",
		Failure:    "[FAIL]",
		SpinnerSet: 9, // ASCII: | / - \
	}
}
