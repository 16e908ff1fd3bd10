package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer is the shared output helper. Results go to Out, diagnostics to
// Err; marks and prefixes are colored only when the terminal supports it.
type Printer struct {
	Out io.Writer
	Err io.Writer

	symbols Symbols
	green   func(a ...any) string
	red     func(a ...any) string
	yellow  func(a ...any) string
}

// NewPrinter creates a printer bound to stdout/stderr.
func NewPrinter(caps TerminalCapabilities) *Printer {
	green, red, yellow := sprintFuncs(caps.SupportsColor)
	return &Printer{
		Out:     os.Stdout,
		Err:     os.Stderr,
		symbols: SelectSymbols(caps),
		green:   green,
		red:     red,
		yellow:  yellow,
	}
}

// Check returns the color-aware success mark.
func (p *Printer) Check() string {
	if p.symbols.Checkmark == "✓" {
		return p.green(p.symbols.Checkmark)
	}
	return p.symbols.Checkmark
}

// Cross returns the color-aware failure mark.
func (p *Printer) Cross() string {
	if p.symbols.Failure == "✗" {
		return p.red(p.symbols.Failure)
	}
	return p.symbols.Failure
}

// Infof writes a plain line to Out.
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Successf writes a checkmarked line to Out.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", p.Check(), fmt.Sprintf(format, args...))
}

// Failuref writes a failure-marked line to Out.
func (p *Printer) Failuref(format string, args ...any) {
	fmt.Fprintf(p.Out, "%s %s\n", p.Cross(), fmt.Sprintf(format, args...))
}

// Warnf writes a yellow Warning: line to Err.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintf(p.Err, "%s %s\n", p.yellow("Warning:"), fmt.Sprintf(format, args...))
}

// Errorf writes a red Error: line to Err.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintf(p.Err, "%s %s\n", p.red("Error:"), fmt.Sprintf(format, args...))
}

func sprintFuncs(enabled bool) (green, red, yellow func(a ...any) string) {
	if !enabled {
		return fmt.Sprint, fmt.Sprint, fmt.Sprint
	}
	return color.New(color.FgGreen).SprintFunc(),
		color.New(color.FgRed).SprintFunc(),
		color.New(color.FgYellow).SprintFunc()
}
