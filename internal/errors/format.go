package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	cRed  = color.New(color.FgRed).SprintFunc()
	cBold = color.New(color.Bold).SprintFunc()
)

// FormatError renders a CLIError as a color-annotated block:
// category + message, optional usage line, numbered remediation steps.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	return format(err, cRed, cBold)
}

// FormatErrorPlain renders a CLIError without any color codes.
// Used for non-TTY output and logs.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	plain := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return format(err, plain, plain)
}

func format(err *CLIError, category, heading func(...interface{}) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", category(err.Category.String()), err.Message)
	if err.Usage != "" {
		fmt.Fprintf(&b, "\nUsage: %s\n", err.Usage)
	}
	if len(err.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", heading("To fix this:"))
		for i, step := range err.Remediation {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
	}
	return b.String()
}

// FormatSimpleError renders any error under a category heading without
// remediation. Used for errors that arrive from outside the CLIError taxonomy.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s\n", cRed(category.String()), err.Error())
}

// PrintError writes the formatted error to stderr. Nil is a no-op.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError writes the formatted error to w. Nil is a no-op.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
