package shared

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prompts for a yes/no answer and reports whether the user agreed.
// Anything other than y/yes, including a closed stdin, counts as no.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
