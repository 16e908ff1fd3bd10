// Package progress_test tests spinner fallback rendering and the shared
// printer.
// Related: internal/progress/display.go, internal/progress/formatter.go
// Tags: progress, display, spinner, printer, tty
package progress_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lord007tn/BlogForge-sub000/internal/progress"
)

func plainCaps() progress.TerminalCapabilities {
	return progress.TerminalCapabilities{IsTTY: false, SupportsColor: false, SupportsUnicode: true}
}

func newTestPrinter() (*progress.Printer, *bytes.Buffer, *bytes.Buffer) {
	p := progress.NewPrinter(plainCaps())
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	p.Out = out
	p.Err = errOut
	return p, out, errOut
}

func TestSpinner_NonTTYPrintsPlainMessages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := progress.NewSpinner(plainCaps())
	s.Writer = &buf

	s.Start("validating articles")
	s.Success("12 of 12 files valid")

	assert.Equal(t, "validating articles\n✓ 12 of 12 files valid\n", buf.String())
}

func TestSpinner_FailMark(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := progress.NewSpinner(plainCaps())
	s.Writer = &buf

	s.Start("optimizing images")
	s.Fail("2 images could not be decoded")

	assert.Contains(t, buf.String(), "✗ 2 images could not be decoded")
}

func TestSpinner_StopWithoutStartIsSafe(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := progress.NewSpinner(plainCaps())
	s.Writer = &buf

	s.Stop()
	assert.Empty(t, buf.String())
}

func TestPrinter_RoutesOutputStreams(t *testing.T) {
	t.Parallel()

	p, out, errOut := newTestPrinter()

	p.Infof("3 articles")
	p.Successf("%s is valid", "articles/go-generics.md")
	p.Failuref("%s has %d error(s)", "articles/draft.md", 2)
	p.Warnf("could not parse %s", "blogforge.config.yaml")
	p.Errorf("unknown collection %q", "recipes")

	assert.Equal(t,
		"3 articles\n"+
			"✓ articles/go-generics.md is valid\n"+
			"✗ articles/draft.md has 2 error(s)\n",
		out.String())
	assert.Equal(t,
		"Warning: could not parse blogforge.config.yaml\n"+
			"Error: unknown collection \"recipes\"\n",
		errOut.String())
}

func TestPrinter_ASCIISymbols(t *testing.T) {
	t.Parallel()

	p := progress.NewPrinter(progress.TerminalCapabilities{SupportsUnicode: false})
	out := &bytes.Buffer{}
	p.Out = out

	p.Successf("done")
	p.Failuref("broken")

	assert.Equal(t, "[OK] done\n[FAIL] broken\n", out.String())
}
