// Package build carries version metadata injected at link time.
package build

// Set via -ldflags at release time; defaults identify a source build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
