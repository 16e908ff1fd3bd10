package errors

import "fmt"

// Structured error constructors for common blogforge failures.
// Keeping these in one place ensures consistent wording and remediation
// steps across commands.

// ProjectNotFound indicates no blogforge project could be located.
func ProjectNotFound() *CLIError {
	return NewPrerequisiteError(
		"no blogforge project found in this directory or any parent",
		"run 'blogforge init' to scaffold a new project",
		"or cd into an existing project (a directory with a blogforge config or package.json)",
		"or pass --root <path> to point at the project explicitly",
	)
}

// MissingSlugArgument indicates a command that needs a record slug was called without one.
func MissingSlugArgument(collection string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("missing %s slug", collection),
		fmt.Sprintf("blogforge %s <command> <slug>", collection),
		fmt.Sprintf("run 'blogforge %s list' to see available slugs", collection),
	)
}

// InvalidSetFlag indicates a malformed --set key=value pair.
func InvalidSetFlag(pair string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid --set value %q", pair),
		"--set key=value",
		"separate the field name and value with '='",
		"quote values containing spaces, e.g. --set title='My Post'",
	)
}

// SlugExists indicates a create would overwrite an existing record.
func SlugExists(collection, slug string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("%s %q already exists", collection, slug),
		"choose a different slug with --slug",
		fmt.Sprintf("or edit the existing record: blogforge %s edit %s", collection, slug),
	)
}

// SlugNotFound indicates the named record does not exist.
func SlugNotFound(collection, slug string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("no %s found with slug %q", collection, slug),
		fmt.Sprintf("run 'blogforge %s list' to see available slugs", collection),
	)
}

// DeleteNotConfirmed indicates a delete was attempted without confirmation.
func DeleteNotConfirmed(collection, slug string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("deleting %s %q requires confirmation", collection, slug),
		"re-run with --yes to confirm",
	)
}

// DirectoryNotFound indicates a configured content directory is missing.
func DirectoryNotFound(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("directory not found: %s", path),
		"run 'blogforge init' to create the configured directories",
		"or fix the 'directories' section of your blogforge config",
	)
}

// FileNotWritable indicates a content file could not be written.
func FileNotWritable(path string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("cannot write file: %s", path),
		"check permissions on the content directory",
	)
}

// ImageNotFound indicates the named image does not exist under the images directory.
func ImageNotFound(path string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("image not found: %s", path),
		"run 'blogforge images unused' to list known images",
	)
}

// UnsupportedImageFormat indicates a convert target this build cannot encode.
func UnsupportedImageFormat(format string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("unsupported image format %q", format),
		"supported output formats: jpg, png",
	)
}
