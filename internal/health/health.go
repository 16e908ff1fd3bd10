// Package health runs project health checks for the doctor command.
package health

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"github.com/lord007tn/BlogForge-sub000/internal/build"
	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/project"
	"github.com/lord007tn/BlogForge-sub000/internal/schema"
)

// CheckResult is the outcome of a single health check.
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
	Details []string
}

// Report contains all check results. Passed is false when any check failed.
type Report struct {
	Checks []CheckResult
	Passed bool
}

func (r *Report) add(res CheckResult) {
	r.Checks = append(r.Checks, res)
	if !res.Passed {
		r.Passed = false
	}
}

// RunChecks resolves the project from rootOverride (empty means walk up
// from the working directory) and runs every check against it. When no
// project is found the report contains only the failed root check.
func RunChecks(rootOverride string) *Report {
	report := &Report{Passed: true}

	root, err := project.Resolve(rootOverride)
	if err == nil && !project.IsRoot(root) {
		err = fmt.Errorf("%s does not look like a blogforge project", root)
	}
	if err != nil {
		report.add(CheckResult{
			Name:    "Project root",
			Message: err.Error(),
			Details: []string{"run 'blogforge init' inside your blog repository to scaffold one"},
		})
		return report
	}
	report.add(CheckResult{Name: "Project root", Passed: true, Message: root})

	load := config.Load(root)
	report.add(CheckConfigFile(load))
	report.add(CheckConfigShape(load))

	cfg := load.Config
	for _, collection := range config.Collections {
		report.add(CheckDirectory(collection+" directory", cfg.DirFor(collection)))
	}
	report.add(CheckDirectory("images directory", cfg.ImagesDir()))
	report.add(CheckImagesWritable(cfg))

	user, userCheck := CheckUserSchemaFile(root)
	report.add(userCheck)
	report.add(CheckSchemasCompile(cfg, user))
	report.add(CheckMinVersion(cfg))

	return report
}

// CheckConfigFile reports which configuration candidate won. Running on
// defaults is a pass; doctor only flags it.
func CheckConfigFile(load *config.LoadResult) CheckResult {
	if load.Source == "" {
		return CheckResult{
			Name:    "Config file",
			Passed:  true,
			Message: "no config file found; using built-in defaults",
		}
	}
	return CheckResult{
		Name:    "Config file",
		Passed:  true,
		Message: fmt.Sprintf("using %s", filepath.Base(load.Source)),
	}
}

// CheckConfigShape fails when configuration resolution produced warnings.
func CheckConfigShape(load *config.LoadResult) CheckResult {
	if len(load.Warnings) == 0 {
		return CheckResult{Name: "Config shape", Passed: true, Message: "configuration resolves cleanly"}
	}
	return CheckResult{
		Name:    "Config shape",
		Message: fmt.Sprintf("%d warning(s) during configuration resolution", len(load.Warnings)),
		Details: load.Warnings,
	}
}

// CheckDirectory verifies that a content directory exists.
func CheckDirectory(name, path string) CheckResult {
	info, err := os.Stat(path)
	if err != nil {
		return CheckResult{
			Name:    name,
			Message: fmt.Sprintf("%s does not exist", path),
			Details: []string{"run 'blogforge init' to create the content directories"},
		}
	}
	if !info.IsDir() {
		return CheckResult{Name: name, Message: fmt.Sprintf("%s is not a directory", path)}
	}
	return CheckResult{Name: name, Passed: true, Message: path}
}

// CheckImagesWritable probes the images directory for write access.
func CheckImagesWritable(cfg *config.Config) CheckResult {
	dir := cfg.ImagesDir()
	if _, err := os.Stat(dir); err != nil {
		return CheckResult{Name: "Images writable", Message: fmt.Sprintf("%s does not exist", dir)}
	}
	probe := filepath.Join(dir, ".blogforge-doctor")
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return CheckResult{Name: "Images writable", Message: err.Error()}
	}
	os.Remove(probe)
	return CheckResult{Name: "Images writable", Passed: true, Message: "write access confirmed"}
}

// CheckUserSchemaFile reports on the content-type definition file. Absence
// is a pass; the built-in schemas apply on their own.
func CheckUserSchemaFile(root string) (map[string]schema.UserSchema, CheckResult) {
	path := filepath.Join(root, schema.UserSchemaFile)
	if _, err := os.Stat(path); err != nil {
		return nil, CheckResult{
			Name:    "Content types",
			Passed:  true,
			Message: fmt.Sprintf("%s not present; base schemas only", schema.UserSchemaFile),
		}
	}
	user, err := schema.ExtractUserSchemas(root)
	if err != nil {
		return nil, CheckResult{
			Name:    "Content types",
			Passed:  true,
			Message: fmt.Sprintf("%s could not be scanned; base schemas only", schema.UserSchemaFile),
			Details: []string{err.Error()},
		}
	}
	return user, CheckResult{
		Name:    "Content types",
		Passed:  true,
		Message: fmt.Sprintf("%s defines %d collection(s)", schema.UserSchemaFile, len(user)),
	}
}

// CheckSchemasCompile synthesizes and compiles every collection schema.
func CheckSchemasCompile(cfg *config.Config, user map[string]schema.UserSchema) CheckResult {
	schemas, err := schema.Synthesize(cfg, user)
	if err != nil {
		return CheckResult{Name: "Schemas", Message: err.Error()}
	}
	return CheckResult{
		Name:    "Schemas",
		Passed:  true,
		Message: fmt.Sprintf("%d collection schema(s) compile", len(schemas)),
	}
}

// CheckMinVersion compares the running version against the configured
// minVersion. Development builds skip the comparison.
func CheckMinVersion(cfg *config.Config) CheckResult {
	if cfg.MinVersion == "" {
		return CheckResult{Name: "Version", Passed: true, Message: fmt.Sprintf("blogforge %s", build.Version)}
	}
	required, err := semver.NewVersion(cfg.MinVersion)
	if err != nil {
		return CheckResult{
			Name:    "Version",
			Message: fmt.Sprintf("configured minVersion %q is not valid semver", cfg.MinVersion),
		}
	}
	current, err := semver.NewVersion(build.Version)
	if err != nil {
		return CheckResult{
			Name:    "Version",
			Passed:  true,
			Message: fmt.Sprintf("development build; skipping minVersion %s comparison", required),
		}
	}
	if current.LessThan(required) {
		return CheckResult{
			Name:    "Version",
			Message: fmt.Sprintf("blogforge %s is older than required %s", current, required),
			Details: []string{"upgrade blogforge to satisfy the project's minVersion"},
		}
	}
	return CheckResult{Name: "Version", Passed: true, Message: fmt.Sprintf("blogforge %s satisfies minVersion %s", current, required)}
}

// FormatReport renders the report for console output.
func FormatReport(report *Report) string {
	var output string
	for _, check := range report.Checks {
		mark := "✓"
		if !check.Passed {
			mark = "✗"
		}
		output += fmt.Sprintf("%s %s: %s\n", mark, check.Name, check.Message)
		for _, detail := range check.Details {
			output += fmt.Sprintf("    %s\n", detail)
		}
	}

	failed := 0
	for _, check := range report.Checks {
		if !check.Passed {
			failed++
		}
	}
	if failed == 0 {
		output += fmt.Sprintf("\n%d check(s) passed\n", len(report.Checks))
	} else {
		output += fmt.Sprintf("\n%d of %d check(s) failed\n", failed, len(report.Checks))
	}
	return output
}
