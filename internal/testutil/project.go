// Package testutil provides fixtures for blogforge tests: throwaway project
// roots and scratch commands carrying the global flags.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// projectConfig collects the ScaffoldProject options.
type projectConfig struct {
	config     map[string]any
	userSchema string
	files      map[string]string
	withDirs   bool
}

// ProjectOption is a functional option for ScaffoldProject.
type ProjectOption func(*projectConfig)

// WithConfig replaces the configuration map written to blogforge.config.json.
// Passing nil scaffolds a project without a configuration file.
func WithConfig(cfg map[string]any) ProjectOption {
	return func(c *projectConfig) {
		c.config = cfg
	}
}

// WithUserSchema writes source as the project's content.config.ts.
func WithUserSchema(source string) ProjectOption {
	return func(c *projectConfig) {
		c.userSchema = source
	}
}

// WithFile writes an extra file into the project, path relative to the root.
func WithFile(relPath, contents string) ProjectOption {
	return func(c *projectConfig) {
		c.files[relPath] = contents
	}
}

// WithoutDirs skips creation of the content directories.
func WithoutDirs() ProjectOption {
	return func(c *projectConfig) {
		c.withDirs = false
	}
}

// ScaffoldProject creates a complete project root under a temp directory:
// a JSON configuration file plus the articles, authors, categories and
// images directories. Cleanup is handled by t.TempDir.
func ScaffoldProject(t *testing.T, opts ...ProjectOption) string {
	t.Helper()

	pc := &projectConfig{
		config: map[string]any{
			"directories": map[string]any{
				"articles":   "articles",
				"authors":    "authors",
				"categories": "categories",
				"images":     "images",
			},
			"multilingual":    false,
			"languages":       []string{"en"},
			"defaultLanguage": "en",
		},
		files:    map[string]string{},
		withDirs: true,
	}
	for _, opt := range opts {
		opt(pc)
	}

	root := t.TempDir()

	if pc.config != nil {
		data, err := json.MarshalIndent(pc.config, "", "  ")
		if err != nil {
			t.Fatalf("marshaling project config: %v", err)
		}
		WriteFile(t, filepath.Join(root, "blogforge.config.json"), string(data)+"\n")
	}

	if pc.withDirs {
		for _, dir := range contentDirs(pc.config) {
			if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
				t.Fatalf("creating %s: %v", dir, err)
			}
		}
	}

	if pc.userSchema != "" {
		WriteFile(t, filepath.Join(root, "content.config.ts"), pc.userSchema)
	}

	for rel, contents := range pc.files {
		WriteFile(t, filepath.Join(root, rel), contents)
	}

	return root
}

// contentDirs returns the directory names the config maps the collections
// to, falling back to the conventional names.
func contentDirs(cfg map[string]any) []string {
	names := []string{"articles", "authors", "categories", "images"}
	dirs, ok := cfg["directories"].(map[string]any)
	if !ok {
		return names
	}
	out := make([]string, 0, len(names))
	for _, key := range names {
		if v, ok := dirs[key].(string); ok && v != "" {
			out = append(out, v)
			continue
		}
		out = append(out, key)
	}
	return out
}

// NewCommand returns a scratch command wired the way the root command wires
// its children: the global root, verbose and no-color flags, captured out
// and err streams, and a background context. no-color defaults to true so
// assertions never meet ANSI escapes. Command-specific flags are the
// caller's to add.
func NewCommand(t *testing.T, root string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	cmd := &cobra.Command{Use: "scratch"}
	cmd.Flags().String("root", root, "")
	cmd.Flags().Bool("verbose", false, "")
	cmd.Flags().Bool("no-color", true, "")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetContext(context.Background())

	return cmd, out, errOut
}

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
