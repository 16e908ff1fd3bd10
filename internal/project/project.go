// Package project locates and bootstraps BlogForge project roots.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/schema"
)

// ErrNotFound is returned when no project root can be located.
var ErrNotFound = errors.New("no project found")

// StarterConfigFile is the configuration file written by scaffolding.
const StarterConfigFile = "blogforge.config.json"

// IsRoot reports whether dir looks like a project root: it carries a
// configuration file, a content-type definition, or the default article
// and author directories together.
func IsRoot(dir string) bool {
	if config.HasConfigFile(dir) {
		return true
	}
	if _, err := os.Stat(filepath.Join(dir, schema.UserSchemaFile)); err == nil {
		return true
	}
	articles, errA := os.Stat(filepath.Join(dir, "articles"))
	authors, errB := os.Stat(filepath.Join(dir, "authors"))
	return errA == nil && errB == nil && articles.IsDir() && authors.IsDir()
}

// Discover walks up from start (the working directory when empty) until a
// project root is found.
func Discover(start string) (string, error) {
	dir := start
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		if IsRoot(abs) {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrNotFound
		}
		abs = parent
	}
}

// Resolve returns the project root: an explicit override is used verbatim
// after an existence check, otherwise the root is discovered by walking up.
func Resolve(override string) (string, error) {
	if override == "" {
		return Discover("")
	}
	abs, err := filepath.Abs(override)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", override, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("project root %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project root %s is not a directory", abs)
	}
	return abs, nil
}

// ScaffoldDirs creates the configured content directories that are missing
// and returns their paths in sorted order.
func ScaffoldDirs(cfg *config.Config) ([]string, error) {
	dirs := []string{
		cfg.DirFor(config.CollectionArticle),
		cfg.DirFor(config.CollectionAuthor),
		cfg.DirFor(config.CollectionCategory),
		cfg.ImagesDir(),
	}
	var created []string
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err == nil {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
		created = append(created, dir)
	}
	sort.Strings(created)
	return created, nil
}

// WriteStarterConfig writes a starter configuration file at the root and
// returns its path. An existing file is only replaced when force is set.
func WriteStarterConfig(root string, force bool) (string, error) {
	path := filepath.Join(root, StarterConfigFile)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists", path)
	}

	starter := map[string]any{
		"directories": map[string]any{
			"articles":   "articles",
			"authors":    "authors",
			"categories": "categories",
			"images":     "images",
		},
		"multilingual":    false,
		"languages":       []string{"en"},
		"defaultLanguage": "en",
		"defaultValues": map[string]any{
			"article": map[string]any{"isDraft": true},
		},
	}
	data, err := json.MarshalIndent(starter, "", "  ")
	if err != nil {
		return "", err
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
