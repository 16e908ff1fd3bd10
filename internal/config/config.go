// Package config loads and merges the blogforge project configuration.
//
// Resolution order: a fixed candidate list at the project root (module-style
// names first, then structured formats, then a blogForge key in package.json),
// merged over built-in defaults, then BLOGFORGE_* environment overrides.
// Configuration problems are never fatal: a candidate that fails to parse is
// skipped with a warning, and a config with an invalid shape is discarded
// entirely in favor of the defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"
)

// Collection names used as keys in schemaExtensions and defaultValues.
const (
	CollectionArticle  = "article"
	CollectionAuthor   = "author"
	CollectionCategory = "category"
)

// Collections lists the managed content kinds in canonical order.
var Collections = []string{CollectionArticle, CollectionAuthor, CollectionCategory}

// Directories holds the content sub-paths relative to the project root.
type Directories struct {
	Articles   string `koanf:"articles" validate:"required"`
	Authors    string `koanf:"authors" validate:"required"`
	Categories string `koanf:"categories" validate:"required"`
	Images     string `koanf:"images" validate:"required"`
}

// For returns the directory configured for a collection.
func (d Directories) For(collection string) string {
	switch collection {
	case CollectionArticle:
		return d.Articles
	case CollectionAuthor:
		return d.Authors
	case CollectionCategory:
		return d.Categories
	default:
		return ""
	}
}

// Config is the immutable per-invocation project configuration.
type Config struct {
	Root             string                    `koanf:"root"`
	Directories      Directories               `koanf:"directories"`
	Multilingual     bool                      `koanf:"multilingual"`
	Languages        []string                  `koanf:"languages" validate:"min=1,dive,required"`
	DefaultLanguage  string                    `koanf:"defaultLanguage" validate:"required"`
	SchemaExtensions map[string]map[string]any `koanf:"schemaExtensions"`
	DefaultValues    map[string]map[string]any `koanf:"defaultValues"`
	MinVersion       string                    `koanf:"minVersion"`
}

// DirFor returns the absolute path of a collection's content directory.
func (c *Config) DirFor(collection string) string {
	return filepath.Join(c.Root, c.Directories.For(collection))
}

// ImagesDir returns the absolute path of the images directory.
func (c *Config) ImagesDir() string {
	return filepath.Join(c.Root, c.Directories.Images)
}

// ExtensionsFor returns the configured schema extensions for a collection.
func (c *Config) ExtensionsFor(collection string) map[string]any {
	return c.SchemaExtensions[collection]
}

// DefaultsFor returns the configured default field values for a collection.
func (c *Config) DefaultsFor(collection string) map[string]any {
	return c.DefaultValues[collection]
}

// HasLanguage reports whether code is one of the configured language codes.
func (c *Config) HasLanguage(code string) bool {
	for _, l := range c.Languages {
		if l == code {
			return true
		}
	}
	return false
}

// LoadResult carries the resolved configuration plus any non-fatal warnings
// collected during resolution.
type LoadResult struct {
	Config   *Config
	Source   string // path of the winning candidate, empty when defaults only
	Warnings []string
}

type candidateKind int

const (
	kindModule candidateKind = iota // .ts/.js style files this build cannot execute
	kindYAML
	kindTOML
	kindJSON
	kindPackageJSON
)

type candidate struct {
	name string
	kind candidateKind
}

// candidates is the ordered search list. Module-style names keep their
// historical precedence ahead of the structured formats; package.json is
// always the last resort.
var candidates = []candidate{
	{"blogforge.config.ts", kindModule},
	{"blogforge.config.js", kindModule},
	{"blogforge.config.mjs", kindModule},
	{"blogforge.config.cjs", kindModule},
	{"blogforge.config", kindModule},
	{"blogforge.config.yaml", kindYAML},
	{"blogforge.config.yml", kindYAML},
	{"blogforge.config.toml", kindTOML},
	{"blogforge.config.json", kindJSON},
	{"package.json", kindPackageJSON},
}

// packageJSONKey is the package.json field holding an embedded configuration.
const packageJSONKey = "blogForge"

// HasConfigFile reports whether dir contains a recognizable project
// configuration: any candidate file, or a package.json carrying the
// blogForge key. Module-style candidates count even though this build
// cannot execute them.
func HasConfigFile(dir string) bool {
	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if c.kind != kindPackageJSON {
			return true
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var pkg map[string]any
		if err := json.Unmarshal(data, &pkg); err != nil {
			continue
		}
		if _, ok := pkg[packageJSONKey]; ok {
			return true
		}
	}
	return false
}

// Load resolves the configuration for the project rooted at projectRoot.
// It never fails: any problem degrades to defaults and is reported through
// LoadResult.Warnings.
func Load(projectRoot string) *LoadResult {
	res := &LoadResult{}

	root, err := filepath.Abs(projectRoot)
	if err != nil {
		root = projectRoot
	}

	// A .env at the root participates in the environment layer.
	envFile := filepath.Join(root, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			res.warnf("could not load %s: %v", envFile, err)
		}
	}

	defaults := DefaultConfig(root)

	fc := res.findUserConfig(root)
	cfg := mergeConfig(defaults, fc)
	cfg = mergeConfig(cfg, res.envOverrides())

	if cfg.Root != root && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(root, cfg.Root)
	}

	if err := validateConfig(cfg); err != nil {
		res.warnf("invalid configuration (%v); using defaults", err)
		res.Config = DefaultConfig(root)
		return res
	}

	// The configured default language is always usable as a lookup target.
	if !cfg.HasLanguage(cfg.DefaultLanguage) {
		cfg.Languages = append(cfg.Languages, cfg.DefaultLanguage)
	}

	res.Config = cfg
	return res
}

// findUserConfig walks the candidate list and returns the first decodable
// user configuration, or nil when every candidate is absent or skipped.
// A candidate that parses but has an invalid shape ends the search with nil
// so that no partial merge of a broken config can occur.
func (r *LoadResult) findUserConfig(root string) *fileConfig {
	for _, c := range candidates {
		path := filepath.Join(root, c.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		raw, ok := r.readCandidate(path, c.kind)
		if !ok {
			continue
		}

		fc, err := decodeFileConfig(raw)
		if err != nil {
			r.warnf("%s has an invalid shape (%v); using defaults", path, err)
			return nil
		}
		r.Source = path
		return fc
	}
	return nil
}

// readCandidate parses one candidate file into a raw map. Parse failures are
// recorded as warnings and reported as not-ok so the search moves on.
func (r *LoadResult) readCandidate(path string, kind candidateKind) (map[string]any, bool) {
	switch kind {
	case kindModule:
		r.warnf("%s is a module-style config this build cannot execute; skipping", path)
		return nil, false

	case kindYAML, kindJSON:
		var parser koanf.Parser
		if kind == kindJSON {
			parser = kjson.Parser()
		} else {
			parser = kyaml.Parser()
		}
		k := koanf.New(".")
		if err := k.Load(file.Provider(path), parser); err != nil {
			r.warnf("could not parse %s: %v", path, err)
			return nil, false
		}
		return k.Raw(), true

	case kindTOML:
		data, err := os.ReadFile(path)
		if err != nil {
			r.warnf("could not read %s: %v", path, err)
			return nil, false
		}
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			r.warnf("could not parse %s: %v", path, err)
			return nil, false
		}
		return m, true

	case kindPackageJSON:
		data, err := os.ReadFile(path)
		if err != nil {
			r.warnf("could not read %s: %v", path, err)
			return nil, false
		}
		var pkg map[string]any
		if err := json.Unmarshal(data, &pkg); err != nil {
			r.warnf("could not parse %s: %v", path, err)
			return nil, false
		}
		embedded, present := pkg[packageJSONKey]
		if !present {
			return nil, false
		}
		m, isMap := embedded.(map[string]any)
		if !isMap {
			r.warnf("%s: %q must be an object; using defaults", path, packageJSONKey)
			return nil, false
		}
		return m, true
	}
	return nil, false
}

// envOverrides reads BLOGFORGE_* variables as the highest-priority layer.
func (r *LoadResult) envOverrides() *fileConfig {
	k := koanf.New(".")
	if err := k.Load(env.Provider("BLOGFORGE_", ".", envTransform), nil); err != nil {
		return nil
	}
	if len(k.Keys()) == 0 {
		return nil
	}
	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		r.warnf("ignoring BLOGFORGE_* environment overrides: %v", err)
		return nil
	}
	return &fc
}

// envTransform converts environment variable names to config keys.
// Example: BLOGFORGE_DEFAULT_LANGUAGE -> defaultLanguage
func envTransform(s string) string {
	key := strings.TrimPrefix(s, "BLOGFORGE_")
	switch key {
	case "DEFAULT_LANGUAGE":
		return "defaultLanguage"
	case "MIN_VERSION":
		return "minVersion"
	default:
		return strings.ToLower(key)
	}
}

func (r *LoadResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
