package shared

import (
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
	"github.com/lord007tn/BlogForge-sub000/internal/i18n"
	"github.com/lord007tn/BlogForge-sub000/internal/schema"
)

// ParseSetFlags turns repeated --set key=value pairs into a field map.
// Values are parsed as YAML, so booleans, numbers, and flow sequences come
// out typed. An explicit null marks the field for removal.
func ParseSetFlags(pairs []string) (map[string]any, error) {
	fields := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.InvalidSetFlag(pair)
		}
		fields[key] = ParseScalar(raw)
	}
	return fields, nil
}

// ParseScalar interprets a flag value the way a YAML document would.
// Unparseable input and timestamps stay as the literal text the user typed.
func ParseScalar(raw string) any {
	if raw == "" {
		return ""
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	if _, ok := v.(time.Time); ok {
		return raw
	}
	return v
}

// CloneDefaults copies the configured default values for a collection so
// commands can layer flag values on top without mutating the configuration.
func CloneDefaults(cfg *config.Config, collection string) map[string]any {
	fields := make(map[string]any)
	for k, v := range cfg.DefaultsFor(collection) {
		fields[k] = v
	}
	return fields
}

// ApplyFieldValues merges values into fields. A nil value removes the key,
// matching the --set key=null contract.
func ApplyFieldValues(fields, values map[string]any) {
	for k, v := range values {
		if v == nil {
			delete(fields, k)
			continue
		}
		fields[k] = v
	}
}

// NormalizeMultilingual rewrites the collection's multilingual fields into
// the shape the project expects, keyed under locale when one is given.
func NormalizeMultilingual(fields map[string]any, cfg *config.Config, collection, locale string) {
	for _, name := range schema.MultilingualFieldNames(collection) {
		if v, ok := fields[name]; ok {
			fields[name] = i18n.Normalize(v, cfg, locale)
		}
	}
}
