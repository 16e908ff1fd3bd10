// Package i18n normalizes multilingual field values.
//
// A multilingual value is either a plain string or a mapping of language
// code to string. Content authors may supply either shape regardless of the
// project's multilingual setting; Normalize converts any input to the
// canonical shape for the configuration and TextForLocale extracts a display
// string with a defined fallback order. Neither function ever loses data or
// fails.
package i18n

import (
	"fmt"
	"sort"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

// Normalize converts value to the canonical shape for cfg.
//
// When cfg.Multilingual is false the result is always a plain string: map
// input collapses to the entry for locale (or the default language), falling
// back to the first value present; nil collapses to "".
//
// When cfg.Multilingual is true the result is always a map. A map that
// already contains at least one configured language key is returned
// unchanged; partial translations are legal and no keys are added or
// removed. Everything else is wrapped under the target locale.
func Normalize(value any, cfg *config.Config, locale string) any {
	target := targetLocale(cfg, locale)

	if !cfg.Multilingual {
		return collapse(value, cfg, target)
	}

	switch v := value.(type) {
	case nil:
		return map[string]any{target: ""}
	case string:
		return map[string]any{target: v}
	case map[string]any:
		if hasLanguageKey(v, cfg) {
			return v
		}
		return map[string]any{target: firstValue(v, cfg)}
	case map[string]string:
		if hasLanguageKeyStr(v, cfg) {
			return v
		}
		return map[string]any{target: firstValueStr(v, cfg)}
	default:
		return map[string]any{target: stringify(v)}
	}
}

// TextForLocale extracts a display string from a multilingual value.
// Fallback order for map input: the requested locale, the default language,
// the first configured language with an entry (in languages order), any
// remaining entry, the empty string.
//
// Map iteration order in Go is undefined, so the "any remaining entry" step
// picks the smallest key for determinism.
func TextForLocale(value any, cfg *config.Config, locale string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		return textFromMap(v, cfg, locale)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return textFromMap(m, cfg, locale)
	default:
		return stringify(v)
	}
}

// SchemaFragment returns the JSON Schema fragment for a multilingual-capable
// field. With multilingual configurations the field accepts a plain string or
// a non-empty object of language code to string; otherwise it is a plain
// string.
func SchemaFragment(cfg *config.Config) map[string]any {
	if !cfg.Multilingual {
		return map[string]any{"type": "string"}
	}
	return map[string]any{
		"oneOf": []any{
			map[string]any{"type": "string"},
			map[string]any{
				"type":                 "object",
				"minProperties":        1,
				"additionalProperties": map[string]any{"type": "string"},
			},
		},
	}
}

func targetLocale(cfg *config.Config, locale string) string {
	if locale != "" {
		return locale
	}
	return cfg.DefaultLanguage
}

// collapse reduces any input to a plain string for non-multilingual configs.
func collapse(value any, cfg *config.Config, target string) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		if s, ok := v[target]; ok && s != nil {
			return stringify(s)
		}
		return firstValue(v, cfg)
	case map[string]string:
		if s, ok := v[target]; ok {
			return s
		}
		return firstValueStr(v, cfg)
	default:
		return stringify(v)
	}
}

func textFromMap(v map[string]any, cfg *config.Config, locale string) string {
	if locale != "" {
		if s, ok := v[locale]; ok && s != nil {
			return stringify(s)
		}
	}
	if s, ok := v[cfg.DefaultLanguage]; ok && s != nil {
		return stringify(s)
	}
	for _, lang := range cfg.Languages {
		if s, ok := v[lang]; ok && s != nil {
			return stringify(s)
		}
	}
	return firstValue(v, cfg)
}

// firstValue returns the first entry of m, preferring configured language
// keys in languages order, then the smallest remaining key.
func firstValue(m map[string]any, cfg *config.Config) string {
	if len(m) == 0 {
		return ""
	}
	for _, lang := range cfg.Languages {
		if s, ok := m[lang]; ok && s != nil {
			return stringify(s)
		}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if m[k] != nil {
			return stringify(m[k])
		}
	}
	return ""
}

func firstValueStr(m map[string]string, cfg *config.Config) string {
	if len(m) == 0 {
		return ""
	}
	for _, lang := range cfg.Languages {
		if s, ok := m[lang]; ok {
			return s
		}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return m[keys[0]]
}

func hasLanguageKey(m map[string]any, cfg *config.Config) bool {
	for k := range m {
		if cfg.HasLanguage(k) {
			return true
		}
	}
	return false
}

func hasLanguageKeyStr(m map[string]string, cfg *config.Config) bool {
	for k := range m {
		if cfg.HasLanguage(k) {
			return true
		}
	}
	return false
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
