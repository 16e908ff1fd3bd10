// Package i18n_test tests multilingual value normalization and locale
// fallback extraction.
// Related: internal/i18n/i18n.go
// Tags: i18n, multilingual, normalize, locale-fallback
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

func plainConfig() *config.Config {
	return config.DefaultConfig("/project")
}

func mlConfig(def string, languages ...string) *config.Config {
	cfg := config.DefaultConfig("/project")
	cfg.Multilingual = true
	cfg.Languages = languages
	cfg.DefaultLanguage = def
	return cfg
}

func TestNormalize_NonMultilingual(t *testing.T) {
	t.Parallel()

	cfg := plainConfig()

	tests := map[string]struct {
		value    any
		locale   string
		expected string
	}{
		"string passes through":  {value: "Hello", expected: "Hello"},
		"nil collapses to empty": {value: nil, expected: ""},
		"map picks default lang": {value: map[string]any{"en": "Hi", "fr": "Salut"}, expected: "Hi"},
		"map honors locale":      {value: map[string]any{"en": "Hi", "fr": "Salut"}, locale: "fr", expected: "Salut"},
		"map falls to first":     {value: map[string]any{"de": "Hallo"}, expected: "Hallo"},
		"empty map":              {value: map[string]any{}, expected: ""},
		"number stringified":     {value: 42, expected: "42"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Normalize(tc.value, cfg, tc.locale))
		})
	}
}

func TestNormalize_Multilingual(t *testing.T) {
	t.Parallel()

	cfg := mlConfig("en", "en", "fr")

	tests := map[string]struct {
		value    any
		locale   string
		expected any
	}{
		"string wraps under default": {
			value:    "Hello",
			expected: map[string]any{"en": "Hello"},
		},
		"string wraps under locale": {
			value:    "Salut",
			locale:   "fr",
			expected: map[string]any{"fr": "Salut"},
		},
		"nil wraps empty string": {
			value:    nil,
			expected: map[string]any{"en": ""},
		},
		"map without language keys wraps first value": {
			value:    map[string]any{"de": "Hallo"},
			expected: map[string]any{"en": "Hallo"},
		},
		"number wraps stringified": {
			value:    7,
			expected: map[string]any{"en": "7"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Normalize(tc.value, cfg, tc.locale))
		})
	}
}

// TestNormalize_CanonicalMapUnchanged covers the invariant that a map already
// holding at least one configured language key is returned exactly as given:
// partial translations stay partial.
func TestNormalize_CanonicalMapUnchanged(t *testing.T) {
	t.Parallel()

	cfg := mlConfig("en", "en", "fr")

	partial := map[string]any{"fr": "Salut"}
	assert.Equal(t, partial, Normalize(partial, cfg, ""))

	mixed := map[string]any{"en": "Hi", "de": "Hallo"}
	assert.Equal(t, mixed, Normalize(mixed, cfg, ""))
}

// TestNormalize_RoundTripIdempotent covers the non-multilingual idempotence
// property: collapsing, extracting, and collapsing again is stable.
func TestNormalize_RoundTripIdempotent(t *testing.T) {
	t.Parallel()

	cfg := plainConfig()
	for _, s := range []string{"", "Hello", "multi word value", "äöü"} {
		normalized := Normalize(s, cfg, "")
		text := TextForLocale(normalized, cfg, "")
		assert.Equal(t, normalized, Normalize(text, cfg, ""))
	}
}

func TestTextForLocale_FallbackOrder(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		value    any
		cfg      *config.Config
		locale   string
		expected string
	}{
		"plain string as-is": {
			value:    "Hello",
			cfg:      plainConfig(),
			expected: "Hello",
		},
		"requested locale wins": {
			value:    map[string]any{"en": "A", "fr": "B"},
			cfg:      mlConfig("fr", "fr", "en"),
			locale:   "en",
			expected: "A",
		},
		"default language": {
			value:    map[string]any{"en": "A", "fr": "B"},
			cfg:      mlConfig("fr", "fr", "en"),
			expected: "B",
		},
		"next configured language with data": {
			value:    map[string]any{"en": "A"},
			cfg:      mlConfig("fr", "fr", "en"),
			expected: "A",
		},
		"unconfigured entry as last resort": {
			value:    map[string]any{"de": "Hallo"},
			cfg:      mlConfig("fr", "fr", "en"),
			expected: "Hallo",
		},
		"empty map": {
			value:    map[string]any{},
			cfg:      mlConfig("fr", "fr", "en"),
			expected: "",
		},
		"nil value": {
			value:    nil,
			cfg:      plainConfig(),
			expected: "",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, TextForLocale(tc.value, tc.cfg, tc.locale))
		})
	}
}

// TestNormalize_ArabicDefaultScenario covers the documented scenario of an
// Arabic-default project receiving a plain string title.
func TestNormalize_ArabicDefaultScenario(t *testing.T) {
	t.Parallel()

	cfg := mlConfig("ar", "en", "ar")

	normalized := Normalize("Hello", cfg, "")
	assert.Equal(t, map[string]any{"ar": "Hello"}, normalized)

	// Requesting the missing locale falls back to the populated default.
	assert.Equal(t, "Hello", TextForLocale(normalized, cfg, "en"))
}

func TestSchemaFragment(t *testing.T) {
	t.Parallel()

	t.Run("non-multilingual is plain string", func(t *testing.T) {
		t.Parallel()
		frag := SchemaFragment(plainConfig())
		assert.Equal(t, map[string]any{"type": "string"}, frag)
	})

	t.Run("multilingual accepts string or non-empty map", func(t *testing.T) {
		t.Parallel()
		frag := SchemaFragment(mlConfig("en", "en", "fr"))
		oneOf, ok := frag["oneOf"].([]any)
		assert.True(t, ok)
		assert.Len(t, oneOf, 2)
		obj := oneOf[1].(map[string]any)
		assert.Equal(t, 1, obj["minProperties"])
	})
}
