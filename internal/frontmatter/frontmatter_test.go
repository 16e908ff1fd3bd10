// Package frontmatter tests splitting, rebuilding, and in-place updates
// of Markdown metadata blocks.
// Related: internal/frontmatter/frontmatter.go
// Tags: frontmatter, yaml, toml, round-trip
package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDoc = `---
title: Go Concurrency Patterns
slug: go-concurrency-patterns
tags:
  - go
  - concurrency
isDraft: false
---

Channels orchestrate; mutexes serialize.
`

func TestExtract_YAML(t *testing.T) {
	t.Parallel()

	p, err := Extract([]byte(yamlDoc))
	require.NoError(t, err)

	assert.Equal(t, FormatYAML, p.Format)
	assert.Equal(t, "Go Concurrency Patterns", p.Fields["title"])
	assert.Equal(t, []any{"go", "concurrency"}, p.Fields["tags"])
	assert.Equal(t, false, p.Fields["isDraft"])
	assert.Equal(t, "\nChannels orchestrate; mutexes serialize.\n", p.Body)
}

func TestExtract_TOML(t *testing.T) {
	t.Parallel()

	doc := "+++\ntitle = \"Go Modules\"\nisDraft = true\n+++\n\nVersioning without vendoring.\n"
	p, err := Extract([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, FormatTOML, p.Format)
	assert.Equal(t, "Go Modules", p.Fields["title"])
	assert.Equal(t, true, p.Fields["isDraft"])
	assert.Equal(t, "\nVersioning without vendoring.\n", p.Body)
}

func TestExtract_NoFrontmatter(t *testing.T) {
	t.Parallel()

	p, err := Extract([]byte("# Plain document\n\nNo metadata here.\n"))
	require.NoError(t, err)

	assert.Equal(t, FormatNone, p.Format)
	assert.Empty(t, p.Fields)
	assert.Equal(t, "# Plain document\n\nNo metadata here.\n", p.Body)
}

func TestExtract_EmptyBlock(t *testing.T) {
	t.Parallel()

	p, err := Extract([]byte("---\n---\nBody only.\n"))
	require.NoError(t, err)

	assert.Empty(t, p.Fields)
	assert.Equal(t, "Body only.\n", p.Body)
}

func TestExtract_Unterminated(t *testing.T) {
	t.Parallel()

	_, err := Extract([]byte("---\ntitle: Broken\n\nNo closing delimiter.\n"))
	require.ErrorIs(t, err, ErrUnterminated)
}

func TestExtract_MalformedBlock(t *testing.T) {
	t.Parallel()

	_, err := Extract([]byte("---\ntitle: [unclosed\n---\nBody.\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frontmatter")
}

func TestExtract_WindowsLineEndings(t *testing.T) {
	t.Parallel()

	doc := "---\r\ntitle: CRLF\r\n---\r\n\r\nBody.\r\n"
	p, err := Extract([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "CRLF", p.Fields["title"])
	assert.Equal(t, "\nBody.\n", p.Body)
}

// TestUpdate_RoundTrip verifies that updating a document with its own
// extracted fields changes neither the fields nor the body.
func TestUpdate_RoundTrip(t *testing.T) {
	t.Parallel()

	docs := map[string]string{
		"yaml": yamlDoc,
		"toml": "+++\ntitle = \"Go Modules\"\nweight = 3\n+++\n\nBody text.\n",
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first, err := Extract([]byte(doc))
			require.NoError(t, err)

			out, err := Update([]byte(doc), first.Fields)
			require.NoError(t, err)

			second, err := Extract(out)
			require.NoError(t, err)
			assert.Equal(t, first.Fields, second.Fields)
			assert.Equal(t, first.Body, second.Body)
			assert.Equal(t, first.Format, second.Format)
		})
	}
}

func TestUpdate_PreservesKeyOrder(t *testing.T) {
	t.Parallel()

	p, err := Extract([]byte(yamlDoc))
	require.NoError(t, err)

	p.Fields["title"] = "Go Concurrency Patterns, Revisited"
	p.Fields["author"] = "jane-doe"

	out, err := Update([]byte(yamlDoc), p.Fields)
	require.NoError(t, err)
	text := string(out)

	title := strings.Index(text, "title:")
	slug := strings.Index(text, "slug:")
	tags := strings.Index(text, "tags:")
	author := strings.Index(text, "author:")
	require.True(t, title >= 0 && slug >= 0 && tags >= 0 && author >= 0, "output: %s", text)

	assert.Less(t, title, slug, "existing keys keep their order")
	assert.Less(t, slug, tags)
	assert.Less(t, tags, author, "new keys append after existing ones")
	assert.Contains(t, text, "Go Concurrency Patterns, Revisited")
	assert.Contains(t, text, "\nChannels orchestrate; mutexes serialize.\n")
}

func TestUpdate_RemovesDroppedKeys(t *testing.T) {
	t.Parallel()

	p, err := Extract([]byte(yamlDoc))
	require.NoError(t, err)
	delete(p.Fields, "tags")

	out, err := Update([]byte(yamlDoc), p.Fields)
	require.NoError(t, err)

	second, err := Extract(out)
	require.NoError(t, err)
	assert.NotContains(t, second.Fields, "tags")
	assert.Equal(t, "go-concurrency-patterns", second.Fields["slug"])
}

func TestUpdate_NoFrontmatterGainsBlock(t *testing.T) {
	t.Parallel()

	out, err := Update([]byte("# Heading\n\nProse.\n"), map[string]any{"title": "Heading"})
	require.NoError(t, err)

	p, err := Extract(out)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, p.Format)
	assert.Equal(t, "Heading", p.Fields["title"])
	assert.Contains(t, p.Body, "# Heading")
}

func TestBuild_Document(t *testing.T) {
	t.Parallel()

	out, err := Build(map[string]any{"title": "New Post", "isDraft": true}, "First draft.\n")
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "---\n"), "output: %s", text)
	assert.True(t, strings.HasSuffix(text, "\nFirst draft.\n"))

	p, err := Extract(out)
	require.NoError(t, err)
	assert.Equal(t, "New Post", p.Fields["title"])
	assert.Equal(t, true, p.Fields["isDraft"])
}

func TestBuild_EmptyFields(t *testing.T) {
	t.Parallel()

	out, err := Build(nil, "Just a body.\n")
	require.NoError(t, err)
	assert.Equal(t, "---\n---\n\nJust a body.\n", string(out))
}

func TestBuildOrdered_Layout(t *testing.T) {
	t.Parallel()

	fields := map[string]any{
		"slug":   "new-post",
		"title":  "New Post",
		"rating": 5,
	}
	out, err := BuildOrdered([]string{"title", "description", "slug"}, fields, "Body.\n")
	require.NoError(t, err)
	text := string(out)

	title := strings.Index(text, "title:")
	slug := strings.Index(text, "slug:")
	rating := strings.Index(text, "rating:")
	require.True(t, title >= 0 && slug >= 0 && rating >= 0, "output: %s", text)

	assert.Less(t, title, slug)
	assert.Less(t, slug, rating, "unordered keys follow the ordered ones")
	assert.NotContains(t, text, "description:", "absent ordered keys are skipped")
}

func TestSanitize_NestedKeys(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"links": map[any]any{"github": "https://github.com/jane", 2024: "archive"},
		"tags":  []any{map[any]any{"name": "go"}},
	}
	out := Sanitize(in)

	links, ok := out["links"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://github.com/jane", links["github"])
	assert.Equal(t, "archive", links["2024"])

	tags, ok := out["tags"].([]any)
	require.True(t, ok)
	first, ok := tags[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "go", first["name"])
}
