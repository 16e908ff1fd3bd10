// Package seo_test exercises the article lint checks and batch scoring.
// Related: internal/seo/seo.go
// Tags: seo, lint, score
package seo

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/content"
)

const (
	goodTitle       = "Go Concurrency Patterns for Busy Teams" // 38 chars
	goodDescription = "A practical walk through goroutines, channels, and " + // 135 chars
		"errgroup fan-out, with worked examples you can paste into production services today."
)

func seoConfig(t *testing.T) *config.Config {
	t.Helper()
	return config.DefaultConfig(t.TempDir())
}

func cleanArticle() *content.Document {
	return &content.Document{
		Slug: "go-concurrency-patterns",
		Fields: map[string]any{
			"title":        goodTitle,
			"description":  goodDescription,
			"tags":         []any{"concurrency"},
			"image":        "hero.png",
			"canonicalUrl": "https://example.com/blog/go-concurrency-patterns",
		},
		Body: "Concurrency in Go starts with goroutines. ![diagram](/images/fan-out.png)",
	}
}

func findingsFor(report *Report, check string) []Finding {
	var out []Finding
	for _, f := range report.Findings {
		if f.Check == check {
			out = append(out, f)
		}
	}
	return out
}

func TestCheckArticle_CleanArticleScoresFull(t *testing.T) {
	t.Parallel()

	report := CheckArticle(seoConfig(t), cleanArticle())
	assert.Empty(t, report.Findings)
	assert.Equal(t, 100, report.Score)
}

func TestCheckArticle_TitleLengths(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		title        any
		wantSeverity Severity
		wantContains string
	}{
		"missing title": {
			title:        nil,
			wantSeverity: SeverityError,
			wantContains: "missing",
		},
		"short title": {
			title:        "Go Tips",
			wantSeverity: SeverityWarning,
			wantContains: "aim for",
		},
		"long title": {
			title:        strings.Repeat("Concurrency ", 8),
			wantSeverity: SeverityWarning,
			wantContains: "truncate",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc := cleanArticle()
			if tt.title == nil {
				delete(doc.Fields, "title")
			} else {
				doc.Fields["title"] = tt.title
			}
			report := CheckArticle(seoConfig(t), doc)

			findings := findingsFor(report, "title")
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantSeverity, findings[0].Severity)
			assert.Contains(t, findings[0].Message, tt.wantContains)
		})
	}
}

func TestCheckArticle_TitleInRangePassesClean(t *testing.T) {
	t.Parallel()

	report := CheckArticle(seoConfig(t), cleanArticle())
	assert.Empty(t, findingsFor(report, "title"))
}

func TestCheckArticle_DescriptionLengths(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		description  any
		wantSeverity Severity
		wantContains string
	}{
		"missing description": {
			description:  nil,
			wantSeverity: SeverityError,
			wantContains: "missing",
		},
		"thin description": {
			description:  "Short summary.",
			wantSeverity: SeverityWarning,
			wantContains: "aim for",
		},
		"overlong description": {
			description:  strings.Repeat("practical concurrency guidance ", 7),
			wantSeverity: SeverityWarning,
			wantContains: "truncate",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc := cleanArticle()
			if tt.description == nil {
				delete(doc.Fields, "description")
			} else {
				doc.Fields["description"] = tt.description
			}
			report := CheckArticle(seoConfig(t), doc)

			findings := findingsFor(report, "description")
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantSeverity, findings[0].Severity)
			assert.Contains(t, findings[0].Message, tt.wantContains)
		})
	}
}

func TestCheckArticle_AltText(t *testing.T) {
	t.Parallel()

	doc := cleanArticle()
	doc.Body = "Intro. ![](one.png) then ![diagram](two.png) and ![  ](three.png)"
	report := CheckArticle(seoConfig(t), doc)

	findings := findingsFor(report, "alt-text")
	require.Len(t, findings, 1)
	assert.Equal(t, SeverityWarning, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "2 images are missing alt text")
}

func TestCheckArticle_Canonical(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		canonical    any
		wantSeverity Severity
	}{
		"absolute https url":      {canonical: "https://example.com/post"},
		"absent is informational": {canonical: nil, wantSeverity: SeverityInfo},
		"relative path":           {canonical: "/blog/post", wantSeverity: SeverityWarning},
		"non-http scheme":         {canonical: "ftp://example.com/post", wantSeverity: SeverityWarning},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc := cleanArticle()
			if tt.canonical == nil {
				delete(doc.Fields, "canonicalUrl")
			} else {
				doc.Fields["canonicalUrl"] = tt.canonical
			}
			report := CheckArticle(seoConfig(t), doc)

			findings := findingsFor(report, "canonical")
			if tt.wantSeverity == "" {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Equal(t, tt.wantSeverity, findings[0].Severity)
		})
	}
}

func TestCheckArticle_Keywords(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		mutate       func(doc *content.Document)
		wantContains string
	}{
		"primary keyword in body": {
			mutate: func(doc *content.Document) {
				doc.Fields["keywords"] = []any{"goroutines"}
			},
		},
		"primary keyword in title": {
			mutate: func(doc *content.Document) {
				doc.Fields["keywords"] = []any{"concurrency patterns"}
				doc.Body = "Nothing relevant here."
			},
		},
		"tags used as fallback": {
			mutate: func(doc *content.Document) {
				delete(doc.Fields, "keywords")
				doc.Fields["tags"] = []any{"goroutines"}
			},
		},
		"keyword never used": {
			mutate: func(doc *content.Document) {
				doc.Fields["keywords"] = []any{"observability"}
			},
			wantContains: "does not appear",
		},
		"neither keywords nor tags": {
			mutate: func(doc *content.Document) {
				delete(doc.Fields, "keywords")
				delete(doc.Fields, "tags")
			},
			wantContains: "no keywords or tags",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc := cleanArticle()
			tt.mutate(doc)
			report := CheckArticle(seoConfig(t), doc)

			findings := findingsFor(report, "keywords")
			if tt.wantContains == "" {
				assert.Empty(t, findings)
				return
			}
			require.Len(t, findings, 1)
			assert.Contains(t, findings[0].Message, tt.wantContains)
		})
	}
}

func TestCheckArticle_MultilingualTitle(t *testing.T) {
	t.Parallel()

	cfg := seoConfig(t)
	cfg.Multilingual = true
	cfg.Languages = []string{"en", "ar"}
	cfg.DefaultLanguage = "en"

	doc := cleanArticle()
	doc.Fields["title"] = map[string]any{"en": goodTitle, "ar": "قصير"}
	report := CheckArticle(cfg, doc)

	assert.Empty(t, findingsFor(report, "title"), "default-language title is in range")
}

func TestCheckArticle_Score(t *testing.T) {
	t.Parallel()

	doc := &content.Document{
		Slug:   "thin-stub",
		Fields: map[string]any{"title": "Short"},
		Body:   "Body.",
	}
	report := CheckArticle(seoConfig(t), doc)

	// Short title and missing keywords warn, missing description errors,
	// canonical and cover image are informational only.
	assert.Equal(t, 100-10-25-10, report.Score)
}

func TestCheckArticle_ScoreFloorsAtZero(t *testing.T) {
	t.Parallel()

	report := &Report{}
	report.Findings = []Finding{
		{Severity: SeverityError}, {Severity: SeverityError}, {Severity: SeverityError},
		{Severity: SeverityError}, {Severity: SeverityWarning},
	}
	assert.Equal(t, 0, score(report.Findings))
}

func TestAverageScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, AverageScore(nil))
	assert.Equal(t, 75, AverageScore([]*Report{{Score: 100}, {Score: 50}}))
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	cfg := seoConfig(t)
	store := content.NewStore(cfg)

	clean := cleanArticle()
	require.NoError(t, store.Create(&content.Document{
		Collection: config.CollectionArticle,
		Slug:       clean.Slug,
		Fields:     clean.Fields,
		Body:       clean.Body,
	}))

	dir := store.Dir(config.CollectionArticle)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.md"), []byte("---\ntitle: [unclosed\n---\nBody"), 0o644))

	reports, err := CheckAll(context.Background(), cfg, store)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "broken", reports[0].Slug)
	assert.Zero(t, reports[0].Score)
	require.Len(t, reports[0].Findings, 1)
	assert.Equal(t, "readable", reports[0].Findings[0].Check)

	assert.Equal(t, "go-concurrency-patterns", reports[1].Slug)
	assert.Equal(t, 100, reports[1].Score)
}

func TestCheckAll_EmptyCorpus(t *testing.T) {
	t.Parallel()

	cfg := seoConfig(t)
	reports, err := CheckAll(context.Background(), cfg, content.NewStore(cfg))
	require.NoError(t, err)
	assert.Empty(t, reports)
}
