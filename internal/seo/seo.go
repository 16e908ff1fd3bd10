// Package seo lints articles for common search-visibility problems: title
// and description lengths, images without alt text, canonical URLs, and
// keyword usage. Findings carry a severity and each article gets a 0-100
// score.
package seo

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/content"
	"github.com/lord007tn/BlogForge-sub000/internal/i18n"
)

// Severity ranks a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Recommended character ranges. Search engines truncate past the upper
// bounds; below the lower bounds the snippet looks thin.
const (
	titleMin       = 30
	titleMax       = 60
	descriptionMin = 120
	descriptionMax = 160
)

var reImage = regexp.MustCompile(`!\[(.*?)\]\(([^)]*)\)`)

// Finding is one issue raised against an article.
type Finding struct {
	Check    string   `json:"check"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report collects the findings for one article. Score starts at 100 and
// loses points per finding by severity.
type Report struct {
	Slug     string    `json:"slug"`
	Score    int       `json:"score"`
	Findings []Finding `json:"findings,omitempty"`
}

// CheckArticle runs every check against one article.
func CheckArticle(cfg *config.Config, doc *content.Document) *Report {
	var findings []Finding
	findings = append(findings, checkTitle(cfg, doc)...)
	findings = append(findings, checkDescription(cfg, doc)...)
	findings = append(findings, checkAltText(doc)...)
	findings = append(findings, checkCanonical(doc)...)
	findings = append(findings, checkKeywords(cfg, doc)...)
	findings = append(findings, checkCoverImage(doc)...)

	return &Report{Slug: doc.Slug, Score: score(findings), Findings: findings}
}

// CheckAll lints every article, loading files concurrently, and returns
// reports sorted by slug. Articles that cannot be read score zero with a
// single error finding.
func CheckAll(ctx context.Context, cfg *config.Config, store *content.Store) ([]*Report, error) {
	slugs, err := store.Slugs(config.CollectionArticle)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		reports []*Report
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit())
	for _, slug := range slugs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var report *Report
			doc, err := store.Load(config.CollectionArticle, slug)
			if err != nil {
				report = &Report{
					Slug:     slug,
					Findings: []Finding{{Check: "readable", Severity: SeverityError, Message: err.Error()}},
				}
			} else {
				report = CheckArticle(cfg, doc)
			}
			mu.Lock()
			reports = append(reports, report)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Slug < reports[j].Slug })
	return reports, nil
}

// AverageScore summarizes a batch. An empty batch scores 100.
func AverageScore(reports []*Report) int {
	if len(reports) == 0 {
		return 100
	}
	total := 0
	for _, report := range reports {
		total += report.Score
	}
	return total / len(reports)
}

func checkTitle(cfg *config.Config, doc *content.Document) []Finding {
	title := i18n.TextForLocale(doc.Fields["title"], cfg, "")
	if title == "" {
		return []Finding{{Check: "title", Severity: SeverityError, Message: "title is missing"}}
	}
	switch n := utf8.RuneCountInString(title); {
	case n < titleMin:
		return []Finding{{
			Check:    "title",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("title is %d characters; aim for %d-%d", n, titleMin, titleMax),
		}}
	case n > titleMax:
		return []Finding{{
			Check:    "title",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("title is %d characters; search results truncate around %d", n, titleMax),
		}}
	}
	return nil
}

func checkDescription(cfg *config.Config, doc *content.Document) []Finding {
	description := i18n.TextForLocale(doc.Fields["description"], cfg, "")
	if description == "" {
		return []Finding{{Check: "description", Severity: SeverityError, Message: "description is missing"}}
	}
	switch n := utf8.RuneCountInString(description); {
	case n < descriptionMin:
		return []Finding{{
			Check:    "description",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("description is %d characters; aim for %d-%d", n, descriptionMin, descriptionMax),
		}}
	case n > descriptionMax:
		return []Finding{{
			Check:    "description",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("description is %d characters; search results truncate around %d", n, descriptionMax),
		}}
	}
	return nil
}

func checkAltText(doc *content.Document) []Finding {
	missing := 0
	for _, match := range reImage.FindAllStringSubmatch(doc.Body, -1) {
		if strings.TrimSpace(match[1]) == "" {
			missing++
		}
	}
	if missing == 0 {
		return nil
	}
	noun := "image is"
	if missing > 1 {
		noun = "images are"
	}
	return []Finding{{
		Check:    "alt-text",
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("%d %s missing alt text", missing, noun),
	}}
}

func checkCanonical(doc *content.Document) []Finding {
	raw, _ := doc.Fields["canonicalUrl"].(string)
	if raw == "" {
		return []Finding{{Check: "canonical", Severity: SeverityInfo, Message: "no canonical URL set"}}
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return []Finding{{
			Check:    "canonical",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("canonical URL %q is not an absolute http(s) URL", raw),
		}}
	}
	return nil
}

func checkKeywords(cfg *config.Config, doc *content.Document) []Finding {
	keywords := stringList(doc.Fields["keywords"])
	if len(keywords) == 0 {
		keywords = stringList(doc.Fields["tags"])
	}
	if len(keywords) == 0 {
		return []Finding{{Check: "keywords", Severity: SeverityWarning, Message: "no keywords or tags declared"}}
	}

	corpus := strings.ToLower(i18n.TextForLocale(doc.Fields["title"], cfg, "") + " " + doc.Body)
	primary := keywords[0]
	if !strings.Contains(corpus, strings.ToLower(primary)) {
		return []Finding{{
			Check:    "keywords",
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("primary keyword %q does not appear in the title or body", primary),
		}}
	}
	return nil
}

func checkCoverImage(doc *content.Document) []Finding {
	if image, _ := doc.Fields["image"].(string); image == "" {
		return []Finding{{Check: "cover-image", Severity: SeverityInfo, Message: "no cover image set"}}
	}
	return nil
}

func score(findings []Finding) int {
	total := 100
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			total -= 25
		case SeverityWarning:
			total -= 10
		}
	}
	if total < 0 {
		return 0
	}
	return total
}

func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func fanOutLimit() int {
	n := runtime.NumCPU()
	if n < 4 {
		n = 4
	}
	return n
}
