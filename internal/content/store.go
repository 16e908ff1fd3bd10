// Package content implements document storage for the article, author, and
// category collections. Documents are Markdown files with frontmatter, one
// file per slug, kept under the directories named by the project
// configuration.
package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/frontmatter"
	"github.com/lord007tn/BlogForge-sub000/internal/schema"
)

// Read both extensions, write only the first.
var markdownExtensions = []string{".md", ".mdx"}

// ErrNotFound is returned when no document exists for a slug.
var ErrNotFound = errors.New("document not found")

// ErrExists is returned when creating a document whose slug is taken.
var ErrExists = errors.New("document already exists")

// Document is one content file split into its addressable parts. Body
// holds the Markdown text without the frontmatter block or its padding.
type Document struct {
	Collection string
	Slug       string
	Path       string
	Fields     map[string]any
	Body       string
}

// Store reads and writes collection documents under a project root.
type Store struct {
	cfg         *config.Config
	concurrency int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithConcurrency caps the fan-out of bulk operations.
func WithConcurrency(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewStore creates a store over the configured project layout.
func NewStore(cfg *config.Config, opts ...StoreOption) *Store {
	concurrency := runtime.NumCPU()
	if concurrency < 4 {
		concurrency = 4
	}
	s := &Store{cfg: cfg, concurrency: concurrency}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the absolute directory of a collection.
func (s *Store) Dir(collection string) string {
	return s.cfg.DirFor(collection)
}

// PathFor returns the write path for a slug.
func (s *Store) PathFor(collection, slug string) string {
	return filepath.Join(s.Dir(collection), slug+markdownExtensions[0])
}

// Exists reports whether a document exists under any readable extension.
func (s *Store) Exists(collection, slug string) bool {
	_, err := s.findPath(collection, slug)
	return err == nil
}

// Slugs lists the slugs of a collection in sorted order. A slug backed by
// several files appears once.
func (s *Store) Slugs(collection string) ([]string, error) {
	entries, err := os.ReadDir(s.Dir(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s directory: %w", collection, err)
	}

	seen := make(map[string]bool)
	var slugs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !isMarkdownExt(ext) {
			continue
		}
		slug := strings.TrimSuffix(name, ext)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs, nil
}

// Load reads and parses one document.
func (s *Store) Load(collection, slug string) (*Document, error) {
	path, err := s.findPath(collection, slug)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	parsed, err := frontmatter.Extract(data)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", collection, slug, err)
	}
	return &Document{
		Collection: collection,
		Slug:       slug,
		Path:       path,
		Fields:     parsed.Fields,
		Body:       strings.Trim(parsed.Body, "\n"),
	}, nil
}

// List loads every document of a collection in slug order.
func (s *Store) List(ctx context.Context, collection string) ([]*Document, error) {
	slugs, err := s.Slugs(collection)
	if err != nil {
		return nil, err
	}
	docs := make([]*Document, 0, len(slugs))
	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := s.Load(collection, slug)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Save writes a document. An existing file keeps its frontmatter key order;
// a new file is laid out in the collection's canonical field order.
func (s *Store) Save(doc *Document) error {
	if err := validSlug(doc.Slug); err != nil {
		return err
	}
	dir := s.Dir(doc.Collection)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s directory: %w", doc.Collection, err)
	}

	path, err := s.findPath(doc.Collection, doc.Slug)
	if errors.Is(err, ErrNotFound) {
		out, buildErr := frontmatter.BuildOrdered(schema.BaseFieldNames(doc.Collection), doc.Fields, doc.Body)
		if buildErr != nil {
			return fmt.Errorf("%s %q: %w", doc.Collection, doc.Slug, buildErr)
		}
		path = s.PathFor(doc.Collection, doc.Slug)
		doc.Path = path
		return writeFile(path, out)
	}
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	out, err := frontmatter.Replace(existing, doc.Fields, doc.Body)
	if err != nil {
		return fmt.Errorf("%s %q: %w", doc.Collection, doc.Slug, err)
	}
	doc.Path = path
	return writeFile(path, out)
}

// Create writes a new document, refusing to overwrite an existing slug.
func (s *Store) Create(doc *Document) error {
	if err := validSlug(doc.Slug); err != nil {
		return err
	}
	if s.Exists(doc.Collection, doc.Slug) {
		return fmt.Errorf("%s %q: %w", doc.Collection, doc.Slug, ErrExists)
	}
	return s.Save(doc)
}

// Delete removes a document's file.
func (s *Store) Delete(collection, slug string) error {
	path, err := s.findPath(collection, slug)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting %s: %w", path, err)
	}
	return nil
}

// Search returns the documents whose slug, fields, or body contain the
// query, case-insensitively. Multilingual values match in any language.
func (s *Store) Search(ctx context.Context, collection, query string) ([]*Document, error) {
	docs, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return docs, nil
	}
	var matched []*Document
	for _, doc := range docs {
		if matchDocument(doc, needle) {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

func matchDocument(doc *Document, needle string) bool {
	if strings.Contains(strings.ToLower(doc.Slug), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(doc.Body), needle) {
		return true
	}
	return matchValue(doc.Fields, needle)
}

// matchValue walks nested frontmatter values so every language variant and
// list element is searchable.
func matchValue(value any, needle string) bool {
	switch v := value.(type) {
	case string:
		return strings.Contains(strings.ToLower(v), needle)
	case map[string]any:
		for _, inner := range v {
			if matchValue(inner, needle) {
				return true
			}
		}
	case []any:
		for _, inner := range v {
			if matchValue(inner, needle) {
				return true
			}
		}
	}
	return false
}

// findPath resolves the file backing a slug, preferring .md over .mdx.
func (s *Store) findPath(collection, slug string) (string, error) {
	if err := validSlug(slug); err != nil {
		return "", err
	}
	dir := s.Dir(collection)
	for _, ext := range markdownExtensions {
		path := filepath.Join(dir, slug+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s %q: %w", collection, slug, ErrNotFound)
}

// validSlug guards against path traversal through slug arguments.
func validSlug(slug string) error {
	if slug == "" {
		return errors.New("empty slug")
	}
	if strings.ContainsAny(slug, `/\`) || strings.Contains(slug, "..") {
		return fmt.Errorf("invalid slug %q", slug)
	}
	return nil
}

func isMarkdownExt(ext string) bool {
	for _, known := range markdownExtensions {
		if strings.EqualFold(ext, known) {
			return true
		}
	}
	return false
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
