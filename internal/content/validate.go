package content

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lord007tn/BlogForge-sub000/internal/schema"
)

// ValidationEntry is the outcome of validating one document. Err is set
// when the file could not be loaded or parsed; Result is set otherwise.
type ValidationEntry struct {
	Slug   string
	Path   string
	Result *schema.Result
	Err    error
}

// OK reports whether the document loaded and validated cleanly.
func (e ValidationEntry) OK() bool {
	return e.Err == nil && e.Result != nil && e.Result.Valid
}

// ValidateAll checks every document of a collection against its schema,
// fanning out across the store's concurrency limit. Per-document failures
// land in the entries; only a cancelled context aborts the sweep.
func (s *Store) ValidateAll(ctx context.Context, collection string, cs *schema.CollectionSchema) ([]ValidationEntry, error) {
	slugs, err := s.Slugs(collection)
	if err != nil {
		return nil, err
	}

	entries := make([]ValidationEntry, 0, len(slugs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, slug := range slugs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entry := ValidationEntry{Slug: slug}
			doc, err := s.Load(collection, slug)
			if err != nil {
				entry.Err = err
			} else {
				entry.Path = doc.Path
				entry.Result = cs.Validate(doc.Fields)
			}
			mu.Lock()
			entries = append(entries, entry)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Slug < entries[j].Slug })
	return entries, nil
}

// ValidateOne checks a single document against its schema.
func (s *Store) ValidateOne(collection, slug string, cs *schema.CollectionSchema) ValidationEntry {
	entry := ValidationEntry{Slug: slug}
	doc, err := s.Load(collection, slug)
	if err != nil {
		entry.Err = err
		return entry
	}
	entry.Path = doc.Path
	entry.Result = cs.Validate(doc.Fields)
	return entry
}
