// Package stats aggregates corpus-wide totals for reporting.
package stats

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/content"
	"github.com/lord007tn/BlogForge-sub000/internal/images"
)

const wordsPerMinute = 200

// Totals summarizes the content corpus. ReadingMinutes is the sum of
// per-article estimates, each rounded up.
type Totals struct {
	Articles       int `json:"articles"`
	Drafts         int `json:"drafts"`
	Published      int `json:"published"`
	Featured       int `json:"featured"`
	Words          int `json:"words"`
	ReadingMinutes int `json:"readingMinutes"`
	Authors        int `json:"authors"`
	Categories     int `json:"categories"`
	Images         int `json:"images"`
}

// Collect walks the project and gathers totals, loading each collection
// concurrently. Missing directories count as empty.
func Collect(ctx context.Context, cfg *config.Config, store *content.Store) (*Totals, error) {
	totals := &Totals{}

	// Each goroutine fills a disjoint set of fields.
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		docs, err := store.List(ctx, config.CollectionArticle)
		if err != nil {
			return err
		}
		totals.Articles = len(docs)
		for _, doc := range docs {
			if draft, _ := doc.Fields["isDraft"].(bool); draft {
				totals.Drafts++
			} else {
				totals.Published++
			}
			if featured, _ := doc.Fields["isFeatured"].(bool); featured {
				totals.Featured++
			}
			words := len(strings.Fields(doc.Body))
			totals.Words += words
			totals.ReadingMinutes += (words + wordsPerMinute - 1) / wordsPerMinute
		}
		return nil
	})
	g.Go(func() error {
		slugs, err := store.Slugs(config.CollectionAuthor)
		if err != nil {
			return err
		}
		totals.Authors = len(slugs)
		return nil
	})
	g.Go(func() error {
		slugs, err := store.Slugs(config.CollectionCategory)
		if err != nil {
			return err
		}
		totals.Categories = len(slugs)
		return nil
	})
	g.Go(func() error {
		infos, err := images.List(cfg)
		if err != nil {
			return err
		}
		totals.Images = len(infos)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return totals, nil
}
