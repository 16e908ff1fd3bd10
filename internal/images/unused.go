package images

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/content"
)

// Unused returns the names of images no document references, sorted by
// name. A reference is any mention of the file name in a document's body
// or frontmatter, so the check errs on the side of keeping files.
func Unused(ctx context.Context, cfg *config.Config, store *content.Store) ([]string, error) {
	infos, err := List(cfg)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, nil
	}

	var (
		mu     sync.Mutex
		corpus []string
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, collection := range config.Collections {
		g.Go(func() error {
			docs, err := store.List(ctx, collection)
			if err != nil {
				return fmt.Errorf("loading %s: %w", collection, err)
			}
			texts := make([]string, 0, len(docs))
			for _, doc := range docs {
				texts = append(texts, strings.ToLower(doc.Body), strings.ToLower(fmt.Sprintf("%v", doc.Fields)))
			}
			mu.Lock()
			corpus = append(corpus, texts...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var unused []string
	for _, info := range infos {
		if !referenced(strings.ToLower(info.Name), corpus) {
			unused = append(unused, info.Name)
		}
	}
	sort.Strings(unused)
	return unused, nil
}

func referenced(name string, corpus []string) bool {
	for _, text := range corpus {
		if strings.Contains(text, name) {
			return true
		}
	}
	return false
}
