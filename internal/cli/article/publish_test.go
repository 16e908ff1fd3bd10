// Package article tests the publish transition.
// Related: internal/cli/article/publish.go
// Tags: cli, article, publish

package article

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/content"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
	"github.com/lord007tn/BlogForge-sub000/internal/testutil"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// seedDraft writes a draft article straight through the store.
func seedDraft(t *testing.T, root, slug string, mutate func(map[string]any)) {
	t.Helper()
	fields := map[string]any{
		"title":       "Draft Post",
		"description": "Not public yet.",
		"author":      "jane-doe",
		"tags":        []string{"go"},
		"locale":      "en",
		"isDraft":     true,
		"slug":        slug,
	}
	if mutate != nil {
		mutate(fields)
	}
	store := content.NewStore(config.Load(root).Config)
	require.NoError(t, store.Create(&content.Document{
		Collection: config.CollectionArticle,
		Slug:       slug,
		Fields:     fields,
		Body:       "Soon.",
	}))
}

func TestRunPublish_StampsDate(t *testing.T) {
	root := testutil.ScaffoldProject(t)
	seedDraft(t, root, "my-post", nil)
	cmd, out, _ := testutil.NewCommand(t, root)

	require.NoError(t, runPublish(cmd, []string{"my-post"}))
	assert.Contains(t, out.String(), "published ")

	doc := loadArticle(t, root, "my-post")
	assert.Equal(t, false, doc.Fields["isDraft"])
	date, _ := doc.Fields["publishedAt"].(string)
	assert.Regexp(t, dateRe, date)
}

func TestRunPublish_KeepsExistingDate(t *testing.T) {
	root := testutil.ScaffoldProject(t)
	seedDraft(t, root, "my-post", func(fields map[string]any) {
		fields["publishedAt"] = "2024-01-05"
	})
	cmd, _, _ := testutil.NewCommand(t, root)

	require.NoError(t, runPublish(cmd, []string{"my-post"}))

	doc := loadArticle(t, root, "my-post")
	assert.Equal(t, false, doc.Fields["isDraft"])
	assert.Equal(t, "2024-01-05", doc.Fields["publishedAt"])
}

// Publishing an already published article is a no-op rewrite, not an error.
func TestRunPublish_AlreadyPublished(t *testing.T) {
	root := testutil.ScaffoldProject(t)
	seedDraft(t, root, "my-post", func(fields map[string]any) {
		fields["isDraft"] = false
		fields["publishedAt"] = "2024-01-05"
	})
	cmd, _, _ := testutil.NewCommand(t, root)

	require.NoError(t, runPublish(cmd, []string{"my-post"}))

	doc := loadArticle(t, root, "my-post")
	assert.Equal(t, "2024-01-05", doc.Fields["publishedAt"])
}

func TestRunPublish_UnknownSlug(t *testing.T) {
	root := testutil.ScaffoldProject(t)
	cmd, _, _ := testutil.NewCommand(t, root)

	err := runPublish(cmd, []string{"ghost"})
	require.Error(t, err)
	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Argument, cliErr.Category)
	assert.Contains(t, cliErr.Message, `no article found with slug "ghost"`)
}
