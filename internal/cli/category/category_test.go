// Package category tests category creation and listing.
// Related: internal/cli/category/create.go
// Tags: cli, category, create, list

package category

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/content"
	"github.com/lord007tn/BlogForge-sub000/internal/errors"
	"github.com/lord007tn/BlogForge-sub000/internal/testutil"
)

// createCommand builds a scratch command carrying the create flags.
func createCommand(t *testing.T, root string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cmd, out, _ := testutil.NewCommand(t, root)
	f := cmd.Flags()
	f.String("title", "", "")
	f.String("slug", "", "")
	f.String("description", "", "")
	f.String("image", "", "")
	f.String("icon", "", "")
	f.StringArray("set", nil, "")
	return cmd, out
}

func TestRunCreate(t *testing.T) {
	root := testutil.ScaffoldProject(t)
	cmd, out := createCommand(t, root)
	require.NoError(t, cmd.Flags().Set("description", "Posts about the Go runtime and tooling."))
	require.NoError(t, cmd.Flags().Set("icon", "gopher"))

	require.NoError(t, runCreate(cmd, []string{"Go Internals"}))

	assert.Contains(t, out.String(), "created "+filepath.Join("categories", "go-internals.md"))
	store := content.NewStore(config.Load(root).Config)
	doc, err := store.Load(config.CollectionCategory, "go-internals")
	require.NoError(t, err)
	assert.Equal(t, "Go Internals", doc.Fields["title"])
	assert.Equal(t, "gopher", doc.Fields["icon"])
}

func TestRunCreate_MissingDescriptionFailsValidation(t *testing.T) {
	root := testutil.ScaffoldProject(t)
	cmd, out := createCommand(t, root)

	err := runCreate(cmd, []string{"Go Internals"})
	require.Error(t, err)
	assert.Contains(t, out.String(), "description: required field is missing")
	assert.False(t, testutil.FileExists(filepath.Join(root, "categories", "go-internals.md")))
}

func TestRunCreate_MissingTitle(t *testing.T) {
	root := testutil.ScaffoldProject(t)
	cmd, _ := createCommand(t, root)

	err := runCreate(cmd, nil)
	require.Error(t, err)
	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Contains(t, cliErr.Message, "a category needs a title")
}

func TestRunList(t *testing.T) {
	root := testutil.ScaffoldProject(t)
	store := content.NewStore(config.Load(root).Config)
	require.NoError(t, store.Create(&content.Document{
		Collection: config.CollectionCategory,
		Slug:       "go-internals",
		Fields: map[string]any{
			"title":       "Go Internals",
			"description": "Posts about the runtime.",
			"slug":        "go-internals",
		},
	}))

	cmd, out, _ := testutil.NewCommand(t, root)
	cmd.Flags().Bool("json", false, "")
	require.NoError(t, runList(cmd, nil))
	assert.Contains(t, out.String(), "SLUG")
	assert.Contains(t, out.String(), "go-internals")
	assert.Contains(t, out.String(), "Go Internals")

	jsonCmd, jsonBuf, _ := testutil.NewCommand(t, root)
	jsonCmd.Flags().Bool("json", true, "")
	require.NoError(t, runList(jsonCmd, nil))
	var rows []categoryRow
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, categoryRow{Slug: "go-internals", Title: "Go Internals"}, rows[0])
}

func TestRunList_Empty(t *testing.T) {
	root := testutil.ScaffoldProject(t)
	cmd, out, _ := testutil.NewCommand(t, root)
	cmd.Flags().Bool("json", false, "")

	require.NoError(t, runList(cmd, nil))
	assert.Contains(t, out.String(), "no categories yet")
}
