// Package project tests root discovery and scaffolding.
// Related: internal/project/project.go
// Tags: project, discovery, scaffold
package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
}

func TestIsRoot_Markers(t *testing.T) {
	t.Parallel()

	t.Run("config file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "blogforge.config.json"))
		assert.True(t, IsRoot(dir))
	})

	t.Run("content type file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		touch(t, filepath.Join(dir, "content.config.ts"))
		assert.True(t, IsRoot(dir))
	})

	t.Run("package json with key", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
			[]byte(`{"name":"site","blogForge":{}}`), 0o644))
		assert.True(t, IsRoot(dir))
	})

	t.Run("package json without key", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
			[]byte(`{"name":"site"}`), 0o644))
		assert.False(t, IsRoot(dir))
	})

	t.Run("default directories", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "articles"), 0o755))
		assert.False(t, IsRoot(dir), "articles alone is not a marker")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "authors"), 0o755))
		assert.True(t, IsRoot(dir))
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()
		assert.False(t, IsRoot(t.TempDir()))
	})
}

func TestDiscover_WalksUp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	touch(t, filepath.Join(root, "blogforge.config.json"))
	nested := filepath.Join(root, "articles", "drafts")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestDiscover_NotFound(t *testing.T) {
	t.Parallel()

	_, err := Discover(t.TempDir())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_Override(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	got, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	_, err = Resolve(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestScaffoldDirs(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig(t.TempDir())
	created, err := ScaffoldDirs(cfg)
	require.NoError(t, err)
	assert.Len(t, created, 4)
	for _, coll := range config.Collections {
		info, err := os.Stat(cfg.DirFor(coll))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	again, err := ScaffoldDirs(cfg)
	require.NoError(t, err)
	assert.Empty(t, again, "existing directories are not re-created")
}

func TestWriteStarterConfig(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path, err := WriteStarterConfig(root, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, StarterConfigFile), path)

	res := config.Load(root)
	assert.Equal(t, path, res.Source)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, []string{"en"}, res.Config.Languages)

	_, err = WriteStarterConfig(root, false)
	require.Error(t, err, "refuses to overwrite without force")

	_, err = WriteStarterConfig(root, true)
	require.NoError(t, err)
}
