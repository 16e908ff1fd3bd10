// Package images performs housekeeping over the project's image directory:
// listing, downscale + re-encode optimization, format conversion, and
// unused-image reporting.
package images

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	// Register decoders for the formats the housekeeping commands accept.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

const (
	// DefaultMaxWidth caps image width during optimization.
	DefaultMaxWidth = 1600

	jpegQuality = 80
)

// imageExtensions are the file extensions scanned in the images directory.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Info describes one image file in the project.
type Info struct {
	Name   string
	Path   string
	Format string
	Width  int
	Height int
	Size   int64
}

// List scans the images directory and returns header metadata for every
// recognized image, sorted by name. Files that fail to decode are listed
// with zero dimensions so housekeeping can still report them.
func List(cfg *config.Config) ([]Info, error) {
	dir := cfg.ImagesDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading images directory: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info := Info{Name: entry.Name(), Path: path}

		if stat, err := entry.Info(); err == nil {
			info.Size = stat.Size()
		}
		if f, err := os.Open(path); err == nil {
			if cfgHeader, format, err := image.DecodeConfig(f); err == nil {
				info.Width = cfgHeader.Width
				info.Height = cfgHeader.Height
				info.Format = format
			}
			f.Close()
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// Find resolves one image by name inside the images directory, guarding
// against path traversal.
func Find(cfg *config.Config, name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid image name %q", name)
	}
	path := filepath.Join(cfg.ImagesDir(), name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("image %q: %w", name, err)
	}
	return path, nil
}
