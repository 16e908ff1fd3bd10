package images

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

// OptimizeResult reports what happened to one image during optimization.
type OptimizeResult struct {
	Name    string
	Skipped bool
	Reason  string
	Resized bool
	OldSize int64
	NewSize int64
}

// Optimize downscales images wider than maxWidth and re-encodes JPEG and
// PNG files in place, keeping the original whenever re-encoding would grow
// the file without a resize. GIF and WebP files are reported but left
// untouched since re-encoding them loses animation or has no encoder.
func Optimize(ctx context.Context, cfg *config.Config, maxWidth int, concurrency int) ([]OptimizeResult, error) {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	infos, err := List(cfg)
	if err != nil {
		return nil, err
	}

	results := make([]OptimizeResult, 0, len(infos))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for _, info := range infos {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := optimizeFile(info, maxWidth)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results, nil
}

func optimizeFile(info Info, maxWidth int) OptimizeResult {
	res := OptimizeResult{Name: info.Name, OldSize: info.Size, NewSize: info.Size}

	switch info.Format {
	case "jpeg", "png":
	case "":
		res.Skipped = true
		res.Reason = "not a decodable image"
		return res
	default:
		res.Skipped = true
		res.Reason = fmt.Sprintf("%s is kept as-is; convert it to jpg or png first", info.Format)
		return res
	}

	img, _, err := decodeFile(info.Path)
	if err != nil {
		res.Skipped = true
		res.Reason = err.Error()
		return res
	}

	img, res.Resized = downscale(img, maxWidth)

	encoded, err := encode(img, info.Format)
	if err != nil {
		res.Skipped = true
		res.Reason = err.Error()
		return res
	}

	res.NewSize = int64(len(encoded))
	if !res.Resized && res.NewSize >= res.OldSize {
		res.Skipped = true
		res.Reason = "already optimal"
		res.NewSize = res.OldSize
		return res
	}
	if err := os.WriteFile(info.Path, encoded, 0o644); err != nil {
		res.Skipped = true
		res.Reason = err.Error()
		res.NewSize = res.OldSize
	}
	return res
}

// Convert decodes an image and writes it next to the original under the
// target format's extension. The original file is kept.
func Convert(cfg *config.Config, name, toFormat string) (string, error) {
	format, err := normalizeFormat(toFormat)
	if err != nil {
		return "", err
	}
	path, err := Find(cfg, name)
	if err != nil {
		return "", err
	}

	img, srcFormat, err := decodeFile(path)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", name, err)
	}
	if srcFormat == format {
		return "", fmt.Errorf("%s is already %s", name, format)
	}

	target := strings.TrimSuffix(path, filepath.Ext(path)) + "." + extensionFor(format)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("%s already exists", filepath.Base(target))
	}

	encoded, err := encode(img, format)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(target, encoded, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", target, err)
	}
	return target, nil
}

// downscale caps the image width, preserving aspect ratio.
func downscale(img image.Image, maxWidth int) (image.Image, bool) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth {
		return img, false
	}
	newH := h * maxWidth / w
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst, true
}

func decodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return image.Decode(f)
}

func encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case "jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("encoding jpeg: %w", err)
		}
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encoding png: %w", err)
		}
	default:
		return nil, fmt.Errorf("no encoder for %s", format)
	}
	return buf.Bytes(), nil
}

func normalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "jpg", "jpeg":
		return "jpeg", nil
	case "png":
		return "png", nil
	default:
		return "", fmt.Errorf("unsupported target format %q (jpg or png)", format)
	}
}

func extensionFor(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}
