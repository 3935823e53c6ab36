package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned for output paths with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown image format")

var formats = map[string]bool{"tga": true, "webp": true, "png": true, "bmp": true, "tiff": true}

// FormatOf returns the lowercase encoder name for a file path.
func FormatOf(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".tif":
		return "tiff"
	}
	return strings.TrimPrefix(ext, ".")
}

// Encode writes img to w in the named format: tga, webp, png, bmp or tiff.
func Encode(w io.Writer, format string, img image.Image) error {
	switch format {
	case "tga":
		return tga.Encode(w, img)
	case "webp":
		return nativewebp.Encode(w, img, nil)
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, nil)
	}
	return fmt.Errorf("raster: encode %q: %w", format, ErrUnknownFormat)
}

// Save writes the image to path, picking the encoder from the extension.
func (m *Image) Save(path string) error {
	format := FormatOf(path)
	if !formats[format] {
		return fmt.Errorf("raster: save %s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}

	if err := Encode(f, format, m); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return f.Close()
}
