package processor

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// OutputFormat picks the encoding for an output file: the format named by its
// extension when we know it, otherwise the format the source was decoded from.
func OutputFormat(filename, sourceFormat string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "jpg", "jpeg":
		return "jpeg"
	case "tif", "tiff":
		return "tiff"
	case "png", "gif", "bmp", "webp":
		return ext
	}
	return sourceFormat
}

// Encode encodes image to specified format
func (p *ImageProcessor) Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "jpeg", "jpg":
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(p.opts.Quality))
	case "png":
		return imaging.Encode(w, img, imaging.PNG)
	case "gif":
		return imaging.Encode(w, img, imaging.GIF)
	case "bmp":
		return imaging.Encode(w, img, imaging.BMP)
	case "tiff", "tif":
		return imaging.Encode(w, img, imaging.TIFF)
	case "webp":
		// x/image only ships a webp decoder, so fall back to PNG
		return imaging.Encode(w, img, imaging.PNG)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
