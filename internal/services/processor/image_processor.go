package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	// webp is decode-only; registering it lets image.Decode sniff it.
	_ "golang.org/x/image/webp"
)

const (
	DefaultQuality          = 100
	DefaultWatermarkOpacity = 0.5
	DefaultFontSize         = 32
)

type Options struct {
	Quality          int
	WatermarkOpacity float64
	FontSize         float64
	AutoOrient       bool
	TextColor        color.Color
}

var DefaultOptions = Options{
	Quality:          DefaultQuality,
	WatermarkOpacity: DefaultWatermarkOpacity,
	FontSize:         DefaultFontSize,
	AutoOrient:       true,
	TextColor:        color.Black,
}

type ImageProcessor struct {
	opts Options
	font *opentype.Font
}

func NewImageProcessor(opts Options) (*ImageProcessor, error) {
	if opts.Quality <= 0 {
		opts.Quality = DefaultQuality
	}
	opts.Quality = min(100, opts.Quality)
	opts.WatermarkOpacity = min(1.0, max(0.0, opts.WatermarkOpacity))
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultFontSize
	}
	if opts.TextColor == nil {
		opts.TextColor = color.Black
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse watermark font: %w", err)
	}

	return &ImageProcessor{opts: opts, font: f}, nil
}

// Decode decodes an image and reports the format it was stored in.
func (p *ImageProcessor) Decode(data []byte) (image.Image, string, error) {
	_, _, format, err := p.GetImageInfo(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(p.opts.AutoOrient))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	return img, format, nil
}

// GetImageInfo reads the dimensions and format of an encoded image without
// decoding the pixels.
func (p *ImageProcessor) GetImageInfo(data []byte) (int, int, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, "", err
	}
	return cfg.Width, cfg.Height, format, nil
}
