package processor

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// AddTextWatermark prints text centred horizontally and vertically over the
// whole image. Lines wider than the image are wrapped at word boundaries.
func (p *ImageProcessor) AddTextWatermark(img image.Image, text string) (*image.NRGBA, error) {
	watermarked := imaging.Clone(img)
	if strings.TrimSpace(text) == "" {
		return watermarked, nil
	}

	face, err := opentype.NewFace(p.font, &opentype.FaceOptions{
		Size:    p.opts.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	defer face.Close()

	bounds := watermarked.Bounds()
	d := &font.Drawer{
		Dst:  watermarked,
		Src:  image.NewUniform(p.opts.TextColor),
		Face: face,
	}

	lines := wrapText(d, text, fixed.I(bounds.Dx()))
	metrics := face.Metrics()
	lineHeight := metrics.Height
	top := (fixed.I(bounds.Dy()) - lineHeight*fixed.Int26_6(len(lines))) / 2

	for i, line := range lines {
		x := (fixed.I(bounds.Dx()) - d.MeasureString(line)) / 2
		y := top + lineHeight*fixed.Int26_6(i) + metrics.Ascent
		d.Dot = fixed.Point26_6{
			X: fixed.I(bounds.Min.X) + x,
			Y: fixed.I(bounds.Min.Y) + y,
		}
		d.DrawString(line)
	}

	return watermarked, nil
}

// AddImageWatermark composites mark over the centre of img (source-over)
// at the configured opacity.
func (p *ImageProcessor) AddImageWatermark(img, mark image.Image) *image.NRGBA {
	bounds := img.Bounds()
	markBounds := mark.Bounds()

	pos := image.Pt(
		bounds.Min.X+bounds.Dx()/2-markBounds.Dx()/2,
		bounds.Min.Y+bounds.Dy()/2-markBounds.Dy()/2,
	)

	return imaging.Overlay(img, mark, pos, p.opts.WatermarkOpacity)
}

func wrapText(d *font.Drawer, text string, maxWidth fixed.Int26_6) []string {
	var lines []string

	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if d.MeasureString(candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}

	return lines
}
