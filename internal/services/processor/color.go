package processor

import (
	"image"

	"github.com/disintegration/imaging"
)

func (p *ImageProcessor) Greyscale(img image.Image) *image.NRGBA {
	return imaging.Grayscale(img)
}

// Invert replaces each colour channel c with 255-c. Alpha is kept.
func (p *ImageProcessor) Invert(img image.Image) *image.NRGBA {
	return imaging.Invert(img)
}
