package processor

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// AdjustBrightness scales each colour channel linearly, value in [-1, 1].
// Negative values scale towards black (c*(1+v)), positive values towards
// white (c+(255-c)*v). -1 yields black, 1 yields white and 0 is the identity.
// Alpha is kept.
func (p *ImageProcessor) AdjustBrightness(img image.Image, value float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: scaleBrightness(c.R, value),
			G: scaleBrightness(c.G, value),
			B: scaleBrightness(c.B, value),
			A: c.A,
		}
	})
}

func scaleBrightness(c uint8, value float64) uint8 {
	v := float64(c)
	if value < 0 {
		v *= 1 + value
	} else {
		v += (255 - v) * value
	}
	return uint8(math.Round(min(255, max(0, v))))
}

// AdjustContrast scales channels around mid grey, value in [-1, 1].
// -1 flattens the image to a uniform grey, 1 thresholds every channel at mid grey.
func (p *ImageProcessor) AdjustContrast(img image.Image, value float64) *image.NRGBA {
	return imaging.AdjustContrast(img, value*100)
}
