package processor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvert(t *testing.T) {
	p := newTestProcessor(t)
	src := solid(3, 3, color.NRGBA{10, 200, 255, 128})

	got := p.Invert(src)

	assert.Equal(t, color.NRGBA{245, 55, 0, 128}, got.NRGBAAt(1, 1))
}

func TestInvertIsInvolutive(t *testing.T) {
	p := newTestProcessor(t)
	src := gradient(40, 30)

	got := p.Invert(p.Invert(src))

	assert.Equal(t, src.Pix, got.Pix)
}

func TestGreyscaleIsIdempotent(t *testing.T) {
	p := newTestProcessor(t)

	once := p.Greyscale(gradient(40, 30))
	twice := p.Greyscale(once)

	assert.Equal(t, once.Pix, twice.Pix)
}

func TestGreyscaleDesaturates(t *testing.T) {
	p := newTestProcessor(t)

	got := p.Greyscale(gradient(16, 16))

	for i := 0; i < len(got.Pix); i += 4 {
		px := got.Pix[i : i+4]
		if px[0] != px[1] || px[1] != px[2] {
			t.Fatalf("pixel %d is not grey: %v", i/4, px)
		}
	}
}
