package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestThumbnailKeepsAspect(t *testing.T) {
	c := color.NRGBA{R: 10, G: 100, B: 200, A: 255}
	th := Thumbnail(solid(800, 600, c), 200)
	assert.Equal(t, image.Rect(0, 0, 200, 150), th.Bounds())
	got := th.NRGBAAt(100, 75)
	assert.InDelta(t, c.R, got.R, 1)
	assert.InDelta(t, c.G, got.G, 1)
	assert.InDelta(t, c.B, got.B, 1)
	assert.Equal(t, uint8(255), got.A)
}

func TestThumbnailPassThrough(t *testing.T) {
	img := solid(40, 30, color.NRGBA{A: 255})
	assert.Same(t, img, Thumbnail(img, 64))
	assert.Same(t, img, Thumbnail(img, 0))
}
