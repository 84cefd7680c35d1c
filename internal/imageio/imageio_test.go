package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c := color.NRGBA{A: 255}
			if (x+y)%2 == 0 {
				c = color.NRGBA{R: 250, G: 20, B: 90, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"png", "PNG", ".png"} {
		f, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, PNG, f)
	}
	f, err := ParseFormat("WebP")
	require.NoError(t, err)
	assert.Equal(t, WebP, f)
	assert.Equal(t, ".webp", f.Ext())

	_, err = ParseFormat("gif")
	assert.Error(t, err)
}

func TestEncodeLosslessFormats(t *testing.T) {
	src := checker()
	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		PNG: func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		BMP: func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
	}
	for f, decode := range decoders {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, f))
			got, err := decode(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			for y := 0; y < 3; y++ {
				for x := 0; x < 4; x++ {
					assert.Equal(t, src.NRGBAAt(x, y), color.NRGBAModel.Convert(got.At(x, y)))
				}
			}
		})
	}
}

func TestEncodeAllFormats(t *testing.T) {
	for _, f := range Formats {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, checker(), f), "format %s", f)
		assert.NotZero(t, buf.Len())
	}
	assert.Error(t, Encode(&bytes.Buffer{}, checker(), Format("gif")))
}

func TestSaveCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.tga")
	require.NoError(t, Save(path, checker(), TGA))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
