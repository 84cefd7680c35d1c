package rgb

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGammaRoundTrip(t *testing.T) {
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		assert.InDelta(t, x, Decode(Encode(x)), 1e-12, "x=%v", x)
		assert.InDelta(t, x, Encode(Decode(x)), 1e-12, "x=%v", x)
	}
}

func TestRGBStoresLinear(t *testing.T) {
	c := RGB(0.5, 1, 0)
	assert.InDelta(t, 0.21763764, c.R, 1e-6)
	assert.Equal(t, 1.0, c.G)
	assert.Equal(t, 0.0, c.B)
}

func TestArithmetic(t *testing.T) {
	a := Linear(0.1, 0.2, 0.3)
	b := Linear(0.4, 0.5, 0.6)

	sum := a.Add(b)
	assert.InDelta(t, 0.5, sum.R, 1e-12)
	assert.InDelta(t, 0.7, sum.G, 1e-12)
	assert.InDelta(t, 0.9, sum.B, 1e-12)

	assert.Equal(t, a, a.Add(Black()))
	assert.Equal(t, Linear(0.2, 0.4, 0.6), a.Scale(2))
}

func TestNRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want color.NRGBA
	}{
		{"black", Black(), color.NRGBA{0, 0, 0, 255}},
		{"white", RGB(1, 1, 1), color.NRGBA{255, 255, 255, 255}},
		{"overexposed clamps", Linear(4, 2, 1.5), color.NRGBA{255, 255, 255, 255}},
		{"negative clamps", Linear(-1, 0, 0), color.NRGBA{0, 0, 0, 255}},
		{"mid grey", RGB(0.5, 0.5, 0.5), color.NRGBA{127, 127, 127, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.NRGBA())
		})
	}
}

func TestBGRAOrder(t *testing.T) {
	assert.Equal(t, [4]uint8{0, 0, 255, 255}, RGB(1, 0, 0).BGRA())
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, RGB(0, 0, 1).BGRA())
}
