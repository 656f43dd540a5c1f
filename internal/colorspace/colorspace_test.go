package colorspace

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		in   RGB
		want HSV
	}{
		{RGB{255, 255, 255}, HSV{0, 0, 1}},
		{RGB{0, 0, 0}, HSV{0, 0, 0}},
		{RGB{255, 0, 0}, HSV{0, 1, 1}},
		{RGB{0, 255, 0}, HSV{120, 1, 1}},
		{RGB{0, 0, 255}, HSV{240, 1, 1}},
		{RGB{255, 0, 255}, HSV{300, 1, 1}},
		{RGB{128, 128, 0}, HSV{60, 1, 128.0 / 255}},
	}
	for _, tt := range tests {
		got := RGBToHSV(tt.in)
		assert.InDelta(t, tt.want.H, got.H, 1e-9, "%v", tt.in)
		assert.InDelta(t, tt.want.S, got.S, 1e-9, "%v", tt.in)
		assert.InDelta(t, tt.want.V, got.V, 1e-9, "%v", tt.in)
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				assert.Equal(t, c, HSVToRGB(RGBToHSV(c)))
			}
		}
	}
}

func TestHSVToRGBClamps(t *testing.T) {
	assert.Equal(t, RGB{255, 0, 0}, HSVToRGB(HSV{H: 360, S: 2, V: 5}))
	assert.Equal(t, RGB{0, 0, 255}, HSVToRGB(HSV{H: -120, S: 1, V: 1}))
	assert.Equal(t, RGB{0, 0, 0}, HSVToRGB(HSV{H: 10, S: 1, V: -1}))
	assert.Equal(t, RGB{0, 0, 0}, HSVToRGB(HSV{H: math.NaN(), S: 0, V: 0}))
}

func TestRGBToCMYK(t *testing.T) {
	assert.Equal(t, CMYK{0, 0, 0, 1}, RGBToCMYK(RGB{0, 0, 0}))
	assert.Equal(t, CMYK{0, 0, 0, 0}, RGBToCMYK(RGB{255, 255, 255}))
	assert.Equal(t, CMYK{0, 1, 1, 0}, RGBToCMYK(RGB{255, 0, 0}))

	got := RGBToCMYK(RGB{200, 100, 50})
	assert.Equal(t, 0.0, got.C)
	assert.Equal(t, 0.5, got.M)
	assert.Equal(t, 0.75, got.Y)
	assert.Equal(t, 0.2157, got.K)
}

func TestCMYKRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 51 {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				assert.Equal(t, c, CMYKToRGB(RGBToCMYK(c)))
			}
		}
	}
}

func TestCMYKToRGBClamps(t *testing.T) {
	assert.Equal(t, RGB{255, 255, 255}, CMYKToRGB(CMYK{-1, -1, -1, -1}))
	assert.Equal(t, RGB{0, 0, 0}, CMYKToRGB(CMYK{0, 0, 0, 3}))
}

func TestHexAndColor(t *testing.T) {
	c := RGB{255, 8, 170}
	assert.Equal(t, "#ff08aa", c.Hex())
	assert.Equal(t, color.NRGBA{255, 8, 170, 255}, c.Color())
	assert.Equal(t, c, FromColor(color.RGBA{255, 8, 170, 255}))
}

func TestSwatch(t *testing.T) {
	buf, err := Swatch(RGB{1, 2, 3}, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, buf.Channels())
	v, err := buf.At(3, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), v)

	_, err = Swatch(RGB{}, 0, 2)
	assert.Error(t, err)
}
