// Package colorspace converts a single color between RGB, HSV and CMYK.
//
// Every view is derived from an RGB value. The functions are pure; callers
// that edit HSV or CMYK convert back to RGB once and recompute the others.
package colorspace

import (
	"fmt"
	"image/color"
	"math"

	"image-transform-pipeline/internal/core"
)

// RGB is an 8-bit color
type RGB struct {
	R, G, B uint8
}

// HSV has H in degrees [0, 360) and S, V in [0, 1]
type HSV struct {
	H, S, V float64
}

// CMYK components are in [0, 1]
type CMYK struct {
	C, M, Y, K float64
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// RGBToHSV converts with hue 0 for grays
func RGBToHSV(c RGB) HSV {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))

	v := maxc
	if maxc == minc {
		return HSV{H: 0, S: 0, V: v}
	}

	delta := maxc - minc
	s := delta / maxc

	var h float64
	switch maxc {
	case r:
		h = (g - b) / delta
	case g:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return HSV{H: h, S: s, V: v}
}

// HSVToRGB converts after wrapping H into [0, 360) and clamping S and V
func HSVToRGB(c HSV) RGB {
	h := math.Mod(c.H, 360)
	if math.IsNaN(h) {
		h = 0
	}
	if h < 0 {
		h += 360
	}
	s, v := clamp01(c.S), clamp01(c.V)

	if s == 0 {
		return RGB{toByte(v), toByte(v), toByte(v)}
	}

	h /= 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) % 6 {
	case 0:
		return RGB{toByte(v), toByte(t), toByte(p)}
	case 1:
		return RGB{toByte(q), toByte(v), toByte(p)}
	case 2:
		return RGB{toByte(p), toByte(v), toByte(t)}
	case 3:
		return RGB{toByte(p), toByte(q), toByte(v)}
	case 4:
		return RGB{toByte(t), toByte(p), toByte(v)}
	default:
		return RGB{toByte(v), toByte(p), toByte(q)}
	}
}

// RGBToCMYK converts with components rounded to four decimals.
// Black is (0, 0, 0, 1).
func RGBToCMYK(c RGB) CMYK {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		return CMYK{K: 1}
	}

	cc := 1 - float64(c.R)/255
	m := 1 - float64(c.G)/255
	y := 1 - float64(c.B)/255

	k := math.Min(cc, math.Min(m, y))
	return CMYK{
		C: round4((cc - k) / (1 - k)),
		M: round4((m - k) / (1 - k)),
		Y: round4((y - k) / (1 - k)),
		K: round4(k),
	}
}

// CMYKToRGB converts after clamping every component into [0, 1]
func CMYKToRGB(c CMYK) RGB {
	k := 1 - clamp01(c.K)
	return RGB{
		R: toByte((1 - clamp01(c.C)) * k),
		G: toByte((1 - clamp01(c.M)) * k),
		B: toByte((1 - clamp01(c.Y)) * k),
	}
}

func toByte(unit float64) uint8 {
	return core.ClampToByte(unit * 255)
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color returns the opaque image/color value
func (c RGB) Color() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// FromColor drops alpha from any color.Color
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// Swatch returns a w x h 3-channel buffer filled with c
func Swatch(c RGB, w, h int) (*core.ImageBuffer, error) {
	buf, pix, err := core.Allocate(w, h, 3)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(pix); i += 3 {
		pix[i], pix[i+1], pix[i+2] = c.R, c.G, c.B
	}
	return buf, nil
}
