// Fitting processed buffers into a viewport for on-screen display
package display

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"image-transform-pipeline/internal/core"
)

// FitSize returns the largest size with the aspect ratio of w x h that fits
// inside maxW x maxH. Images that already fit keep their size.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	if w <= maxW && h <= maxH {
		return w, h
	}

	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}

	fw := int(float64(w)*scale + 0.5)
	fh := int(float64(h)*scale + 0.5)
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}
	return fw, fh
}

// Resample selects the interpolation used when shrinking
type Resample int

const (
	CatmullRom Resample = iota
	Lanczos
)

func (r Resample) String() string {
	if r == Lanczos {
		return "lanczos"
	}
	return "catmullrom"
}

// ParseResample accepts "catmullrom" and "lanczos"
func ParseResample(s string) (Resample, error) {
	switch s {
	case "catmullrom", "":
		return CatmullRom, nil
	case "lanczos":
		return Lanczos, nil
	default:
		return CatmullRom, fmt.Errorf("unknown resample filter: %s", s)
	}
}

// Fit converts buf to an image no larger than maxW x maxH using Catmull-Rom.
// See FitWith.
func Fit(buf *core.ImageBuffer, maxW, maxH int) image.Image {
	return FitWith(buf, maxW, maxH, CatmullRom)
}

// FitWith converts buf to an image no larger than maxW x maxH. The result is
// never upscaled and keeps the aspect ratio. An empty buffer yields nil.
func FitWith(buf *core.ImageBuffer, maxW, maxH int, filter Resample) image.Image {
	if buf.Empty() {
		return nil
	}

	src := buf.ToImage()
	w, h := FitSize(buf.Width(), buf.Height(), maxW, maxH)
	if w == 0 || (w == buf.Width() && h == buf.Height()) {
		return src
	}

	if filter == Lanczos {
		return resize.Resize(uint(w), uint(h), src, resize.Lanczos3)
	}

	rect := image.Rect(0, 0, w, h)
	var dst draw.Image
	if buf.Channels() == 1 {
		dst = image.NewGray(rect)
	} else {
		dst = image.NewRGBA(rect)
	}
	draw.CatmullRom.Scale(dst, rect, src, src.Bounds(), draw.Src, nil)
	return dst
}
