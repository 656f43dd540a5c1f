// Global fixed-threshold binarization
package algorithms

import (
	"fmt"

	"image-transform-pipeline/internal/core"
)

// GlobalThreshold sets a sample to 255 when it is strictly greater than t and to 0 otherwise.
// The input must be single-channel; convert with ToGrayscale first.
func GlobalThreshold(src *core.ImageBuffer, t uint8) (*core.ImageBuffer, error) {
	if err := requireGray(src); err != nil {
		return nil, err
	}

	out, pix, err := core.Allocate(src.Width(), src.Height(), 1)
	if err != nil {
		return nil, err
	}
	width := src.Width()
	forEachRow(src.Height(), func(y int) {
		dst := pix[y*width : (y+1)*width]
		for x, v := range src.Row(y) {
			if v > t {
				dst[x] = 255
			}
		}
	})
	return out, nil
}

// ToGrayscale converts src to a single-channel buffer
func ToGrayscale(src *core.ImageBuffer) (*core.ImageBuffer, error) {
	if src.Empty() {
		return nil, fmt.Errorf("%w: image is empty", core.ErrInvalidDimensions)
	}
	return src.ToGrayscale(), nil
}

func requireGray(src *core.ImageBuffer) error {
	if src.Empty() {
		return fmt.Errorf("%w: image is empty", core.ErrInvalidDimensions)
	}
	if src.Channels() != 1 {
		return fmt.Errorf("%w: thresholding needs 1 channel, got %d", core.ErrUnsupportedChannelCount, src.Channels())
	}
	return nil
}
