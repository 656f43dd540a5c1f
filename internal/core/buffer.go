// Immutable 8-bit sample grid consumed and produced by every transform
package core

import (
	"fmt"
	"math"
)

// ImageBuffer is a row-major grid of interleaved 8-bit samples.
// A buffer never changes after construction; transforms allocate new ones.
type ImageBuffer struct {
	width    int
	height   int
	channels int
	pix      []uint8
}

// NewImageBuffer validates the dimensions and copies samples into a new buffer
func NewImageBuffer(width, height, channels int, samples []uint8) (*ImageBuffer, error) {
	if err := validateShape(width, height, channels); err != nil {
		return nil, err
	}
	if len(samples) != width*height*channels {
		return nil, fmt.Errorf("%w: %d samples for %dx%dx%d",
			ErrInvalidDimensions, len(samples), width, height, channels)
	}

	pix := make([]uint8, len(samples))
	copy(pix, samples)
	return &ImageBuffer{width: width, height: height, channels: channels, pix: pix}, nil
}

// NewFilled creates a buffer with every sample set to value
func NewFilled(width, height, channels int, value uint8) (*ImageBuffer, error) {
	if err := validateShape(width, height, channels); err != nil {
		return nil, err
	}
	pix := make([]uint8, width*height*channels)
	if value != 0 {
		for i := range pix {
			pix[i] = value
		}
	}
	return &ImageBuffer{width: width, height: height, channels: channels, pix: pix}, nil
}

// Allocate returns a zeroed buffer together with its live backing samples
// so a transform can fill its own output without a copy. It is the one
// exported way to write into a buffer: the producer owns the samples until it
// returns the buffer and must not write them afterwards.
func Allocate(width, height, channels int) (*ImageBuffer, []uint8, error) {
	buf, err := NewFilled(width, height, channels, 0)
	if err != nil {
		return nil, nil, err
	}
	return buf, buf.pix, nil
}

func validateShape(width, height, channels int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if channels != 1 && channels != 3 {
		return fmt.Errorf("%w: %d", ErrUnsupportedChannelCount, channels)
	}
	return nil
}

// Width returns the number of columns
func (b *ImageBuffer) Width() int { return b.width }

// Height returns the number of rows
func (b *ImageBuffer) Height() int { return b.height }

// Channels returns the samples per pixel, 1 or 3
func (b *ImageBuffer) Channels() int { return b.channels }

// Len returns the number of samples
func (b *ImageBuffer) Len() int { return len(b.pix) }

// Empty reports whether the buffer has zero area. Only the zero value can be empty.
func (b *ImageBuffer) Empty() bool {
	return b == nil || b.width <= 0 || b.height <= 0 || len(b.pix) == 0
}

// At returns the sample at (x, y, c)
func (b *ImageBuffer) At(x, y, c int) (uint8, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height || c < 0 || c >= b.channels {
		return 0, fmt.Errorf("%w: (%d, %d, %d) in %dx%dx%d",
			ErrOutOfBounds, x, y, c, b.width, b.height, b.channels)
	}
	return b.pix[(y*b.width+x)*b.channels+c], nil
}

// Row returns row y without copying. The slice aliases the buffer's samples
// and must be treated as read-only; use Samples for a private copy.
func (b *ImageBuffer) Row(y int) []uint8 {
	stride := b.width * b.channels
	return b.pix[y*stride : (y+1)*stride]
}

// Samples returns a copy of the sample sequence
func (b *ImageBuffer) Samples() []uint8 {
	out := make([]uint8, len(b.pix))
	copy(out, b.pix)
	return out
}

// Clone returns an independent copy
func (b *ImageBuffer) Clone() *ImageBuffer {
	return &ImageBuffer{width: b.width, height: b.height, channels: b.channels, pix: b.Samples()}
}

// Equal reports whether both buffers have the same shape and samples
func (b *ImageBuffer) Equal(other *ImageBuffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.width != other.width || b.height != other.height || b.channels != other.channels {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// ToGrayscale converts a 3-channel RGB buffer with the ITU-R BT.601 luma
// weights. A 1-channel buffer is copied.
func (b *ImageBuffer) ToGrayscale() *ImageBuffer {
	if b.channels == 1 {
		return b.Clone()
	}

	pix := make([]uint8, b.width*b.height)
	for i := range pix {
		r := float64(b.pix[i*3])
		g := float64(b.pix[i*3+1])
		bl := float64(b.pix[i*3+2])
		pix[i] = ClampToByte(0.299*r + 0.587*g + 0.114*bl)
	}
	return &ImageBuffer{width: b.width, height: b.height, channels: 1, pix: pix}
}

// String implements fmt.Stringer
func (b *ImageBuffer) String() string {
	return fmt.Sprintf("ImageBuffer(%dx%dx%d)", b.width, b.height, b.channels)
}

// ClampToByte rounds half away from zero and clamps into [0, 255]
func ClampToByte(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
