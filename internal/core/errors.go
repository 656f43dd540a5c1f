// Error taxonomy shared by the buffer and the transforms
package core

import "errors"

var (
	// ErrInvalidDimensions is returned when a sample sequence does not match
	// width * height * channels, or a dimension is not positive.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrOutOfBounds is returned for coordinates outside the buffer.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrDimensionMismatch is returned for a bad kernel side length or a
	// zero-area buffer.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrUnsupportedChannelCount is returned when an operation cannot handle
	// the buffer's channel count.
	ErrUnsupportedChannelCount = errors.New("unsupported channel count")

	// ErrInvalidWindow is returned for an even window or one that does not
	// fit inside the image.
	ErrInvalidWindow = errors.New("invalid window")
)
