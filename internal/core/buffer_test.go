package core

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImageBuffer(t *testing.T) {
	tests := []struct {
		name     string
		w, h, ch int
		samples  int
		wantErr  error
	}{
		{"gray", 2, 3, 1, 6, nil},
		{"rgb", 2, 2, 3, 12, nil},
		{"short", 2, 2, 1, 3, ErrInvalidDimensions},
		{"long", 2, 2, 3, 13, ErrInvalidDimensions},
		{"zero width", 0, 2, 1, 0, ErrInvalidDimensions},
		{"negative height", 2, -1, 1, 0, ErrInvalidDimensions},
		{"rgba", 1, 1, 4, 4, ErrUnsupportedChannelCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewImageBuffer(tt.w, tt.h, tt.ch, make([]uint8, tt.samples))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, buf)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.w*tt.h*tt.ch, buf.Len())
		})
	}
}

func TestNewImageBufferCopiesSamples(t *testing.T) {
	samples := []uint8{1, 2, 3, 4}
	buf, err := NewImageBuffer(2, 2, 1, samples)
	require.NoError(t, err)

	samples[0] = 99
	v, err := buf.At(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v)

	out := buf.Samples()
	out[1] = 99
	v, _ = buf.At(1, 0, 0)
	assert.Equal(t, uint8(2), v)
}

func TestAllocateAndRowShareStorage(t *testing.T) {
	buf, pix, err := Allocate(2, 2, 1)
	require.NoError(t, err)
	pix[3] = 7
	assert.Equal(t, []uint8{0, 7}, buf.Row(1))

	copied := buf.Samples()
	copied[0] = 9
	assert.Equal(t, []uint8{0, 0}, buf.Row(0))

	_, _, err = Allocate(0, 2, 1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestAt(t *testing.T) {
	buf, err := NewImageBuffer(2, 2, 3, []uint8{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	})
	require.NoError(t, err)

	v, err := buf.At(1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(12), v)

	v, err = buf.At(0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(7), v)

	for _, c := range [][3]int{{-1, 0, 0}, {2, 0, 0}, {0, 2, 0}, {0, -1, 0}, {0, 0, 3}, {0, 0, -1}} {
		_, err := buf.At(c[0], c[1], c[2])
		assert.ErrorIs(t, err, ErrOutOfBounds, "coord %v", c)
	}
}

func TestToGrayscale(t *testing.T) {
	buf, err := NewImageBuffer(4, 1, 3, []uint8{
		255, 0, 0,
		0, 255, 0,
		0, 0, 255,
		200, 100, 50,
	})
	require.NoError(t, err)

	gray := buf.ToGrayscale()
	assert.Equal(t, 1, gray.Channels())
	assert.Equal(t, 4, gray.Width())
	// 0.299*255=76.245, 0.587*255=149.685, 0.114*255=29.07, 59.8+58.7+5.7=124.2
	assert.Equal(t, []uint8{76, 150, 29, 124}, gray.Samples())

	again := gray.ToGrayscale()
	assert.True(t, again.Equal(gray))
	assert.NotSame(t, gray, again)
}

func TestNewFilled(t *testing.T) {
	buf, err := NewFilled(3, 2, 3, 42)
	require.NoError(t, err)
	for _, v := range buf.Samples() {
		assert.Equal(t, uint8(42), v)
	}

	_, err = NewFilled(0, 2, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestClampToByte(t *testing.T) {
	assert.Equal(t, uint8(0), ClampToByte(-3))
	assert.Equal(t, uint8(255), ClampToByte(300))
	assert.Equal(t, uint8(3), ClampToByte(2.5))
	assert.Equal(t, uint8(2), ClampToByte(2.49))
}

func TestImageRoundTrip(t *testing.T) {
	rgb, err := NewImageBuffer(2, 1, 3, []uint8{10, 20, 30, 40, 50, 60})
	require.NoError(t, err)

	img := rgb.ToImage()
	require.IsType(t, &image.RGBA{}, img)
	assert.Equal(t, color.RGBA{40, 50, 60, 255}, img.At(1, 0))

	back, err := FromImage(img, 3)
	require.NoError(t, err)
	assert.True(t, back.Equal(rgb))

	gray := rgb.ToGrayscale()
	grayImg := gray.ToImage()
	require.IsType(t, &image.Gray{}, grayImg)
	back, err = FromImage(grayImg, 1)
	require.NoError(t, err)
	assert.True(t, back.Equal(gray))

	viaRGB, err := FromImage(img, 1)
	require.NoError(t, err)
	assert.True(t, viaRGB.Equal(gray))
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(5, 5, 7, 6))
	img.SetGray(6, 5, color.Gray{Y: 9})

	buf, err := FromImage(img, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 9}, buf.Samples())

	_, err = FromImage(image.NewGray(image.Rect(0, 0, 0, 0)), 1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
