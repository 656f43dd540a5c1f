package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-transform-pipeline/internal/core"
)

func newGoLoader(t *testing.T) *ImageLoader {
	t.Helper()
	logger, _ := test.NewNullLogger()
	il, err := NewImageLoader(BackendGo, logger)
	require.NoError(t, err)
	return il
}

func rgbBuffer(t *testing.T) *core.ImageBuffer {
	t.Helper()
	pix := make([]uint8, 0, 4*3*3)
	for i := 0; i < 12; i++ {
		pix = append(pix, uint8(i*20), uint8(255-i*20), uint8(i*7))
	}
	buf, err := core.NewImageBuffer(4, 3, 3, pix)
	require.NoError(t, err)
	return buf
}

func TestNewImageLoaderBackends(t *testing.T) {
	logger, _ := test.NewNullLogger()

	il, err := NewImageLoader(BackendOpenCV, logger)
	require.NoError(t, err)
	assert.Equal(t, BackendOpenCV, il.Backend())

	il, err = NewImageLoader("", logger)
	require.NoError(t, err)
	assert.Equal(t, BackendGo, il.Backend())

	_, err = NewImageLoader("vips", logger)
	assert.Error(t, err)
}

func TestLosslessRoundTrip(t *testing.T) {
	il := newGoLoader(t)
	src := rgbBuffer(t)

	for _, ext := range []string{".png", ".bmp", ".tif"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "img"+ext)
			require.NoError(t, il.SaveImage(src, path))

			got, err := il.LoadImage(path)
			require.NoError(t, err)
			assert.True(t, src.Equal(got))

			gray, err := il.LoadImageGrayscale(path)
			require.NoError(t, err)
			assert.True(t, src.ToGrayscale().Equal(gray))

			assert.NoError(t, il.ValidateImageFile(path))
		})
	}
}

func TestGrayscaleRoundTrip(t *testing.T) {
	il := newGoLoader(t)
	src, err := core.NewImageBuffer(3, 2, 1, []uint8{0, 50, 100, 150, 200, 255})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gray.png")
	require.NoError(t, il.SaveImage(src, path))

	got, err := il.LoadImageGrayscale(path)
	require.NoError(t, err)
	assert.True(t, src.Equal(got))
}

func TestJPEGDimensions(t *testing.T) {
	il := newGoLoader(t)
	src := rgbBuffer(t)

	path := filepath.Join(t.TempDir(), "img.jpg")
	require.NoError(t, il.SaveImage(src, path))

	got, err := il.LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, src.Width(), got.Width())
	assert.Equal(t, src.Height(), got.Height())
	assert.Equal(t, 3, got.Channels())
}

func TestUnsupportedAndInvalid(t *testing.T) {
	il := newGoLoader(t)
	dir := t.TempDir()

	_, err := il.LoadImage(filepath.Join(dir, "img.gif"))
	assert.Error(t, err)

	assert.Error(t, il.SaveImage(rgbBuffer(t), filepath.Join(dir, "img.webp")))
	assert.Error(t, il.SaveImage(nil, filepath.Join(dir, "img.png")))

	bogus := filepath.Join(dir, "bogus.png")
	require.NoError(t, os.WriteFile(bogus, []byte("not an image"), 0o644))
	_, err = il.LoadImage(bogus)
	assert.Error(t, err)
	assert.Error(t, il.ValidateImageFile(bogus))

	_, err = il.LoadImage(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestSupportedFormats(t *testing.T) {
	il := newGoLoader(t)
	assert.True(t, il.isSupportedImageFormat("a/B.TIFF"))
	assert.True(t, il.isSupportedImageFormat("photo.jpeg"))
	assert.False(t, il.isSupportedImageFormat("noext"))
	assert.Len(t, SupportedExtensions(), 6)
	assert.Equal(t, []string{"JPEG", "PNG", "TIFF", "BMP"}, il.GetSupportedFormats())
}
