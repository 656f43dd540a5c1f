package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageData(t *testing.T) {
	data := NewImageData()
	assert.False(t, data.HasImage())
	assert.Error(t, data.ResetToOriginal())

	orig, err := NewFilled(4, 3, 3, 10)
	require.NoError(t, err)
	processed, err := NewFilled(4, 3, 1, 255)
	require.NoError(t, err)

	assert.Error(t, data.SetProcessed(processed))
	require.NoError(t, data.SetOriginal(orig, "/tmp/page.PNG"))
	assert.True(t, data.HasImage())
	assert.Same(t, orig, data.GetProcessed())

	meta := data.GetMetadata()
	assert.Equal(t, ImageMetadata{Width: 4, Height: 3, Channels: 3, Format: "png"}, meta)
	assert.Equal(t, "/tmp/page.PNG", data.GetFilepath())

	require.NoError(t, data.SetProcessed(processed))
	assert.Same(t, processed, data.GetProcessed())
	assert.Same(t, orig, data.GetOriginal())

	require.NoError(t, data.ResetToOriginal())
	assert.Same(t, orig, data.GetProcessed())

	data.Clear()
	assert.False(t, data.HasImage())
	assert.Nil(t, data.GetProcessed())
}

func TestValidateImage(t *testing.T) {
	assert.ErrorIs(t, ValidateImage(nil), ErrInvalidDimensions)
	assert.ErrorIs(t, ValidateImage(&ImageBuffer{}), ErrInvalidDimensions)

	buf, err := NewFilled(1, 1, 1, 0)
	require.NoError(t, err)
	assert.NoError(t, ValidateImage(buf))
}
