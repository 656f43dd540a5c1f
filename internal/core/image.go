// Session image holder with thread-safe operations
package core

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// ImageData keeps the loaded original and the latest processed buffer for one
// session. Buffers are immutable, so getters hand out the stored pointers.
type ImageData struct {
	mu        sync.RWMutex
	original  *ImageBuffer
	processed *ImageBuffer
	filepath  string
	metadata  ImageMetadata
}

// ImageMetadata contains image information
type ImageMetadata struct {
	Width    int
	Height   int
	Channels int
	Format   string
}

// NewImageData creates an empty image holder
func NewImageData() *ImageData {
	return &ImageData{}
}

// SetOriginal replaces the original image and resets the processed one to it
func (img *ImageData) SetOriginal(buf *ImageBuffer, path string) error {
	if err := ValidateImage(buf); err != nil {
		return err
	}

	img.mu.Lock()
	defer img.mu.Unlock()

	img.original = buf
	img.processed = buf
	img.filepath = path
	img.metadata = ImageMetadata{
		Width:    buf.Width(),
		Height:   buf.Height(),
		Channels: buf.Channels(),
		Format:   getFormatFromPath(path),
	}
	return nil
}

// SetProcessed sets the processed image
func (img *ImageData) SetProcessed(buf *ImageBuffer) error {
	img.mu.Lock()
	defer img.mu.Unlock()

	if img.original == nil {
		return fmt.Errorf("no original image loaded")
	}
	if buf.Empty() {
		return fmt.Errorf("cannot set empty processed image")
	}
	img.processed = buf
	return nil
}

// GetOriginal returns the original image or nil
func (img *ImageData) GetOriginal() *ImageBuffer {
	img.mu.RLock()
	defer img.mu.RUnlock()
	return img.original
}

// GetProcessed returns the processed image or nil
func (img *ImageData) GetProcessed() *ImageBuffer {
	img.mu.RLock()
	defer img.mu.RUnlock()
	return img.processed
}

// HasImage returns true if an image is loaded
func (img *ImageData) HasImage() bool {
	img.mu.RLock()
	defer img.mu.RUnlock()
	return img.original != nil
}

// GetMetadata returns image metadata
func (img *ImageData) GetMetadata() ImageMetadata {
	img.mu.RLock()
	defer img.mu.RUnlock()
	return img.metadata
}

// GetFilepath returns the current file path
func (img *ImageData) GetFilepath() string {
	img.mu.RLock()
	defer img.mu.RUnlock()
	return img.filepath
}

// Clear clears all image data
func (img *ImageData) Clear() {
	img.mu.Lock()
	defer img.mu.Unlock()

	img.original = nil
	img.processed = nil
	img.filepath = ""
	img.metadata = ImageMetadata{}
}

// ResetToOriginal resets processed image to original
func (img *ImageData) ResetToOriginal() error {
	img.mu.Lock()
	defer img.mu.Unlock()

	if img.original == nil {
		return fmt.Errorf("no original image available")
	}
	img.processed = img.original
	return nil
}

func getFormatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}

// ValidateImage checks a buffer for basic requirements
func ValidateImage(buf *ImageBuffer) error {
	if buf.Empty() {
		return fmt.Errorf("%w: image is empty", ErrInvalidDimensions)
	}

	// Check for reasonable size limits (prevent memory issues)
	const maxDimension = 16384
	if buf.Width() > maxDimension || buf.Height() > maxDimension {
		return fmt.Errorf("%w: image too large: %dx%d (max: %d)",
			ErrInvalidDimensions, buf.Width(), buf.Height(), maxDimension)
	}
	return nil
}
