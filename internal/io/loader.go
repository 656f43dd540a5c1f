// Image loading and saving functionality
package io

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"image-transform-pipeline/internal/core"
)

// codec decodes and encodes image files for one backend
type codec interface {
	name() string
	decode(path string, channels int) (*core.ImageBuffer, error)
	encode(buf *core.ImageBuffer, path string) error
}

// Backend names accepted by NewImageLoader
const (
	BackendOpenCV = "opencv"
	BackendGo     = "go"
)

var supportedFormats = []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp"}

// ImageLoader handles image file operations
type ImageLoader struct {
	codec  codec
	logger *logrus.Logger
}

// NewImageLoader creates a loader for the named backend
func NewImageLoader(backend string, logger *logrus.Logger) (*ImageLoader, error) {
	var c codec
	switch backend {
	case BackendOpenCV:
		c = opencvCodec{}
	case BackendGo, "":
		c = goCodec{}
	default:
		return nil, fmt.Errorf("unknown loader backend: %s", backend)
	}
	return &ImageLoader{codec: c, logger: logger}, nil
}

// Backend returns the name of the active codec
func (il *ImageLoader) Backend() string {
	return il.codec.name()
}

// LoadImage reads a file as a 3-channel RGB buffer
func (il *ImageLoader) LoadImage(path string) (*core.ImageBuffer, error) {
	return il.load(path, 3)
}

// LoadImageGrayscale reads a file as a 1-channel buffer
func (il *ImageLoader) LoadImageGrayscale(path string) (*core.ImageBuffer, error) {
	return il.load(path, 1)
}

func (il *ImageLoader) load(path string, channels int) (*core.ImageBuffer, error) {
	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"channels": channels,
		"backend":  il.codec.name(),
	}).Debug("Loading image")

	if !il.isSupportedImageFormat(path) {
		return nil, fmt.Errorf("unsupported image format: %s", path)
	}

	buf, err := il.codec.decode(path, channels)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"width":    buf.Width(),
		"height":   buf.Height(),
		"channels": buf.Channels(),
	}).Info("Image loaded successfully")

	return buf, nil
}

// SaveImage writes buf in the format implied by the path's extension
func (il *ImageLoader) SaveImage(buf *core.ImageBuffer, path string) error {
	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"backend":  il.codec.name(),
	}).Debug("Saving image")

	if buf.Empty() {
		return fmt.Errorf("cannot save empty image")
	}
	if !il.isSupportedImageFormat(path) {
		return fmt.Errorf("unsupported image format: %s", path)
	}

	if err := il.codec.encode(buf, path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"width":    buf.Width(),
		"height":   buf.Height(),
		"channels": buf.Channels(),
	}).Info("Image saved successfully")

	return nil
}

// ValidateImageFile checks that path can be decoded into a usable image
func (il *ImageLoader) ValidateImageFile(path string) error {
	if !il.isSupportedImageFormat(path) {
		return fmt.Errorf("unsupported image format")
	}

	buf, err := il.codec.decode(path, 1)
	if err != nil {
		return fmt.Errorf("invalid or corrupted image file: %w", err)
	}
	return core.ValidateImage(buf)
}

func (il *ImageLoader) isSupportedImageFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}

func (il *ImageLoader) GetSupportedFormats() []string {
	return []string{"JPEG", "PNG", "TIFF", "BMP"}
}

// SupportedExtensions lists the accepted file extensions, for file dialogs
func SupportedExtensions() []string {
	out := make([]string, len(supportedFormats))
	copy(out, supportedFormats)
	return out
}
