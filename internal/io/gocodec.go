package io

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"image-transform-pipeline/internal/core"
)

// goCodec uses the standard image codecs plus golang.org/x/image for BMP and TIFF
type goCodec struct{}

const jpegQuality = 95

func (goCodec) name() string { return BackendGo }

func (goCodec) decode(path string, channels int) (*core.ImageBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// bmp and tiff register themselves with image.Decode
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return core.FromImage(img, channels)
}

func (goCodec) encode(buf *core.ImageBuffer, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img := buf.ToImage()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	case ".bmp":
		return bmp.Encode(f, img)
	case ".tif", ".tiff":
		return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("no encoder for %s", ext)
	}
}
