// Interop between ImageBuffer and the standard image package
package core

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// ToImage converts the buffer to *image.Gray (1 channel) or *image.RGBA (3 channels)
func (b *ImageBuffer) ToImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)
	if b.channels == 1 {
		img := image.NewGray(rect)
		for y := 0; y < b.height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+b.width], b.Row(y))
		}
		return img
	}

	img := image.NewRGBA(rect)
	for y := 0; y < b.height; y++ {
		row := b.Row(y)
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < b.width; x++ {
			dst[x*4] = row[x*3]
			dst[x*4+1] = row[x*3+1]
			dst[x*4+2] = row[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return img
}

// FromImage copies an image into a new buffer with the requested channel count.
// Alpha is discarded; one channel uses the same luma weights as ToGrayscale.
func FromImage(img image.Image, channels int) (*ImageBuffer, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidDimensions)
	}
	b := img.Bounds()
	if channels != 1 && channels != 3 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChannelCount, channels)
	}

	if gray, ok := img.(*image.Gray); ok && channels == 1 {
		pix := make([]uint8, 0, b.Dx()*b.Dy())
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				pix = append(pix, gray.GrayAt(x, y).Y)
			}
		}
		return NewImageBuffer(b.Dx(), b.Dy(), 1, pix)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	rgb := make([]uint8, 0, b.Dx()*b.Dy()*3)
	for i := 0; i < len(rgba.Pix); i += 4 {
		c := color.NRGBAModel.Convert(color.RGBA{rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2], rgba.Pix[i+3]}).(color.NRGBA)
		rgb = append(rgb, c.R, c.G, c.B)
	}
	buf, err := NewImageBuffer(b.Dx(), b.Dy(), 3, rgb)
	if err != nil {
		return nil, err
	}
	if channels == 1 {
		return buf.ToGrayscale(), nil
	}
	return buf, nil
}
