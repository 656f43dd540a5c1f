// Original and processed image views
package gui

import (
	"image"
	"image/color"
	"image/draw"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"image-transform-pipeline/internal/config"
	"image-transform-pipeline/internal/core"
	"image-transform-pipeline/internal/display"
)

// ImageCanvas shows the original and processed buffers fitted to the viewport
type ImageCanvas struct {
	viewport config.DisplayConfig
	resample display.Resample
	logger   *logrus.Logger

	split          *container.Split
	originalView   *widget.Card
	processedView  *widget.Card
	originalImage  *canvas.Image
	processedImage *canvas.Image
}

func NewImageCanvas(viewport config.DisplayConfig, logger *logrus.Logger) *ImageCanvas {
	resample, err := display.ParseResample(viewport.Resample)
	if err != nil {
		logger.WithError(err).Warn("Falling back to Catmull-Rom resampling")
	}
	ic := &ImageCanvas{
		viewport: viewport,
		resample: resample,
		logger:   logger,
	}
	ic.initializeUI()
	return ic
}

func newPlaceholder() *canvas.Image {
	placeholder := image.NewRGBA(image.Rect(0, 0, 200, 150))
	draw.Draw(placeholder, placeholder.Bounds(), &image.Uniform{C: color.RGBA{240, 240, 240, 255}}, image.Point{}, draw.Src)

	img := canvas.NewImageFromImage(placeholder)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(200, 150))
	return img
}

func (ic *ImageCanvas) initializeUI() {
	ic.originalImage = newPlaceholder()
	ic.processedImage = newPlaceholder()

	ic.originalView = widget.NewCard("Original", "", ic.originalImage)
	ic.processedView = widget.NewCard("Processed", "", ic.processedImage)

	ic.split = container.NewHSplit(ic.originalView, ic.processedView)
	ic.split.SetOffset(0.5)
}

func (ic *ImageCanvas) GetContainer() fyne.CanvasObject {
	return ic.split
}

func (ic *ImageCanvas) SetOriginal(buf *core.ImageBuffer) {
	ic.update(ic.originalImage, buf)
}

func (ic *ImageCanvas) SetProcessed(buf *core.ImageBuffer) {
	ic.update(ic.processedImage, buf)
}

func (ic *ImageCanvas) update(target *canvas.Image, buf *core.ImageBuffer) {
	img := display.FitWith(buf, ic.viewport.MaxWidth, ic.viewport.MaxHeight, ic.resample)
	if img == nil {
		ic.logger.Debug("Skipping display of empty buffer")
		return
	}

	ic.logger.WithFields(logrus.Fields{
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	}).Debug("Updating image view")

	target.Image = img
	target.Refresh()
}

// SetView shows both images or only one of them
func (ic *ImageCanvas) SetView(view string) {
	switch view {
	case ViewOriginal:
		ic.originalView.Show()
		ic.processedView.Hide()
	case ViewProcessed:
		ic.originalView.Hide()
		ic.processedView.Show()
	default:
		ic.originalView.Show()
		ic.processedView.Show()
	}
	ic.split.Refresh()
}
