// Color converter window: RGB, HSV and CMYK views of one color
package gui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"image-transform-pipeline/internal/colorspace"
)

const swatchSize = 96

// ColorConverter keeps one RGB value and derives the HSV and CMYK sliders
// from it. Editing any slider converts back to RGB and re-derives the rest.
type ColorConverter struct {
	window fyne.Window
	logger *logrus.Logger

	rgb colorspace.RGB
	// set while sliders are written programmatically
	updating bool

	rgbSliders  [3]*widget.Slider
	hsvSliders  [3]*widget.Slider
	cmykSliders [4]*widget.Slider
	hexLabel    *widget.Label
	swatch      *canvas.Image
}

func NewColorConverter(app fyne.App, logger *logrus.Logger) *ColorConverter {
	cc := &ColorConverter{
		window: app.NewWindow("Color Converter"),
		logger: logger,
		rgb:    colorspace.RGB{R: 255, G: 255, B: 255},
	}
	cc.initializeUI()
	cc.SetRGB(cc.rgb)
	return cc
}

func newUnitSlider(max, step float64, onChanged func()) *widget.Slider {
	s := widget.NewSlider(0, max)
	s.Step = step
	s.OnChanged = func(float64) { onChanged() }
	return s
}

func (cc *ColorConverter) initializeUI() {
	for i := range cc.rgbSliders {
		cc.rgbSliders[i] = newUnitSlider(255, 1, cc.onRGBChanged)
	}
	cc.hsvSliders[0] = newUnitSlider(360, 1, cc.onHSVChanged)
	cc.hsvSliders[1] = newUnitSlider(1, 0.01, cc.onHSVChanged)
	cc.hsvSliders[2] = newUnitSlider(1, 0.01, cc.onHSVChanged)
	for i := range cc.cmykSliders {
		cc.cmykSliders[i] = newUnitSlider(1, 0.01, cc.onCMYKChanged)
	}

	cc.hexLabel = widget.NewLabel("")
	cc.swatch = canvas.NewImageFromImage(nil)
	cc.swatch.FillMode = canvas.ImageFillStretch
	cc.swatch.SetMinSize(fyne.NewSize(swatchSize, swatchSize))

	pickBtn := widget.NewButton("Pick Color...", cc.pickColor)

	form := func(labels []string, sliders []*widget.Slider) fyne.CanvasObject {
		f := widget.NewForm()
		for i, s := range sliders {
			f.Append(labels[i], s)
		}
		return f
	}

	content := container.NewVBox(
		widget.NewCard("RGB", "", form([]string{"R", "G", "B"}, cc.rgbSliders[:])),
		widget.NewCard("HSV", "", form([]string{"H", "S", "V"}, cc.hsvSliders[:])),
		widget.NewCard("CMYK", "", form([]string{"C", "M", "Y", "K"}, cc.cmykSliders[:])),
		container.NewHBox(cc.swatch, container.NewVBox(cc.hexLabel, pickBtn)),
	)

	cc.window.SetContent(container.NewPadded(content))
	cc.window.Resize(fyne.NewSize(420, 560))
}

func (cc *ColorConverter) Show() {
	cc.window.Show()
}

// RGB returns the current color
func (cc *ColorConverter) RGB() colorspace.RGB {
	return cc.rgb
}

// SetRGB makes c the current color and rewrites every view from it
func (cc *ColorConverter) SetRGB(c colorspace.RGB) {
	cc.rgb = c
	hsv := colorspace.RGBToHSV(c)
	cmyk := colorspace.RGBToCMYK(c)

	cc.updating = true
	cc.rgbSliders[0].SetValue(float64(c.R))
	cc.rgbSliders[1].SetValue(float64(c.G))
	cc.rgbSliders[2].SetValue(float64(c.B))
	cc.hsvSliders[0].SetValue(hsv.H)
	cc.hsvSliders[1].SetValue(hsv.S)
	cc.hsvSliders[2].SetValue(hsv.V)
	cc.cmykSliders[0].SetValue(cmyk.C)
	cc.cmykSliders[1].SetValue(cmyk.M)
	cc.cmykSliders[2].SetValue(cmyk.Y)
	cc.cmykSliders[3].SetValue(cmyk.K)
	cc.updating = false

	cc.hexLabel.SetText(c.Hex())
	if buf, err := colorspace.Swatch(c, swatchSize, swatchSize); err == nil {
		cc.swatch.Image = buf.ToImage()
		cc.swatch.Refresh()
	}
}

func (cc *ColorConverter) onRGBChanged() {
	if cc.updating {
		return
	}
	cc.SetRGB(colorspace.RGB{
		R: uint8(cc.rgbSliders[0].Value),
		G: uint8(cc.rgbSliders[1].Value),
		B: uint8(cc.rgbSliders[2].Value),
	})
}

func (cc *ColorConverter) onHSVChanged() {
	if cc.updating {
		return
	}
	cc.SetRGB(colorspace.HSVToRGB(colorspace.HSV{
		H: cc.hsvSliders[0].Value,
		S: cc.hsvSliders[1].Value,
		V: cc.hsvSliders[2].Value,
	}))
}

func (cc *ColorConverter) onCMYKChanged() {
	if cc.updating {
		return
	}
	cc.SetRGB(colorspace.CMYKToRGB(colorspace.CMYK{
		C: cc.cmykSliders[0].Value,
		M: cc.cmykSliders[1].Value,
		Y: cc.cmykSliders[2].Value,
		K: cc.cmykSliders[3].Value,
	}))
}

func (cc *ColorConverter) pickColor() {
	picker := dialog.NewColorPicker("Choose color", "", func(c color.Color) {
		rgb := colorspace.FromColor(c)
		cc.logger.WithField("color", rgb.Hex()).Debug("Color picked")
		cc.SetRGB(rgb)
	}, cc.window)
	picker.Advanced = true
	picker.SetColor(cc.rgb.Color())
	picker.Show()
}

func (cc *ColorConverter) String() string {
	return fmt.Sprintf("ColorConverter(%s)", cc.rgb.Hex())
}
