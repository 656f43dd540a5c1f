// Menu handler for application actions
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"image-transform-pipeline/internal/core"
	"image-transform-pipeline/internal/io"
)

// MenuHandler handles menu actions
type MenuHandler struct {
	window fyne.Window
	loader *io.ImageLoader
	logger *logrus.Logger

	onImageLoaded    func(*core.ImageBuffer, string)
	onSaveRequested  func(string)
	onReset          func()
	onColorConverter func()
}

func NewMenuHandler(window fyne.Window, loader *io.ImageLoader, logger *logrus.Logger) *MenuHandler {
	return &MenuHandler{
		window: window,
		loader: loader,
		logger: logger,
	}
}

func (mh *MenuHandler) GetMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", mh.openImage),
		fyne.NewMenuItem("Save Image...", mh.saveImage),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exit", func() {
			mh.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Reset to Original", func() {
			if mh.onReset != nil {
				mh.onReset()
			}
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Color Converter...", func() {
			if mh.onColorConverter != nil {
				mh.onColorConverter()
			}
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mh.showAbout),
	)

	return fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu)
}

func (mh *MenuHandler) openImage() {
	mh.logger.Info("Opening file dialog for image selection")

	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mh.showError("File Dialog Error", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		mh.logger.WithField("filepath", path).Info("Loading selected image")

		buf, err := mh.loader.LoadImage(path)
		if err != nil {
			mh.showError("Failed to Load Image", err)
			return
		}

		if mh.onImageLoaded != nil {
			mh.onImageLoaded(buf, path)
		}
	}, mh.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(io.SupportedExtensions()))
	fileDialog.Show()
}

func (mh *MenuHandler) saveImage() {
	mh.logger.Info("Opening file dialog for image saving")

	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mh.showError("File Dialog Error", err)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		// the loader writes by path, release the dialog's handle first
		writer.Close()

		if mh.onSaveRequested != nil {
			mh.onSaveRequested(path)
		}
	}, mh.window)

	fileDialog.SetFileName("processed_image.png")
	fileDialog.SetFilter(storage.NewExtensionFileFilter(io.SupportedExtensions()))
	fileDialog.Show()
}

func (mh *MenuHandler) showAbout() {
	content := container.NewVBox(
		widget.NewLabel("Image Transform Pipeline"),
		widget.NewSeparator(),
		widget.NewLabel("5x5 low-pass filtering, global and adaptive"),
		widget.NewLabel("binarization, with before/after quality metrics."),
		widget.NewSeparator(),
		widget.NewLabel(fmt.Sprintf("Codec backend: %s", mh.loader.Backend())),
		widget.NewLabel("Built with Go and Fyne"),
	)

	aboutDialog := dialog.NewCustom("About", "Close", content, mh.window)
	aboutDialog.Resize(fyne.NewSize(400, 260))
	aboutDialog.Show()
}

func (mh *MenuHandler) showError(title string, err error) {
	mh.logger.WithError(err).Error(title)
	dialog.ShowError(err, mh.window)
}

func (mh *MenuHandler) SetCallbacks(onImageLoaded func(*core.ImageBuffer, string), onSaveRequested func(string), onReset, onColorConverter func()) {
	mh.onImageLoaded = onImageLoaded
	mh.onSaveRequested = onSaveRequested
	mh.onReset = onReset
	mh.onColorConverter = onColorConverter
}
