// Top toolbar: file actions and view toggles
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Canvas views selectable from the toolbar
const (
	ViewSplit     = "split"
	ViewOriginal  = "original"
	ViewProcessed = "processed"
)

type Toolbar struct {
	container *fyne.Container

	openBtn  *widget.Button
	saveBtn  *widget.Button
	resetBtn *widget.Button

	splitViewBtn     *widget.Button
	originalViewBtn  *widget.Button
	processedViewBtn *widget.Button

	currentView string

	onOpen        func()
	onSave        func()
	onReset       func()
	onViewChanged func(string)
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{currentView: ViewSplit}
	toolbar.initializeUI()
	return toolbar
}

func (tb *Toolbar) initializeUI() {
	titleLabel := widget.NewLabelWithStyle("Image Transform Pipeline", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	tb.openBtn = widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), func() {
		if tb.onOpen != nil {
			tb.onOpen()
		}
	})
	tb.openBtn.Importance = widget.HighImportance

	tb.saveBtn = widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		if tb.onSave != nil {
			tb.onSave()
		}
	})
	tb.saveBtn.Disable()

	tb.resetBtn = widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), func() {
		if tb.onReset != nil {
			tb.onReset()
		}
	})
	tb.resetBtn.Disable()

	leftSection := container.NewHBox(
		titleLabel,
		widget.NewSeparator(),
		tb.openBtn,
		tb.saveBtn,
		tb.resetBtn,
	)

	tb.splitViewBtn = widget.NewButtonWithIcon("", theme.ViewRestoreIcon(), func() {
		tb.setView(ViewSplit)
	})
	tb.splitViewBtn.Importance = widget.HighImportance

	tb.originalViewBtn = widget.NewButtonWithIcon("", theme.MediaPhotoIcon(), func() {
		tb.setView(ViewOriginal)
	})

	tb.processedViewBtn = widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		tb.setView(ViewProcessed)
	})

	rightSection := container.NewHBox(
		widget.NewLabel("View:"),
		tb.splitViewBtn,
		tb.originalViewBtn,
		tb.processedViewBtn,
	)

	tb.container = container.NewBorder(nil, nil, leftSection, rightSection)
}

func (tb *Toolbar) setView(view string) {
	tb.currentView = view

	tb.splitViewBtn.Importance = widget.MediumImportance
	tb.originalViewBtn.Importance = widget.MediumImportance
	tb.processedViewBtn.Importance = widget.MediumImportance

	switch view {
	case ViewSplit:
		tb.splitViewBtn.Importance = widget.HighImportance
	case ViewOriginal:
		tb.originalViewBtn.Importance = widget.HighImportance
	case ViewProcessed:
		tb.processedViewBtn.Importance = widget.HighImportance
	}

	tb.splitViewBtn.Refresh()
	tb.originalViewBtn.Refresh()
	tb.processedViewBtn.Refresh()

	if tb.onViewChanged != nil {
		tb.onViewChanged(view)
	}
}

// Enable turns on the buttons that need a loaded image
func (tb *Toolbar) Enable() {
	tb.saveBtn.Enable()
	tb.resetBtn.Enable()
}

func (tb *Toolbar) Disable() {
	tb.saveBtn.Disable()
	tb.resetBtn.Disable()
}

func (tb *Toolbar) GetContainer() fyne.CanvasObject {
	return tb.container
}

func (tb *Toolbar) SetCallbacks(onOpen, onSave, onReset func(), onViewChanged func(string)) {
	tb.onOpen = onOpen
	tb.onSave = onSave
	tb.onReset = onReset
	tb.onViewChanged = onViewChanged
}
