// Main application window
package gui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"image-transform-pipeline/internal/config"
	"image-transform-pipeline/internal/core"
	"image-transform-pipeline/internal/io"
	"image-transform-pipeline/internal/pipeline"
)

// Application represents the main application
type Application struct {
	app       fyne.App
	window    fyne.Window
	logger    *logrus.Logger
	cfg       *config.Config
	debugMode bool

	// Core components
	pipeline *pipeline.Pipeline
	loader   *io.ImageLoader

	// GUI components
	canvas      *ImageCanvas
	toolbar     *Toolbar
	controls    *ControlPanel
	infoPanel   *InfoPanel
	status      *StatusManager
	menuHandler *MenuHandler

	// cancel aborts the run in flight; only touched on the UI goroutine
	cancel context.CancelFunc
}

func NewApplication(app fyne.App, cfg *config.Config, logger *logrus.Logger, debugMode bool) (*Application, error) {
	loader, err := io.NewImageLoader(cfg.Loader.Backend, logger)
	if err != nil {
		return nil, err
	}

	window := app.NewWindow("Image Transform Pipeline")
	window.Resize(fyne.NewSize(1400, 900))
	window.CenterOnScreen()

	a := &Application{
		app:       app,
		window:    window,
		logger:    logger,
		cfg:       cfg,
		debugMode: debugMode,
		pipeline:  pipeline.New(cfg, logger),
		loader:    loader,
	}

	a.initializeGUI()
	a.setupLayout()
	a.setupCallbacks()

	return a, nil
}

func (a *Application) initializeGUI() {
	a.canvas = NewImageCanvas(a.cfg.Display, a.logger)
	a.toolbar = NewToolbar()
	a.controls = NewControlPanel(a.pipeline, a.logger)
	a.infoPanel = NewInfoPanel()
	a.status = NewStatusManager()
	a.menuHandler = NewMenuHandler(a.window, a.loader, a.logger)
}

func (a *Application) setupLayout() {
	center := container.NewBorder(
		container.NewVBox(a.toolbar.GetContainer(), widget.NewSeparator()),
		a.status.GetWidget(),
		nil,
		nil,
		container.NewPadded(a.canvas.GetContainer()),
	)

	right := container.NewVSplit(
		container.NewScroll(a.controls.GetContainer()),
		container.NewScroll(a.infoPanel.GetContainer()),
	)
	right.SetOffset(0.55)

	content := container.NewHSplit(center, right)
	content.SetOffset(0.72)

	a.window.SetMainMenu(a.menuHandler.GetMainMenu())
	a.window.SetContent(content)
}

func (a *Application) setupCallbacks() {
	a.menuHandler.SetCallbacks(
		// onImageLoaded
		func(buf *core.ImageBuffer, path string) {
			if err := a.LoadImage(buf, path); err != nil {
				a.showError("Failed to Set Image", err)
			}
		},
		// onSaveRequested
		func(path string) {
			if err := a.SaveProcessedImage(path); err != nil {
				a.showError("Failed to Save Image", err)
				return
			}
			a.status.ShowSuccess(fmt.Sprintf("Saved: %s", path))
		},
		// onReset
		a.resetImage,
		// onColorConverter
		func() {
			NewColorConverter(a.app, a.logger).Show()
		},
	)

	a.toolbar.SetCallbacks(
		a.menuHandler.openImage,
		a.menuHandler.saveImage,
		a.resetImage,
		a.canvas.SetView,
	)

	a.controls.SetRunCallback(a.runAlgorithm)
}

// LoadImage makes buf the session image and refreshes every panel
func (a *Application) LoadImage(buf *core.ImageBuffer, path string) error {
	a.cancelRun()
	if err := a.pipeline.SetOriginal(buf, path); err != nil {
		return err
	}

	meta := a.pipeline.Metadata()
	a.canvas.SetOriginal(buf)
	a.canvas.SetProcessed(buf)
	a.infoPanel.Clear()
	a.infoPanel.ShowImageInfo(path, meta)
	a.toolbar.Enable()
	a.controls.Enable()
	a.status.ShowSuccess(fmt.Sprintf("Loaded: %s", path))
	return nil
}

// runAlgorithm processes off the UI goroutine and publishes through fyne.Do
func (a *Application) runAlgorithm(name string, params map[string]interface{}) {
	if !a.pipeline.HasImage() {
		a.status.ShowWarning("Load an image first")
		return
	}

	a.cancelRun()
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	a.status.ShowInfo(fmt.Sprintf("Running %s...", name))
	a.controls.SetBusy(true)

	go func() {
		result, err := a.pipeline.Run(ctx, name, params)
		fyne.Do(func() {
			a.finishRun(ctx, result, err)
		})
	}()
}

// finishRun publishes a run's outcome. A superseded run leaves the panels
// to the run that replaced it.
func (a *Application) finishRun(ctx context.Context, result *pipeline.Result, err error) {
	if ctx.Err() != nil {
		return
	}
	a.controls.SetBusy(false)
	if err != nil {
		a.showError("Processing Error", err)
		return
	}
	a.canvas.SetProcessed(result.Output)
	a.infoPanel.UpdateMetrics(result.Metrics)
	a.infoPanel.ShowStep(result.Algorithm, result.Duration)
	a.status.ShowSuccess(fmt.Sprintf("%s done in %s", result.Algorithm, result.Duration.Round(1e6)))
}

func (a *Application) cancelRun() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

func (a *Application) resetImage() {
	if !a.pipeline.HasImage() {
		return
	}
	a.cancelRun()
	if err := a.pipeline.Reset(); err != nil {
		a.showError("Reset Failed", err)
		return
	}
	a.canvas.SetProcessed(a.pipeline.Processed())
	a.infoPanel.Clear()
	a.status.ShowInfo("Reset to original image")
}

// SaveProcessedImage writes the processed image, or the original when
// nothing has been applied yet
func (a *Application) SaveProcessedImage(path string) error {
	if !a.pipeline.HasImage() {
		return fmt.Errorf("no image to save")
	}
	return a.loader.SaveImage(a.pipeline.Processed(), path)
}

func (a *Application) ShowAndRun() {
	a.logger.Info("Showing main application window")

	a.window.SetCloseIntercept(func() {
		a.cancelRun()
		a.app.Quit()
	})

	a.window.ShowAndRun()
}

func (a *Application) showError(title string, err error) {
	a.logger.WithError(err).Error(title)
	dialog.ShowError(err, a.window)
	a.status.ShowError(err)
}
