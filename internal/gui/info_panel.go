// Info panel with metrics, image details and status line
package gui

import (
	"fmt"
	"math"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"image-transform-pipeline/internal/core"
	"image-transform-pipeline/internal/metrics"
)

// InfoPanel shows quality metrics and image information
type InfoPanel struct {
	container *fyne.Container

	metricsCard    *widget.Card
	metricsContent *fyne.Container
	currentMetrics map[string]float64

	imageCard    *widget.Card
	imageContent *fyne.Container
	stepLabel    *widget.Label
}

func NewInfoPanel() *InfoPanel {
	panel := &InfoPanel{
		currentMetrics: make(map[string]float64),
	}
	panel.initializeUI()
	return panel
}

func (ip *InfoPanel) initializeUI() {
	ip.metricsContent = container.NewVBox(
		widget.NewLabel("Quality metrics will appear here after processing."),
	)
	ip.metricsCard = widget.NewCard("Quality Metrics", "", ip.metricsContent)

	ip.stepLabel = widget.NewLabel("")
	ip.imageContent = container.NewVBox(widget.NewLabel("No image loaded"))
	ip.imageCard = widget.NewCard("Image", "", container.NewVBox(ip.imageContent, ip.stepLabel))

	ip.container = container.NewVBox(
		ip.metricsCard,
		widget.NewSeparator(),
		ip.imageCard,
	)
}

func (ip *InfoPanel) GetContainer() fyne.CanvasObject {
	return ip.container
}

func (ip *InfoPanel) UpdateMetrics(values map[string]float64) {
	ip.currentMetrics = values
	ip.refreshMetricsDisplay()
}

func (ip *InfoPanel) refreshMetricsDisplay() {
	ip.metricsContent.RemoveAll()

	if len(ip.currentMetrics) == 0 {
		ip.metricsContent.Add(widget.NewLabel("No metrics"))
		ip.metricsContent.Refresh()
		return
	}

	names := make([]string, 0, len(ip.currentMetrics))
	for name := range ip.currentMetrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ip.metricsContent.Add(ip.createMetricWidget(name, ip.currentMetrics[name]))
	}
	ip.metricsContent.Refresh()
}

func (ip *InfoPanel) createMetricWidget(name string, value float64) fyne.CanvasObject {
	metricLabel := widget.NewLabel(formatMetric(name, value))

	qualityText, icon := metricQuality(name, value)
	if qualityText == "" {
		return container.NewVBox(metricLabel, widget.NewSeparator())
	}

	return container.NewVBox(
		metricLabel,
		container.NewHBox(widget.NewIcon(icon), widget.NewLabel(qualityText)),
		widget.NewSeparator(),
	)
}

func formatMetric(name string, value float64) string {
	switch name {
	case metrics.NamePSNR:
		if math.IsInf(value, 1) {
			return "PSNR: identical"
		}
		return fmt.Sprintf("PSNR: %.2f dB", value)
	case metrics.NameMSE:
		return fmt.Sprintf("MSE: %.2f", value)
	case metrics.NameForegroundRatio:
		return fmt.Sprintf("Foreground: %.1f%%", value*100)
	case metrics.NameMeanIntensity:
		return fmt.Sprintf("Mean intensity: %.1f", value)
	case metrics.NameContrastRatio:
		return fmt.Sprintf("Contrast ratio: %.3f", value)
	default:
		return fmt.Sprintf("%s: %.3f", name, value)
	}
}

// metricQuality grades PSNR and MSE; other metrics have no grade
func metricQuality(name string, value float64) (string, fyne.Resource) {
	switch name {
	case metrics.NamePSNR:
		switch {
		case value > 40:
			return "Excellent", theme.ConfirmIcon()
		case value > 30:
			return "Good", theme.InfoIcon()
		case value > 20:
			return "Fair", theme.WarningIcon()
		default:
			return "Poor", theme.ErrorIcon()
		}
	case metrics.NameMSE:
		switch {
		case value < 100:
			return "Excellent", theme.ConfirmIcon()
		case value < 500:
			return "Good", theme.InfoIcon()
		case value < 1000:
			return "Fair", theme.WarningIcon()
		default:
			return "Poor", theme.ErrorIcon()
		}
	}
	return "", nil
}

func (ip *InfoPanel) Clear() {
	ip.currentMetrics = make(map[string]float64)
	ip.metricsContent.RemoveAll()
	ip.metricsContent.Add(widget.NewLabel("Quality metrics will appear here after processing."))
	ip.metricsContent.Refresh()
	ip.stepLabel.SetText("")
}

func (ip *InfoPanel) ShowImageInfo(path string, meta core.ImageMetadata) {
	ip.imageContent.RemoveAll()
	ip.imageContent.Add(widget.NewLabel(fmt.Sprintf("Path: %s", path)))
	ip.imageContent.Add(widget.NewLabel(fmt.Sprintf("Size: %dx%d", meta.Width, meta.Height)))
	ip.imageContent.Add(widget.NewLabel(fmt.Sprintf("Channels: %d", meta.Channels)))
	ip.imageContent.Add(widget.NewLabel(fmt.Sprintf("Format: %s", meta.Format)))
	ip.imageContent.Refresh()
}

func (ip *InfoPanel) ShowStep(algorithm string, duration time.Duration) {
	ip.stepLabel.SetText(fmt.Sprintf("Last step: %s (%d ms)", algorithm, duration.Milliseconds()))
}

// StatusManager handles status messages and notifications
type StatusManager struct {
	widget    *widget.Card
	container *fyne.Container
}

func NewStatusManager() *StatusManager {
	manager := &StatusManager{}
	manager.initializeUI()
	return manager
}

func (sm *StatusManager) initializeUI() {
	sm.container = container.NewHBox(
		widget.NewIcon(theme.InfoIcon()),
		widget.NewLabel("Application ready"),
	)
	sm.widget = widget.NewCard("", "", sm.container)
}

func (sm *StatusManager) GetWidget() fyne.CanvasObject {
	return sm.widget
}

func (sm *StatusManager) ShowInfo(message string) {
	sm.updateStatus(message, theme.InfoIcon())
}

func (sm *StatusManager) ShowSuccess(message string) {
	sm.updateStatus(message, theme.ConfirmIcon())
}

func (sm *StatusManager) ShowWarning(message string) {
	sm.updateStatus(message, theme.WarningIcon())
}

func (sm *StatusManager) ShowError(err error) {
	sm.updateStatus(fmt.Sprintf("Error: %s", err.Error()), theme.ErrorIcon())
}

func (sm *StatusManager) updateStatus(message string, icon fyne.Resource) {
	sm.container.RemoveAll()
	sm.container.Add(widget.NewIcon(icon))
	sm.container.Add(widget.NewLabel(message))
	sm.container.Refresh()
}
