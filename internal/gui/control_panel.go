// Algorithm selection and parameter controls
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"image-transform-pipeline/internal/algorithms"
	"image-transform-pipeline/internal/pipeline"
)

// ControlPanel lets the user pick an algorithm, tune it and run it
type ControlPanel struct {
	pipeline *pipeline.Pipeline
	logger   *logrus.Logger

	container     *fyne.Container
	algorithmList *widget.Select
	paramsBox     *fyne.Container
	applyBtn      *widget.Button
	quickButtons  []*widget.Button

	selected string
	// edited parameters per algorithm, seeded from the config defaults
	params map[string]map[string]interface{}

	onRun func(name string, params map[string]interface{})
}

func NewControlPanel(p *pipeline.Pipeline, logger *logrus.Logger) *ControlPanel {
	cp := &ControlPanel{
		pipeline: p,
		logger:   logger,
		params:   make(map[string]map[string]interface{}),
	}
	cp.initializeUI()
	return cp
}

func (cp *ControlPanel) initializeUI() {
	cp.paramsBox = container.NewVBox()

	cp.algorithmList = widget.NewSelect(algorithms.Names(), func(name string) {
		cp.selected = name
		cp.updateParametersArea()
	})
	cp.algorithmList.PlaceHolder = "Select algorithm"

	cp.applyBtn = widget.NewButton("Apply", func() {
		if cp.selected != "" {
			cp.run(cp.selected)
		}
	})
	cp.applyBtn.Importance = widget.HighImportance

	quick := container.NewGridWithColumns(2)
	for _, q := range []struct{ label, name string }{
		{"Low-pass 5x5", algorithms.NameLowPass},
		{"Global threshold", algorithms.NameGlobalThreshold},
		{"Adaptive threshold", algorithms.NameAdaptiveThreshold},
		{"Otsu threshold", algorithms.NameOtsuThreshold},
	} {
		name := q.name
		btn := widget.NewButton(q.label, func() {
			cp.algorithmList.SetSelected(name)
			cp.run(name)
		})
		cp.quickButtons = append(cp.quickButtons, btn)
		quick.Add(btn)
	}

	cp.container = container.NewVBox(
		widget.NewCard("Quick Actions", "", quick),
		widget.NewCard("Algorithm", "", container.NewVBox(
			cp.algorithmList,
			cp.paramsBox,
			cp.applyBtn,
		)),
	)

	cp.updateParametersArea()
	cp.Disable()
}

func (cp *ControlPanel) paramsFor(name string) map[string]interface{} {
	params, ok := cp.params[name]
	if !ok {
		params = cp.pipeline.DefaultParams(name)
		cp.params[name] = params
	}
	return params
}

func (cp *ControlPanel) run(name string) {
	if cp.onRun == nil {
		return
	}
	params := make(map[string]interface{})
	for k, v := range cp.paramsFor(name) {
		params[k] = v
	}
	cp.logger.WithFields(logrus.Fields{"algorithm": name, "params": params}).Debug("Run requested")
	cp.onRun(name, params)
}

func (cp *ControlPanel) updateParametersArea() {
	cp.paramsBox.RemoveAll()

	if cp.selected == "" {
		cp.paramsBox.Add(widget.NewLabel("Select an algorithm to edit parameters"))
		cp.paramsBox.Refresh()
		return
	}

	algorithm, exists := algorithms.Get(cp.selected)
	if !exists {
		cp.paramsBox.Add(widget.NewLabel("Algorithm not found"))
		cp.paramsBox.Refresh()
		return
	}

	cp.paramsBox.Add(widget.NewLabel(algorithm.GetDescription()))

	paramInfo := algorithm.GetParameterInfo()
	if len(paramInfo) == 0 {
		cp.paramsBox.Add(widget.NewLabel("No parameters"))
	}
	params := cp.paramsFor(cp.selected)
	for _, param := range paramInfo {
		cp.createParameterWidget(param, params)
	}

	cp.paramsBox.Refresh()
}

func (cp *ControlPanel) createParameterWidget(param algorithms.ParameterInfo, params map[string]interface{}) {
	cp.paramsBox.Add(widget.NewLabel(param.Name + ":"))

	switch param.Type {
	case "int":
		slider := widget.NewSlider(param.Min.(float64), param.Max.(float64))
		slider.Step = 1
		if val, ok := params[param.Name].(float64); ok {
			slider.SetValue(val)
		}

		valueLabel := widget.NewLabel(fmt.Sprintf("%.0f", slider.Value))
		slider.OnChanged = func(value float64) {
			if param.Odd && int(value)%2 == 0 {
				value++
			}
			valueLabel.SetText(fmt.Sprintf("%.0f", value))
			params[param.Name] = value
		}

		cp.paramsBox.Add(container.NewBorder(nil, nil, nil, valueLabel, slider))

	case "float":
		slider := widget.NewSlider(param.Min.(float64), param.Max.(float64))
		slider.Step = 0.5
		if val, ok := params[param.Name].(float64); ok {
			slider.SetValue(val)
		}

		valueLabel := widget.NewLabel(fmt.Sprintf("%.1f", slider.Value))
		slider.OnChanged = func(value float64) {
			valueLabel.SetText(fmt.Sprintf("%.1f", value))
			params[param.Name] = value
		}

		cp.paramsBox.Add(container.NewBorder(nil, nil, nil, valueLabel, slider))

	case "enum":
		selectWidget := widget.NewSelect(param.Options, func(selected string) {
			params[param.Name] = selected
		})
		if val, ok := params[param.Name].(string); ok {
			selectWidget.SetSelected(val)
		}
		cp.paramsBox.Add(selectWidget)
	}

	cp.paramsBox.Add(widget.NewLabel(param.Description))
	cp.paramsBox.Add(widget.NewSeparator())
}

func (cp *ControlPanel) GetContainer() fyne.CanvasObject {
	return cp.container
}

func (cp *ControlPanel) Enable() {
	cp.applyBtn.Enable()
	for _, btn := range cp.quickButtons {
		btn.Enable()
	}
}

func (cp *ControlPanel) Disable() {
	cp.applyBtn.Disable()
	for _, btn := range cp.quickButtons {
		btn.Disable()
	}
}

// SetBusy disables the run buttons while a transform is in flight
func (cp *ControlPanel) SetBusy(busy bool) {
	if busy {
		cp.Disable()
	} else {
		cp.Enable()
	}
}

func (cp *ControlPanel) SetRunCallback(onRun func(name string, params map[string]interface{})) {
	cp.onRun = onRun
}
