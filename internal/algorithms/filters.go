// Filter algorithms for smoothing and color reduction
package algorithms

import (
	"fmt"

	"image-transform-pipeline/internal/core"
)

// LowPassFilter implements the averaging (box) low-pass filter
type LowPassFilter struct{}

// NewLowPassFilter creates a new low-pass filter algorithm
func NewLowPassFilter() *LowPassFilter {
	return &LowPassFilter{}
}

func (l *LowPassFilter) Apply(input *core.ImageBuffer, params map[string]interface{}) (*core.ImageBuffer, error) {
	size, err := floatParam(params, "kernel_size", LowPassKernelSize)
	if err != nil {
		return nil, err
	}
	if int(size) == LowPassKernelSize {
		return ApplyLowPass(input)
	}

	kernel, err := BoxKernel(int(size))
	if err != nil {
		return nil, err
	}
	return Convolve(input, kernel)
}

func (l *LowPassFilter) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"kernel_size": float64(LowPassKernelSize),
	}
}

func (l *LowPassFilter) GetName() string {
	return "Low-pass Filter"
}

func (l *LowPassFilter) GetDescription() string {
	return "Averaging filter that smooths detail with edge-replicated borders"
}

func (l *LowPassFilter) Validate(params map[string]interface{}) error {
	size, err := floatParam(params, "kernel_size", LowPassKernelSize)
	if err != nil {
		return err
	}
	if err := checkRange("kernel_size", size, 1, 31); err != nil {
		return err
	}
	return checkOddInt("kernel_size", size)
}

func (l *LowPassFilter) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "kernel_size",
			Type:        "int",
			Min:         1.0,
			Max:         31.0,
			Default:     float64(LowPassKernelSize),
			Description: "Side of the averaging kernel (must be odd)",
			Odd:         true,
		},
	}
}

// GrayscaleConverter converts RGB buffers to luma
type GrayscaleConverter struct{}

// NewGrayscaleConverter creates a new grayscale converter
func NewGrayscaleConverter() *GrayscaleConverter {
	return &GrayscaleConverter{}
}

func (g *GrayscaleConverter) Apply(input *core.ImageBuffer, params map[string]interface{}) (*core.ImageBuffer, error) {
	return ToGrayscale(input)
}

func (g *GrayscaleConverter) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{}
}

func (g *GrayscaleConverter) GetName() string {
	return "Grayscale"
}

func (g *GrayscaleConverter) GetDescription() string {
	return "Luma conversion 0.299R + 0.587G + 0.114B"
}

func (g *GrayscaleConverter) Validate(params map[string]interface{}) error {
	if len(params) > 0 {
		return fmt.Errorf("grayscale takes no parameters")
	}
	return nil
}

func (g *GrayscaleConverter) GetParameterInfo() []ParameterInfo {
	return nil
}
