// Binarization algorithms
package algorithms

import (
	"image-transform-pipeline/internal/core"
)

// Defaults taken by the front ends
const (
	DefaultGlobalThreshold = 127
	DefaultBlockSize       = 11
	DefaultOffset          = 2.0
)

// ensureGrayscale converts 3-channel input before thresholding
func ensureGrayscale(input *core.ImageBuffer) *core.ImageBuffer {
	if input.Empty() || input.Channels() == 1 {
		return input
	}
	return input.ToGrayscale()
}

// GlobalThresholdAlgorithm implements fixed-threshold binarization
type GlobalThresholdAlgorithm struct{}

func NewGlobalThresholdAlgorithm() *GlobalThresholdAlgorithm {
	return &GlobalThresholdAlgorithm{}
}

func (g *GlobalThresholdAlgorithm) Apply(input *core.ImageBuffer, params map[string]interface{}) (*core.ImageBuffer, error) {
	t, err := floatParam(params, "threshold", DefaultGlobalThreshold)
	if err != nil {
		return nil, err
	}
	return GlobalThreshold(ensureGrayscale(input), core.ClampToByte(t))
}

func (g *GlobalThresholdAlgorithm) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"threshold": float64(DefaultGlobalThreshold),
	}
}

func (g *GlobalThresholdAlgorithm) GetName() string {
	return "Global Threshold"
}

func (g *GlobalThresholdAlgorithm) GetDescription() string {
	return "Binarization with one cutoff for the whole image"
}

func (g *GlobalThresholdAlgorithm) Validate(params map[string]interface{}) error {
	t, err := floatParam(params, "threshold", DefaultGlobalThreshold)
	if err != nil {
		return err
	}
	return checkRange("threshold", t, 0, 255)
}

func (g *GlobalThresholdAlgorithm) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "threshold",
			Type:        "int",
			Min:         0.0,
			Max:         255.0,
			Default:     float64(DefaultGlobalThreshold),
			Description: "Samples strictly above this value become white",
		},
	}
}

// AdaptiveThresholdAlgorithm implements local-mean binarization
type AdaptiveThresholdAlgorithm struct{}

func NewAdaptiveThresholdAlgorithm() *AdaptiveThresholdAlgorithm {
	return &AdaptiveThresholdAlgorithm{}
}

func (a *AdaptiveThresholdAlgorithm) Apply(input *core.ImageBuffer, params map[string]interface{}) (*core.ImageBuffer, error) {
	p, err := a.params(params)
	if err != nil {
		return nil, err
	}
	return AdaptiveThresholdWith(ensureGrayscale(input), p)
}

func (a *AdaptiveThresholdAlgorithm) params(params map[string]interface{}) (AdaptiveParams, error) {
	blockSize, err := floatParam(params, "block_size", DefaultBlockSize)
	if err != nil {
		return AdaptiveParams{}, err
	}
	c, err := floatParam(params, "C", DefaultOffset)
	if err != nil {
		return AdaptiveParams{}, err
	}
	name, err := stringParam(params, "method", MethodGaussian.String())
	if err != nil {
		return AdaptiveParams{}, err
	}
	method, err := ParseAdaptiveMethod(name)
	if err != nil {
		return AdaptiveParams{}, err
	}
	return AdaptiveParams{Window: int(blockSize), Offset: c, Method: method}, nil
}

func (a *AdaptiveThresholdAlgorithm) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{
		"block_size": float64(DefaultBlockSize),
		"C":          DefaultOffset,
		"method":     MethodGaussian.String(),
	}
}

func (a *AdaptiveThresholdAlgorithm) GetName() string {
	return "Adaptive Threshold"
}

func (a *AdaptiveThresholdAlgorithm) GetDescription() string {
	return "Binarization against a weighted local mean minus an offset"
}

func (a *AdaptiveThresholdAlgorithm) Validate(params map[string]interface{}) error {
	p, err := a.params(params)
	if err != nil {
		return err
	}
	blockSize, err := floatParam(params, "block_size", DefaultBlockSize)
	if err != nil {
		return err
	}
	if err := checkRange("block_size", blockSize, 3, 101); err != nil {
		return err
	}
	if err := checkOddInt("block_size", blockSize); err != nil {
		return err
	}
	return checkRange("C", p.Offset, -255, 255)
}

func (a *AdaptiveThresholdAlgorithm) GetParameterInfo() []ParameterInfo {
	return []ParameterInfo{
		{
			Name:        "block_size",
			Type:        "int",
			Min:         3.0,
			Max:         101.0,
			Default:     float64(DefaultBlockSize),
			Description: "Side of the local window (must be odd)",
			Odd:         true,
		},
		{
			Name:        "C",
			Type:        "float",
			Min:         -255.0,
			Max:         255.0,
			Default:     DefaultOffset,
			Description: "Constant subtracted from the local mean",
		},
		{
			Name:        "method",
			Type:        "enum",
			Default:     MethodGaussian.String(),
			Description: "Weighting of the local window",
			Options:     []string{MethodGaussian.String(), MethodMean.String()},
		},
	}
}
