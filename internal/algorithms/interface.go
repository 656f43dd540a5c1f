// Algorithm registry used by the pipeline and the front ends
package algorithms

import (
	"fmt"
	"sort"

	"image-transform-pipeline/internal/core"
)

// Algorithm defines the interface for image processing algorithms
type Algorithm interface {
	Apply(input *core.ImageBuffer, params map[string]interface{}) (*core.ImageBuffer, error)
	GetDefaultParams() map[string]interface{}
	GetName() string
	GetDescription() string
	Validate(params map[string]interface{}) error
	GetParameterInfo() []ParameterInfo
}

// ParameterInfo describes a parameter for UI generation
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "int", "float", "enum"
	Min         interface{} `json:"min,omitempty"`
	Max         interface{} `json:"max,omitempty"`
	Default     interface{} `json:"default"`
	Description string      `json:"description"`
	Options     []string    `json:"options,omitempty"` // For enum type
	Odd         bool        `json:"odd,omitempty"`
}

// Registry names
const (
	NameGrayscale         = "grayscale"
	NameLowPass           = "low_pass"
	NameGlobalThreshold   = "global_threshold"
	NameAdaptiveThreshold = "adaptive_threshold"
	NameOtsuThreshold     = "otsu_threshold"
)

// algorithms is filled in init and read-only afterwards
var algorithms = make(map[string]Algorithm)

// Register adds an algorithm under name, replacing any previous entry
func Register(name string, algorithm Algorithm) {
	algorithms[name] = algorithm
}

// Get looks up a registered algorithm
func Get(name string) (Algorithm, bool) {
	algorithm, exists := algorithms[name]
	return algorithm, exists
}

// Apply validates params and runs the named algorithm on input
func Apply(name string, input *core.ImageBuffer, params map[string]interface{}) (*core.ImageBuffer, error) {
	algorithm, exists := algorithms[name]
	if !exists {
		return nil, fmt.Errorf("algorithm not found: %s", name)
	}

	if err := algorithm.Validate(params); err != nil {
		return nil, fmt.Errorf("invalid parameters for %s: %w", name, err)
	}
	return algorithm.Apply(input, params)
}

// ValidateParameters checks params against the named algorithm
func ValidateParameters(name string, params map[string]interface{}) error {
	algorithm, exists := algorithms[name]
	if !exists {
		return fmt.Errorf("algorithm not found: %s", name)
	}

	return algorithm.Validate(params)
}

// IsValidAlgorithm reports whether name is registered
func IsValidAlgorithm(name string) bool {
	_, exists := algorithms[name]
	return exists
}

// Names returns the registered names in sorted order
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAlgorithmsByCategory groups the registered names for menus
func GetAlgorithmsByCategory() map[string][]string {
	return map[string][]string{
		"Binarization": {
			NameGlobalThreshold,
			NameAdaptiveThreshold,
			NameOtsuThreshold,
		},
		"Filters": {
			NameLowPass,
		},
		"Color": {
			NameGrayscale,
		},
	}
}

// IsBinarization reports whether the named algorithm produces a 0/255 image
func IsBinarization(name string) bool {
	return name == NameGlobalThreshold || name == NameAdaptiveThreshold || name == NameOtsuThreshold
}

func init() {
	Register(NameGrayscale, NewGrayscaleConverter())
	Register(NameLowPass, NewLowPassFilter())
	Register(NameGlobalThreshold, NewGlobalThresholdAlgorithm())
	Register(NameAdaptiveThreshold, NewAdaptiveThresholdAlgorithm())
	Register(NameOtsuThreshold, NewOtsuThreshold())
}
