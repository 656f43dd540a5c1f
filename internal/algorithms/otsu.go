// Otsu threshold selection for global binarization
package algorithms

import (
	"image-transform-pipeline/internal/core"
)

// Histogram counts the samples of a single-channel buffer per intensity
func Histogram(src *core.ImageBuffer) ([256]int, error) {
	var hist [256]int
	if err := requireGray(src); err != nil {
		return hist, err
	}
	for y := 0; y < src.Height(); y++ {
		for _, v := range src.Row(y) {
			hist[v]++
		}
	}
	return hist, nil
}

// OtsuLevel returns the threshold that maximizes the between-class variance
// of the histogram. Used with GlobalThreshold, samples above the level are
// foreground. A constant image yields level 0.
func OtsuLevel(src *core.ImageBuffer) (uint8, error) {
	hist, err := Histogram(src)
	if err != nil {
		return 0, err
	}

	total := float64(src.Width() * src.Height())
	sum := 0.0
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}

	sumB := 0.0
	wB := 0.0
	maximum := 0.0
	level := 0

	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}

		wF := total - wB
		if wF == 0 {
			break
		}

		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF

		between := wB * wF * (mB - mF) * (mB - mF)
		if between > maximum {
			level = t
			maximum = between
		}
	}

	return uint8(level), nil
}

// OtsuThreshold implements global binarization at the Otsu level
type OtsuThreshold struct{}

// NewOtsuThreshold creates a new Otsu algorithm
func NewOtsuThreshold() *OtsuThreshold {
	return &OtsuThreshold{}
}

func (o *OtsuThreshold) Apply(input *core.ImageBuffer, params map[string]interface{}) (*core.ImageBuffer, error) {
	gray := ensureGrayscale(input)
	level, err := OtsuLevel(gray)
	if err != nil {
		return nil, err
	}
	return GlobalThreshold(gray, level)
}

func (o *OtsuThreshold) GetDefaultParams() map[string]interface{} {
	return map[string]interface{}{}
}

func (o *OtsuThreshold) GetName() string {
	return "Otsu Threshold"
}

func (o *OtsuThreshold) GetDescription() string {
	return "Global binarization with the cutoff chosen from the histogram"
}

func (o *OtsuThreshold) Validate(params map[string]interface{}) error {
	return nil
}

func (o *OtsuThreshold) GetParameterInfo() []ParameterInfo {
	return nil
}
