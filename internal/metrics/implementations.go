// Concrete implementations of quality metrics
package metrics

import (
	"fmt"
	"math"

	"image-transform-pipeline/internal/core"
)

// alignPair converts both buffers to grayscale when their channel counts
// differ, and rejects buffers of different sizes.
func alignPair(original, processed *core.ImageBuffer) (*core.ImageBuffer, *core.ImageBuffer, error) {
	if original.Empty() || processed.Empty() {
		return nil, nil, fmt.Errorf("empty images")
	}
	if original.Width() != processed.Width() || original.Height() != processed.Height() {
		return nil, nil, fmt.Errorf("image dimensions mismatch: %dx%d vs %dx%d",
			original.Width(), original.Height(), processed.Width(), processed.Height())
	}
	if original.Channels() != processed.Channels() {
		return original.ToGrayscale(), processed.ToGrayscale(), nil
	}
	return original, processed, nil
}

func meanSquaredError(a, b *core.ImageBuffer) float64 {
	sum := 0.0
	for y := 0; y < a.Height(); y++ {
		ra, rb := a.Row(y), b.Row(y)
		for i := range ra {
			d := float64(ra[i]) - float64(rb[i])
			sum += d * d
		}
	}
	return sum / float64(a.Len())
}

func meanStddev(buf *core.ImageBuffer) (float64, float64) {
	sum, sumSq := 0.0, 0.0
	for y := 0; y < buf.Height(); y++ {
		for _, v := range buf.Row(y) {
			f := float64(v)
			sum += f
			sumSq += f * f
		}
	}
	n := float64(buf.Len())
	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}

// MSE implements Mean Squared Error
type MSE struct{}

func NewMSE() *MSE { return &MSE{} }

func (m *MSE) Calculate(original, processed *core.ImageBuffer) (float64, error) {
	a, b, err := alignPair(original, processed)
	if err != nil {
		return 0, err
	}
	return meanSquaredError(a, b), nil
}

func (m *MSE) GetName() string              { return "MSE" }
func (m *MSE) GetDescription() string       { return "Mean Squared Error" }
func (m *MSE) GetRange() (float64, float64) { return 0, 65025 }
func (m *MSE) IsHigherBetter() bool         { return false }

// PSNR implements Peak Signal-to-Noise Ratio
type PSNR struct{}

func NewPSNR() *PSNR { return &PSNR{} }

// Calculate returns +Inf for identical buffers
func (p *PSNR) Calculate(original, processed *core.ImageBuffer) (float64, error) {
	a, b, err := alignPair(original, processed)
	if err != nil {
		return 0, err
	}
	mse := meanSquaredError(a, b)
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 20 * math.Log10(255/math.Sqrt(mse)), nil
}

func (p *PSNR) GetName() string              { return "PSNR" }
func (p *PSNR) GetDescription() string       { return "Peak Signal-to-Noise Ratio" }
func (p *PSNR) GetRange() (float64, float64) { return 0, 100 }
func (p *PSNR) IsHigherBetter() bool         { return true }

// ContrastRatio compares the standard deviation of the processed image to the original
type ContrastRatio struct{}

func NewContrastRatio() *ContrastRatio { return &ContrastRatio{} }

func (c *ContrastRatio) Calculate(original, processed *core.ImageBuffer) (float64, error) {
	a, b, err := alignPair(original, processed)
	if err != nil {
		return 0, err
	}
	_, before := meanStddev(a)
	_, after := meanStddev(b)
	if before == 0 {
		if after == 0 {
			return 1, nil
		}
		return math.Inf(1), nil
	}
	return after / before, nil
}

func (c *ContrastRatio) GetName() string              { return "Contrast Ratio" }
func (c *ContrastRatio) GetDescription() string       { return "Standard deviation after / before" }
func (c *ContrastRatio) GetRange() (float64, float64) { return 0, 2 }
func (c *ContrastRatio) IsHigherBetter() bool         { return true }

// ForegroundRatio is the share of white (255) samples in the processed image
type ForegroundRatio struct{}

func NewForegroundRatio() *ForegroundRatio { return &ForegroundRatio{} }

func (f *ForegroundRatio) Calculate(original, processed *core.ImageBuffer) (float64, error) {
	if processed.Empty() {
		return 0, fmt.Errorf("empty images")
	}
	white := 0
	for y := 0; y < processed.Height(); y++ {
		for _, v := range processed.Row(y) {
			if v == 255 {
				white++
			}
		}
	}
	return float64(white) / float64(processed.Len()), nil
}

func (f *ForegroundRatio) GetName() string              { return "Foreground Ratio" }
func (f *ForegroundRatio) GetDescription() string       { return "Fraction of white samples" }
func (f *ForegroundRatio) GetRange() (float64, float64) { return 0, 1 }
func (f *ForegroundRatio) IsHigherBetter() bool         { return true }

// MeanIntensity is the average sample of the processed image
type MeanIntensity struct{}

func NewMeanIntensity() *MeanIntensity { return &MeanIntensity{} }

func (m *MeanIntensity) Calculate(original, processed *core.ImageBuffer) (float64, error) {
	if processed.Empty() {
		return 0, fmt.Errorf("empty images")
	}
	mean, _ := meanStddev(processed)
	return mean, nil
}

func (m *MeanIntensity) GetName() string              { return "Mean Intensity" }
func (m *MeanIntensity) GetDescription() string       { return "Average sample value" }
func (m *MeanIntensity) GetRange() (float64, float64) { return 0, 255 }
func (m *MeanIntensity) IsHigherBetter() bool         { return true }
