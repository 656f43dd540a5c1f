// Adaptive (locally weighted) binarization
package algorithms

import (
	"fmt"
	"strings"

	"image-transform-pipeline/internal/core"
)

// AdaptiveMethod selects how the local mean is weighted
type AdaptiveMethod int

const (
	// MethodGaussian weights the window with GaussianKernel(window)
	MethodGaussian AdaptiveMethod = iota
	// MethodMean weights every window sample equally
	MethodMean
)

func (m AdaptiveMethod) String() string {
	switch m {
	case MethodGaussian:
		return "gaussian"
	case MethodMean:
		return "mean"
	default:
		return fmt.Sprintf("AdaptiveMethod(%d)", int(m))
	}
}

// ParseAdaptiveMethod accepts "gaussian" or "mean"
func ParseAdaptiveMethod(s string) (AdaptiveMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gaussian", "":
		return MethodGaussian, nil
	case "mean", "uniform":
		return MethodMean, nil
	default:
		return 0, fmt.Errorf("unknown adaptive method: %q", s)
	}
}

// AdaptiveParams configures AdaptiveThresholdWith
type AdaptiveParams struct {
	Window int
	Offset float64
	Method AdaptiveMethod
}

// AdaptiveThreshold binarizes src against its Gaussian-weighted local mean:
// a sample becomes 255 when it is greater than mean - offset.
func AdaptiveThreshold(src *core.ImageBuffer, window int, offset float64) (*core.ImageBuffer, error) {
	return AdaptiveThresholdWith(src, AdaptiveParams{Window: window, Offset: offset, Method: MethodGaussian})
}

// AdaptiveThresholdWith is AdaptiveThreshold with a selectable weighting
func AdaptiveThresholdWith(src *core.ImageBuffer, p AdaptiveParams) (*core.ImageBuffer, error) {
	if err := requireGray(src); err != nil {
		return nil, err
	}
	if err := ValidateWindow(p.Window, src.Width(), src.Height()); err != nil {
		return nil, err
	}

	out, pix, err := core.Allocate(src.Width(), src.Height(), 1)
	if err != nil {
		return nil, err
	}

	samples := func(i int) float64 {
		width := src.Width()
		return float64(src.Row(i / width)[i%width])
	}

	switch p.Method {
	case MethodGaussian:
		k, err := GaussianKernel(p.Window)
		if err != nil {
			return nil, err
		}
		weightedSums(src, k, func(i int, mean float64) {
			if samples(i) > mean-p.Offset {
				pix[i] = 255
			}
		})
	case MethodMean:
		table := newIntegralImage(src, p.Window)
		area := float64(p.Window * p.Window)
		width := src.Width()
		forEachRow(src.Height(), func(y int) {
			row := src.Row(y)
			for x, v := range row {
				mean := float64(table.windowSum(x, y)) / area
				if float64(v) > mean-p.Offset {
					pix[y*width+x] = 255
				}
			}
		})
	default:
		return nil, fmt.Errorf("unknown adaptive method: %v", p.Method)
	}
	return out, nil
}

// ValidateWindow checks that window is odd, at least 3 and smaller than both
// image dimensions.
func ValidateWindow(window, width, height int) error {
	if window < 3 || window%2 == 0 {
		return fmt.Errorf("%w: window %d must be odd and at least 3", core.ErrInvalidWindow, window)
	}
	if window >= min(width, height) {
		return fmt.Errorf("%w: window %d does not fit a %dx%d image", core.ErrInvalidWindow, window, width, height)
	}
	return nil
}
