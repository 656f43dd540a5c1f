// Convolution kernels
package algorithms

import (
	"errors"
	"fmt"
	"math"

	"image-transform-pipeline/internal/core"
)

// ErrKernelNotNormalized is returned when kernel weights do not sum to 1
var ErrKernelNotNormalized = errors.New("kernel weights do not sum to 1")

// normalizationEpsilon bounds |sum(weights) - 1| for an accepted kernel
const normalizationEpsilon = 1e-6

// LowPassKernelSize is the side of the averaging kernel used by ApplyLowPass
const LowPassKernelSize = 5

// Kernel is a square, row-major matrix of weights with an odd side length
type Kernel struct {
	size    int
	weights []float64
}

// NewKernel validates and copies a size x size weight matrix
func NewKernel(size int, weights []float64) (*Kernel, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: kernel side %d must be odd and positive", core.ErrDimensionMismatch, size)
	}
	if len(weights) != size*size {
		return nil, fmt.Errorf("%w: %d weights for a %dx%d kernel", core.ErrDimensionMismatch, len(weights), size, size)
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1) > normalizationEpsilon {
		return nil, fmt.Errorf("%w: sum is %g", ErrKernelNotNormalized, sum)
	}

	k := &Kernel{size: size, weights: make([]float64, len(weights))}
	copy(k.weights, weights)
	return k, nil
}

// BoxKernel returns a uniform averaging kernel, every weight 1/(size*size)
func BoxKernel(size int) (*Kernel, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: kernel side %d must be odd and positive", core.ErrDimensionMismatch, size)
	}
	weights := make([]float64, size*size)
	w := 1.0 / float64(size*size)
	for i := range weights {
		weights[i] = w
	}
	return &Kernel{size: size, weights: weights}, nil
}

// GaussianKernel returns the 2D Gaussian kernel g[i]*g[j] for the 1D weights
// of GaussianWeights, renormalized to sum to 1.
func GaussianKernel(size int) (*Kernel, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: kernel side %d must be odd and positive", core.ErrDimensionMismatch, size)
	}
	g := GaussianWeights(size)

	weights := make([]float64, size*size)
	sum := 0.0
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			weights[i*size+j] = g[i] * g[j]
			sum += weights[i*size+j]
		}
	}
	for i := range weights {
		weights[i] /= sum
	}
	return &Kernel{size: size, weights: weights}, nil
}

// GaussianSigma derives sigma from the window size the way OpenCV does when
// no sigma is given: 0.3*((size-1)*0.5 - 1) + 0.8.
func GaussianSigma(size int) float64 {
	return 0.3*((float64(size)-1)*0.5-1) + 0.8
}

// GaussianWeights returns the normalized 1D Gaussian of the given odd size
func GaussianWeights(size int) []float64 {
	if size <= 1 {
		return []float64{1}
	}

	sigma := GaussianSigma(size)
	half := size / 2
	twoSigmaSq := 2 * sigma * sigma

	g := make([]float64, size)
	sum := 0.0
	for i := range g {
		x := float64(i - half)
		g[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += g[i]
	}
	for i := range g {
		g[i] /= sum
	}
	return g
}

// Size returns the side length
func (k *Kernel) Size() int { return k.size }

// Weight returns the weight at row i, column j
func (k *Kernel) Weight(i, j int) float64 { return k.weights[i*k.size+j] }

// Weights returns a copy of the row-major weights
func (k *Kernel) Weights() []float64 {
	out := make([]float64, len(k.weights))
	copy(out, k.weights)
	return out
}

// Sum returns the sum of all weights
func (k *Kernel) Sum() float64 {
	sum := 0.0
	for _, w := range k.weights {
		sum += w
	}
	return sum
}
