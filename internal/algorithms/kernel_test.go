package algorithms

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-transform-pipeline/internal/core"
)

func TestBoxKernel(t *testing.T) {
	k, err := BoxKernel(5)
	require.NoError(t, err)
	assert.Equal(t, 5, k.Size())
	for _, w := range k.Weights() {
		assert.InDelta(t, 1.0/25, w, 1e-15)
	}
	assert.InDelta(t, 1.0, k.Sum(), 1e-12)

	for _, size := range []int{0, -1, 2, 4} {
		_, err := BoxKernel(size)
		assert.ErrorIs(t, err, core.ErrDimensionMismatch, "size %d", size)
	}
}

func TestGaussianKernel(t *testing.T) {
	for _, size := range []int{1, 3, 5, 11, 21} {
		k, err := GaussianKernel(size)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, k.Sum(), 1e-9, "size %d", size)

		half := size / 2
		center := k.Weight(half, half)
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				assert.InDelta(t, k.Weight(i, j), k.Weight(j, i), 1e-15)
				assert.InDelta(t, k.Weight(i, j), k.Weight(size-1-i, size-1-j), 1e-15)
				assert.LessOrEqual(t, k.Weight(i, j), center)
			}
		}
	}

	_, err := GaussianKernel(4)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestGaussianSigma(t *testing.T) {
	assert.InDelta(t, 0.8, GaussianSigma(3), 1e-12)
	assert.InDelta(t, 2.0, GaussianSigma(11), 1e-12)

	g := GaussianWeights(3)
	e := math.Exp(-1 / (2 * 0.64))
	assert.InDelta(t, 1/(1+2*e), g[1], 1e-12)
	assert.InDelta(t, e/(1+2*e), g[0], 1e-12)
	assert.Equal(t, []float64{1}, GaussianWeights(1))
}

func TestNewKernel(t *testing.T) {
	k, err := NewKernel(3, []float64{0, 0, 0, 0.25, 0.5, 0.25, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.5, k.Weight(1, 1))

	weights := []float64{1}
	k, err = NewKernel(1, weights)
	require.NoError(t, err)
	weights[0] = 2
	assert.Equal(t, 1.0, k.Weight(0, 0))

	_, err = NewKernel(2, []float64{0.25, 0.25, 0.25, 0.25})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)

	_, err = NewKernel(3, []float64{1})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)

	_, err = NewKernel(1, []float64{0.5})
	assert.ErrorIs(t, err, ErrKernelNotNormalized)
}
