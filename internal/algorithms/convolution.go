// Spatial convolution with edge replication
package algorithms

import (
	"fmt"

	"image-transform-pipeline/internal/core"
)

// lowPassKernel is the 5x5 averaging kernel behind ApplyLowPass
var lowPassKernel = func() *Kernel {
	k, err := BoxKernel(LowPassKernelSize)
	if err != nil {
		panic(err)
	}
	return k
}()

// ApplyLowPass smooths every channel with the 5x5 averaging kernel
func ApplyLowPass(src *core.ImageBuffer) (*core.ImageBuffer, error) {
	return Convolve(src, lowPassKernel)
}

// Convolve computes the weighted sum of the k x k neighbourhood of every
// sample. Neighbours outside the image repeat the nearest edge sample.
// Sums are rounded half away from zero and clamped to [0, 255].
func Convolve(src *core.ImageBuffer, k *Kernel) (*core.ImageBuffer, error) {
	if k == nil || k.size < 1 || k.size%2 == 0 {
		return nil, fmt.Errorf("%w: kernel side must be odd", core.ErrDimensionMismatch)
	}
	if src.Empty() {
		return nil, fmt.Errorf("%w: zero-area buffer", core.ErrDimensionMismatch)
	}

	out, pix, err := core.Allocate(src.Width(), src.Height(), src.Channels())
	if err != nil {
		return nil, err
	}
	weightedSums(src, k, func(i int, acc float64) {
		pix[i] = core.ClampToByte(acc)
	})
	return out, nil
}

// weightedSums evaluates the kernel at every sample of src and hands the
// unrounded result to emit together with the sample index. emit is called
// concurrently for distinct indices.
func weightedSums(src *core.ImageBuffer, k *Kernel, emit func(i int, acc float64)) {
	width, height, channels := src.Width(), src.Height(), src.Channels()
	size := k.size
	half := size / 2

	// Sample offsets of the clamped neighbour columns, per output column
	cols := make([]int, width*size)
	for x := 0; x < width; x++ {
		for kx := 0; kx < size; kx++ {
			cols[x*size+kx] = clampIndex(x+kx-half, width) * channels
		}
	}

	forEachRow(height, func(y int) {
		rows := make([][]uint8, size)
		for ky := 0; ky < size; ky++ {
			rows[ky] = src.Row(clampIndex(y+ky-half, height))
		}

		for x := 0; x < width; x++ {
			offsets := cols[x*size : (x+1)*size]
			for c := 0; c < channels; c++ {
				acc := 0.0
				for ky, row := range rows {
					weights := k.weights[ky*size : (ky+1)*size]
					for kx, off := range offsets {
						acc += weights[kx] * float64(row[off+c])
					}
				}
				emit((y*width+x)*channels+c, acc)
			}
		}
	})
}
