package algorithms

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"image-transform-pipeline/internal/core"
)

func newBuffer(t *testing.T, width, height, channels int, samples []uint8) *core.ImageBuffer {
	t.Helper()
	buf, err := core.NewImageBuffer(width, height, channels, samples)
	require.NoError(t, err)
	return buf
}

func filled(t *testing.T, width, height, channels int, v uint8) *core.ImageBuffer {
	t.Helper()
	buf, err := core.NewFilled(width, height, channels, v)
	require.NoError(t, err)
	return buf
}

func randomBuffer(t *testing.T, seed int64, width, height, channels int) *core.ImageBuffer {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	samples := make([]uint8, width*height*channels)
	for i := range samples {
		samples[i] = uint8(rng.Intn(256))
	}
	return newBuffer(t, width, height, channels, samples)
}

func sample(t *testing.T, buf *core.ImageBuffer, x, y, c int) uint8 {
	t.Helper()
	v, err := buf.At(x, y, c)
	require.NoError(t, err)
	return v
}

func requireBinary(t *testing.T, buf *core.ImageBuffer) {
	t.Helper()
	for i, v := range buf.Samples() {
		if v != 0 && v != 255 {
			t.Fatalf("sample %d = %d, want 0 or 255", i, v)
		}
	}
}

// referenceWeightedMean evaluates the kernel at (x, y) by clamping every
// neighbour coordinate, in the same summation order as weightedSums.
func referenceWeightedMean(t *testing.T, buf *core.ImageBuffer, k *Kernel, x, y, c int) float64 {
	half := k.Size() / 2
	acc := 0.0
	for ky := 0; ky < k.Size(); ky++ {
		sy := clampIndex(y+ky-half, buf.Height())
		for kx := 0; kx < k.Size(); kx++ {
			sx := clampIndex(x+kx-half, buf.Width())
			acc += k.Weight(ky, kx) * float64(sample(t, buf, sx, sy, c))
		}
	}
	return acc
}
