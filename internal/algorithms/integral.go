package algorithms

import "image-transform-pipeline/internal/core"

// integralImage is a summed-area table over src padded by window/2 on every
// side with replicated edge samples, so every window sum covers exactly
// window*window samples.
type integralImage struct {
	stride int // padded width + 1
	window int
	sums   []uint64
}

func newIntegralImage(src *core.ImageBuffer, window int) *integralImage {
	half := window / 2
	width, height := src.Width(), src.Height()
	pw, ph := width+2*half, height+2*half

	t := &integralImage{stride: pw + 1, window: window, sums: make([]uint64, (pw+1)*(ph+1))}
	for py := 0; py < ph; py++ {
		row := src.Row(clampIndex(py-half, height))
		var rowSum uint64
		above := t.sums[py*t.stride:]
		cur := t.sums[(py+1)*t.stride:]
		for px := 0; px < pw; px++ {
			rowSum += uint64(row[clampIndex(px-half, width)])
			cur[px+1] = above[px+1] + rowSum
		}
	}
	return t
}

// windowSum returns the sum of the window centred on (x, y)
func (t *integralImage) windowSum(x, y int) uint64 {
	x0, y0 := x, y
	x1, y1 := x+t.window, y+t.window
	return t.sums[y1*t.stride+x1] + t.sums[y0*t.stride+x0] -
		t.sums[y0*t.stride+x1] - t.sums[y1*t.stride+x0]
}
