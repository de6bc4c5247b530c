package interp

import (
	"github.com/cwbudde/algo-subpel/dsp/buffer"
	"github.com/cwbudde/algo-subpel/dsp/kernel"
)

// DirectY computes the same samples as [ConvolveY], one output at a time
// with 64-bit accumulation and no tiling. It is the reference for the tiled
// pass and is much slower.
func DirectY(dst, src buffer.Plane, w, h int, k kernel.Kernel, bd int) {
	off := k.Offset()
	maxVal := int64(1)<<bd - 1
	for y := range h {
		for x := range w {
			var sum int64
			for i, t := range k.Taps {
				sum += int64(t) * int64(src.At(x, y-off+i))
			}
			dst.Set(x, y, clamp64(roundShift64(sum, k.FilterBits), maxVal))
		}
	}
}

// DirectX computes the same samples as [ConvolveX] without tiling.
func DirectX(dst, src buffer.Plane, w, h int, k kernel.Kernel, round0, bd int) {
	off := k.Offset()
	maxVal := int64(1)<<bd - 1
	for y := range h {
		for x := range w {
			var sum int64
			for i, t := range k.Taps {
				sum += int64(t) * int64(src.At(x-off+i, y))
			}
			v := roundShift64(roundShift64(sum, round0), k.FilterBits-round0)
			dst.Set(x, y, clamp64(v, maxVal))
		}
	}
}

func roundShift64(x int64, s int) int64 {
	if s == 0 {
		return x
	}
	return (x + 1<<(s-1)) >> s
}

func clamp64(v, maxVal int64) uint16 {
	return uint16(min(max(v, 0), maxVal))
}
