package interp

import (
	"github.com/cwbudde/algo-subpel/dsp/buffer"
	"github.com/cwbudde/algo-subpel/dsp/kernel"
)

// ConvolveY filters the w x h block at src's origin along columns and writes
// the result to dst's origin:
//
//	dst(x, y) = clamp(round(sum_k taps[k]*src(x, y-off+k), FilterBits), 0, 2^bd-1)
//
// with off = k.Offset(). src must provide off rows above the block and
// k.Len()-off-1 rows below it. dst and src must not overlap.
func ConvolveY(dst, src buffer.Plane, w, h int, k kernel.Kernel, bd int) {
	convolveY(dst, src, w, h, k, bd, defaultTileWidth())
}

// ConvolveX filters the w x h block at src's origin along rows with two-stage
// rounding and writes the result to dst's origin:
//
//	s = sum_k taps[k]*src(x-off+k, y)
//	dst(x, y) = clamp(round(round(s, round0), FilterBits-round0), 0, 2^bd-1)
//
// with off = k.Offset() and 0 <= round0 <= FilterBits. src must provide off
// columns left of the block and k.Len()-off-1 columns right of it. dst and
// src must not overlap.
func ConvolveX(dst, src buffer.Plane, w, h int, k kernel.Kernel, round0, bd int) {
	convolveX(dst, src, w, h, k, round0, bd, defaultTileWidth())
}

func convolveY(dst, src buffer.Plane, w, h int, k kernel.Kernel, bd, tileWidth int) *pass {
	if debugChecks {
		if err := checkArgs(vertical, dst, src, w, h, k, 0, bd); err != nil {
			panic(err)
		}
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	p := newPass(vertical, dst, src, w, h, k, tileWidth)
	p.round = verticalRounding(k.FilterBits, bd)
	p.run()
	return p
}

func convolveX(dst, src buffer.Plane, w, h int, k kernel.Kernel, round0, bd, tileWidth int) *pass {
	if debugChecks {
		if err := checkArgs(horizontal, dst, src, w, h, k, round0, bd); err != nil {
			panic(err)
		}
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	p := newPass(horizontal, dst, src, w, h, k, tileWidth)
	p.round = horizontalRounding(k.FilterBits, round0, bd)
	p.run()
	return p
}
