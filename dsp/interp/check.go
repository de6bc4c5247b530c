package interp

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-subpel/dsp/buffer"
	"github.com/cwbudde/algo-subpel/dsp/core"
	"github.com/cwbudde/algo-subpel/dsp/kernel"
)

// Errors reported by argument checks and [New].
var (
	ErrBitDepth       = errors.New("interp: bit depth out of range")
	ErrRound0         = errors.New("interp: round0 out of range")
	ErrBlockSize      = errors.New("interp: invalid block size")
	ErrMargin         = errors.New("interp: source lacks filter margin")
	ErrDestination    = errors.New("interp: destination too small")
	ErrImplementation = errors.New("interp: unknown implementation")
	ErrNoSelector     = errors.New("interp: no kernel selector configured")
)

// checkArgs validates the preconditions of one pass. round0 is ignored for
// vertical passes.
func checkArgs(dir direction, dst, src buffer.Plane, w, h int, k kernel.Kernel, round0, bd int) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: %dx%d", ErrBlockSize, w, h)
	}
	if err := k.Validate(); err != nil {
		return err
	}
	if !core.ValidBitDepth(bd) {
		return fmt.Errorf("%w: %d", ErrBitDepth, bd)
	}
	if err := k.CheckRange(bd); err != nil {
		return err
	}
	if dir == horizontal && (round0 < 0 || round0 > k.FilterBits) {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrRound0, round0, k.FilterBits)
	}
	if w == 0 || h == 0 {
		return nil
	}

	off := k.Offset()
	after := k.Len() - off - 1
	var first, last int
	if dir == vertical {
		first, last = src.Offset(0, -off), src.Offset(w-1, h-1+after)
	} else {
		first, last = src.Offset(-off, 0), src.Offset(w-1+after, h-1)
	}
	if dir == horizontal && src.Stride > 0 {
		col := src.Origin % src.Stride
		if col < off || col+w+after > src.Stride {
			first = -1
		}
	}
	if first < 0 || last >= len(src.Pix) {
		return fmt.Errorf("%w: %s %d-tap pass over %dx%d", ErrMargin, dir, k.Len(), w, h)
	}
	if dst.Offset(0, 0) < 0 || dst.Offset(w-1, h-1) >= len(dst.Pix) || (h > 1 && dst.Stride < w) {
		return fmt.Errorf("%w: %dx%d block", ErrDestination, w, h)
	}
	return nil
}
