package kernel

import (
	"errors"
	"fmt"
	"math"
)

// Supported tap counts.
const (
	Taps6  = 6
	Taps8  = 8
	Taps12 = 12

	// MaxTaps is the longest supported kernel.
	MaxTaps = Taps12
)

// Errors returned by kernel validation and lookup.
var (
	ErrTapCount         = errors.New("kernel: tap count must be 6, 8 or 12")
	ErrFilterBits       = errors.New("kernel: filter bits out of range")
	ErrAccumulatorRange = errors.New("kernel: taps overflow a 32-bit accumulator")
	ErrPhase            = errors.New("kernel: sub-pixel phase out of range")
	ErrFilterType       = errors.New("kernel: unknown filter type")
	ErrEmptyTable       = errors.New("kernel: empty table")
)

// maxFilterBits keeps 1<<FilterBits representable in an int16 tap.
const maxFilterBits = 14

// Kernel is an interpolation FIR kernel.
type Kernel struct {
	// Taps are the coefficients, oldest source sample first.
	Taps []int16

	// FilterBits is the fixed-point scale of Taps.
	FilterBits int
}

// Len returns the tap count.
func (k Kernel) Len() int { return len(k.Taps) }

// Offset returns the centering offset Len()/2 - 1: the number of samples of
// context the kernel needs before the sample being predicted.
func (k Kernel) Offset() int { return len(k.Taps)/2 - 1 }

// Sum returns the sum of the taps.
func (k Kernel) Sum() int32 {
	var s int32
	for _, t := range k.Taps {
		s += int32(t)
	}
	return s
}

// AbsSum returns the sum of absolute tap values, the worst-case gain of the
// kernel at FilterBits scale.
func (k Kernel) AbsSum() int64 {
	var s int64
	for _, t := range k.Taps {
		if t < 0 {
			s -= int64(t)
		} else {
			s += int64(t)
		}
	}
	return s
}

// Validate checks the tap count and scale.
func (k Kernel) Validate() error {
	switch len(k.Taps) {
	case Taps6, Taps8, Taps12:
	default:
		return fmt.Errorf("%w: got %d", ErrTapCount, len(k.Taps))
	}
	if k.FilterBits < 1 || k.FilterBits > maxFilterBits {
		return fmt.Errorf("%w: got %d", ErrFilterBits, k.FilterBits)
	}
	return nil
}

// CheckRange reports whether filtering samples of bit depth bd with k can
// overflow a 32-bit accumulator, including the rounding offset.
func (k Kernel) CheckRange(bd int) error {
	worst := k.AbsSum()*(int64(1)<<bd-1) + int64(1)<<k.FilterBits
	if worst > math.MaxInt32 {
		return fmt.Errorf("%w: worst case %d at %d bits", ErrAccumulatorRange, worst, bd)
	}
	return nil
}

// Compact returns the shortest equivalent kernel. An 8-tap kernel whose
// outer taps are both zero is returned as the 6-tap kernel of its inner
// taps; since the centering offset shrinks by one with the length, filtering
// with the compact kernel touches the same source samples and yields the
// same output. Other kernels are returned unchanged.
func (k Kernel) Compact() Kernel {
	if len(k.Taps) == Taps8 && k.Taps[0] == 0 && k.Taps[7] == 0 {
		return Kernel{Taps: k.Taps[1:7], FilterBits: k.FilterBits}
	}
	return k
}

// Identity returns the unity kernel of length n: all taps zero except
// 1<<filterBits at index n/2-1, the tap aligned with the predicted sample.
func Identity(n, filterBits int) Kernel {
	taps := make([]int16, n)
	if n >= 2 {
		taps[n/2-1] = int16(1 << filterBits)
	}
	return Kernel{Taps: taps, FilterBits: filterBits}
}

// String formats the kernel as "[t0 t1 ...]/2^bits".
func (k Kernel) String() string {
	return fmt.Sprintf("%v/2^%d", k.Taps, k.FilterBits)
}
