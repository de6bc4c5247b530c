package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-subpel/dsp/buffer"
	"github.com/cwbudde/algo-subpel/dsp/core"
	"github.com/cwbudde/algo-subpel/dsp/kernel"
)

// DeterministicPlane returns a w x h plane with margin samples of padding on
// every side, filled (margins included) with uniform samples of bit depth bd
// drawn from a fixed seed.
func DeterministicPlane(seed int64, w, h, margin, bd int) buffer.Plane {
	p, err := buffer.NewPlane(w, h, margin)
	if err != nil {
		panic(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range p.Pix {
		p.Pix[i] = uint16(rng.Intn(1 << bd))
	}
	return p
}

// ConstantPlane returns a padded plane with every sample, margins included,
// set to v.
func ConstantPlane(v uint16, w, h, margin int) buffer.Plane {
	p, err := buffer.NewPlane(w, h, margin)
	if err != nil {
		panic(err)
	}
	core.Fill(p.Pix, v)
	return p
}

// RandomKernel returns an n-tap kernel whose taps sum to 1<<filterBits, with
// the centre taps positive and the outer taps small and possibly negative,
// roughly the shape of a codec sub-pixel filter.
func RandomKernel(rng *rand.Rand, n, filterBits int) kernel.Kernel {
	taps := make([]int16, n)
	var sum int
	for i := range taps {
		if i == n/2-1 || i == n/2 {
			continue
		}
		v := rng.Intn(25) - 12
		taps[i] = int16(v)
		sum += v
	}
	rest := 1<<filterBits - sum
	taps[n/2-1] = int16(rest - rest/3)
	taps[n/2] = int16(rest / 3)
	return kernel.Kernel{Taps: taps, FilterBits: filterBits}
}

// FirstMismatch returns the first sample of the w x h block where got and
// want differ, scanning rows top to bottom.
func FirstMismatch(got, want buffer.Plane, w, h int) (x, y int, found bool) {
	for y := range h {
		for x := range w {
			if got.At(x, y) != want.At(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
