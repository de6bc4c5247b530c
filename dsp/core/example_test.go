package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-subpel/dsp/core"
)

func ExampleApplyOptions() {
	cfg := core.ApplyOptions(core.WithBitDepth(12))

	fmt.Printf("bitDepth=%d round0=%d\n", cfg.BitDepth, cfg.Round0)

	// Output:
	// bitDepth=12 round0=5
}

func ExampleRoundShift() {
	// A filter sum of 1000*128 + 63 at FilterBits scale.
	sum := int32(128063)
	v := core.RoundShift(sum, core.FilterBits)
	fmt.Println(v, core.ClampPixel(v, core.MaxPixel(10)))

	// Output:
	// 1000 1000
}
