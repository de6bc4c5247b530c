// Command convcheck cross-checks the tiled interpolation passes against the
// direct reference on random blocks.
//
// Usage:
//
//	convcheck [flags]
//
// Every registered tiling variant is exercised unless -impl names one. The
// exit status is 1 if any sample differs.
//
// Examples:
//
//	convcheck
//	convcheck -iterations 10000 -seed 7
//	convcheck -bd 12 -impl tile8
//	convcheck -filter sharp
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/cwbudde/algo-subpel/dsp/buffer"
	"github.com/cwbudde/algo-subpel/dsp/core"
	"github.com/cwbudde/algo-subpel/dsp/interp"
	"github.com/cwbudde/algo-subpel/dsp/kernel"
	"github.com/cwbudde/algo-subpel/internal/registry"
	"github.com/cwbudde/algo-subpel/internal/testutil"
)

// Block sizes of the codec's prediction units.
var blockSizes = []int{2, 4, 8, 16, 32, 64, 128}

type config struct {
	iterations int
	seed       int64
	bitDepth   int // 0 picks one per iteration
	impl       string
	filter     string // "" or "random" draws random kernels
	verbose    bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.iterations, "iterations", 1000, "random blocks per variant")
	flag.Int64Var(&cfg.seed, "seed", 1, "random seed")
	flag.IntVar(&cfg.bitDepth, "bd", 0, "bit depth (8-16); 0 varies it")
	flag.StringVar(&cfg.impl, "impl", "", "tiling variant to check (default: all registered)")
	flag.StringVar(&cfg.filter, "filter", "", "standard filter family (regular, smooth, sharp); default random kernels")
	flag.BoolVar(&cfg.verbose, "v", false, "print every checked block")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: convcheck [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Compares tiled interpolation against the direct reference.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	mismatches, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if mismatches > 0 {
		fmt.Fprintf(os.Stderr, "FAIL: %d mismatching blocks\n", mismatches)
		os.Exit(1)
	}
	fmt.Println("ok")
}

func run(cfg config) (int, error) {
	if cfg.bitDepth != 0 && !core.ValidBitDepth(cfg.bitDepth) {
		return 0, fmt.Errorf("bit depth %d not in [%d,%d]", cfg.bitDepth, core.MinBitDepth, core.MaxBitDepth)
	}

	var sel kernel.Selector
	var filter kernel.FilterType
	if cfg.filter != "" && cfg.filter != "random" {
		f, ok := kernel.ParseFilterType(cfg.filter)
		if !ok {
			return 0, fmt.Errorf("unknown filter %q", cfg.filter)
		}
		sel, filter = kernel.Standard(), f
	}

	names := []string{cfg.impl}
	if cfg.impl == "" {
		names = names[:0]
		for _, e := range registry.Global.ListEntries() {
			names = append(names, e.Name)
		}
	}

	total := 0
	for _, name := range names {
		n, err := checkVariant(cfg, name, sel, filter)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func checkVariant(cfg config, name string, sel kernel.Selector, filter kernel.FilterType) (int, error) {
	rng := rand.New(rand.NewSource(cfg.seed))
	convs := map[int]*interp.Convolver{}
	mismatches := 0

	for i := range cfg.iterations {
		bd := cfg.bitDepth
		if bd == 0 {
			bd = core.MinBitDepth + rng.Intn(core.MaxBitDepth-core.MinBitDepth+1)
		}
		c, ok := convs[bd]
		if !ok {
			var err error
			c, err = interp.New(interp.WithBitDepth(bd), interp.WithImplementation(name))
			if err != nil {
				return mismatches, err
			}
			convs[bd] = c
		}

		w := blockSizes[rng.Intn(len(blockSizes))]
		h := blockSizes[rng.Intn(len(blockSizes))]
		k, err := pickKernel(rng, sel, filter)
		if err != nil {
			return mismatches, err
		}
		src := testutil.DeterministicPlane(rng.Int63(), w, h, kernel.MaxTaps, bd)

		for _, vertical := range []bool{true, false} {
			got := testutil.ConstantPlane(0, w, h, 0)
			want := testutil.ConstantPlane(0, w, h, 0)
			dir := "Y"
			if vertical {
				c.Y(got, src, w, h, k)
				interp.DirectY(want, src, w, h, k, bd)
			} else {
				dir = "X"
				c.X(got, src, w, h, k)
				interp.DirectX(want, src, w, h, k, c.Config().Round0, bd)
			}
			if cfg.verbose {
				fmt.Printf("%s #%d %s %dx%d bd=%d %s\n", name, i, dir, w, h, bd, k)
			}
			if report(name, dir, i, got, want, w, h, bd, k) {
				mismatches++
			}
		}
	}
	return mismatches, nil
}

func pickKernel(rng *rand.Rand, sel kernel.Selector, filter kernel.FilterType) (kernel.Kernel, error) {
	if sel != nil {
		return sel.Select(filter, rng.Intn(kernel.SubpelShifts))
	}
	taps := []int{kernel.Taps6, kernel.Taps8, kernel.Taps12}[rng.Intn(3)]
	return testutil.RandomKernel(rng, taps, core.FilterBits), nil
}

func report(name, dir string, iter int, got, want buffer.Plane, w, h, bd int, k kernel.Kernel) bool {
	x, y, found := testutil.FirstMismatch(got, want, w, h)
	if !found {
		return false
	}
	fmt.Fprintf(os.Stderr, "%s #%d %s %dx%d bd=%d %s: sample (%d,%d) = %d, want %d\n",
		name, iter, dir, w, h, bd, k, x, y, got.At(x, y), want.At(x, y))
	return true
}
