// Command kerninfo prints frequency-domain properties of sub-pixel
// interpolation kernels.
//
// Usage:
//
//	kerninfo [flags] [filter-name ...]
//
// Without arguments it prints every phase of all standard filter families.
//
// Examples:
//
//	kerninfo sharp
//	kerninfo -phase 8 regular smooth
//	kerninfo -taps 0,2,-14,76,76,-14,2,0
//	kerninfo -response -phase 4 sharp
//	kerninfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-subpel/dsp/kernel"
)

func main() {
	phase := flag.Int("phase", -1, "sub-pixel phase to show (0-15); -1 shows all phases")
	taps := flag.String("taps", "", "comma-separated custom kernel taps")
	bits := flag.Int("bits", 7, "filter bits of a custom kernel")
	size := flag.Int("size", kernel.DefaultResponseSize, "FFT size for -response")
	response := flag.Bool("response", false, "print the magnitude response instead of the summary")
	list := flag.Bool("list", false, "list available filter names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kerninfo [flags] [filter-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints frequency-domain properties of interpolation kernels.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints all standard filter families.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kerninfo -phase 8 regular sharp\n")
		fmt.Fprintf(os.Stderr, "  kerninfo -taps 0,2,-14,76,76,-14,2,0\n")
		fmt.Fprintf(os.Stderr, "  kerninfo -response -phase 4 smooth\n")
	}
	flag.Parse()

	if *list {
		for _, f := range []kernel.FilterType{kernel.Regular, kernel.Smooth, kernel.Sharp} {
			fmt.Println(f)
		}
		return
	}

	entries, err := collect(flag.Args(), *taps, *bits, *phase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching kernels\n")
		os.Exit(1)
	}

	if *response {
		err = printResponse(entries, *size)
	} else {
		err = printAnalysis(entries)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type entry struct {
	label string
	k     kernel.Kernel
}

func collect(names []string, customTaps string, bits, phase int) ([]entry, error) {
	if customTaps != "" {
		k, err := parseTaps(customTaps, bits)
		if err != nil {
			return nil, err
		}
		return []entry{{label: "custom", k: k}}, nil
	}

	if phase >= kernel.SubpelShifts {
		return nil, fmt.Errorf("phase %d not in [0,%d)", phase, kernel.SubpelShifts)
	}
	if len(names) == 0 {
		names = []string{"regular", "smooth", "sharp"}
	}

	bank := kernel.Standard()
	var result []entry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		f, ok := kernel.ParseFilterType(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown filter %q (use -list to see available)\n", name)
			continue
		}
		for p := range kernel.SubpelShifts {
			if phase >= 0 && p != phase {
				continue
			}
			k, err := bank.Select(f, p)
			if err != nil {
				return nil, err
			}
			result = append(result, entry{label: fmt.Sprintf("%s/%d", f, p), k: k})
		}
	}
	return result, nil
}

func parseTaps(s string, bits int) (kernel.Kernel, error) {
	fields := strings.Split(s, ",")
	k := kernel.Kernel{Taps: make([]int16, len(fields)), FilterBits: bits}
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 16)
		if err != nil {
			return kernel.Kernel{}, fmt.Errorf("tap %d: %w", i, err)
		}
		k.Taps[i] = int16(v)
	}
	return k, k.Validate()
}

func printAnalysis(entries []entry) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tTaps\tEff\tDC\tNyquist\tPeak\tWorst\tShift\tHigh band\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t---\t--\t-------\t----\t-----\t-----\t---------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, e := range entries {
		a, err := kernel.Analyze(e.k)
		if err != nil {
			return fmt.Errorf("%s: %w", e.label, err)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\t%+.4f\t%.4f\n",
			e.label,
			tapList(e.k.Taps),
			e.k.Compact().Len(),
			a.DCGain,
			a.NyquistGain,
			a.PeakGain,
			a.WorstCaseGain,
			a.Centroid,
			a.HighBandEnergy,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}

func printResponse(entries []entry, size int) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := []string{"Freq"}
	curves := make([][]float64, len(entries))
	for i, e := range entries {
		mag, err := kernel.Response(e.k, size)
		if err != nil {
			return fmt.Errorf("%s: %w", e.label, err)
		}
		curves[i] = mag
		header = append(header, e.label)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for bin := 0; bin <= size/2; bin++ {
		row := []string{fmt.Sprintf("%.4f", float64(bin)/float64(size))}
		for _, mag := range curves {
			row = append(row, fmt.Sprintf("%.5f", mag[bin]))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	return tw.Flush()
}

func tapList(taps []int16) string {
	parts := make([]string, len(taps))
	for i, t := range taps {
		parts[i] = strconv.Itoa(int(t))
	}
	return strings.Join(parts, ",")
}
