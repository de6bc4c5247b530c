package kernel

import "fmt"

// Sub-pixel phase precision of the codec: phases are sixteenths of a sample.
const (
	SubpelBits   = 4
	SubpelShifts = 1 << SubpelBits
	SubpelMask   = SubpelShifts - 1
)

// FilterType identifies a family of interpolation kernels (e.g. regular,
// smooth, sharp). Values are assigned by the caller's coefficient tables.
type FilterType int

// Selector maps a filter type and sub-pixel phase to a kernel.
type Selector interface {
	Select(filter FilterType, phase int) (Kernel, error)
}

// SelectorFunc adapts a function to [Selector].
type SelectorFunc func(filter FilterType, phase int) (Kernel, error)

// Select calls f(filter, phase).
func (f SelectorFunc) Select(filter FilterType, phase int) (Kernel, error) {
	return f(filter, phase)
}

// Table holds the kernels of one filter family, indexed by phase.
type Table struct {
	Kernels    [][]int16
	FilterBits int
}

// Kernel returns the kernel for phase.
func (t *Table) Kernel(phase int) (Kernel, error) {
	if len(t.Kernels) == 0 {
		return Kernel{}, ErrEmptyTable
	}
	if phase < 0 || phase >= len(t.Kernels) {
		return Kernel{}, fmt.Errorf("%w: %d not in [0,%d)", ErrPhase, phase, len(t.Kernels))
	}
	return Kernel{Taps: t.Kernels[phase], FilterBits: t.FilterBits}, nil
}

// Validate checks every kernel of the table.
func (t *Table) Validate() error {
	if len(t.Kernels) == 0 {
		return ErrEmptyTable
	}
	for phase := range t.Kernels {
		k, _ := t.Kernel(phase)
		if err := k.Validate(); err != nil {
			return fmt.Errorf("kernel: phase %d: %w", phase, err)
		}
	}
	return nil
}

// Bank is a set of tables keyed by filter type. It implements [Selector].
type Bank map[FilterType]*Table

// Select returns the kernel of filter at phase.
func (b Bank) Select(filter FilterType, phase int) (Kernel, error) {
	t, ok := b[filter]
	if !ok {
		return Kernel{}, fmt.Errorf("%w: %d", ErrFilterType, filter)
	}
	return t.Kernel(phase)
}
