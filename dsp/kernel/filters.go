package kernel

// Filter families of the codec's 8-tap sub-pixel interpolation.
const (
	Regular FilterType = iota
	Smooth
	Sharp
)

// String returns the family name.
func (f FilterType) String() string {
	switch f {
	case Regular:
		return "regular"
	case Smooth:
		return "smooth"
	case Sharp:
		return "sharp"
	default:
		return "unknown"
	}
}

// ParseFilterType returns the family named s.
func ParseFilterType(s string) (FilterType, bool) {
	for _, f := range []FilterType{Regular, Smooth, Sharp} {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}

// Every phase of regularTaps and smoothTaps has zero outer taps, so they
// filter as 6-tap kernels after Compact.
var regularTaps = [SubpelShifts][]int16{
	{0, 0, 0, 128, 0, 0, 0, 0}, {0, 2, -6, 126, 8, -2, 0, 0},
	{0, 2, -10, 122, 18, -4, 0, 0}, {0, 2, -12, 116, 28, -8, 2, 0},
	{0, 2, -14, 110, 38, -10, 2, 0}, {0, 2, -14, 102, 48, -12, 2, 0},
	{0, 2, -16, 94, 58, -12, 2, 0}, {0, 2, -14, 84, 66, -12, 2, 0},
	{0, 2, -14, 76, 76, -14, 2, 0}, {0, 2, -12, 66, 84, -14, 2, 0},
	{0, 2, -12, 58, 94, -16, 2, 0}, {0, 2, -12, 48, 102, -14, 2, 0},
	{0, 2, -10, 38, 110, -14, 2, 0}, {0, 2, -8, 28, 116, -12, 2, 0},
	{0, 0, -4, 18, 122, -10, 2, 0}, {0, 0, -2, 8, 126, -6, 2, 0},
}

var smoothTaps = [SubpelShifts][]int16{
	{0, 0, 0, 128, 0, 0, 0, 0}, {0, 2, 28, 62, 34, 2, 0, 0},
	{0, 0, 26, 62, 36, 4, 0, 0}, {0, 0, 22, 62, 40, 4, 0, 0},
	{0, 0, 20, 60, 42, 6, 0, 0}, {0, 0, 18, 58, 44, 8, 0, 0},
	{0, 0, 16, 56, 46, 10, 0, 0}, {0, -2, 16, 54, 48, 12, 0, 0},
	{0, -2, 14, 52, 52, 14, -2, 0}, {0, 0, 12, 48, 54, 16, -2, 0},
	{0, 0, 10, 46, 56, 16, 0, 0}, {0, 0, 8, 44, 58, 18, 0, 0},
	{0, 0, 6, 42, 60, 20, 0, 0}, {0, 0, 4, 40, 62, 22, 0, 0},
	{0, 0, 4, 36, 62, 26, 0, 0}, {0, 0, 2, 34, 62, 28, 2, 0},
}

var sharpTaps = [SubpelShifts][]int16{
	{0, 0, 0, 128, 0, 0, 0, 0}, {-2, 2, -6, 126, 8, -2, 2, 0},
	{-2, 6, -12, 124, 16, -6, 4, -2}, {-2, 8, -18, 120, 26, -10, 6, -2},
	{-4, 10, -22, 116, 38, -14, 6, -2}, {-4, 10, -22, 108, 48, -18, 8, -2},
	{-4, 10, -24, 100, 60, -20, 8, -2}, {-4, 10, -24, 90, 70, -22, 10, -2},
	{-4, 12, -24, 80, 80, -24, 12, -4}, {-2, 10, -22, 70, 90, -24, 10, -4},
	{-2, 8, -20, 60, 100, -24, 10, -4}, {-2, 8, -18, 48, 108, -22, 10, -4},
	{-2, 6, -14, 38, 116, -22, 10, -4}, {-2, 6, -10, 26, 120, -18, 8, -2},
	{-2, 4, -6, 16, 124, -12, 6, -2}, {0, 2, -2, 8, 126, -6, 2, -2},
}

// Standard returns the regular, smooth and sharp 16-phase tables at
// FilterBits 7. The returned bank is a fresh copy the caller may modify.
func Standard() Bank {
	bank := Bank{}
	for f, src := range map[FilterType]*[SubpelShifts][]int16{
		Regular: &regularTaps,
		Smooth:  &smoothTaps,
		Sharp:   &sharpTaps,
	} {
		t := &Table{FilterBits: 7, Kernels: make([][]int16, SubpelShifts)}
		for phase, taps := range src {
			t.Kernels[phase] = append([]int16(nil), taps...)
		}
		bank[f] = t
	}
	return bank
}
