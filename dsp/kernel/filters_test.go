package kernel

import "testing"

func TestStandardTablesUnityGain(t *testing.T) {
	for f, table := range Standard() {
		if err := table.Validate(); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if len(table.Kernels) != SubpelShifts {
			t.Fatalf("%s: %d phases, want %d", f, len(table.Kernels), SubpelShifts)
		}
		for phase := range table.Kernels {
			k, _ := table.Kernel(phase)
			if got := k.Sum(); got != 128 {
				t.Errorf("%s phase %d: sum = %d, want 128", f, phase, got)
			}
		}
		k0, _ := table.Kernel(0)
		if got := k0.String(); got != Identity(8, 7).String() {
			t.Errorf("%s phase 0 = %s, want identity", f, got)
		}
	}
}

func TestStandardCompaction(t *testing.T) {
	bank := Standard()
	for _, tt := range []struct {
		f     FilterType
		short bool
	}{{Regular, true}, {Smooth, true}, {Sharp, false}} {
		for phase := 1; phase < SubpelShifts; phase++ {
			k, err := bank.Select(tt.f, phase)
			if err != nil {
				t.Fatal(err)
			}
			if short := k.Compact().Len() == Taps6; short != tt.short {
				t.Errorf("%s phase %d: compacts to 6 taps = %v, want %v", tt.f, phase, short, tt.short)
			}
		}
	}
}

func TestStandardIsCopy(t *testing.T) {
	a := Standard()
	a[Regular].Kernels[1][3] = 0
	b := Standard()
	if b[Regular].Kernels[1][3] != 126 {
		t.Fatal("Standard shares storage between calls")
	}
}

func TestParseFilterType(t *testing.T) {
	for _, f := range []FilterType{Regular, Smooth, Sharp} {
		got, ok := ParseFilterType(f.String())
		if !ok || got != f {
			t.Fatalf("ParseFilterType(%q) = %v, %v", f.String(), got, ok)
		}
	}
	if _, ok := ParseFilterType("bilinear"); ok {
		t.Fatal("unknown name parsed")
	}
	if got := FilterType(9).String(); got != "unknown" {
		t.Fatalf("String = %q", got)
	}
}

// The half-sample phases are symmetric.
func TestStandardHalfSampleSymmetric(t *testing.T) {
	for f, table := range Standard() {
		k, _ := table.Kernel(SubpelShifts / 2)
		for i := range 4 {
			if k.Taps[i] != k.Taps[7-i] {
				t.Errorf("%s: tap %d = %d, tap %d = %d", f, i, k.Taps[i], 7-i, k.Taps[7-i])
			}
		}
	}
}
