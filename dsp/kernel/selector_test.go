package kernel

import (
	"errors"
	"testing"
)

func testTable() *Table {
	return &Table{
		FilterBits: 7,
		Kernels: [][]int16{
			{0, 0, 0, 128, 0, 0, 0, 0},
			{0, 2, -6, 126, 8, -2, 0, 0},
			{0, 2, -10, 122, 18, -4, 0, 0},
		},
	}
}

func TestTableKernel(t *testing.T) {
	tbl := testTable()

	k, err := tbl.Kernel(1)
	if err != nil {
		t.Fatalf("Kernel(1): %v", err)
	}
	if k.Taps[3] != 126 || k.FilterBits != 7 {
		t.Fatalf("Kernel(1) = %v", k)
	}

	for _, phase := range []int{-1, 3} {
		if _, err := tbl.Kernel(phase); !errors.Is(err, ErrPhase) {
			t.Errorf("Kernel(%d) err = %v, want ErrPhase", phase, err)
		}
	}

	if _, err := (&Table{}).Kernel(0); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("empty table err = %v, want ErrEmptyTable", err)
	}
}

func TestTableValidate(t *testing.T) {
	if err := testTable().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	bad := testTable()
	bad.Kernels = append(bad.Kernels, []int16{1, 2, 3})
	if err := bad.Validate(); !errors.Is(err, ErrTapCount) {
		t.Fatalf("Validate = %v, want ErrTapCount", err)
	}
}

func TestBankSelect(t *testing.T) {
	const regular FilterType = 0
	bank := Bank{regular: testTable()}

	var sel Selector = bank
	k, err := sel.Select(regular, 2)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if k.Taps[4] != 18 {
		t.Fatalf("Select returned %v", k)
	}

	if _, err := sel.Select(FilterType(7), 0); !errors.Is(err, ErrFilterType) {
		t.Fatalf("Select unknown filter err = %v, want ErrFilterType", err)
	}
}

func TestSelectorFunc(t *testing.T) {
	calls := 0
	sel := SelectorFunc(func(filter FilterType, phase int) (Kernel, error) {
		calls++
		return Identity(8, 7), nil
	})

	if _, err := sel.Select(0, 5); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
