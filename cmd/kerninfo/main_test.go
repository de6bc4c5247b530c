package main

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-subpel/dsp/kernel"
)

func TestParseTaps(t *testing.T) {
	k, err := parseTaps("0, 2,-14,76,76,-14,2,0", 7)
	if err != nil {
		t.Fatalf("parseTaps: %v", err)
	}
	if k.Len() != 8 || k.Taps[3] != 76 || k.Sum() != 128 {
		t.Fatalf("got %v", k)
	}

	if _, err := parseTaps("1,2,x", 7); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := parseTaps("1,2,3", 7); !errors.Is(err, kernel.ErrTapCount) {
		t.Fatalf("err = %v, want ErrTapCount", err)
	}
}

func TestCollect(t *testing.T) {
	all, err := collect(nil, "", 7, -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3*kernel.SubpelShifts {
		t.Fatalf("len = %d, want %d", len(all), 3*kernel.SubpelShifts)
	}

	one, err := collect([]string{"Sharp", "bogus"}, "", 7, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(one) != 1 || one[0].label != "sharp/8" {
		t.Fatalf("got %+v", one)
	}

	if _, err := collect(nil, "", 7, 16); err == nil {
		t.Fatal("expected phase error")
	}
}

func TestTapList(t *testing.T) {
	if got := tapList([]int16{-2, 0, 130}); got != "-2,0,130" {
		t.Fatalf("got %q", got)
	}
}
