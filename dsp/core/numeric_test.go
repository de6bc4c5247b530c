package core

import "testing"

func TestRoundShift(t *testing.T) {
	tests := []struct {
		name string
		x    int32
		s    int
		want int32
	}{
		{name: "zero shift", x: -37, s: 0, want: -37},
		{name: "exact", x: 256, s: 7, want: 2},
		{name: "below half", x: 63, s: 7, want: 0},
		{name: "half rounds up", x: 64, s: 7, want: 1},
		{name: "above half", x: 191, s: 7, want: 1},
		{name: "negative half rounds up", x: -64, s: 7, want: 0},
		{name: "negative below half", x: -65, s: 7, want: -1},
		{name: "negative large", x: -1000, s: 3, want: -125},
		{name: "shift one", x: 3, s: 1, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundShift(tt.x, tt.s); got != tt.want {
				t.Fatalf("RoundShift(%d, %d) = %d, want %d", tt.x, tt.s, got, tt.want)
			}
		})
	}
}

func TestClampPixel(t *testing.T) {
	tests := []struct {
		name string
		v    int32
		bd   int
		want uint16
	}{
		{name: "inside", v: 500, bd: 10, want: 500},
		{name: "negative", v: -1, bd: 10, want: 0},
		{name: "max", v: 1023, bd: 10, want: 1023},
		{name: "above 10 bit", v: 1024, bd: 10, want: 1023},
		{name: "above 12 bit", v: 90000, bd: 12, want: 4095},
		{name: "16 bit max", v: 65535, bd: 16, want: 65535},
		{name: "above 16 bit", v: 70000, bd: 16, want: 65535},
		{name: "8 bit", v: 256, bd: 8, want: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPixel(tt.v, MaxPixel(tt.bd)); got != tt.want {
				t.Fatalf("ClampPixel(%d, bd=%d) = %d, want %d", tt.v, tt.bd, got, tt.want)
			}
		})
	}
}

func TestMaxPixel(t *testing.T) {
	for bd := MinBitDepth; bd <= MaxBitDepth; bd++ {
		if got, want := MaxPixel(bd), int32(1)<<bd-1; got != want {
			t.Fatalf("MaxPixel(%d) = %d, want %d", bd, got, want)
		}
	}
}

func TestValidBitDepth(t *testing.T) {
	for bd, want := range map[int]bool{7: false, 8: true, 10: true, 12: true, 16: true, 17: false} {
		if got := ValidBitDepth(bd); got != want {
			t.Errorf("ValidBitDepth(%d) = %v, want %v", bd, got, want)
		}
	}
}

func TestDefaultRound0(t *testing.T) {
	tests := []struct {
		bd   int
		want int
	}{
		{8, 3},
		{10, 3},
		{12, 5},
		{13, 6},
		{16, 7},
	}
	for _, tt := range tests {
		if got := DefaultRound0(tt.bd); got != tt.want {
			t.Errorf("DefaultRound0(%d) = %d, want %d", tt.bd, got, tt.want)
		}
	}
}
