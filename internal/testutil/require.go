package testutil

import (
	"testing"

	"github.com/cwbudde/algo-subpel/dsp/buffer"
)

// RequirePlanesEqual fails t at the first sample of the w x h block where
// got and want differ.
func RequirePlanesEqual(t testing.TB, got, want buffer.Plane, w, h int) {
	t.Helper()
	if x, y, found := FirstMismatch(got, want, w, h); found {
		t.Fatalf("sample (%d,%d): got %d, want %d", x, y, got.At(x, y), want.At(x, y))
	}
}

// RequireMarginsUntouched fails t if any sample of p outside its w x h
// block differs from fill.
func RequireMarginsUntouched(t testing.TB, p buffer.Plane, w, h int, fill uint16) {
	t.Helper()
	block := map[int]bool{}
	for y := range h {
		for x := range w {
			block[p.Offset(x, y)] = true
		}
	}
	for i, v := range p.Pix {
		if !block[i] && v != fill {
			t.Fatalf("index %d outside block: got %d, want %d", i, v, fill)
		}
	}
}
